package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/knighttour/tour"
)

// ErrUnknownFormat is returned by Encode for an unsupported format name.
var ErrUnknownFormat = errors.New("render: unknown format")

// Format names an output encoding.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat validates a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML, FormatTOML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Document is the encoder-neutral shape of a Response. Cells are [x, y] pairs.
type Document struct {
	Session   string      `json:"session" yaml:"session" toml:"session"`
	Status    string      `json:"status" yaml:"status" toml:"status"`
	BoardSize int         `json:"board_size" yaml:"board_size" toml:"board_size"`
	Start     [2]int      `json:"start" yaml:"start,flow" toml:"start"`
	End       [2]int      `json:"end" yaml:"end,flow" toml:"end"`
	Error     string      `json:"error,omitempty" yaml:"error,omitempty" toml:"error,omitempty"`
	Stats     StatsDoc    `json:"stats" yaml:"stats" toml:"stats"`
	Paths     []PathEntry `json:"paths" yaml:"paths" toml:"paths"`
}

// StatsDoc mirrors tour.Stats with a printable duration.
type StatsDoc struct {
	Expanded int    `json:"expanded" yaml:"expanded" toml:"expanded"`
	Pruned   int    `json:"pruned" yaml:"pruned" toml:"pruned"`
	Passes   int    `json:"passes" yaml:"passes" toml:"passes"`
	Duration string `json:"duration" yaml:"duration" toml:"duration"`
}

// PathEntry is one labelled path.
type PathEntry struct {
	Label string   `json:"label" yaml:"label" toml:"label"`
	Moves int      `json:"moves" yaml:"moves" toml:"moves"`
	Cells [][2]int `json:"cells" yaml:"cells,flow" toml:"cells"`
}

// NewDocument converts resp into its encoder-neutral form.
func NewDocument(resp tour.Response) Document {
	req := resp.Request
	doc := Document{
		Session:   resp.SessionID,
		Status:    resp.Status.String(),
		BoardSize: req.BoardSize,
		Start:     [2]int{req.Start.X, req.Start.Y},
		End:       [2]int{req.End.X, req.End.Y},
		Stats: StatsDoc{
			Expanded: resp.Stats.Expanded,
			Pruned:   resp.Stats.Pruned,
			Passes:   resp.Stats.Passes,
			Duration: resp.Stats.Duration.String(),
		},
		Paths: make([]PathEntry, 0, len(resp.Paths)),
	}
	if resp.Err != nil {
		doc.Error = resp.Err.Error()
	}
	for i, p := range resp.Paths {
		cells := make([][2]int, len(p))
		for j, c := range p {
			cells[j] = [2]int{c.X, c.Y}
		}
		doc.Paths = append(doc.Paths, PathEntry{Label: PathLetter(i), Moves: p.Moves(), Cells: cells})
	}

	return doc
}

// Encode writes resp to w in the given format.
func Encode(w io.Writer, f Format, resp tour.Response) error {
	switch f {
	case FormatText:
		return encodeText(w, resp)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(NewDocument(resp))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewDocument(resp)); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(NewDocument(resp))
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// EncodeAll writes several responses. Structured formats wrap them in a
// top-level "results" list; text separates them with a blank line.
func EncodeAll(w io.Writer, f Format, resps []tour.Response) error {
	if f == FormatText {
		for i, r := range resps {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			if err := encodeText(w, r); err != nil {
				return err
			}
		}
		return nil
	}

	docs := struct {
		Results []Document `json:"results" yaml:"results" toml:"results"`
	}{Results: make([]Document, 0, len(resps))}
	for _, r := range resps {
		docs.Results = append(docs.Results, NewDocument(r))
	}
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(docs)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(docs); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(docs)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// encodeText writes a summary line, then the board with every path, then one
// line per path. An empty result prints the "No Paths Found" notice.
func encodeText(w io.Writer, resp tour.Response) error {
	req := resp.Request
	var sb strings.Builder
	fmt.Fprintf(&sb, "%dx%d %s -> %s: %s\n", req.BoardSize, req.BoardSize,
		req.Start.Algebraic(), req.End.Algebraic(), resp.Status)

	switch {
	case resp.Status == tour.InvalidInput:
		fmt.Fprintf(&sb, "error: %v\n", resp.Err)
		_, err := io.WriteString(w, sb.String())
		return err
	case len(resp.Paths) == 0 && resp.Status == tour.Cancelled:
		sb.WriteString("Search cancelled before any path was found.\n")
	case len(resp.Paths) == 0:
		sb.WriteString("No Paths Found\n")
	}
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return err
	}
	if err := Board(w, req.BoardSize, req.Start, req.End, resp.Paths); err != nil {
		return err
	}

	sb.Reset()
	for i, p := range resp.Paths {
		names := make([]string, len(p))
		for j, c := range p {
			names[j] = c.Algebraic()
		}
		unit := "moves"
		if p.Moves() == 1 {
			unit = "move"
		}
		fmt.Fprintf(&sb, "%s (%d %s): %s\n", PathLetter(i), p.Moves(), unit, strings.Join(names, " "))
	}
	_, err := io.WriteString(w, sb.String())

	return err
}
