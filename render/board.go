package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/knighttour/board"
	"github.com/katalvlaran/knighttour/tour"
)

// PathLetter names the i-th path (0-based): A..Z, then AA, AB, ...
func PathLetter(i int) string {
	var sb []byte
	for i++; i > 0; i = (i - 1) / 26 {
		sb = append([]byte{byte('A' + (i-1)%26)}, sb...)
	}

	return string(sb)
}

// Labels returns the label of every cell of an n×n board in row-major order,
// "" for cells no path visits. It returns nil for n < 1.
func Labels(n int, start, end board.Coordinate, paths []tour.Path) []string {
	b, err := board.NewBoard(n)
	if err != nil {
		return nil
	}
	out := make([]string, b.Area())
	for i, p := range paths {
		letter := PathLetter(i)
		for step, c := range p {
			if !b.Contains(c) {
				continue
			}
			if idx := b.Index(c); out[idx] == "" {
				out[idx] = fmt.Sprintf("%s%d", letter, step+1)
			}
		}
	}
	if b.Contains(start) {
		out[b.Index(start)] = "S"
	}
	if b.Contains(end) {
		out[b.Index(end)] = "E"
	}

	return out
}

// Board writes an n×n grid with rank numbers on the left and file letters
// underneath, top rank first.
func Board(w io.Writer, n int, start, end board.Coordinate, paths []tour.Path) error {
	if n < 1 {
		return fmt.Errorf("render: %w", board.ErrInvalidBoardSize)
	}
	b := board.MustBoard(n)
	labels := Labels(n, start, end, paths)

	width := 1
	for _, l := range labels {
		width = max(width, len(l))
	}
	rankWidth := len(fmt.Sprint(n))

	var sb strings.Builder
	for y := n - 1; y >= 0; y-- {
		fmt.Fprintf(&sb, "%*d ", rankWidth, y+1)
		for x := 0; x < n; x++ {
			l := labels[b.Index(board.C(x, y))]
			if l == "" {
				l = "."
			}
			fmt.Fprintf(&sb, " %-*s", width, l)
		}
		sb.WriteString("\n")
	}
	sb.WriteString(strings.Repeat(" ", rankWidth+1))
	for x := 0; x < n; x++ {
		fmt.Fprintf(&sb, " %-*s", width, fileName(x))
	}
	sb.WriteString("\n")

	_, err := io.WriteString(w, trimLines(sb.String()))

	return err
}

// fileName labels column x: a..z, then the column number.
func fileName(x int) string {
	if x < 26 {
		return string(rune('a' + x))
	}

	return fmt.Sprint(x + 1)
}

// trimLines strips trailing spaces from each line.
func trimLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}

	return strings.Join(lines, "\n")
}
