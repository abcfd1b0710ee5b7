// Package tour defines types and options for knight-path search: search
// statuses, paths, statistics, and functional options controlling bounds,
// ordering, hooks, and logging.
package tour

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/knighttour/board"
	"github.com/katalvlaran/knighttour/internal/logging"
)

var (
	// ErrInvalidOption indicates a malformed search option, such as a negative
	// move bound. It is reported before the search begins.
	ErrInvalidOption = errors.New("tour: invalid option")

	// ErrInvalidPath indicates a path that breaks a path invariant.
	ErrInvalidPath = errors.New("tour: invalid path")

	// errLimitReached stops a search once MaxPaths paths were recorded.
	errLimitReached = errors.New("tour: path limit reached")
)

// Status is the terminal outcome of a search.
type Status int

const (
	// Success: at least one path was found.
	Success Status = iota
	// NoTourFound: the search completed within its bounds and found nothing.
	NoTourFound
	// Cancelled: the context ended the search early; Paths may be partial and
	// completeness is not guaranteed.
	Cancelled
	// InvalidInput: the board size, a coordinate, or an option was malformed.
	InvalidInput
)

var statusNames = [...]string{
	Success:      "success",
	NoTourFound:  "no_tour_found",
	Cancelled:    "cancelled",
	InvalidInput: "invalid_input",
}

// String returns the snake_case name of s.
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("status(%d)", int(s))
	}

	return statusNames[s]
}

// MarshalText implements encoding.TextMarshaler so encoders emit the name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(b []byte) error {
	for i, name := range statusNames {
		if name == string(b) {
			*s = Status(i)
			return nil
		}
	}

	return fmt.Errorf("tour: unknown status %q", b)
}

// Path is an ordered sequence of distinct cells joined by knight moves.
type Path []board.Coordinate

// Moves returns the number of knight moves in p.
func (p Path) Moves() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// Start returns the first cell. p must not be empty.
func (p Path) Start() board.Coordinate { return p[0] }

// End returns the last cell. p must not be empty.
func (p Path) End() board.Coordinate { return p[len(p)-1] }

// StepOf returns the 1-based position of c in p, or 0 if p does not visit c.
func (p Path) StepOf(c board.Coordinate) int {
	for i, v := range p {
		if v == c {
			return i + 1
		}
	}

	return 0
}

// Validate checks p against an n×n board: non-empty, every cell on the board,
// no repeated cell, and consecutive cells one knight move apart.
func (p Path) Validate(n int) error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	seen := make(map[board.Coordinate]int, len(p))
	for i, c := range p {
		if c.X < 0 || c.X >= n || c.Y < 0 || c.Y >= n {
			return fmt.Errorf("%w: step %d %s off the %dx%d board", ErrInvalidPath, i+1, c, n, n)
		}
		if j, dup := seen[c]; dup {
			return fmt.Errorf("%w: %s repeated at steps %d and %d", ErrInvalidPath, c, j+1, i+1)
		}
		seen[c] = i
		if i > 0 && !board.IsKnightMove(p[i-1], c) {
			return fmt.Errorf("%w: %s -> %s is not a knight move", ErrInvalidPath, p[i-1], c)
		}
	}

	return nil
}

// Stats reports search effort.
type Stats struct {
	// Expanded counts cells entered onto the path buffer, across all passes.
	Expanded int `json:"expanded" yaml:"expanded" toml:"expanded"`
	// Pruned counts candidate moves rejected because the target could no
	// longer be reached within the remaining move budget.
	Pruned int `json:"pruned" yaml:"pruned" toml:"pruned"`
	// Passes counts deepening passes run (one per move bound tried).
	Passes int `json:"passes" yaml:"passes" toml:"passes"`
	// Duration is the wall time of the search.
	Duration time.Duration `json:"duration" yaml:"duration" toml:"duration"`
}

// Result captures the outcome of FindTours.
type Result struct {
	// Status is the terminal outcome.
	Status Status
	// Paths lists found paths shortest first; ties keep depth-first offset order.
	Paths []Path
	// Stats reports search effort.
	Stats Stats
	// Err is the context error when Status is Cancelled.
	Err error
}

// Option configures a search. Invalid values are recorded and surfaced as
// ErrInvalidOption when the search is invoked.
type Option func(*SearchOptions)

// SearchOptions holds the parameters and hooks of one search.
type SearchOptions struct {
	// MaxMoves, if > 0, bounds the number of moves of any returned path.
	// Zero leaves only the hard bound of N²-1 moves.
	MaxMoves int

	// MaxPaths, if > 0, stops the search after that many paths.
	MaxPaths int

	// Warnsdorff orders candidate moves by ascending onward degree before
	// recursing. It changes the order paths are met in, never which paths exist.
	Warnsdorff bool

	// OnVisit is called each time a cell is entered, with the number of moves
	// taken to reach it. Returning an error aborts the search.
	OnVisit func(c board.Coordinate, depth int) error

	// OnPath is called once for each path as it is found. The path is owned by
	// the caller. Returning an error aborts the search.
	OnPath func(p Path) error

	// Logger receives debug-level search telemetry.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns SearchOptions with no caller bounds, table move
// order, no-op hooks and a discarding logger.
func DefaultOptions() SearchOptions {
	return SearchOptions{
		MaxMoves:   0,
		MaxPaths:   0,
		Warnsdorff: false,
		OnVisit:    func(board.Coordinate, int) error { return nil },
		OnPath:     func(Path) error { return nil },
		Logger:     logging.Discard(),
	}
}

// WithMaxMoves bounds the move count of returned paths.
//
//	k > 0:  at most k moves
//	k == 0: no caller bound
//	k < 0:  invalid → ErrInvalidOption
func WithMaxMoves(k int) Option {
	return func(o *SearchOptions) {
		if k < 0 {
			o.err = fmt.Errorf("%w: MaxMoves cannot be negative (%d)", ErrInvalidOption, k)
			return
		}
		o.MaxMoves = k
	}
}

// WithMaxPaths stops the search after k paths; 0 means unlimited.
// A negative k is recorded as ErrInvalidOption.
func WithMaxPaths(k int) Option {
	return func(o *SearchOptions) {
		if k < 0 {
			o.err = fmt.Errorf("%w: MaxPaths cannot be negative (%d)", ErrInvalidOption, k)
			return
		}
		o.MaxPaths = k
	}
}

// WithStopAtFirst returns after the first path, which is a shortest one.
// It is equivalent to WithMaxPaths(1).
func WithStopAtFirst() Option {
	return WithMaxPaths(1)
}

// WithWarnsdorffOrdering tries low-degree moves first within each pass.
func WithWarnsdorffOrdering() Option {
	return func(o *SearchOptions) {
		o.Warnsdorff = true
	}
}

// WithOnVisit installs fn as the cell-entry hook.
func WithOnVisit(fn func(c board.Coordinate, depth int) error) Option {
	return func(o *SearchOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnPath installs fn as the path-found hook.
func WithOnPath(fn func(p Path) error) Option {
	return func(o *SearchOptions) {
		if fn != nil {
			o.OnPath = fn
		}
	}
}

// WithLogger routes search telemetry to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *SearchOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}
