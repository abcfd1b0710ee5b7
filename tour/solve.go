package tour

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/knighttour/board"
)

// Request is the caller-facing description of one search.
type Request struct {
	BoardSize int              `json:"board_size" yaml:"board_size" toml:"board_size"`
	Start     board.Coordinate `json:"start" yaml:"start" toml:"start"`
	End       board.Coordinate `json:"end" yaml:"end" toml:"end"`
	Options   RequestOptions   `json:"options" yaml:"options" toml:"options"`
}

// RequestOptions are the plain-data search options of a Request.
// Zero values mean "no bound" and table move order.
type RequestOptions struct {
	MaxMoves    int  `json:"max_moves,omitempty" yaml:"max_moves,omitempty" toml:"max_moves,omitempty"`
	StopAtFirst bool `json:"stop_at_first,omitempty" yaml:"stop_at_first,omitempty" toml:"stop_at_first,omitempty"`
	MaxPaths    int  `json:"max_paths,omitempty" yaml:"max_paths,omitempty" toml:"max_paths,omitempty"`
	Warnsdorff  bool `json:"warnsdorff,omitempty" yaml:"warnsdorff,omitempty" toml:"warnsdorff,omitempty"`
}

// Options converts ro into functional Options. StopAtFirst takes precedence
// over MaxPaths.
func (ro RequestOptions) Options() []Option {
	opts := []Option{WithMaxMoves(ro.MaxMoves), WithMaxPaths(ro.MaxPaths)}
	if ro.StopAtFirst {
		opts = append(opts, WithStopAtFirst())
	}
	if ro.Warnsdorff {
		opts = append(opts, WithWarnsdorffOrdering())
	}

	return opts
}

// Response is the typed outcome of Solve. It never carries a panic or a
// silently corrected input: malformed requests come back as InvalidInput.
type Response struct {
	// SessionID identifies the search session in logs.
	SessionID string `json:"session_id" yaml:"session_id" toml:"session_id"`
	// Request echoes the request this response answers.
	Request Request `json:"request" yaml:"request" toml:"request"`
	Status  Status  `json:"status" yaml:"status" toml:"status"`
	Paths   []Path  `json:"paths" yaml:"paths" toml:"paths"`
	Stats   Stats   `json:"stats" yaml:"stats" toml:"stats"`
	// Err explains InvalidInput, Cancelled and hook failures.
	Err error `json:"-" yaml:"-" toml:"-"`
}

// Solve runs one search for req. ctx is the cancellation token. extra options
// (hooks, logger) are applied after the request's own options.
func Solve(ctx context.Context, req Request, extra ...Option) Response {
	resp := Response{
		SessionID: uuid.New().String(),
		Request:   req,
		Paths:     []Path{},
	}

	o := DefaultOptions()
	for _, opt := range append(req.Options.Options(), extra...) {
		opt(&o)
	}
	o.Logger = o.Logger.With(slog.String("session", resp.SessionID))
	logger := o.Logger

	res, err := FindTours(ctx, req.BoardSize, req.Start, req.End, withSearchOptions(o))
	if res == nil {
		resp.Status = InvalidInput
		resp.Err = err
		logger.Info("tour request rejected", slog.String("error", err.Error()))

		return resp
	}

	resp.Status = res.Status
	resp.Stats = res.Stats
	if len(res.Paths) > 0 {
		resp.Paths = res.Paths
	}
	resp.Err = res.Err
	if err != nil {
		resp.Err = err
	}

	return resp
}

// withSearchOptions replaces the defaults with an already assembled set,
// including any recorded option error.
func withSearchOptions(o SearchOptions) Option {
	return func(dst *SearchOptions) {
		*dst = o
	}
}
