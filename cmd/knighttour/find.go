package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/knighttour/board"
	"github.com/katalvlaran/knighttour/render"
	"github.com/katalvlaran/knighttour/tour"
)

type findFlags struct {
	size       int
	from       string
	to         string
	maxMoves   int
	first      bool
	maxPaths   int
	warnsdorff bool
	timeout    time.Duration
	format     string
}

func newFindCmd(a *app) *cobra.Command {
	f := &findFlags{}
	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find knight paths between two cells",
		Long: `Find every simple knight path from --from to --to, shortest first.

Cells are algebraic (a1, h8) or zero-based x,y pairs. --to defaults to the
corner opposite a1. The search stops at the first path with --first, after
--max-paths paths, at --timeout, or on interrupt; partial results are printed.
The move bound defaults to search.max_moves (3). A search with no move bound,
no path limit and no --first is refused.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFind(cmd, a, f)
		},
	}
	cmd.Flags().IntVar(&f.size, "size", 0, "Board side length (default: board.size)")
	cmd.Flags().StringVar(&f.from, "from", "a1", "Start cell")
	cmd.Flags().StringVar(&f.to, "to", "", "End cell (default: opposite corner)")
	cmd.Flags().IntVar(&f.maxMoves, "max-moves", 0, "Longest path in moves, 0 for no bound (default: search.max_moves)")
	cmd.Flags().BoolVar(&f.first, "first", false, "Stop at the first (shortest) path")
	cmd.Flags().IntVar(&f.maxPaths, "max-paths", 0, "Stop after this many paths, 0 for all (default: search.max_paths)")
	cmd.Flags().BoolVar(&f.warnsdorff, "warnsdorff", false, "Try low-degree cells first")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "Give up after this long, 0 for never (default: search.timeout)")
	cmd.Flags().StringVar(&f.format, "format", "", "Output format: text, json, yaml, toml (default: output.format)")

	return cmd
}

func runFind(cmd *cobra.Command, a *app, f *findFlags) error {
	n, err := a.boardSize(cmd, f.size)
	if err != nil {
		return err
	}
	start, err := parseCell("from", f.from, n)
	if err != nil {
		return err
	}
	end := board.C(n-1, n-1)
	if f.to != "" {
		if end, err = parseCell("to", f.to, n); err != nil {
			return err
		}
	}

	search := a.cfg.Search
	flags := cmd.Flags()
	if flags.Changed("max-moves") {
		search.MaxMoves = f.maxMoves
	}
	if flags.Changed("first") {
		search.StopAtFirst = f.first
	}
	if flags.Changed("max-paths") {
		search.MaxPaths = f.maxPaths
	}
	if flags.Changed("warnsdorff") {
		search.Warnsdorff = f.warnsdorff
	}
	if flags.Changed("timeout") {
		search.Timeout = f.timeout
	}
	if search.MaxMoves == 0 && search.MaxPaths == 0 && !search.StopAtFirst {
		return errUnboundedSearch
	}
	format, err := a.outputFormat(f.format)
	if err != nil {
		return err
	}

	req := tour.Request{
		BoardSize: n,
		Start:     start,
		End:       end,
		Options: tour.RequestOptions{
			MaxMoves:    search.MaxMoves,
			StopAtFirst: search.StopAtFirst,
			MaxPaths:    search.MaxPaths,
			Warnsdorff:  search.Warnsdorff,
		},
	}

	ctx, cancel := searchContext(cmd.Context(), search.Timeout)
	defer cancel()

	resp := tour.Solve(ctx, req, tour.WithLogger(a.logger))
	a.logResponse(resp)

	if err := render.Encode(cmd.OutOrStdout(), format, resp); err != nil {
		return err
	}
	if resp.Status == tour.InvalidInput {
		return fmt.Errorf("%w: %w", errInvalidRequest, resp.Err)
	}

	return nil
}

// searchContext derives a context cancelled on interrupt and, when timeout
// is positive, after timeout.
func searchContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	if timeout <= 0 {
		return ctx, stop
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)

	return ctx, func() {
		cancel()
		stop()
	}
}

// outputFormat resolves the --format flag against the configured default.
func (a *app) outputFormat(flag string) (render.Format, error) {
	if flag == "" {
		flag = a.cfg.Output.Format
	}

	return render.ParseFormat(flag)
}

func (a *app) logResponse(resp tour.Response) {
	attrs := []any{
		slog.String("session", resp.SessionID),
		slog.String("status", resp.Status.String()),
		slog.Int("paths", len(resp.Paths)),
		slog.Int("expanded", resp.Stats.Expanded),
		slog.Duration("duration", resp.Stats.Duration),
	}
	if resp.Err != nil {
		attrs = append(attrs, slog.String("error", resp.Err.Error()))
	}
	a.logger.Info("tour solved", attrs...)
}
