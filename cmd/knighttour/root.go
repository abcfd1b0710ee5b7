package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/knighttour/board"
	"github.com/katalvlaran/knighttour/config"
	"github.com/katalvlaran/knighttour/internal/logging"
)

// errInvalidRequest marks a request the engine rejected as InvalidInput.
var errInvalidRequest = errors.New("invalid request")

// errUnboundedSearch rejects a find with no move bound and no path limit.
var errUnboundedSearch = errors.New("unbounded search: set --max-moves, --max-paths or --first")

// app carries what every subcommand shares once the root has run.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "knighttour",
		Short: "Find knight paths on an N×N board",
		Long: `knighttour enumerates simple knight paths between two cells of an N×N board,
shortest first.

Settings come from defaults, an optional knighttour.{yaml,json,toml} file,
KNIGHTTOUR_* environment variables and finally flags.

Examples:
  knighttour find --size 8 --from a1 --to h8 --first
  knighttour find --size 6 --from 0,0 --to 2,1 --max-moves 3 --format json
  knighttour moves --size 8 --at b1
  knighttour distance --size 8 --from a1 --to h8
  knighttour batch --file requests.yaml`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default: ./knighttour.{yaml,json,toml} if present)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error, off")
	cmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "Log format: text, json")

	cmd.AddCommand(newFindCmd(a), newMovesCmd(a), newDistanceCmd(a), newBatchCmd(a))

	return cmd
}

// setup loads the config and builds the logger. Flags win over config.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Format, cfg.Log.Level)
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger

	return nil
}

// boardSize returns the --size flag if set, else the configured size, checked
// against the configured range.
func (a *app) boardSize(cmd *cobra.Command, flag int) (int, error) {
	n := a.cfg.Board.Size
	if cmd.Flags().Changed("size") {
		n = flag
	}
	if err := a.cfg.CheckBoardSize(n); err != nil {
		return 0, err
	}

	return n, nil
}

// parseCell reads a cell flag and checks it lies on an n×n board.
func parseCell(name, s string, n int) (board.Coordinate, error) {
	c, err := board.ParseCoordinate(s)
	if err != nil {
		return board.Coordinate{}, err
	}
	if err := board.MustBoard(n).Check(c); err != nil {
		return board.Coordinate{}, fmt.Errorf("--%s: %w", name, err)
	}

	return c, nil
}
