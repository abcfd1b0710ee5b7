package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/knighttour/board"
	"github.com/katalvlaran/knighttour/reach"
)

func newDistanceCmd(a *app) *cobra.Command {
	var (
		size     int
		from, to string
	)
	cmd := &cobra.Command{
		Use:   "distance",
		Short: "Print the fewest knight moves between two cells",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := a.boardSize(cmd, size)
			if err != nil {
				return err
			}
			start, err := parseCell("from", from, n)
			if err != nil {
				return err
			}
			end, err := parseCell("to", to, n)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			d, err := reach.Distance(board.MustBoard(n), start, end, reach.WithContext(cmd.Context()))
			switch {
			case errors.Is(err, reach.ErrUnreachable):
				_, err = fmt.Fprintf(out, "%s -> %s: unreachable\n", start.Algebraic(), end.Algebraic())
				return err
			case err != nil:
				return err
			}
			_, err = fmt.Fprintf(out, "%s -> %s: %d\n", start.Algebraic(), end.Algebraic(), d)

			return err
		},
	}
	cmd.Flags().IntVar(&size, "size", 0, "Board side length (default: board.size)")
	cmd.Flags().StringVar(&from, "from", "a1", "Start cell")
	cmd.Flags().StringVar(&to, "to", "a1", "End cell")

	return cmd
}
