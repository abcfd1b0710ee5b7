package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/knighttour/board"
)

func newMovesCmd(a *app) *cobra.Command {
	var (
		size int
		at   string
	)
	cmd := &cobra.Command{
		Use:   "moves",
		Short: "List the knight moves from a cell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := a.boardSize(cmd, size)
			if err != nil {
				return err
			}
			c, err := parseCell("at", at, n)
			if err != nil {
				return err
			}
			moves := board.LegalMoves(n, c)
			names := make([]string, len(moves))
			for i, m := range moves {
				names[i] = m.Algebraic()
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%d)\n", c.Algebraic(), strings.Join(names, " "), len(moves))

			return err
		},
	}
	cmd.Flags().IntVar(&size, "size", 0, "Board side length (default: board.size)")
	cmd.Flags().StringVar(&at, "at", "a1", "Origin cell")

	return cmd
}
