package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/knighttour/render"
	"github.com/katalvlaran/knighttour/tour"
)

// batchFile is the YAML layout read by the batch command:
//
//	requests:
//	  - board_size: 8
//	    start: {x: 0, y: 0}
//	    end: {x: 7, y: 7}
//	    options: {stop_at_first: true}
type batchFile struct {
	Requests []tour.Request `yaml:"requests"`
}

func newBatchCmd(a *app) *cobra.Command {
	var (
		file        string
		format      string
		parallelism int
	)
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Solve a YAML file of requests concurrently",
		Long: `Solve every request of a YAML file, search.parallelism at a time, and print
the responses in file order. Requests are not checked against the board size
range; malformed ones come back as invalid_input without affecting the rest.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			var bf batchFile
			if err := yaml.Unmarshal(data, &bf); err != nil {
				return fmt.Errorf("batch: %s: %w", file, err)
			}
			out, err := a.outputFormat(format)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("parallelism") {
				parallelism = a.cfg.Search.Parallelism
			}

			ctx, cancel := searchContext(cmd.Context(), a.cfg.Search.Timeout)
			defer cancel()

			a.logger.Info("batch started", slog.String("file", file), slog.Int("requests", len(bf.Requests)))
			resps := tour.SolveBatch(ctx, bf.Requests, parallelism, tour.WithLogger(a.logger))
			invalid := 0
			for _, r := range resps {
				a.logResponse(r)
				if r.Status == tour.InvalidInput {
					invalid++
				}
			}

			if err := render.EncodeAll(cmd.OutOrStdout(), out, resps); err != nil {
				return err
			}
			if invalid > 0 {
				return fmt.Errorf("%w: %d of %d requests", errInvalidRequest, invalid, len(resps))
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "YAML file with a requests list")
	cmd.Flags().StringVar(&format, "format", "", "Output format: text, json, yaml, toml (default: output.format)")
	cmd.Flags().IntVar(&parallelism, "parallelism", 0, "Concurrent searches (default: search.parallelism)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
