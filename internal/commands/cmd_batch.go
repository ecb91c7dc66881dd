package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/riverfjs/tgrender"
	"github.com/riverfjs/tgrender/internal/update"
)

// Batch result statuses.
const (
	StatusRendered = "rendered"
	StatusFailed   = "failed"
	StatusSkipped  = "skipped"
)

type BatchCmd struct {
	flags   *Flags
	workers int
	force   bool
}

func NewBatchCmd(flags *Flags) *BatchCmd {
	return &BatchCmd{flags: flags}
}

func (cmd *BatchCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "batch",
		Usage:     "Render every JSON file matching a glob",
		ArgsUsage: "PATTERN",
		UsageText: `tgrender batch [options] PATTERN

Render all exported messages:
  tgrender batch 'export/**/*.json'`,
		Description: `Renders each matched file next to its input, replacing the .json
extension with the flavor's extension (or batch.extension from config).

Files are rendered concurrently by batch.workers workers. Existing outputs
are skipped unless --force is given. A JSON summary is written to stdout.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "workers",
				Aliases:     []string{"j"},
				Usage:       "concurrent workers (overrides batch.workers)",
				Destination: &cmd.workers,
			},
			&cli.BoolFlag{
				Name:        "force",
				Usage:       "overwrite existing output files",
				Destination: &cmd.force,
			},
		},
		Action: cmd.run,
	})

	return app
}

// BatchResult is the output for a single file.
type BatchResult struct {
	Input  string `json:"input"`
	Output string `json:"output,omitempty"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// BatchOutput is the JSON summary written by batch.
type BatchOutput struct {
	Flavor  string        `json:"flavor"`
	Results []BatchResult `json:"results"`
}

func (cmd *BatchCmd) run(ctx context.Context, c *cli.Command) error {
	pattern := c.Args().First()
	if pattern == "" {
		return errors.New("missing PATTERN argument")
	}

	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return fmt.Errorf("match %q: %w", pattern, err)
	}

	fl, err := cmd.flags.renderFlavor()
	if err != nil {
		return err
	}

	workers := cmd.workers
	if workers <= 0 {
		workers = cmd.flags.Config.Batch.Workers
	}
	ext := cmd.flags.Config.OutputExtension(fl)

	log.Info().
		Str("pattern", pattern).
		Int("files", len(matches)).
		Int("workers", workers).
		Msg("starting batch render")

	output := BatchOutput{
		Flavor:  fl.Name(),
		Results: make([]BatchResult, len(matches)),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, input := range matches {
		g.Go(func() error {
			output.Results[i] = cmd.renderFile(ctx, input, fl, ext)
			return nil
		})
	}
	_ = g.Wait()

	failed := countByStatus(output.Results, StatusFailed)
	log.Info().
		Int("total", len(matches)).
		Int("rendered", countByStatus(output.Results, StatusRendered)).
		Int("failed", failed).
		Int("skipped", countByStatus(output.Results, StatusSkipped)).
		Msg("batch render complete")

	if err := writeJSON(c.Root().Writer, output); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(matches))
	}
	return nil
}

func (cmd *BatchCmd) renderFile(ctx context.Context, input string, fl *tgrender.Flavor, ext string) BatchResult {
	result := BatchResult{
		Input:  input,
		Output: strings.TrimSuffix(input, filepath.Ext(input)) + ext,
	}
	fail := func(err error) BatchResult {
		result.Status = StatusFailed
		result.Error = err.Error()
		log.Error().Err(err).Str("input", input).Msg("render failed")
		return result
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	if result.Output == input {
		return fail(errors.New("output would overwrite input"))
	}
	if !cmd.force {
		if _, err := os.Stat(result.Output); err == nil {
			result.Status = StatusSkipped
			return result
		}
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return fail(fmt.Errorf("read input: %w", err))
	}

	sources, err := update.Extract(data, "")
	if err != nil {
		return fail(fmt.Errorf("extract input: %w", err))
	}
	src, _ := update.Select(sources, "")
	if err := src.Validate(); err != nil {
		return fail(fmt.Errorf("invalid input: %w", err))
	}

	msg := tgrender.RenderEntities(src.Text, src.Entities, fl)
	if err := os.WriteFile(result.Output, []byte(msg.Text), 0o644); err != nil {
		return fail(fmt.Errorf("write output: %w", err))
	}

	log.Debug().Str("input", input).Str("output", result.Output).Msg("rendered")
	result.Status = StatusRendered
	return result
}

func countByStatus(results []BatchResult, status string) int {
	n := 0
	for _, r := range results {
		if r.Status == status {
			n++
		}
	}
	return n
}
