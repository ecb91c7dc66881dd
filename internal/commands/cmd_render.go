package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/riverfjs/tgrender"
	"github.com/riverfjs/tgrender/internal/update"
)

const watchDebounce = 100 * time.Millisecond

type RenderCmd struct {
	flags   *Flags
	in      *inputReader
	path    string
	caption bool
	chunks  bool
	watch   bool
}

func NewRenderCmd(flags *Flags) *RenderCmd {
	return &RenderCmd{
		flags: flags,
		in:    &inputReader{},
	}
}

func (cmd *RenderCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "render",
		Usage: "Render message text and entities as markup",
		UsageText: `tgrender render [options]

Read from stdin:
  echo '{"text":"Hi","entities":[{"type":"bold","offset":0,"length":2}]}' | tgrender render

Render the caption of an update returned by getUpdates:
  tgrender render -f updates.json --path result.0.message --caption`,
		Description: `Renders the text of a Telegram message with the configured flavor.

The input is either {"text","entities"}, a Bot API Message, or an Update
wrapping one. --path selects the message with a gjson path.

With --chunks the message is split at Telegram's length limit and a JSON
array of {"text","parse_mode"} objects is written instead.`,
		Flags: []cli.Flag{
			cmd.in.Flag(),
			&cli.StringFlag{
				Name:        "path",
				Usage:       "gjson path of the message inside the input",
				Destination: &cmd.path,
			},
			&cli.BoolFlag{
				Name:        "caption",
				Usage:       "render the caption instead of the text",
				Destination: &cmd.caption,
			},
			&cli.BoolFlag{
				Name:        "chunks",
				Usage:       "split into messages and print them as JSON",
				Destination: &cmd.chunks,
			},
			&cli.BoolFlag{
				Name:        "watch",
				Aliases:     []string{"w"},
				Usage:       "re-render whenever the input file changes (requires --file)",
				Destination: &cmd.watch,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RenderCmd) run(ctx context.Context, c *cli.Command) error {
	out := c.Root().Writer

	if cmd.watch {
		if cmd.in.fileFlagValue == "" {
			return errors.New("--watch requires --file")
		}
		return cmd.watchFile(ctx, out)
	}

	return cmd.renderOnce(out)
}

func (cmd *RenderCmd) renderOnce(out io.Writer) error {
	data, err := cmd.in.Read()
	if err != nil {
		return err
	}

	src, err := cmd.source(data)
	if err != nil {
		return err
	}

	fl, err := cmd.flags.renderFlavor()
	if err != nil {
		return err
	}

	if cmd.chunks {
		msgs := tgrender.RenderChunks(src.Text, src.Entities,
			tgrender.WithConfig(cmd.flags.Config.RenderConfig()),
			tgrender.WithFlavor(fl),
		)
		return writeJSON(out, msgs)
	}

	msg := tgrender.RenderEntities(src.Text, src.Entities, fl)
	_, err = fmt.Fprintln(out, msg.Text)
	return err
}

func (cmd *RenderCmd) source(data []byte) (update.Source, error) {
	sources, err := update.Extract(data, cmd.path)
	if err != nil {
		return update.Source{}, fmt.Errorf("extract input: %w", err)
	}

	name := ""
	if cmd.caption {
		name = update.SourceCaption
	}
	src, err := update.Select(sources, name)
	if err != nil {
		return update.Source{}, err
	}

	if err := src.Validate(); err != nil {
		return update.Source{}, fmt.Errorf("invalid input: %w", err)
	}
	return src, nil
}

// watchFile renders the input, then renders again after every change until
// ctx is done. The parent directory is watched so editors that replace the
// file on save are followed.
func (cmd *RenderCmd) watchFile(ctx context.Context, out io.Writer) error {
	file, err := filepath.Abs(cmd.in.fileFlagValue)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filepath.Dir(file)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(file), err)
	}

	logger := log.With().Str("component", "render-watch").Str("file", file).Logger()

	rerender := func() {
		if err := cmd.renderOnce(out); err != nil {
			logger.Error().Err(err).Msg("render failed")
		}
	}
	rerender()

	debounce := time.NewTimer(watchDebounce)
	debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != file || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			logger.Debug().Str("op", event.Op.String()).Msg("file system event")
			debounce.Reset(watchDebounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("watcher error")
		case <-debounce.C:
			rerender()
		}
	}
}
