package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/riverfjs/tgrender"
	"github.com/riverfjs/tgrender/internal/flavor"
)

type FlavorsCmd struct {
	flags *Flags
	json  bool
}

func NewFlavorsCmd(flags *Flags) *FlavorsCmd {
	return &FlavorsCmd{flags: flags}
}

func (cmd *FlavorsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "flavors",
		Usage: "List markup flavors",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.json,
			},
		},
		Action: cmd.run,
	})

	return app
}

// FlavorInfo describes one flavor in `tgrender flavors --json`.
type FlavorInfo struct {
	Name      string `json:"name"`
	ParseMode string `json:"parse_mode"`
	Extension string `json:"extension"`
	Default   bool   `json:"default"`
}

func (cmd *FlavorsCmd) run(ctx context.Context, c *cli.Command) error {
	infos := make([]FlavorInfo, 0, len(flavor.Names()))
	for _, name := range flavor.Names() {
		fl, _ := tgrender.LookupFlavor(name)
		infos = append(infos, FlavorInfo{
			Name:      fl.Name(),
			ParseMode: fl.ParseMode(),
			Extension: fl.Extension(),
			Default:   cmd.flags.Config != nil && fl.Name() == cmd.flags.Config.Flavor,
		})
	}

	out := c.Root().Writer
	if cmd.json {
		return writeJSON(out, infos)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tPARSE MODE\tEXTENSION\t")
	for _, info := range infos {
		parseMode := info.ParseMode
		if parseMode == "" {
			parseMode = "-"
		}
		marker := ""
		if info.Default {
			marker = "*"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", info.Name, parseMode, info.Extension, marker)
	}
	return w.Flush()
}
