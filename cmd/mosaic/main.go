// seehuhn.de/go/mosaic - rectangle scenes addressed by text tokens
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Mosaic serves and renders rectangle scenes addressed by text tokens.
//
// Usage:
//
//	mosaic [--config FILE] serve [--listen ADDR]
//	mosaic [--config FILE] token
//	mosaic [--config FILE] render [--token T] [--size N] [--background C] [--output FILE]
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"seehuhn.de/go/mosaic/config"
)

const configKey = "config"

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		switch value := err.(type) {
		case cli.ExitCoder:
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(value.ExitCode())
		default:
			fmt.Fprintln(os.Stderr, value.Error())
			os.Exit(1)
		}
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.HideHelpCommand = true
	app.Name = "mosaic"
	app.Usage = "Render scenes of coloured rectangles from text tokens"
	app.Metadata = map[string]any{}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Value:   config.DefaultFile,
			Usage:   "config file path",
			Aliases: []string{"c"},
		},
	}

	// A missing config file is only an error if it was asked for.
	app.Before = func(ctx *cli.Context) error {
		cfg, err := config.Load(ctx.String("config"), ctx.IsSet("config"))
		if err != nil {
			return err
		}
		ctx.App.Metadata[configKey] = cfg
		return nil
	}

	app.Commands = []*cli.Command{serveCommand, tokenCommand, renderCommand}
	return app
}

func getConfig(ctx *cli.Context) *config.Config {
	if cfg, ok := ctx.App.Metadata[configKey].(*config.Config); ok {
		return cfg
	}
	return config.Default()
}
