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

package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/mosaic"
	"seehuhn.de/go/mosaic/server"
)

const shutdownTimeout = 5 * time.Second

var serveCommand = &cli.Command{
	Name:  "serve",
	Usage: "run the HTTP service",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "listen",
			Usage: "listen address, overrides the config file",
		},
	},
	Action: func(ctx *cli.Context) error {
		cfg := getConfig(ctx)
		addr := cfg.Server.Listen
		if ctx.IsSet("listen") {
			addr = ctx.String("listen")
		}

		sigCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt, syscall.SIGTERM)
		defer stop()

		ln, err := net.Listen("tcp", addr)
		if err != nil {
			return err
		}
		srv := &http.Server{
			Handler:      server.New(cfg.Render, nil),
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		}
		return serve(sigCtx, srv, ln)
	},
}

// serve runs srv on ln until ctx is cancelled or the server fails.
func serve(ctx context.Context, srv *http.Server, ln net.Listener) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		log.Printf("HTTP server listening on %s", ln.Addr())
		err := srv.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	eg.Go(func() error {
		<-ctx.Done()
		log.Print("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return eg.Wait()
}

var tokenCommand = &cli.Command{
	Name:  "token",
	Usage: "print a random token",
	Action: func(ctx *cli.Context) error {
		_, err := fmt.Fprintln(ctx.App.Writer, mosaic.RandomToken(mosaic.DefaultRand))
		return err
	},
}

var renderCommand = &cli.Command{
	Name:  "render",
	Usage: "render a token to a JPEG file",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "token",
			Usage: "scene to render, random if empty",
		},
		&cli.IntFlag{
			Name:  "size",
			Usage: "width and height of the image in pixels",
		},
		&cli.StringFlag{
			Name:  "background",
			Usage: "background colour, as rrggbb or a colour name",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output file, standard output if empty",
		},
	},
	Action: func(ctx *cli.Context) error {
		cfg := getConfig(ctx)
		opt := mosaic.Options{
			Width:      cfg.Render.DefaultSize,
			Height:     cfg.Render.DefaultSize,
			Background: cfg.Render.Background,
		}
		if ctx.IsSet("size") {
			opt.Width = ctx.Int("size")
			opt.Height = opt.Width
		}
		if ctx.IsSet("background") {
			c, err := mosaic.ParseColor(ctx.String("background"))
			if err != nil {
				return &mosaic.ConfigError{Param: "background", Value: ctx.String("background"), Reason: "not a colour"}
			}
			opt.Background = c
		}

		img, token, err := mosaic.CreateImageFromToken(ctx.String("token"), opt, nil)
		if err != nil {
			return err
		}

		if err := writeJPEG(ctx.String("output"), ctx.App.Writer, img); err != nil {
			return err
		}
		fmt.Fprintln(ctx.App.ErrWriter, token)
		return nil
	},
}

// writeJPEG writes img to the named file, or to stdout if name is empty.
func writeJPEG(name string, stdout io.Writer, img image.Image) error {
	if name == "" {
		return mosaic.EncodeJPEG(stdout, img)
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	err = mosaic.EncodeJPEG(f, img)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}
