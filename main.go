// SPDX-License-Identifier: GPL-2.0-or-later

// Command hatpack inspects and round-trips hat-pack directories from the
// command line. Everything here runs headless: no textures are created.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"hatpack/bitmap"
	"hatpack/hat"
	"hatpack/metapixel"
)

func main() {
	log := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()

	cmd := &cli.Command{
		Name:  "hatpack",
		Usage: "inspect and round-trip hat packs",
		Commands: []*cli.Command{
			{
				Name:      "list",
				Usage:     "list the elements of a hat pack",
				ArgsUsage: "<dir>",
				Action: func(_ context.Context, c *cli.Command) error {
					return list(c.Args().First(), &log)
				},
			},
			{
				Name:      "inspect",
				Usage:     "dump the metapixel stream of one element file",
				ArgsUsage: "<file.png>",
				Action: func(_ context.Context, c *cli.Command) error {
					return inspect(c.Args().First())
				},
			},
			{
				Name:      "resave",
				Usage:     "load a hat pack and save it back",
				ArgsUsage: "<dir>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "output directory (defaults to the input)",
					},
				},
				Action: func(_ context.Context, c *cli.Command) error {
					return resave(c.Args().First(), c.String("out"), &log)
				},
			},
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("hatpack failed")
	}
}

func list(dir string, log *zerolog.Logger) error {
	if dir == "" {
		return cli.Exit("usage: hatpack list <dir>", 2)
	}
	bundle, err := hat.Load(dir, hat.LoadOptions{Log: log})
	if err != nil {
		return err
	}
	if !bundle.HasElements() {
		fmt.Println("no hat elements found")
		return nil
	}
	for _, e := range bundle.Elements() {
		base := e.Base()
		size := "?"
		name := fmt.Sprintf("%s_%d_%d.png", base.SaveName(), base.AreaSize.X, base.AreaSize.Y)
		if info, err := os.Stat(filepath.Join(dir, name)); err == nil {
			size = humanize.Bytes(uint64(info.Size()))
		}
		fmt.Printf("%-12s  %-16s  frame %dx%d  area %dx%d  %d animation(s)  %s\n",
			base.Kind, base.SaveName(),
			base.FrameSize.X, base.FrameSize.Y,
			base.AreaSize.X, base.AreaSize.Y,
			len(e.Animations()), size)
	}
	return nil
}

func inspect(path string) error {
	if path == "" {
		return cli.Exit("usage: hatpack inspect <file.png>", 2)
	}
	img, err := bitmap.Load(path)
	if err != nil {
		return err
	}
	base := filepath.Base(path)
	ns := hat.ParseNameAndSize(strings.TrimSuffix(base, filepath.Ext(base)))
	artWidth := img.Bounds().Dx()
	if ns.HasSize {
		artWidth = ns.Size.X
	}
	pixels := metapixel.Decode(img, artWidth)
	if len(pixels) == 0 {
		fmt.Println("no metapixels")
		return nil
	}
	for i, p := range pixels {
		fmt.Printf("%3d  %-26s  a=%-3d b=%d\n", i, p.Op, p.A, p.B)
	}
	return nil
}

func resave(dir, out string, log *zerolog.Logger) error {
	if dir == "" {
		return cli.Exit("usage: hatpack resave <dir>", 2)
	}
	if out == "" {
		out = dir
	}
	bundle, err := hat.Load(dir, hat.LoadOptions{Log: log})
	if err != nil {
		return err
	}
	if err := bundle.Save(out); err != nil {
		return err
	}
	log.Info().Str("dir", out).Int("elements", len(bundle.Elements())).Msg("saved")
	return nil
}
