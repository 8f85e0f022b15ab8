package main

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
	"github.com/woozymasta/ase"
	"github.com/woozymasta/ase/internal/raster"
	"github.com/woozymasta/ase/internal/texture"
)

func infoCommand() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     "print header, counts and fingerprint",
		ArgsUsage: "FILE",
		Action: func(_ context.Context, cmd *cli.Command) error {
			doc, path, err := load(cmd)
			if err != nil {
				return err
			}
			h := &doc.Header

			fmt.Printf("file:        %s\n", path)
			fmt.Printf("size:        %s\n", humanize.IBytes(uint64(h.FileSize)))
			fmt.Printf("canvas:      %dx%d %s\n", h.Width, h.Height, h.Depth)
			pw, ph := h.PixelRatio()
			fmt.Printf("pixel ratio: %d:%d\n", pw, ph)
			if h.Depth == ase.DepthIndexed {
				fmt.Printf("transparent: %d\n", h.TransparentIndex)
			}
			if h.Grid != nil {
				fmt.Printf("grid:        %dx%d at %d,%d\n", h.Grid.Width, h.Grid.Height, h.Grid.X, h.Grid.Y)
			}
			fmt.Printf("frames:      %s\n", humanize.Comma(int64(len(doc.Frames))))
			fmt.Printf("layers:      %d\n", len(doc.Layers))
			fmt.Printf("tags:        %d\n", len(doc.Tags))
			fmt.Printf("palette:     %d colors\n", len(doc.Palette.Colors))
			if p := doc.ColorProfile; p != nil {
				fmt.Printf("profile:     %s", p.Type)
				if len(p.ICC) > 0 {
					fmt.Printf(" (%s ICC)", humanize.IBytes(uint64(len(p.ICC))))
				}
				fmt.Println()
			}
			if ud := doc.SpriteUserData; ud != nil && ud.Text != nil {
				fmt.Printf("user data:   %q\n", *ud.Text)
			}
			fmt.Printf("fingerprint: %016x\n", doc.Fingerprint())

			return nil
		},
	}
}

func layersCommand() *cli.Command {
	return &cli.Command{
		Name:      "layers",
		Usage:     "print the layer tree",
		ArgsUsage: "FILE",
		Action: func(_ context.Context, cmd *cli.Command) error {
			doc, _, err := load(cmd)
			if err != nil {
				return err
			}

			var walk func(parent, depth int)
			walk = func(parent, depth int) {
				for _, i := range doc.Children(parent) {
					l := doc.Layers[i]
					state := ""
					if !l.Flags.Visible() {
						state = " hidden"
					}
					fmt.Printf("%s[%d] %s (%s, %s, opacity %d%s)\n",
						strings.Repeat("  ", depth), i, l.Name, l.Type, l.BlendMode, l.Opacity, state)
					walk(i, depth+1)
				}
			}
			walk(-1, 0)

			return nil
		},
	}
}

func tagsCommand() *cli.Command {
	return &cli.Command{
		Name:      "tags",
		Usage:     "print animation tags",
		ArgsUsage: "FILE",
		Action: func(_ context.Context, cmd *cli.Command) error {
			doc, _, err := load(cmd)
			if err != nil {
				return err
			}

			for _, t := range doc.Tags {
				repeat := "forever"
				if t.Repeat > 0 {
					repeat = fmt.Sprintf("%dx", t.Repeat)
				}
				fmt.Printf("%-20s frames %d-%d %s %s\n", t.Name, t.From, t.To, t.Direction, repeat)
			}

			return nil
		},
	}
}

func framesCommand() *cli.Command {
	return &cli.Command{
		Name:      "frames",
		Usage:     "print frames and their cels",
		ArgsUsage: "FILE",
		Action: func(_ context.Context, cmd *cli.Command) error {
			doc, _, err := load(cmd)
			if err != nil {
				return err
			}

			for i, f := range doc.Frames {
				fmt.Printf("frame %d: %v, %s, %d cels\n", i, f.Duration, humanize.IBytes(uint64(f.Size)), len(f.Cels))
				for _, c := range f.Cels {
					fmt.Printf("  layer %d at %d,%d %s", c.Layer, c.X, c.Y, c.Type())
					switch v := c.Content.(type) {
					case *ase.ImageCel:
						fmt.Printf(" %dx%d", v.Width, v.Height)
					case *ase.LinkedCel:
						fmt.Printf(" -> frame %d", v.Frame)
					case *ase.TilemapCel:
						fmt.Printf(" %dx%d tiles", v.Width, v.Height)
					}
					fmt.Printf(" %016x\n", c.Fingerprint())
				}
			}

			return nil
		},
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "write one cel as PNG, DDS or EDDS",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "frame", Usage: "frame index"},
			&cli.IntFlag{Name: "layer", Usage: "layer index"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output path", Required: true},
			&cli.StringFlag{Name: "format", Value: "png", Usage: "png, dds or edds"},
			&cli.StringFlag{Name: "pixels", Value: "bgra8", Usage: "texture pixel format (bgra8, rgba8, dxt1, dxt5, ...)"},
			&cli.IntFlag{Name: "mipmaps", Usage: "texture mip levels, 0 for full chain"},
			&cli.BoolFlag{Name: "no-compress", Usage: "store EDDS blocks without LZ4"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			doc, _, err := load(cmd)
			if err != nil {
				return err
			}

			img, err := raster.CelImage(doc, cmd.Int("frame"), cmd.Int("layer"))
			if err != nil {
				return err
			}

			return writeImage(cmd, img)
		},
	}
}

func writeImage(cmd *cli.Command, img image.Image) error {
	path := cmd.String("out")

	var opts *texture.Options
	format := strings.ToLower(cmd.String("format"))
	switch format {
	case "png":
	case "dds", "edds":
		pix, err := texture.ParseFormat(cmd.String("pixels"))
		if err != nil {
			return err
		}
		opts = &texture.Options{
			Format:     pix,
			MaxMipMaps: cmd.Int("mipmaps"),
			Store:      cmd.Bool("no-compress"),
		}
	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	switch format {
	case "png":
		err = png.Encode(f, img)
	case "dds":
		err = texture.WriteDDS(f, img, opts)
	case "edds":
		err = texture.WriteEDDS(f, img, opts)
	}
	if err != nil {
		return err
	}

	return f.Close()
}
