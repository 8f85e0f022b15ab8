// Command aseinfo inspects Aseprite files and exports cels as PNG, DDS or
// EDDS images.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
	"github.com/woozymasta/ase"
)

func main() {
	cmd := &cli.Command{
		Name:  "aseinfo",
		Usage: "inspect Aseprite (.ase/.aseprite) files",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log chunk-level decode trace to stderr"},
			&cli.BoolFlag{Name: "strict-tags", Usage: "fail on tags with an invalid frame range"},
			&cli.BoolFlag{Name: "allow-padding", Usage: "skip unread bytes at the end of a chunk"},
		},
		Commands: []*cli.Command{
			infoCommand(),
			layersCommand(),
			tagsCommand(),
			framesCommand(),
			exportCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "aseinfo:", err)
		os.Exit(1)
	}
}

// load decodes the file named by the first argument with the global flags.
func load(cmd *cli.Command) (*ase.Document, string, error) {
	path := cmd.Args().First()
	if path == "" {
		return nil, "", errors.New("missing file argument")
	}

	opts := &ase.DecodeOptions{
		StrictTagRanges:   cmd.Bool("strict-tags"),
		AllowChunkPadding: cmd.Bool("allow-padding"),
	}
	if cmd.Bool("verbose") {
		opts.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	doc, err := ase.ReadFileWithOptions(path, opts)
	if err != nil {
		return nil, "", err
	}
	for _, d := range doc.Defects {
		slog.Warn("defect", "file", path, "err", d)
	}

	return doc, path, nil
}
