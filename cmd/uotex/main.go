package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bodgit/uotex"
	"github.com/bodgit/uotex/bitmap"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func inspect(w io.Writer, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	fh, ih, err := bitmap.ReadHeaders(f)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	fmt.Fprintf(w, "%s:\n", file)
	fmt.Fprintf(w, "  file size:    %d\n", fh.Size)
	fmt.Fprintf(w, "  data offset:  %d\n", fh.OffBits)
	fmt.Fprintf(w, "  dimensions:   %dx%d\n", ih.Width, ih.Height)
	fmt.Fprintf(w, "  bit count:    %d\n", ih.BitCount)
	fmt.Fprintf(w, "  compression:  %d\n", ih.Compression)
	fmt.Fprintf(w, "  image size:   %d\n", ih.SizeImage)
	fmt.Fprintf(w, "  resolution:   %dx%d\n", ih.XPelsPerMeter, ih.YPelsPerMeter)
	fmt.Fprintf(w, "  row padding:  %d\n", ih.PadBytes())

	return nil
}

func main() {
	app := cli.NewApp()

	app.Name = "uotex"
	app.Usage = "Ultima Online texture extraction utility"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "root",
			EnvVars: []string{"UOTEX_ROOT"},
			Value:   uotex.DefaultRoot(),
			Usage:   "directory containing the archive files",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "extract",
			Usage:       "Extract every texture as an image",
			Description: "",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "index",
					Value: uotex.DefaultIndex,
					Usage: "index file name, relative to the root",
				},
				&cli.StringFlag{
					Name:  "data",
					Value: uotex.DefaultData,
					Usage: "data file name, relative to the root",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Value:   ".",
					Usage:   "output directory",
				},
				&cli.StringFlag{
					Name:  "format",
					Value: uotex.FormatBMP.String(),
					Usage: "output format, one of bmp, png or gif",
				},
				&cli.BoolFlag{
					Name:  "skip-corrupt",
					Usage: "skip truncated entries rather than stopping",
				},
				&cli.StringFlag{
					Name:    "catalog",
					EnvVars: []string{"UOTEX_CATALOG"},
					Usage:   "record each image in this database",
				},
			},
			Action: func(c *cli.Context) error {
				format, err := uotex.ParseFormat(c.String("format"))
				if err != nil {
					return cli.NewExitError(fmt.Errorf("%s: %w", c.String("format"), err), 1)
				}

				cfg := uotex.DefaultConfig()
				cfg.Root = c.String("root")
				cfg.Index = c.String("index")
				cfg.Data = c.String("data")
				cfg.Output = c.String("output")
				cfg.Format = format
				cfg.SkipShortReads = c.Bool("skip-corrupt")
				cfg.Catalog = c.String("catalog")

				x, err := uotex.New(cfg, newLogger(c))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer x.Close()

				n, err := x.Extract()
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				fmt.Fprintf(c.App.Writer, "Processed %d entries\n", n)

				return nil
			},
		},
		{
			Name:        "list",
			Usage:       "List the images recorded in a catalog",
			Description: "",
			ArgsUsage:   "CATALOG",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "duplicates",
					Usage: "only list entries with identical images",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				catalog, err := uotex.NewCatalog(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer catalog.Close()

				if c.Bool("duplicates") {
					groups, err := catalog.Duplicates()
					if err != nil {
						return cli.NewExitError(err, 1)
					}
					for _, group := range groups {
						for i, entry := range group {
							if i > 0 {
								fmt.Fprint(c.App.Writer, " ")
							}
							fmt.Fprintf(c.App.Writer, "0x%04X", entry)
						}
						fmt.Fprintln(c.App.Writer)
					}
					return nil
				}

				entries, err := catalog.List()
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				for _, e := range entries {
					fmt.Fprintf(c.App.Writer, "0x%04X\t%s\t%d\t%s\n", e.Entry, e.File, e.Size, e.SHA1)
				}

				return nil
			},
		},
		{
			Name:        "inspect",
			Usage:       "Print the headers of bitmap files",
			Description: "",
			ArgsUsage:   "FILE...",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				for _, file := range c.Args().Slice() {
					if err := inspect(c.App.Writer, file); err != nil {
						return cli.NewExitError(err, 1)
					}
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
