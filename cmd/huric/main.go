package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/huric/file"
	"github.com/revelaction/huric/render"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

// Options are the global flags, shared by all commands
type Options struct {
	DataDir string
	OutDir  string
	Quiet   bool
}

// dataset and mode converted when no command is given
var defaultRuns = []struct {
	Dataset string
	Mode    string
}{
	{"framenet_subset", "dev"},
	{"huric_modern", "test"},
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	if err := newApp(ui).Run(os.Args); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "huric: %v\n", err)
}

func globalOptions(cCtx *cli.Context) Options {
	return Options{
		DataDir: cCtx.String("data"),
		OutDir:  cCtx.String("out"),
		Quiet:   cCtx.Bool("quiet"),
	}
}

func newApp(ui UI) *cli.App {
	return &cli.App{
		Name:                 "huric",
		Usage:                "convert HuRIC xml annotations to CoNLL 2009",
		Description:          "Without command, converts the framenet_subset (dev) and huric_modern (test) datasets.",
		HideVersion:          true,
		EnableBashCompletion: true,
		Writer:               ui.Out,
		ErrWriter:            ui.Err,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Value:   file.DataDir,
				EnvVars: []string{"HURIC_DATA_PATH"},
				Usage:   "Directory containing the datasets (a directory of xml files or a .db SQLite file each)",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Value:   file.ConllDir,
				EnvVars: []string{"HURIC_CONLL_PATH"},
				Usage:   "Directory where the CoNLL files are written",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Do not show progress bars",
			},
		},
		Action: func(cCtx *cli.Context) error {
			if cCtx.NArg() > 0 {
				return fmt.Errorf("unknown command: %s", cCtx.Args().First())
			}

			return defaultCommand(globalOptions(cCtx), ui)
		},
		Commands: []*cli.Command{
			{
				Name:      "convert",
				Usage:     "Convert a dataset and write the CoNLL files",
				ArgsUsage: "<dataset> <mode>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "allow-root",
						Usage: "Use HEAD 0 and DEPREL ROOT for tokens without dependency instead of failing",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Print the converted sentences as JSON instead of writing the files",
					},
				},
				Action: func(cCtx *cli.Context) error {
					if cCtx.NArg() != 2 {
						return fmt.Errorf("convert command needs exactly two arguments: <dataset> <mode>")
					}

					opts := ConvertOptions{
						Options:   globalOptions(cCtx),
						AllowRoot: cCtx.Bool("allow-root"),
						JSON:      cCtx.Bool("json"),
					}
					return convertCommand(opts, cCtx.Args().Get(0), cCtx.Args().Get(1), ui)
				},
			},
			{
				Name:      "import",
				Usage:     "Import a directory of HuRIC xml files into a SQLite file",
				ArgsUsage: "<dir> <db>",
				Action: func(cCtx *cli.Context) error {
					if cCtx.NArg() != 2 {
						return fmt.Errorf("import command needs exactly two arguments: <dir> <db>")
					}

					return importCommand(globalOptions(cCtx), cCtx.Args().Get(0), cCtx.Args().Get(1), ui)
				},
			},
			{
				Name:      "stat",
				Usage:     "Show statistics of the converted dataset",
				ArgsUsage: "<dataset>",
				Action: func(cCtx *cli.Context) error {
					if cCtx.NArg() != 1 {
						return fmt.Errorf("stat command needs exactly one argument: <dataset>")
					}

					return statCommand(globalOptions(cCtx), cCtx.Args().First(), ui)
				},
			},
			{
				Name:      "doc",
				Usage:     "List the docs of a dataset, or show the converted sentences of a doc",
				ArgsUsage: "<dataset> [title]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "no-color",
						Aliases: []string{"c"},
						Usage:   "Show sentences without formatting (color)",
					},
				},
				Action: func(cCtx *cli.Context) error {
					if cCtx.NArg() < 1 || cCtx.NArg() > 2 {
						return fmt.Errorf("doc command needs one or two arguments: <dataset> [title]")
					}

					return docCommand(globalOptions(cCtx), cCtx.Args().Get(0), cCtx.Args().Get(1), !cCtx.Bool("no-color"), ui)
				},
			},
			{
				Name:      "query",
				Usage:     "Browse the converted sentences of a dataset by frame",
				ArgsUsage: "<dataset>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "no-color",
						Aliases: []string{"c"},
						Usage:   "Show sentences without formatting (color)",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   render.Defaultformat,
						Usage:   "Show the sentence in one line (sentence) or a line per token (table)",
					},
				},
				Action: func(cCtx *cli.Context) error {
					if cCtx.NArg() != 1 {
						return fmt.Errorf("query command needs exactly one argument: <dataset>")
					}

					if !slices.Contains(render.SupportedFormats(), cCtx.String("format")) {
						return fmt.Errorf("allowed formats are %s", strings.Join(render.SupportedFormats(), ", "))
					}

					opts := QueryOptions{
						Options: globalOptions(cCtx),
						NoColor: cCtx.Bool("no-color"),
						Format:  cCtx.String("format"),
					}
					return queryCommand(opts, cCtx.Args().First(), ui)
				},
			},
			{
				Name:  "bash",
				Usage: "Print the bash completion script",
				Action: func(cCtx *cli.Context) error {
					return bashCommand(ui)
				},
			},
			{
				Name:  "version",
				Usage: "Print the version",
				Action: func(cCtx *cli.Context) error {
					return versionCommand(ui)
				},
			},
		},
	}
}
