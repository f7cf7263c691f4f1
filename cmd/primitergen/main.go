// Command primitergen renders the per-type family files of the primiter package.
//
//	primitergen [-out DIR] [-package NAME] [-verbose]
//
// The output directory and package name can also be set with
// PRIMITERGEN_OUT and PRIMITERGEN_PACKAGE.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/urfave/cli"

	"go.llib.dev/primiter/internal/gen"
	"go.llib.dev/primiter/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := NewApp(ctx).Run(os.Args); err != nil {
		stop()
		os.Exit(1)
	}
}

// NewApp builds the command line application.
// Its logs and errors go to the App's ErrWriter, or to stderr when that is unset.
func NewApp(ctx context.Context) *cli.App {
	app := cli.NewApp()
	app.Name = "primitergen"
	app.Usage = "generate the primitive iterator family files"
	app.HideVersion = true
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "out, o",
			Value:  ".",
			Usage:  "output directory",
			EnvVar: "PRIMITERGEN_OUT",
		},
		cli.StringFlag{
			Name:   "package, p",
			Value:  "primiter",
			Usage:  "package name of the generated files",
			EnvVar: "PRIMITERGEN_PACKAGE",
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "log every written file",
		},
	}
	app.Action = func(c *cli.Context) error {
		logger := &logging.Logger{Out: errWriter(c.App)}
		if c.Bool("verbose") {
			logger.Level = logging.LevelDebug
		}
		opts := gen.Options{
			Dir:     c.String("out"),
			Package: c.String("package"),
		}
		if err := gen.Generate(ctx, opts, logger); err != nil {
			logger.Error(ctx, "generation failed", logging.ErrField(err))
			return err
		}
		return nil
	}
	return app
}

func errWriter(app *cli.App) io.Writer {
	if app != nil && app.ErrWriter != nil {
		return app.ErrWriter
	}
	return os.Stderr
}
