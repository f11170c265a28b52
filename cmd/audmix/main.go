// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/ik5/audmix/internal/cli"
	"github.com/ik5/audmix/internal/logging"
	"github.com/sirupsen/logrus"
)

// version is set via ldflags at build time
var version = "dev"

var deviceFactory = newOtoDevice

// Globals are flags shared by every command.
type Globals struct {
	LogLevel  string          `help:"Log level (trace, debug, info, warn, error)." default:"info" enum:"trace,debug,info,warn,error"`
	LogFormat string          `help:"Log format." default:"text" enum:"text,json"`
	Config    kong.ConfigFlag `help:"Load flag defaults from a JSON file." type:"path"`
}

type CLI struct {
	Globals

	Mix     MixCmd     `cmd:"" help:"Mix two audio files."`
	Random  RandomCmd  `cmd:"" help:"Mix random segments of two files picked from a directory."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// App is what every command's Run receives.
type App struct {
	Ctx    context.Context
	Log    logrus.FieldLogger
	Print  *cli.Printer
	Stdout io.Writer
	// NewDevice opens the playback output for --play
	NewDevice func() Device
}

func newParser(c *CLI, stdout, stderr io.Writer, exit func(int)) (*kong.Kong, error) {
	return kong.New(c,
		kong.Name("audmix"),
		kong.Description("Two-track audio mixer: gain, pan, align and overlay."),
		kong.Vars{"version": version},
		kong.UsageOnError(),
		kong.DefaultEnvars("AUDMIX"),
		kong.Configuration(kong.JSON, "~/.config/audmix/config.json"),
		kong.Writers(stdout, stderr),
		kong.Exit(exit),
	)
}

func run(args []string, stdout, stderr io.Writer, exit func(int)) int {
	var c CLI
	printer := cli.NewPrinter(stderr)

	parser, err := newParser(&c, stdout, stderr, exit)
	if err != nil {
		printer.PrintError(err.Error())
		return 1
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		parser.FatalIfErrorf(err)
		return 2
	}

	log, err := logging.Setup(c.LogLevel, c.LogFormat, stderr)
	if err != nil {
		printer.PrintError(err.Error())
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := &App{
		Ctx:       ctx,
		Log:       log,
		Print:     printer,
		Stdout:    stdout,
		NewDevice: deviceFactory,
	}

	if err := kctx.Run(app); err != nil {
		printer.PrintError(err.Error())
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.Exit))
}
