package main

import (
	"context"
	"fmt"
	"io"
	"os"

	cli "github.com/jawher/mow.cli"

	"github.com/boynton/step"
	"github.com/boynton/step/internal/ctxlog"
	_ "github.com/boynton/step/items"
	"github.com/boynton/step/source"
)

const version = "0.1.0"

// exit is replaced in tests.
var exit = cli.Exit

// env is the state shared by every command once the global options have been
// processed.
type env struct {
	ctx    context.Context
	config *step.Config
	stdout io.Writer
	stderr io.Writer
}

func newApp(e *env) *cli.Cli {
	app := cli.App("stepfile", "Read, check and rewrite ISO-10303-21 (STEP) files")
	app.Version("v version", "stepfile "+version)

	configPath := app.String(cli.StringOpt{
		Name:   "config",
		Desc:   "JSON or YAML configuration file",
		EnvVar: "STEPFILE_CONFIG",
	})
	logLevel := app.String(cli.StringOpt{
		Name:   "log-level",
		Desc:   "debug, info, warn or error",
		EnvVar: "STEPFILE_LOG_LEVEL",
	})
	logFormat := app.String(cli.StringOpt{
		Name:  "log-format",
		Value: "text",
		Desc:  "text or json",
	})

	app.Before = func() {
		if err := e.setup(*configPath, *logLevel, *logFormat); err != nil {
			fmt.Fprintf(e.stderr, "stepfile: %v\n", err)
			exit(2)
		}
	}

	app.Command("check", "Load files and report what they contain", func(cmd *cli.Cmd) {
		files := cmd.StringsArg("FILE", nil, "files to check; - reads standard input")
		cmd.Action = func() { e.run(e.check(*files)) }
	})
	app.Command("fmt", "Rewrite a file in canonical form", func(cmd *cli.Cmd) {
		inline := cmd.BoolOpt("inline", false, "nest referenced items instead of writing them by reference")
		output := cmd.StringOpt("o output", source.Stdio, "output location")
		file := cmd.StringArg("FILE", "", "input location")
		cmd.Action = func() { e.run(e.format(*file, *output, *inline)) }
	})
	app.Command("top", "List the top-level items of a file", func(cmd *cli.Cmd) {
		file := cmd.StringArg("FILE", "", "input location")
		cmd.Action = func() { e.run(e.top(*file)) }
	})
	app.Command("dump", "Export the item graph", func(cmd *cli.Cmd) {
		format := cmd.StringOpt("f format", "json", "json or yaml")
		file := cmd.StringArg("FILE", "", "input location")
		cmd.Action = func() { e.run(e.dump(*file, *format)) }
	})
	app.Command("query", "Run a GraphQL query against a file", func(cmd *cli.Cmd) {
		file := cmd.StringArg("FILE", "", "input location")
		query := cmd.StringArg("QUERY", "", "GraphQL query")
		cmd.Action = func() { e.run(e.query(*file, *query)) }
	})
	app.Command("serve", "Serve GraphQL queries against a file over HTTP", func(cmd *cli.Cmd) {
		addr := cmd.StringOpt("addr", ":8080", "listen address")
		file := cmd.StringArg("FILE", "", "input location")
		cmd.Action = func() { e.run(e.serve(*file, *addr)) }
	})
	return app
}

func (e *env) setup(configPath, logLevel, logFormat string) error {
	data := step.NewData()
	if configPath != "" {
		var err error
		if data, err = step.DataFromFile(configPath); err != nil {
			return fmt.Errorf("cannot load config: %w", err)
		}
	}
	e.config = step.ConfigFromData(data)
	if logLevel == "" {
		logLevel = e.config.LogLevel
	}
	logger, err := ctxlog.New(e.stderr, logLevel, logFormat)
	if err != nil {
		return err
	}
	e.ctx = ctxlog.WithLogger(e.ctx, logger)
	return nil
}

// run reports a command failure and exits non-zero.
func (e *env) run(err error) {
	if err != nil {
		fmt.Fprintln(e.stderr, err)
		exit(1)
	}
}

func main() {
	e := &env{ctx: context.Background(), config: &step.Config{}, stdout: os.Stdout, stderr: os.Stderr}
	if err := newApp(e).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
