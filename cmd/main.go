package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"burnwatch/internal/cli"
	"burnwatch/internal/logger"
	"burnwatch/internal/platform"
)

var CLI struct {
	Version   kong.VersionFlag
	Debug     bool   `help:"Log at debug level and mirror logs to stderr."`
	ConfigDir string `help:"Directory holding settings.yaml and logs." type:"path"`

	Run    cli.RunCmd `cmd:"" help:"Run the energy monitor." default:"1"`
	Config struct {
		Init cli.ConfigInitCmd `cmd:"" help:"Write default settings."`
		Show cli.ConfigShowCmd `cmd:"" help:"Print the effective settings." default:"1"`
		Set  cli.ConfigSetCmd  `cmd:"" help:"Update the wearer profile or budget."`
	} `cmd:"" help:"Manage settings."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("burnwatch"),
		kong.Description("Heart-rate driven energy budget monitor"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{"version": "v0.1.0"},
	)

	configDir := CLI.ConfigDir
	if configDir == "" {
		dir, err := platform.ConfigDir(cli.AppName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		configDir = dir
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	appCtx := &cli.Context{
		ConfigDir: configDir,
		Debug:     CLI.Debug,
		Out:       os.Stdout,
		In:        os.Stdin,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		logger.Error("Command failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
