package main

import (
	"fmt"
	"os"

	"github.com/MixinNetwork/fraction/config"
	"github.com/MixinNetwork/fraction/logger"
	"github.com/urfave/cli/v2"
)

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "fraction"
	app.Usage = "Evaluate one equation over proper, improper and mixed fractions."
	app.Version = config.BuildVersion
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "the TOML configuration `FILE`",
		},
		&cli.IntFlag{
			Name:    "log",
			Aliases: []string{"l"},
			Value:   logger.ERROR,
			Usage:   "the log level",
		},
		&cli.StringFlag{
			Name:  "filter",
			Usage: "the RE2 regex pattern to filter log",
		},
		&cli.StringFlag{
			Name:  "format",
			Value: config.OutputFormatText,
			Usage: "the output format, text or json",
		},
		&cli.IntFlag{
			Name:  "decimal",
			Usage: "also print the result rounded to `N` decimal places",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "do not print the usage banner",
		},
	}
	app.EnableBashCompletion = true
	app.Metadata = make(map[string]interface{})
	app.Before = setupCmd
	app.Action = promptCmd
	app.Commands = []*cli.Command{
		{
			Name:            "solve",
			Aliases:         []string{"s"},
			Usage:           "Evaluate the equation given as arguments",
			ArgsUsage:       "<fraction> <operator> <fraction>",
			SkipFlagParsing: true,
			Action:          solveCmd,
		},
		{
			Name:            "reduce",
			Aliases:         []string{"r"},
			Usage:           "Reduce one fraction and print it in mixed form",
			ArgsUsage:       "<fraction>",
			SkipFlagParsing: true,
			Action:          reduceCmd,
		},
	}
	return app
}
