package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MixinNetwork/fraction/common"
	"github.com/MixinNetwork/fraction/config"
	"github.com/MixinNetwork/fraction/logger"
	"github.com/urfave/cli/v2"
)

const customMetadataKey = "config"

func setupCmd(c *cli.Context) error {
	custom := config.Default()
	if file := c.String("config"); file != "" {
		conf, err := config.Initialize(file)
		if err != nil {
			return err
		}
		custom = conf
	}
	if c.IsSet("log") {
		custom.Log.Level = c.Int("log")
	}
	if c.IsSet("filter") {
		custom.Log.Filter = c.String("filter")
	}
	if c.IsSet("format") {
		custom.Output.Format = c.String("format")
	}
	if c.IsSet("decimal") {
		custom.Output.DecimalPlaces = c.Int("decimal")
	}
	if c.IsSet("quiet") {
		custom.Shell.Quiet = c.Bool("quiet")
	}
	err := custom.Validate()
	if err != nil {
		return err
	}

	logger.SetLevel(custom.Log.Level)
	logger.SetLimiter(custom.Log.Limiter)
	err = logger.SetFilter(custom.Log.Filter)
	if err != nil {
		return err
	}
	c.App.Metadata[customMetadataKey] = custom
	return nil
}

func customFromContext(c *cli.Context) *config.Custom {
	custom, ok := c.App.Metadata[customMetadataKey].(*config.Custom)
	if !ok {
		return config.Default()
	}
	return custom
}

func promptCmd(c *cli.Context) error {
	custom := customFromContext(c)
	if !custom.Shell.Quiet {
		for _, l := range config.Banner {
			fmt.Fprintln(c.App.Writer, l)
		}
	}
	if p := custom.Shell.Prompt; p != "" {
		fmt.Fprint(c.App.Writer, p)
	}

	line, err := bufio.NewReader(c.App.Reader).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return evaluate(c.App.Writer, custom, line)
}

func solveCmd(c *cli.Context) error {
	line := strings.Join(c.Args().Slice(), " ")
	return evaluate(c.App.Writer, customFromContext(c), line)
}

func reduceCmd(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("%w: reduce takes one fraction, got %d", common.ErrTooManyOrTooFewArguments, c.NArg())
	}
	input := c.Args().First()
	arg, err := common.ParseArg(input)
	if err != nil {
		return err
	}
	reduced := arg.Reduce()
	logger.Debugf("reduce %s => %s", arg, reduced)
	return render(c.App.Writer, customFromContext(c), input, reduced.ImproperToMixed())
}

func evaluate(w io.Writer, custom *config.Custom, line string) error {
	eq, err := common.ParseEquation(line)
	if err != nil {
		logger.Verbosef("parse %q => %v", strings.TrimSpace(line), err)
		return err
	}
	logger.Verbosef("solve %s", eq)
	logger.Debugf("solve improper %s %s %s", eq.Args[0].MixedToImproper(), eq.Op, eq.Args[1].MixedToImproper())

	out, err := eq.Solve()
	if err != nil {
		logger.Verbosef("solve %s => %v", eq, err)
		return err
	}
	logger.Debugf("solve %s => %s", eq, out)
	return render(w, custom, eq.String(), out)
}

func render(w io.Writer, custom *config.Custom, input string, out common.Arg) error {
	var dec string
	if p := custom.Output.DecimalPlaces; p > 0 {
		d, err := out.Decimal(int32(p))
		if err != nil {
			return err
		}
		dec = d
	}

	if custom.Output.Format == config.OutputFormatJSON {
		data, err := json.Marshal(struct {
			Input   string     `json:"input"`
			Result  common.Arg `json:"result"`
			Decimal string     `json:"decimal,omitempty"`
		}{input, out, dec})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	_, err := fmt.Fprintln(w, out)
	if err != nil || dec == "" {
		return err
	}
	_, err = fmt.Fprintln(w, dec)
	return err
}
