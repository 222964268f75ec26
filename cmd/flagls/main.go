// flagls builds packed flag lists from 0/1 strings, applies the set algebra
// to them and prints the result.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var log = logrus.WithField("prefix", "flagls")

var (
	widthFlag = &cli.StringFlag{
		Name:  "width",
		Usage: "list type: 32, 64, 128, size, 256 or long",
		Value: "long",
	}
	formatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: "radix for the raw storage: bin, oct, hex or HEX",
		Value: "bin",
	}
	verbosityFlag = &cli.StringFlag{
		Name:  "verbosity",
		Usage: "logging verbosity (trace, debug, info, warn, error)",
		Value: "info",
	}
	byFlag = &cli.UintFlag{
		Name:  "by",
		Usage: "number of places to shift",
		Value: 1,
	}
	fromFlag = &cli.StringFlag{
		Name:  "from",
		Usage: "source list type",
		Value: "long",
	}
	toFlag = &cli.StringFlag{
		Name:     "to",
		Usage:    "target list type",
		Required: true,
	}
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		log.WithError(err).Fatal("flagls failed")
	}
}

func newApp(out io.Writer) *cli.App {
	binary := func(name, usage string) *cli.Command {
		return &cli.Command{
			Name:      name,
			Usage:     usage,
			ArgsUsage: "A B",
			Flags:     []cli.Flag{widthFlag},
			Action: func(ctx *cli.Context) error {
				return runBinary(ctx, out, name)
			},
		}
	}
	unary := func(name, usage string, extra ...cli.Flag) *cli.Command {
		return &cli.Command{
			Name:      name,
			Usage:     usage,
			ArgsUsage: "A",
			Flags:     append([]cli.Flag{widthFlag}, extra...),
			Action: func(ctx *cli.Context) error {
				return runUnary(ctx, out, name)
			},
		}
	}
	return &cli.App{
		Name:   "flagls",
		Usage:  "packed flag list calculator",
		Flags:  []cli.Flag{formatFlag, verbosityFlag},
		Before: configureLogging,
		Writer: out,
		Commands: []*cli.Command{
			unary("show", "print a flag list and its raw storage"),
			unary("not", "flip every flag"),
			unary("shl", "shift flags up, growing the list", byFlag),
			unary("shr", "shift flags down, dropping the lowest", byFlag),
			binary("and", "intersection"),
			binary("or", "union"),
			binary("xor", "symmetric difference"),
			binary("sub", "set difference A - B"),
			{
				Name:      "convert",
				Usage:     "convert a flag list between types",
				ArgsUsage: "A",
				Flags:     []cli.Flag{fromFlag, toFlag},
				Action: func(ctx *cli.Context) error {
					return runConvert(ctx, out)
				},
			},
		},
	}
}

func configureLogging(ctx *cli.Context) error {
	level, err := logrus.ParseLevel(ctx.String(verbosityFlag.Name))
	if err != nil {
		return errors.Wrap(err, "could not parse verbosity")
	}
	logrus.SetLevel(level)
	return nil
}

func argFlags(ctx *cli.Context, n int) ([][]bool, error) {
	if ctx.NArg() != n {
		return nil, errors.Errorf("expected %d flag list argument(s), got %d", n, ctx.NArg())
	}
	out := make([][]bool, n)
	for i := range out {
		fs, err := parseFlags(ctx.Args().Get(i))
		if err != nil {
			return nil, err
		}
		out[i] = fs
	}
	log.WithField("args", ctx.Args().Slice()).Debug("parsed flag lists")
	return out, nil
}

func runUnary(ctx *cli.Context, out io.Writer, op string) error {
	args, err := argFlags(ctx, 1)
	if err != nil {
		return err
	}
	c, err := calcFor(ctx.String(widthFlag.Name))
	if err != nil {
		return err
	}
	r, err := c.unary(op, args[0], ctx.Uint(byFlag.Name))
	if err != nil {
		return err
	}
	return printResult(ctx, out, r)
}

func runBinary(ctx *cli.Context, out io.Writer, op string) error {
	args, err := argFlags(ctx, 2)
	if err != nil {
		return err
	}
	c, err := calcFor(ctx.String(widthFlag.Name))
	if err != nil {
		return err
	}
	r, err := c.binary(op, args[0], args[1])
	if err != nil {
		return err
	}
	return printResult(ctx, out, r)
}

func runConvert(ctx *cli.Context, out io.Writer) error {
	args, err := argFlags(ctx, 1)
	if err != nil {
		return err
	}
	from, err := calcFor(ctx.String(fromFlag.Name))
	if err != nil {
		return err
	}
	to, err := calcFor(ctx.String(toFlag.Name))
	if err != nil {
		return err
	}
	l, err := from.toLong(args[0])
	if err != nil {
		return err
	}
	r, err := to.fromLong(l)
	if err != nil {
		return err
	}
	return printResult(ctx, out, r)
}

func printResult(ctx *cli.Context, out io.Writer, r result) error {
	verb, err := radixVerb(ctx.String(formatFlag.Name))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "len=%d max=%d flags=%s raw=%"+verb+"\n", r.Len(), r.MaxLen(), formatFlags(r), r)
	return err
}

func radixVerb(format string) (string, error) {
	switch format {
	case "bin":
		return "#b", nil
	case "oct":
		return "#o", nil
	case "hex":
		return "#x", nil
	case "HEX":
		return "#X", nil
	}
	return "", errors.Errorf("unknown format %q", format)
}
