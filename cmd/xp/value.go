package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	xpath "github.com/deadtrickster/plexippus-xpath"
)

type ValueConfig struct {
	*MainConfig
	N bool `cli:"name=n aliases=num desc='parse the literal as a number first'"`

	Value *cli.Command
}

func value(cfg *ValueConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Value.Parse(cc, args)
	if err != nil {
		cfg.Value.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: value needs a coercion and a literal", cli.ErrUsage)
	}
	var v any = args[1]
	if cfg.N {
		v = xpath.ParseNumber(args[1])
	}
	switch args[0] {
	case "bool":
		fmt.Fprintf(cc.Out, "%v\n", xpath.BooleanValue(v))
	case "num":
		n, err := xpath.NumberValue(v)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%s\n", xpath.FormatNumber(n))
	case "str":
		s, err := xpath.StringValue(v)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%s\n", s)
	default:
		return fmt.Errorf("%w: unknown coercion %q", cli.ErrUsage, args[0])
	}
	return nil
}
