package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='colorize listings'"`
	Trim  bool `cli:"name=w aliases=trim desc='drop whitespace-only text nodes while parsing'"`

	Main *cli.Command
}

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "xp").
		WithSynopsis("xp [opts] command [opts]").
		WithDescription("xp is a tool for inspecting XML documents with XPath node semantics.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return xpMain(cfg, cc, args)
		}).
		WithSubs(
			OrderCommand(cfg),
			SelectCommand(cfg),
			ValueCommand(cfg))
}

func xpMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func OrderCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &OrderConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Order, "order").
		WithAliases("o", "or").
		WithSynopsis("order [files] | order -d a.xml b.xml").
		WithDescription("list a document's nodes in document order, or diff two listings").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return order(cfg, cc, args)
		})
}

func SelectCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SelectConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Select, "select").
		WithAliases("s", "sel").
		WithSynopsis("select -where <expr> [files]").
		WithDescription("list the nodes for which an expr predicate over (kind, name, text, path, position, size) holds").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sel(cfg, cc, args)
		})
}

func ValueCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ValueConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Value, "value").
		WithAliases("v").
		WithSynopsis("value [-n] (bool|num|str) <literal>").
		WithDescription("run the XPath value-model coercions on a literal").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return value(cfg, cc, args)
		})
}
