package main

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"

	xpath "github.com/deadtrickster/plexippus-xpath"
	"github.com/deadtrickster/plexippus-xpath/debug"
	"github.com/deadtrickster/plexippus-xpath/dom"
)

type SelectConfig struct {
	*MainConfig
	Where string `cli:"name=where desc='expr predicate over kind, name, text, path, position and size'"`

	Select *cli.Command
}

func sel(cfg *SelectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Select.Parse(cc, args)
	if err != nil {
		cfg.Select.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Where == "" {
		return fmt.Errorf("%w: select requires -where", cli.ErrUsage)
	}
	prg, err := expr.Compile(cfg.Where, expr.Env(nodeEnv(nil, nil)), expr.AsBool())
	if err != nil {
		return fmt.Errorf("compiling -where: %w", err)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		root, err := parseArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		set := xpath.NewNodeSet(allNodes(root), xpath.DocumentOrder)
		candidates := set.Seq().Force()
		ctx := xpath.NewLazySizeContext(nil, root, 0, func() int {
			return len(candidates)
		})
		for i, n := range candidates {
			ctx.Node = n
			ctx.Position = i + 1
			res, err := expr.Run(prg, nodeEnv(n.(*dom.Node), ctx))
			if err != nil {
				return fmt.Errorf("running -where on %s: %w", n.(*dom.Node).Path(), err)
			}
			if debug.Select() {
				debug.Logf("select: %s -> %v\n", n.(*dom.Node).Path(), res)
			}
			if res.(bool) {
				fmt.Fprintf(cc.Out, "%s\n", n.(*dom.Node).Path())
			}
		}
	}
	return nil
}

// nodeEnv is the expr environment for one candidate node. A nil node
// yields the typed template used at compile time.
func nodeEnv(n *dom.Node, ctx *xpath.Context) map[string]any {
	if n == nil {
		return map[string]any{
			"kind":     "",
			"name":     "",
			"text":     "",
			"path":     "",
			"position": 0,
			"size":     0,
		}
	}
	return map[string]any{
		"kind":     n.Kind().String(),
		"name":     n.Name(),
		"text":     n.Text(),
		"path":     n.Path(),
		"position": ctx.Position,
		"size":     ctx.Size(),
	}
}
