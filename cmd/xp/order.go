package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	xpath "github.com/deadtrickster/plexippus-xpath"
	"github.com/deadtrickster/plexippus-xpath/dom"
	"github.com/deadtrickster/plexippus-xpath/seq"
)

type OrderConfig struct {
	*MainConfig
	D bool `cli:"name=d aliases=diff desc='diff the order listings of two documents'"`

	Order *cli.Command
}

func order(cfg *OrderConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Order.Parse(cc, args)
	if err != nil {
		cfg.Order.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.D {
		if len(args) != 2 {
			return fmt.Errorf("%w: -d needs exactly two files", cli.ErrUsage)
		}
		return orderDiff(cfg, cc, args[0], args[1])
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		listing, err := orderListing(cfg, arg, colorize(cfg.MainConfig, cc.Out))
		if err != nil {
			return err
		}
		fmt.Fprint(cc.Out, listing)
	}
	return nil
}

func orderDiff(cfg *OrderConfig, cc *cli.Context, a, b string) error {
	la, err := orderListing(cfg, a, false)
	if err != nil {
		return err
	}
	lb, err := orderListing(cfg, b, false)
	if err != nil {
		return err
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(la, lb, true)
	if colorize(cfg.MainConfig, cc.Out) {
		fmt.Fprint(cc.Out, dmp.DiffPrettyText(diffs))
		return nil
	}
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		}
		for line := range strings.Lines(d.Text) {
			fmt.Fprintf(cc.Out, "%s%s", prefix, line)
		}
	}
	return nil
}

// orderListing parses arg, drops every node into an unordered
// node-set and renders its sorted view, one node per line.
func orderListing(cfg *OrderConfig, arg string, colored bool) (string, error) {
	root, err := parseArg(cfg.MainConfig, arg)
	if err != nil {
		return "", err
	}
	set := xpath.NewNodeSet(allNodes(root), xpath.Unordered)
	nodes, err := set.SortedView()
	if err != nil {
		return "", fmt.Errorf("ordering %s: %w", arg, err)
	}
	var sb strings.Builder
	for _, n := range nodes {
		dn := n.(*dom.Node)
		kind := dn.Kind().String()
		if colored {
			kind = kindColor(dn.Kind())(kind)
		}
		fmt.Fprintf(&sb, "%s\t%s\n", kind, dn.Path())
	}
	return sb.String(), nil
}

func kindColor(k xpath.Kind) func(format string, a ...interface{}) string {
	switch k {
	case xpath.KindElement:
		return color.CyanString
	case xpath.KindAttribute:
		return color.YellowString
	case xpath.KindNamespace:
		return color.MagentaString
	case xpath.KindText:
		return color.GreenString
	default:
		return color.WhiteString
	}
}

func colorize(cfg *MainConfig, w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func parseArg(cfg *MainConfig, arg string) (*dom.Node, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	var opts []dom.ParseOption
	if cfg.Trim {
		opts = append(opts, dom.TrimWhitespace())
	}
	root, err := dom.Parse(r, opts...)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", arg, err)
	}
	return root, nil
}

// allNodes yields every node of the tree, namespace and attribute
// nodes included.
func allNodes(root *dom.Node) *seq.Seq[xpath.Node] {
	var nodes []xpath.Node
	root.Visit(func(n *dom.Node, isPost bool) bool {
		if isPost {
			return false
		}
		nodes = append(nodes, n)
		return true
	})
	return seq.FromSlice(nodes)
}
