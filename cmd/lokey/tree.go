package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"lokey/internal/catalog"
)

var (
	treeLocale string
	treeFormat string
)

var treeCmd = &cobra.Command{
	Use:   "tree [prefix]",
	Short: "Show the key tree",
	Long: `Render the aggregated key tree across locales, optionally restricted to a
keypath prefix. Values shown come from the selected locale; translations
inherited from the default locale are marked as shadows.

Examples:
  lokey tree
  lokey tree nav.menu
  lokey tree --locale=de
  lokey tree --format=json`,
	Args: cobra.MaximumNArgs(1),
	Run:  runTree,
}

func init() {
	treeCmd.Flags().StringVar(&treeLocale, "locale", "", "Locale to show values for (default: default locale)")
	treeCmd.Flags().StringVar(&treeFormat, "format", "human", "Output format (json, human)")
	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) {
	logger := newLogger(treeFormat)
	root := mustGetWorkspaceRoot()
	engine := mustGetEngine(root, logger)

	c, err := engine.Catalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building catalog: %v\n", err)
		os.Exit(1)
	}

	prefix := ""
	if len(args) > 0 {
		prefix = args[0]
	}

	start := c.Root
	if prefix != "" {
		start = c.Node(prefix)
		if start == nil {
			fmt.Fprintf(os.Stderr, "Unknown keypath prefix: %s\n", prefix)
			os.Exit(1)
		}
	}

	if OutputFormat(treeFormat) == FormatJSON {
		resp := &TreeResponse{
			Prefix:  prefix,
			Locales: c.Locales,
			Entries: treeEntries(c, start),
		}
		output, err := FormatResponse(resp, FormatJSON)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(output)
		return
	}

	locale := treeLocale
	if locale == "" {
		locale = c.DefaultLocale
	}
	var b strings.Builder
	if prefix != "" {
		b.WriteString(color.New(color.FgCyan, color.Bold).Sprint(prefix) + "\n")
	}
	renderTree(&b, c, start, locale, 0)
	fmt.Print(b.String())
}

// treeEntries converts a subtree to its JSON shape, children sorted by segment.
func treeEntries(c *catalog.Catalog, n *catalog.Node) []*TreeEntry {
	segs := make([]string, 0, len(n.Children))
	for seg := range n.Children {
		segs = append(segs, seg)
	}
	sort.Strings(segs)

	entries := make([]*TreeEntry, 0, len(segs))
	for _, seg := range segs {
		child := n.Children[seg]
		entry := &TreeEntry{
			KeyPath: child.KeyPath,
			Kind:    child.Kind.String(),
		}
		if child.Kind == catalog.KindNode {
			entry.Values = map[string]string{}
			for locale, rec := range child.Locales {
				if rec.Shadow {
					entry.Shadows = append(entry.Shadows, locale)
					continue
				}
				entry.Values[locale] = rec.Value
			}
			sort.Strings(entry.Shadows)
		}
		entry.Children = treeEntries(c, child)
		entries = append(entries, entry)
	}
	return entries
}

func renderTree(b *strings.Builder, c *catalog.Catalog, n *catalog.Node, locale string, depth int) {
	segs := make([]string, 0, len(n.Children))
	for seg := range n.Children {
		segs = append(segs, seg)
	}
	sort.Strings(segs)

	indent := strings.Repeat("  ", depth)
	for _, seg := range segs {
		child := n.Children[seg]
		switch child.Kind {
		case catalog.KindTree:
			b.WriteString(indent + color.New(color.FgCyan, color.Bold).Sprint(seg) + "\n")
		default:
			rec := c.Resolve(child, locale)
			switch {
			case rec == nil:
				b.WriteString(fmt.Sprintf("%s%s %s\n",
					indent, color.GreenString(seg), color.RedString("(missing)")))
			case rec.Shadow:
				b.WriteString(fmt.Sprintf("%s%s = %q %s\n",
					indent, color.GreenString(seg), rec.Value, color.YellowString("(shadow)")))
			default:
				b.WriteString(fmt.Sprintf("%s%s = %q\n", indent, color.GreenString(seg), rec.Value))
			}
		}
		renderTree(b, c, child, locale, depth+1)
	}
}
