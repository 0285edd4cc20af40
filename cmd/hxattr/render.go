package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/pthm/hxattr"
	"github.com/spf13/cobra"
)

func (a *app) renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <tag> [name=value | name]...",
		Short: "Render an element",
		Long: `Render an element from literal attributes.

name=value sets a text attribute, written verbatim. A bare name sets a
boolean attribute that is on; b!name=false sets one that is off.`,
		Example: `  hxattr render input type=checkbox checked
  hxattr render p class=note --text "Saved."`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.runRender,
	}
	cmd.Flags().String("text", "", "Text content, HTML-escaped")
	cmd.Flags().String("raw", "", "Raw HTML content")
	cmd.Flags().Bool("sorted", true, "Order attributes by name")
	_ = a.v.BindPFlag("sorted", cmd.Flags().Lookup("sorted"))
	return cmd
}

func (a *app) runRender(cmd *cobra.Command, args []string) error {
	attrs := make(hxattr.Attributes, len(args)-1)
	for _, arg := range args[1:] {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			attrs.SetFlag(name, true)
			continue
		}
		attrs.SetText(name, value)
	}

	var content hxattr.Content
	if text, _ := cmd.Flags().GetString("text"); text != "" {
		content = hxattr.Text(text)
	}
	if raw, _ := cmd.Flags().GetString("raw"); raw != "" {
		content = hxattr.Raw(raw)
	}

	el := hxattr.NewElement(args[0], attrs, content)
	if a.v.GetBool("sorted") {
		el.Sorted()
	}
	a.logf(cmd, "rendering <%s> with %d attributes\n", args[0], len(attrs))

	out := cmd.OutOrStdout()
	if err := el.Render(context.Background(), out); err != nil {
		return err
	}
	fmt.Fprintln(out)
	return nil
}
