package main

import (
	"fmt"

	"github.com/pthm/hxattr"
	"github.com/pthm/hxattr/lib/generator"
	"github.com/spf13/cobra"
)

func (a *app) expandCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expand [file]",
		Short: "Generate Go code for an attribute list",
		Long: `Generate the Go code building an element from an attribute list.

Without --func the expression is printed. With --func a file declaring one
function is generated, printed or written to --out.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runExpand,
	}
	cmd.Flags().String("tag", "", "Tag name, or struct type for custom elements")
	cmd.Flags().String("content", "", "Go expression for the element content")
	cmd.Flags().String("func", "", "Generate a function with this name")
	cmd.Flags().String("params", "", "Parameter list of the generated function")
	cmd.Flags().String("package", "main", "Package of the generated file")
	cmd.Flags().StringSlice("import", nil, "Extra imports of the generated file")
	cmd.Flags().StringP("out", "o", "", "Write the generated file to this path")
	cmd.Flags().Bool("dry-run", false, "Generate without writing files")
	_ = cmd.MarkFlagRequired("tag")
	return cmd
}

func (a *app) runExpand(cmd *cobra.Command, args []string) error {
	filename, src, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	custom := a.v.GetBool("custom")
	attrs, err := hxattr.CompileAttributes(filename, src, custom)
	if err != nil {
		return err
	}

	tag, _ := cmd.Flags().GetString("tag")
	content, _ := cmd.Flags().GetString("content")
	name, _ := cmd.Flags().GetString("func")
	params, _ := cmd.Flags().GetString("params")
	pkg, _ := cmd.Flags().GetString("package")
	imports, _ := cmd.Flags().GetStringSlice("import")
	outPath, _ := cmd.Flags().GetString("out")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	el := generator.Element{Tag: tag, Custom: custom, Attrs: attrs, Content: content}
	opts := generator.Options{DryRun: dryRun, Imports: imports}
	if a.v.GetBool("verbose") {
		opts.Log = cmd.ErrOrStderr()
	}
	g := generator.New(opts)
	a.logf(cmd, "%s: expanding %d attributes for %s\n", filename, len(attrs), tag)

	if name == "" {
		code, err := g.Expr(el)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", code)
		return nil
	}

	fn := generator.Func{Name: name, Params: params, Element: el}
	if outPath != "" {
		return g.WriteFile(outPath, pkg, fn)
	}
	code, err := g.File(pkg, fn)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(code)
	return err
}
