package main

import (
	"fmt"

	"github.com/pthm/hxattr"
	"github.com/spf13/cobra"
)

func (a *app) checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Parse and validate an attribute list",
		Long: `Parse and validate an attribute list read from file or stdin, printing
each attribute back in canonical form.

With --emit the list is compiled into a signed manifest for the given tag.
With --manifest the input is such a manifest, which is verified and checked.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runCheck,
	}
	cmd.Flags().String("emit", "", "Print a signed manifest for this tag")
	cmd.Flags().Bool("manifest", false, "Input is a signed manifest")
	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, args []string) error {
	filename, src, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if isManifest, _ := cmd.Flags().GetBool("manifest"); isManifest {
		return a.checkManifest(cmd, src)
	}

	custom := a.v.GetBool("custom")
	tag, _ := cmd.Flags().GetString("emit")
	if tag == "" {
		attrs, err := hxattr.CompileAttributes(filename, src, custom)
		if err != nil {
			return err
		}
		a.logf(cmd, "%s: %d attributes ok\n", filename, len(attrs))
		for _, attr := range attrs {
			fmt.Fprintln(out, attr)
		}
		return nil
	}

	enc, err := a.encoder()
	if err != nil {
		return err
	}
	m, err := hxattr.CompileManifest(tag, filename, src, custom)
	if err != nil {
		return err
	}
	encoded, err := enc.Encode(m)
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	a.logf(cmd, "%s: manifest for <%s> with %d attributes\n", filename, tag, len(m.Attrs))
	fmt.Fprintln(out, encoded)
	return nil
}

func (a *app) checkManifest(cmd *cobra.Command, src []byte) error {
	enc, err := a.encoder()
	if err != nil {
		return err
	}
	m, attrs, err := hxattr.LoadManifest(enc, string(src))
	if err != nil {
		return err
	}

	kind := "simple"
	if m.Custom {
		kind = "custom"
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n", m.Tag, kind)
	for _, attr := range attrs {
		fmt.Fprintf(out, "  %s\n", attr)
	}
	return nil
}
