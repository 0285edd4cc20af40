package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pthm/hxattr"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.1.0"

// app carries the configuration shared by all commands.
type app struct {
	v *viper.Viper
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	root := &cobra.Command{
		Use:   "hxattr",
		Short: "Attribute declarations for compile-time HTML elements",
		Long: `hxattr parses and validates element attribute declarations such as

  type={"checkbox"} data-id={ strconv.Itoa(id) } checked

expands them into Go code and renders elements.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().Bool("custom", false, "Apply custom element rules (no dash-delimited names)")
	root.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	root.PersistentFlags().String("manifest-key", "", "Key used to sign and verify manifests")

	_ = v.BindPFlag("custom", root.PersistentFlags().Lookup("custom"))
	_ = v.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))
	_ = v.BindPFlag("manifest_key", root.PersistentFlags().Lookup("manifest-key"))

	v.SetEnvPrefix("HXATTR")
	v.AutomaticEnv()

	a := &app{v: v}
	root.AddCommand(a.checkCmd(), a.expandCmd(), a.renderCmd(), versionCmd())
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hxattr version %s\n", version)
		},
	}
}

// logf prints progress to stderr when verbose is set.
func (a *app) logf(cmd *cobra.Command, format string, args ...any) {
	if a.v.GetBool("verbose") {
		fmt.Fprintf(cmd.ErrOrStderr(), format, args...)
	}
}

func (a *app) encoder() (*hxattr.Encoder, error) {
	key := a.v.GetString("manifest_key")
	if key == "" {
		return nil, errors.New("manifest key required (--manifest-key or HXATTR_MANIFEST_KEY)")
	}
	return hxattr.NewEncoder([]byte(key))
}

// readInput reads the file named by the first argument, or stdin when there
// is none or it is "-".
func readInput(cmd *cobra.Command, args []string) (string, []byte, error) {
	if len(args) == 0 || args[0] == "-" {
		src, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", nil, fmt.Errorf("reading stdin: %w", err)
		}
		return "<stdin>", src, nil
	}
	src, err := os.ReadFile(args[0])
	if err != nil {
		return "", nil, fmt.Errorf("reading %s: %w", args[0], err)
	}
	return args[0], src, nil
}
