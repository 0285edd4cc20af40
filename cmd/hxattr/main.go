package main

import (
	"fmt"
	"os"

	"github.com/pthm/hxattr"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if s, ok := hxattr.Suggestion(err); ok {
			fmt.Fprintf(os.Stderr, "  try: %s\n", s)
		}
		os.Exit(1)
	}
}
