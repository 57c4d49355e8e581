// Package main provides the CLI entrypoint for overload-resolver.
//
// overload-resolver replays method invocations and conditional expressions
// described in a YAML scenario against a declared class hierarchy:
//   - resolve: prints the selected overload or conditional type per entry
//   - check: same, and exits non-zero on errors or unmet expectations
//   - show: re-renders a report saved with --format msgpack
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:          "overload-resolver",
	Short:        "Method overload resolution and conditional typing engine",
	Long:         `Resolves overloaded invocations and types conditional expressions for declared class hierarchies`,
	SilenceUsage: true,
}

func init() {
	rootCmd.Version = version

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(showCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("config", "", "options file (.yaml|.toml) overriding the scenario config")
	rootCmd.PersistentFlags().String("source", "", "source level overriding the config, e.g. 1.4 or 17")
	rootCmd.PersistentFlags().Int("jobs", 0, "max parallel workers (0=auto)")
	rootCmd.PersistentFlags().String("format", "text", "output format (text|yaml|msgpack)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
