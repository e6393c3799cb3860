// Command ladderc is the compiler's CLI front end: compile a ladder source
// file to framed IR, serve the HTTP API, or watch a source file and
// recompile it on every edit.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ladderc",
		Short: "Compile PLC ladder diagrams to a linear intermediate representation",
	}

	root.AddCommand(newCompileCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newWatchCmd())

	return root
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}
