package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/plcgo/ladderc/compile"
	"github.com/plcgo/ladderc/internal/httpapi"
	"github.com/plcgo/ladderc/ir"
)

func newCompileCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "compile <source.json>",
		Short: "Compile a ladder source file and write framed IR",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			l, err := httpapi.DecodeLadder(raw)
			if err != nil {
				return err
			}
			out := compile.Compile(l)

			w := cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			return ir.WriteFramed(w, out)
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write framed output here instead of stdout")
	return cmd
}
