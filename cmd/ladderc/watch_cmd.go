package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/plcgo/ladderc/compile"
	"github.com/plcgo/ladderc/internal/httpapi"
	"github.com/plcgo/ladderc/internal/watch"
	"github.com/plcgo/ladderc/ir"
)

func newWatchCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "watch <source.json>",
		Short: "Recompile a ladder source file on every edit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			decode := func(raw []byte) (*ir.Output, error) {
				l, err := httpapi.DecodeLadder(raw)
				if err != nil {
					return nil, err
				}
				return compile.Compile(l), nil
			}

			w := watch.New(args[0], outPath, decode, newLogger())
			if err := w.Run(ctx); err != nil && err != context.Canceled {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "ladder.ir", "path to write recompiled framed output")
	return cmd
}
