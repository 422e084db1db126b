package main

import (
	"github.com/spf13/cobra"

	"github.com/primefield/rsalab/internal/demo"
)

func newDemoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the full lab flow once",
		Long: `Generate two prime factors, derive a key pair, print both halves, then
encode and decode one numeric block. Identical to running rsalab with no
subcommand.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return demo.Run(cmd.Context(), demo.Config{
				Bits:        opts.Bits,
				Message:     opts.Message,
				MaxAttempts: opts.MaxAttempts,
			})
		},
	}
}
