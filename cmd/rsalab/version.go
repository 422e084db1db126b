package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/primefield/rsalab/pkg/rsalab"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("rsalab version %s\n", rsalab.Version)
		},
	}
}
