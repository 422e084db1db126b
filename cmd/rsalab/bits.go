package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/primefield/rsalab/pkg/rsalab/bitstring"
)

func newBitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bits",
		Short: "Convert between bit strings and decimal values",
	}
	cmd.AddCommand(newBitsFromCmd())
	cmd.AddCommand(newBitsToCmd())
	return cmd
}

func newBitsFromCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "from <bitstring> <width>",
		Short: "Parse a bit string into its decimal value",
		Long: `Parse an ASCII bit string, last character least significant. A length
differing from the declared width is warned about; the parsed value is
printed either way.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, err := parseWidth(args[1])
			if err != nil {
				return err
			}

			value, err := bitstring.FromBits(args[0], width)
			if err != nil {
				slog.Warn("bit string length mismatch", "declared", width, "actual", len(args[0]))
			}
			fmt.Println(value)
			return nil
		},
	}
}

func newBitsToCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "to <value> <width>",
		Short: "Render a decimal value as a bit string",
		Long: `Render the value as exactly width characters, most significant bit
first. Bits above the width are dropped.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := parseDecimal(args[0], "value")
			if err != nil {
				return err
			}
			width, err := parseWidth(args[1])
			if err != nil {
				return err
			}

			fmt.Println(bitstring.ToBits(value, width))
			return nil
		},
	}
}

func parseWidth(s string) (int, error) {
	width, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("width %q is not an integer", s)
	}
	return width, nil
}
