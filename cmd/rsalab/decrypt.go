package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/primefield/rsalab/pkg/rsalab"
)

func newDecryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decrypt <exponent> <modulus> <block>",
		Short: "Decode a numeric block under a private key",
		Long: `Raise the block to the exponent modulo the modulus. Decoding is the same
exponentiation as encoding under the other half of the pair.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDecimal(args[0], "exponent")
			if err != nil {
				return err
			}
			n, err := parseDecimal(args[1], "modulus")
			if err != nil {
				return err
			}
			block, err := parseDecimal(args[2], "block")
			if err != nil {
				return err
			}

			cipher := rsalab.NewCipher(nil)
			fmt.Println(cipher.Decode(cmd.Context(), block, rsalab.KeyHalf{Exponent: d, Modulus: n}))
			return nil
		},
	}
}
