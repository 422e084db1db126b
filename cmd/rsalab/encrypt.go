package main

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/primefield/rsalab/pkg/rsalab"
)

func newEncryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encrypt <exponent> <modulus> <block>",
		Short: "Encode a numeric block under a public key",
		Long: `Raise the block to the exponent modulo the modulus. All three arguments
are decimal integers; the result is printed as decimal. A block at or
above the modulus is warned about and encoded anyway.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := parseDecimal(args[0], "exponent")
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
			fmt.Println(cipher.Encode(cmd.Context(), block, rsalab.KeyHalf{Exponent: e, Modulus: n}))
			return nil
		},
	}
}

func parseDecimal(s, what string) (*big.Int, error) {
	value, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%s %q is not a decimal integer", what, s)
	}
	return value, nil
}
