package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"bigcalc/internal/bignum"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <value>",
	Short: "Show the internal limb layout of a value",
	Long: `Print the sign, limb count and base-10^9 limbs (least significant first)
of a value, followed by its binary encoding. Put "--" before a negative value
so it is not read as a flag.`,
	Example: `  bigcalc dump 1000000000
  bigcalc dump --in-radix 16 ff
  bigcalc dump -- -2000000001`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().Int("in-radix", 10, "input radix (2..62)")
}

func runDump(cmd *cobra.Command, args []string) error {
	radix := state.cfg.Input.Radix
	if err := overrideInt(cmd, "in-radix", &radix); err != nil {
		return err
	}
	v, err := bignum.ParseRadix(args[0], radix)
	if err != nil {
		return err
	}
	data, err := v.MarshalBinary()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "value:  %s\n", v)
	fmt.Fprintf(out, "layout: %s\n", v.Dump())
	_, err = fmt.Fprintf(out, "binary: %s\n", hex.EncodeToString(data))
	return err
}
