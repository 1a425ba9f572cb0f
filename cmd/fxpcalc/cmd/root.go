// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package cmd implements the fxpcalc command tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/avdva/fxp"
	"github.com/spf13/cobra"
)

var (
	rangeBits  int
	resolution int
	rounding   string
)

var rootCmd = &cobra.Command{
	Use:   "fxpcalc",
	Short: "Binary fixed-point calculator",
	Long: `fxpcalc evaluates fxp operations in a chosen fixed-point format.

The format is selected with --range (integral bits, sign excluded),
--resolution (exponent of the smallest step, negative) and --rounding
(fastest or nearest_even).

Flags of eval and convert go before the arguments, so negative
arguments are not taken for flags. A negative value to convert follows "--".

Examples:
  fxpcalc limits --range 8 --resolution=-8
  fxpcalc eval sqrt 2
  fxpcalc eval --rounding fastest div 1 3
  fxpcalc convert --range 4 --resolution=-4 0.1`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().IntVar(&rangeBits, "range", 15, "integral bits, not counting the sign bit")
	rootCmd.PersistentFlags().IntVar(&resolution, "resolution", -16, "resolution exponent, must be negative")
	rootCmd.PersistentFlags().StringVar(&rounding, "rounding", fxp.NearestEven.String(), "rounding mode: fastest or nearest_even")
}

// format returns the format selected by the persistent flags.
func format() (fxp.Format, error) {
	mode, err := fxp.ParseRounding(rounding)
	if err != nil {
		return fxp.Format{}, err
	}
	return fxp.NewFormat(rangeBits, resolution, mode)
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
