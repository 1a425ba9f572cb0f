// Copyright 2020 Aleksandr Demakin. All rights reserved.

package cmd

import (
	"fmt"
	"strings"

	"github.com/avdva/fxp"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <value>",
	Short: "Show how a decimal value is stored",
	Long: `Parses a decimal value in the selected format with every rounding mode,
and prints the stored value, its bits and the conversion error.

Examples:
  fxpcalc convert --range 4 --resolution=-4 0.1
  fxpcalc convert -- -1.3`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().SetInterspersed(false)
}

func runConvert(cmd *cobra.Command, args []string) error {
	f, err := format()
	if err != nil {
		printError("bad format", err)
		return err
	}
	exact, err := decimal.NewFromString(strings.TrimSpace(args[0]))
	if err != nil {
		printError("bad value", err)
		return err
	}
	out := cmd.OutOrStdout()
	for _, mode := range []fxp.Rounding{fxp.Fastest, fxp.NearestEven} {
		v := f.WithRounding(mode).MustParse(args[0])
		fmt.Fprintf(out, "%-12v %v\n", mode, v)
		fmt.Fprintf(out, "%-12s %b\n", "bits", v)
		// every value has a finite decimal expansion, so the error is exact.
		stored := decimal.RequireFromString(v.String())
		fmt.Fprintf(out, "%-12s %v\n", "error", stored.Sub(exact))
	}
	return nil
}
