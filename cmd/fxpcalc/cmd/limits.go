// Copyright 2020 Aleksandr Demakin. All rights reserved.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var limitsCmd = &cobra.Command{
	Use:   "limits",
	Short: "Show the properties of the selected format",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := format()
		if err != nil {
			printError("bad format", err)
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "format:       %v\n", f)
		fmt.Fprintf(out, "total bits:   %d\n", f.TotalBits())
		fmt.Fprintf(out, "storage:      %v\n", f.Width())
		fmt.Fprintf(out, "digits:       %d\n", f.Digits())
		fmt.Fprintf(out, "digits10:     %d\n", f.Digits10())
		fmt.Fprintf(out, "max exponent: %d\n", f.MaxExponent())
		fmt.Fprintf(out, "min exponent: %d\n", f.MinExponent())
		fmt.Fprintf(out, "max:          %v\n", f.Max())
		fmt.Fprintf(out, "lowest:       %v\n", f.Lowest())
		fmt.Fprintf(out, "min:          %v\n", f.Min())
		fmt.Fprintf(out, "epsilon:      %v\n", f.Epsilon())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(limitsCmd)
}
