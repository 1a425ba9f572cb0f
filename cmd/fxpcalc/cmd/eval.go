// Copyright 2020 Aleksandr Demakin. All rights reserved.

package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/avdva/fxp"
	"github.com/spf13/cobra"
)

var evalPlaces int

var (
	unaryOps = map[string]func(fxp.Value) fxp.Value{
		"abs":   fxp.Abs,
		"neg":   fxp.Value.Neg,
		"sqrt":  fxp.Sqrt,
		"exp":   fxp.Exp,
		"log":   fxp.Log,
		"log2":  fxp.Log2,
		"log10": fxp.Log10,
		"sin":   fxp.Sin,
		"cos":   fxp.Cos,
		"tan":   fxp.Tan,
		"asin":  fxp.Asin,
		"acos":  fxp.Acos,
		"atan":  fxp.Atan,
		"sinh":  fxp.Sinh,
		"cosh":  fxp.Cosh,
		"tanh":  fxp.Tanh,
		"asinh": fxp.Asinh,
		"acosh": fxp.Acosh,
		"atanh": fxp.Atanh,
		"floor": fxp.Floor,
		"ceil":  fxp.Ceil,
		"trunc": fxp.Trunc,
		"round": fxp.Round,
	}
	binaryOps = map[string]func(x, y fxp.Value) fxp.Value{
		"add":       fxp.Value.Add,
		"sub":       fxp.Value.Sub,
		"mul":       fxp.Value.Mul,
		"div":       fxp.Value.Quo,
		"fmod":      fxp.Fmod,
		"pow":       fxp.Pow,
		"atan2":     fxp.Atan2,
		"hypot":     fxp.Hypot,
		"nextafter": fxp.Nextafter,
		"copysign":  fxp.Copysign,
	}
)

var evalCmd = &cobra.Command{
	Use:   "eval <func> <args...>",
	Short: "Evaluate an operation",
	Long: `Evaluates an operation on arguments parsed in the selected format,
and prints the exact result and its bits.

Unary:  ` + opNames(unaryOps) + `
Binary: ` + opNames(binaryOps) + `

Examples:
  fxpcalc eval sqrt 2
  fxpcalc eval --places 6 atan2 1 -1`,
	Args: cobra.MinimumNArgs(2),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().SetInterspersed(false)

	evalCmd.Flags().IntVar(&evalPlaces, "places", -1, "round the printed result to this many decimal places")
}

func runEval(cmd *cobra.Command, args []string) error {
	f, err := format()
	if err != nil {
		printError("bad format", err)
		return err
	}
	name, args := strings.ToLower(args[0]), args[1:]
	values := make([]fxp.Value, len(args))
	for i, arg := range args {
		if values[i], err = f.Parse(arg); err != nil {
			printError("bad argument", err)
			return err
		}
	}
	var r fxp.Value
	if op, ok := unaryOps[name]; ok && len(values) == 1 {
		r = op(values[0])
	} else if op, ok := binaryOps[name]; ok && len(values) == 2 {
		r = op(values[0], values[1])
	} else {
		err = fmt.Errorf("unknown operation %s with %d argument(s)", name, len(values))
		printError("bad operation", err)
		return err
	}
	out := cmd.OutOrStdout()
	if evalPlaces >= 0 {
		fmt.Fprintf(out, "%.*f\n", evalPlaces, r)
	} else {
		fmt.Fprintf(out, "%v\n", r)
	}
	fmt.Fprintf(out, "%b\n", r)
	return nil
}

func opNames[T any](ops map[string]T) string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, " ")
}
