package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matt-g-everett/ledcube/dither"
)

var flagGamma float64

var gammaCmd = &cobra.Command{
	Use:   "gamma",
	Short: "Print the gamma correction table",
	RunE: func(cmd *cobra.Command, args []string) error {
		gamma := flagGamma
		if gamma == 0 {
			a, err := newApp()
			if err != nil {
				return err
			}
			gamma = a.Config.GPIO.Gamma
		}

		table, err := dither.NewGammaTable(gamma)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "gamma %g\n", gamma)
		for i, v := range table {
			fmt.Fprintf(out, "%3d", v)
			if i%16 == 15 {
				fmt.Fprintln(out)
			} else {
				fmt.Fprint(out, " ")
			}
		}
		return nil
	},
}

func init() {
	gammaCmd.Flags().Float64Var(&flagGamma, "gamma", 0, "Gamma exponent (0 = value from config)")
}
