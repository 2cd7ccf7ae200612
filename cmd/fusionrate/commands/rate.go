package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PrincetonUniversity/fusionrate"
)

func rateCmd() *cobra.Command {
	var (
		temps  string
		scheme string
		deriv  bool
		tPar   float64
	)

	cmd := &cobra.Command{
		Use:   "rate <reaction>",
		Short: "Evaluate thermal rate coefficients in cm³/s",
		Long: `Evaluate Maxwellian rate coefficients ⟨σv⟩ over a temperature grid.

With --bimax, each grid temperature is taken as the perpendicular
temperature of a bi-Maxwellian whose parallel temperature is fixed at
the flag's value.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := parseGrid(temps)
			if err != nil {
				return err
			}
			sch, err := fusionrate.ParseScheme(scheme)
			if err != nil {
				return err
			}

			r, err := fusionrate.NewWithConfig(args[0], libraryConfig(sch))
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("bimax") {
				return printBiMaxwellian(r, grid, tPar, deriv)
			}

			if deriv {
				values, derivs := r.RateCoefficientDerivs(grid)
				fmt.Printf("# %12s %14s %14s\n", "T [keV]", "<sv> [cm3/s]", "d<sv>/dT")
				for i, t := range grid {
					fmt.Printf("%14.6e %14.6e %14.6e\n", t, values[i], derivs[i])
				}
				return nil
			}

			values := r.RateCoefficients(grid)
			fmt.Printf("# %12s %14s\n", "T [keV]", "<sv> [cm3/s]")
			for i, t := range grid {
				fmt.Printf("%14.6e %14.6e\n", t, values[i])
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&temps, "temperatures", "T", "1:100:40",
		"ion temperatures in keV, lo:hi:n (log spaced) or a comma list")
	cmd.Flags().StringVar(&scheme, "scheme", "",
		"evaluation scheme: auto, analytic, integration or interpolation")
	cmd.Flags().BoolVar(&deriv, "deriv", false, "also print temperature derivatives")
	cmd.Flags().Float64Var(&tPar, "bimax", 0,
		"parallel temperature in keV; the grid sweeps the perpendicular one")

	return cmd
}

func printBiMaxwellian(r *fusionrate.Reaction, grid []float64, tPar float64, deriv bool) error {
	fmt.Printf("# bi-Maxwellian, T_par = %g keV\n", tPar)

	if deriv {
		fmt.Printf("# %12s %14s %14s %14s\n", "T_perp [keV]", "<sv> [cm3/s]", "d<sv>/dTperp", "d<sv>/dTpar")
		for _, tp := range grid {
			v, dv, err := r.RateCoefficientDerivFor(fusionrate.BiMaxwellian(tp, tPar))
			if err != nil {
				return err
			}
			fmt.Printf("%14.6e %14.6e %14.6e %14.6e\n", tp, v, dv[0], dv[1])
		}
		return nil
	}

	fmt.Printf("# %12s %14s\n", "T_perp [keV]", "<sv> [cm3/s]")
	for _, tp := range grid {
		v, err := r.RateCoefficientFor(fusionrate.BiMaxwellian(tp, tPar))
		if err != nil {
			return err
		}
		fmt.Printf("%14.6e %14.6e\n", tp, v)
	}
	return nil
}
