package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PrincetonUniversity/fusionrate"
)

func xsCmd() *cobra.Command {
	var (
		energies string
		deriv    bool
	)

	cmd := &cobra.Command{
		Use:   "xs <reaction>",
		Short: "Evaluate fusion cross sections in millibarns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := parseGrid(energies)
			if err != nil {
				return err
			}

			r, err := fusionrate.NewWithConfig(args[0], libraryConfig(fusionrate.SchemeAuto))
			if err != nil {
				return err
			}

			if deriv {
				sigmas, derivs := r.CrossSectionDerivs(grid)
				fmt.Printf("# %12s %14s %14s\n", "E [keV]", "sigma [mb]", "dsig/dE")
				for i, e := range grid {
					fmt.Printf("%14.6e %14.6e %14.6e\n", e, sigmas[i], derivs[i])
				}
				return nil
			}

			sigmas := r.CrossSections(grid)
			fmt.Printf("# %12s %14s\n", "E [keV]", "sigma [mb]")
			for i, e := range grid {
				fmt.Printf("%14.6e %14.6e\n", e, sigmas[i])
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&energies, "energies", "e", "1:1000:40",
		"center-of-mass energies in keV, lo:hi:n (log spaced) or a comma list")
	cmd.Flags().BoolVar(&deriv, "deriv", false, "also print dsigma/dE in mb/keV")

	return cmd
}
