package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PrincetonUniversity/fusionrate/internal/bosch"
	"github.com/PrincetonUniversity/fusionrate/internal/reactions"
)

func reactionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reactions",
		Short: "List the canonical reactions and their constants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("%-14s %-5s %-7s %12s %12s %12s  %s\n",
				"reaction", "beam", "target", "mu [amu]", "B_G [√keV]", "Q [keV]", "cross section")
			for _, name := range reactions.All() {
				core, err := reactions.New(string(name))
				if err != nil {
					return err
				}
				source := "stored table (--tables)"
				if _, ok := bosch.CrossSectionFor(name); ok {
					source = "Bosch-Hale fit"
				}
				fmt.Printf("%-14s %-5s %-7s %12.5f %12.4f %12.1f  %s\n",
					name, core.Beam().Symbol, core.Target().Symbol,
					core.ReducedMass(), core.GamowConstant(), core.QValue(), source)
			}
			return nil
		},
	}
}
