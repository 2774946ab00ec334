package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newInstrumentsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "instruments",
		Short: "List the supported filter/grating pairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := a.registry(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "FILTER\tGRATING\tMIN (µm)\tMAX (µm)")
			for _, inst := range reg.Instruments() {
				sci, _ := reg.ScienceRange(inst)
				fmt.Fprintf(tw, "%s\t%s\t%.2f\t%.2f\n", inst.Filter, inst.Grating, sci.Lo, sci.Hi)
			}
			return tw.Flush()
		},
	}
}
