package app

import (
	"github.com/spf13/cobra"

	"github.com/agbru/bignum/internal/calibration"
)

func (a *Application) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved threshold table and where it came from",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			t, err := a.loader().Load()
			if err != nil {
				return err
			}
			calibration.PrintThresholds(a.Out, t)
			return nil
		},
	}
}
