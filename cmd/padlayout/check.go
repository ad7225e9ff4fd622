package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func newCheckCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify every padding type against its reference integer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSettings(v)
			if err != nil {
				return err
			}
			return runCheck(cmd, s, newReport())
		},
	}
}

func runCheck(cmd *cobra.Command, s settings, r report) error {
	failed := writeCheck(cmd.OutOrStdout(), s, r)
	Logger().Debug("layout check finished",
		zap.Int("types", len(r.Types)),
		zap.Int("failed", failed))
	if failed > 0 {
		return fmt.Errorf("%d of %d padding types failed the layout check", failed, len(r.Types))
	}
	return nil
}
