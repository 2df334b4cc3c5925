package cmd

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

func newConfigCmd(n *node) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bz, err := yaml.Marshal(n.v.AllSettings())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(bz)
			return err
		},
	}
}
