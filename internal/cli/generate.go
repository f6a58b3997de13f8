package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/clientgen/go-sdk/pkg/generator"
)

// newGenerateCmd creates the generate subcommand.
func newGenerateCmd(log *logrus.Logger) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate client packages for every configured service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := generator.LoadConfig(configPath)
			if err != nil {
				return err
			}

			gen, err := generator.New(cfg, log)
			if err != nil {
				return err
			}

			manifest, err := gen.GenerateAll(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "generated %d service package(s), run %s\n",
				len(manifest.Services), manifest.RunID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "clientgen.yaml", "run configuration file")

	return cmd
}
