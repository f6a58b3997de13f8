// Package cli wires the clientgen command tree.
package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command.
func NewRootCmd(version string) *cobra.Command {
	log := logrus.New()
	var verbose bool

	rootCmd := &cobra.Command{
		Use:          "clientgen",
		Short:        "Generate Go client packages from service descriptions",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(cmd.ErrOrStderr())
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(newGenerateCmd(log))
	rootCmd.AddCommand(newValidateCmd())

	return rootCmd
}
