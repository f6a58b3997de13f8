package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clientgen/go-sdk/pkg/discovery"
)

// newValidateCmd creates the validate subcommand.
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <description>...",
		Short: "Validate service description documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				doc, err := discovery.LoadFile(path)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				if doc.Name() == "" {
					return fmt.Errorf("%s: description declares no service name", path)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s %s (%d schemas, %d resources)\n",
					path, doc.Name(), doc.Version(), doc.Schemas().Len(), doc.Resources().Len())
			}
			return nil
		},
	}
}
