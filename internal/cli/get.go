package cli

import (
	"github.com/spf13/cobra"
)

// NewGetCommand creates the get command.
func NewGetCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a subscription by id",
		Long: `Show the subscription with the given id.

Example:
  subsave get 81a9792e-9b4c-4090-aac8-28e733ac2f54 --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runGet(opts *RootOptions, id string, cmd *cobra.Command) error {
	formatter := opts.newFormatter(cmd)

	sub, err := opts.newStore().GetSubscriptionByID(id)
	if err != nil {
		return formatter.Fail("get failed", err)
	}

	return formatter.Record(sub)
}
