package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/subsave/internal/subscription"
)

// CreateOptions holds flags for the create command.
type CreateOptions struct {
	*RootOptions
	CustomerID string
	ASIN       string
	Frequency  int
}

// NewCreateCommand creates the create command.
func NewCreateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CreateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a subscription",
		Long: `Create a subscription and print it with its assigned id.

The backing file is created if it does not exist; its directory must.

Example:
  subsave create --customer amzn1.account.AEZI3A063427738YROOFT8WCXKDE --asin B01BMDAVIY --frequency 1`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.CustomerID, "customer", "", "customer id (required)")
	cmd.Flags().StringVar(&opts.ASIN, "asin", "", "product ASIN (required)")
	cmd.Flags().IntVar(&opts.Frequency, "frequency", 0, "delivery frequency (required)")
	_ = cmd.MarkFlagRequired("customer")
	_ = cmd.MarkFlagRequired("asin")
	_ = cmd.MarkFlagRequired("frequency")

	return cmd
}

func runCreate(opts *CreateOptions, cmd *cobra.Command) error {
	formatter := opts.newFormatter(cmd)

	created, err := opts.newStore().CreateSubscription(subscription.New(opts.CustomerID, opts.ASIN, opts.Frequency))
	if err != nil {
		return formatter.Fail("create failed", err)
	}

	return formatter.Record(created)
}
