package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/roach88/subsave/internal/store"
	"github.com/roach88/subsave/internal/subscription"
)

// UpdateOptions holds flags for the update command.
type UpdateOptions struct {
	*RootOptions
	CustomerID string
	ASIN       string
	Frequency  int
}

// NewUpdateCommand creates the update command.
func NewUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &UpdateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a subscription",
		Long: `Update the customer, ASIN or frequency of an existing subscription.

Only the flags given are changed; the rest keep their stored values.
The id never changes.

Example:
  subsave update 1fe240f4-3296-4827-8c0e-7fa571b6f49f --frequency 2`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.CustomerID, "customer", "", "new customer id")
	cmd.Flags().StringVar(&opts.ASIN, "asin", "", "new product ASIN")
	cmd.Flags().IntVar(&opts.Frequency, "frequency", 0, "new delivery frequency")

	return cmd
}

func runUpdate(opts *UpdateOptions, id string, cmd *cobra.Command) error {
	formatter := opts.newFormatter(cmd)
	flags := cmd.Flags()

	if !flags.Changed("customer") && !flags.Changed("asin") && !flags.Changed("frequency") {
		_ = formatter.Error(ErrCodeInvalidArgument, "nothing to update: set --customer, --asin or --frequency", nil)
		return &ExitError{Code: ExitFailure, Message: "nothing to update", Reported: true}
	}

	st := opts.newStore()

	// Start from the stored record so unset flags keep their values. An
	// unknown id is left for UpdateSubscription to reject.
	sub := subscription.Subscription{ID: id}
	existing, err := st.GetSubscriptionByID(id)
	switch {
	case err == nil:
		sub = existing
	case errors.Is(err, store.ErrNotFound):
	default:
		return formatter.Fail("update failed", err)
	}

	if flags.Changed("customer") {
		sub.CustomerID = opts.CustomerID
	}
	if flags.Changed("asin") {
		sub.ASIN = opts.ASIN
	}
	if flags.Changed("frequency") {
		sub.Frequency = opts.Frequency
	}

	updated, err := st.UpdateSubscription(&sub)
	if err != nil {
		return formatter.Fail("update failed", err)
	}

	return formatter.Record(updated)
}
