package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// webhookCommand creates the webhook command tree.
func (c *CLI) webhookCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webhook",
		Short: "Inspect webhook events and delivery status",
	}

	events := &cobra.Command{
		Use:   "events",
		Short: "List the events a webhook can subscribe to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			list, err := c.apiClient(ctx).Webhook.Events(ctx)
			if err != nil {
				return err
			}
			return c.render(list, func(w io.Writer) {
				for _, e := range list {
					fmt.Fprintln(w, StyleValue.Render(e))
				}
			})
		},
	}

	var secret string
	status := &cobra.Command{
		Use:   "status <id>",
		Short: "Show the delivery status of a webhook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := c.apiClient(ctx).Webhook.Status(ctx, args[0], secret)
			if err != nil {
				return err
			}
			return c.render(st, func(w io.Writer) {
				printTitle(w, "Webhook "+args[0])
				printKeyValue(w, "Status", fmt.Sprint(st.Status))
				printKeyValue(w, "Failures", fmt.Sprint(st.FailedConnections))
			})
		},
	}
	status.Flags().StringVar(&secret, "secret", "", "secret returned when the webhook was registered")
	_ = status.MarkFlagRequired("secret")

	cmd.AddCommand(events, status)
	return cmd
}
