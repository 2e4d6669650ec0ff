package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stockledger/domain"
)

func newCustomerCmd() *cobra.Command {
	customerCmd := &cobra.Command{
		Use:   "customer",
		Short: "Manage customers and their derived aggregates",
	}

	// add
	var name, email string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Register a customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := eng.AddCustomer(context.Background(), domain.AddCustomerRequest{
				Name:  name,
				Email: email,
			})
			if err := reportPersist(err); err != nil {
				return err
			}
			printJSON(c)
			return nil
		},
	}
	addCmd.Flags().StringVar(&name, "name", "", "customer name")
	addCmd.Flags().StringVar(&email, "email", "", "customer email")
	customerCmd.AddCommand(addCmd)

	// list
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range eng.Customers() {
				fmt.Printf("%s | %s | %s | %d order(s)\n", c.ID, c.Name, c.Email, len(c.OrderIDs))
			}
			return nil
		},
	}
	customerCmd.AddCommand(listCmd)

	// show
	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a customer's aggregates from the order ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := eng.CustomerSummary(args[0])
			if err != nil {
				if domain.IsCustomerNotFoundError(err) {
					fmt.Fprintln(os.Stderr, err)
					return nil
				}
				return err
			}
			printJSON(summary)
			return nil
		},
	}
	customerCmd.AddCommand(showCmd)

	return customerCmd
}
