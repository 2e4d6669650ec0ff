package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"stockledger/domain"
	"stockledger/engine"
)

// parseLine parses one --item value of the form productID:quantity:price.
// Quantity may be negative to return stock.
func parseLine(s string) (domain.OrderLineRequest, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return domain.OrderLineRequest{}, fmt.Errorf("invalid --item %q: want productID:quantity:price", s)
	}
	qty, err := strconv.Atoi(parts[1])
	if err != nil {
		return domain.OrderLineRequest{}, fmt.Errorf("invalid quantity in --item %q: %w", s, err)
	}
	price, err := decimal.NewFromString(parts[2])
	if err != nil {
		return domain.OrderLineRequest{}, fmt.Errorf("invalid price in --item %q: %w", s, err)
	}
	return domain.OrderLineRequest{ProductID: parts[0], Quantity: qty, UnitPrice: price}, nil
}

func newOrderCmd() *cobra.Command {
	orderCmd := &cobra.Command{
		Use:   "order",
		Short: "Manage the sales-order ledger",
	}

	// create
	var storeName, customerID string
	var items []string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a sale or return order",
		RunE: func(cmd *cobra.Command, args []string) error {
			// repeatable flags accumulate when the root command is
			// re-executed in shell mode; drop the parsed values after use
			defer func() { items = nil }()

			lines := make([]domain.OrderLineRequest, 0, len(items))
			for _, it := range items {
				line, err := parseLine(it)
				if err != nil {
					return err
				}
				lines = append(lines, line)
			}
			order, err := eng.CreateOrder(context.Background(), domain.CreateOrderRequest{
				StoreName:  storeName,
				CustomerID: customerID,
				Lines:      lines,
			})
			if err := reportPersist(err); err != nil {
				return err
			}
			printJSON(order)
			return nil
		},
	}
	createCmd.Flags().StringVar(&storeName, "store", "", "store name")
	createCmd.Flags().StringVar(&customerID, "customer", "", "customer id to attach the order to")
	createCmd.Flags().StringArrayVar(&items, "item", nil, "order line as productID:quantity:price (repeatable)")
	orderCmd.AddCommand(createCmd)

	// list
	var lOutput string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List ledger orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			orders := eng.Orders()
			if lOutput == "json" {
				printJSON(orders)
				return nil
			}
			for _, o := range orders {
				fmt.Printf("%s | %s | %s | %s | %s | %d line(s)\n",
					o.ID, o.Date.Format("2006-01-02 15:04:05"), o.StoreName,
					o.Kind, o.Total.StringFixed(2), len(o.Items))
			}
			return nil
		},
	}
	listCmd.Flags().StringVar(&lOutput, "output", "", "output format")
	orderCmd.AddCommand(listCmd)

	// return
	returnCmd := &cobra.Command{
		Use:   "return <id>",
		Short: "Create a return order mirroring an existing order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := eng.ReturnOrder(context.Background(), args[0])
			if domain.IsOrderNotFoundError(err) {
				fmt.Fprintln(os.Stderr, err)
				return nil
			}
			if err := reportPersist(err); err != nil {
				return err
			}
			printJSON(order)
			return nil
		},
	}
	orderCmd.AddCommand(returnCmd)

	// delete
	var force bool
	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an order and reverse its stock effect",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Printf("Delete %s? (y/N): ", args[0])
				var resp string
				if _, err := fmt.Scanln(&resp); err != nil || (resp != "y" && resp != "Y") {
					fmt.Println("aborted")
					return nil
				}
			}
			err := eng.DeleteOrder(context.Background(), args[0])
			if domain.IsOrderNotFoundError(err) {
				fmt.Fprintln(os.Stderr, err)
				return nil
			}
			if err := reportPersist(err); err != nil {
				return err
			}
			fmt.Println("deleted")
			return nil
		},
	}
	deleteCmd.Flags().BoolVar(&force, "force", false, "skip confirmation")
	orderCmd.AddCommand(deleteCmd)

	// share
	shareCmd := &cobra.Command{
		Use:   "share <id>",
		Short: "Print a shareable order summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := eng.Order(args[0])
			if err != nil {
				if domain.IsOrderNotFoundError(err) {
					fmt.Fprintln(os.Stderr, err)
					return nil
				}
				return err
			}
			fmt.Println(engine.ShareOrder(order))
			return nil
		},
	}
	orderCmd.AddCommand(shareCmd)

	return orderCmd
}
