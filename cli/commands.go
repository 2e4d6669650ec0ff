// Package cli provides the Cobra-based CLI for stockledger.
package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"stockledger/domain"
	"stockledger/engine"
	"stockledger/store"
)

var (
	rootCmd = &cobra.Command{
		Use:   "stockledger",
		Short: "A stock ledger and order-transaction engine for small retail",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// IMPORTANT: allow tests to inject engine
			if eng != nil {
				return nil
			}

			if cfg := viper.GetString("config"); cfg != "" {
				viper.SetConfigFile(cfg)
				if err := viper.ReadInConfig(); err != nil {
					return err
				}
			}

			lvlStr := strings.ToLower(viper.GetString("log-level"))
			lvl := slog.LevelInfo
			switch lvlStr {
			case "debug":
				lvl = slog.LevelDebug
			case "warn", "warning":
				lvl = slog.LevelWarn
			case "error":
				lvl = slog.LevelError
			}
			slog.SetDefault(slog.New(
				slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}),
			))

			st, err := store.NewStore(
				viper.GetString("store"),
				viper.GetString("store-dir"),
			)
			if err != nil {
				return err
			}
			eng, err = engine.New(context.Background(), st)
			return err
		},
	}

	eng *engine.Engine
)

// printJSON renders any value as indented JSON on stdout.
func printJSON(v interface{}) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

// reportPersist turns a post-mutation persistence failure into a stderr
// warning: the in-memory state is authoritative and the operation counts
// as done. Any other error is returned unchanged.
func reportPersist(err error) error {
	if err == nil {
		return nil
	}
	if domain.IsPersistenceError(err) {
		fmt.Fprintf(os.Stderr, "warning: change kept in memory only: %v\n", err)
		return nil
	}
	return err
}

func init() {
	// shell
	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := bufio.NewReader(os.Stdin)
			for {
				fmt.Print("stockledger> ")
				line, err := r.ReadString('\n')
				if err != nil {
					return nil
				}
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" {
					return nil
				}
				rootCmd.SetArgs(strings.Fields(line))
				if err := rootCmd.Execute(); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
				rootCmd.SetArgs(nil)
			}
		},
	}
	rootCmd.AddCommand(shellCmd)

	rootCmd.PersistentFlags().String("store", "memory", "store backend: memory|file")
	rootCmd.PersistentFlags().String("store-dir", "data", "file store directory")
	rootCmd.PersistentFlags().String("config", "", "config file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level")

	viper.BindPFlag("store", rootCmd.PersistentFlags().Lookup("store"))
	viper.BindPFlag("store-dir", rootCmd.PersistentFlags().Lookup("store-dir"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.SetEnvPrefix("STOCKLEDGER")
	viper.AutomaticEnv()

	rootCmd.AddCommand(newProductCmd())
	rootCmd.AddCommand(newOrderCmd())
	rootCmd.AddCommand(newCustomerCmd())
	rootCmd.AddCommand(newLogCmd())
	rootCmd.AddCommand(newDashboardCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newClearCmd())
}

func newProductCmd() *cobra.Command {
	productCmd := &cobra.Command{
		Use:   "product",
		Short: "Manage the product catalog",
	}

	// add
	var name, cost string
	var quantity int
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product to the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			unitCost, err := decimal.NewFromString(cost)
			if err != nil {
				return fmt.Errorf("invalid --cost %q: %w", cost, err)
			}
			p, err := eng.AddProduct(context.Background(), domain.AddProductRequest{
				Name:     name,
				UnitCost: unitCost,
				Quantity: quantity,
			})
			if err := reportPersist(err); err != nil {
				return err
			}
			printJSON(p)
			return nil
		},
	}
	addCmd.Flags().StringVar(&name, "name", "", "product name")
	addCmd.Flags().StringVar(&cost, "cost", "0", "unit cost")
	addCmd.Flags().IntVar(&quantity, "quantity", 0, "initial stock quantity")
	productCmd.AddCommand(addCmd)

	// list
	var lOutput string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog products",
		RunE: func(cmd *cobra.Command, args []string) error {
			products := eng.Products()
			if lOutput == "json" {
				printJSON(products)
				return nil
			}
			for _, p := range products {
				fmt.Printf("%s | %s | %s | %s | %d\n",
					p.ID, p.Name, p.UnitCost.StringFixed(2), p.UnitSalePrice.StringFixed(2), p.Quantity)
			}
			return nil
		},
	}
	listCmd.Flags().StringVar(&lOutput, "output", "", "output format")
	productCmd.AddCommand(listCmd)

	// update
	var uName, uCost, uSalePrice string
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a product's name or prices",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := domain.UpdateProductRequest{}
			if cmd.Flags().Changed("name") {
				req.SetName = true
				req.Name = uName
			}
			if cmd.Flags().Changed("cost") {
				d, err := decimal.NewFromString(uCost)
				if err != nil {
					return fmt.Errorf("invalid --cost %q: %w", uCost, err)
				}
				req.SetUnitCost = true
				req.UnitCost = d
			}
			if cmd.Flags().Changed("sale-price") {
				d, err := decimal.NewFromString(uSalePrice)
				if err != nil {
					return fmt.Errorf("invalid --sale-price %q: %w", uSalePrice, err)
				}
				req.SetUnitSalePrice = true
				req.UnitSalePrice = d
			}
			p, err := eng.UpdateProduct(context.Background(), args[0], req)
			if err := reportPersist(err); err != nil {
				return err
			}
			printJSON(p)
			return nil
		},
	}
	updateCmd.Flags().StringVar(&uName, "name", "", "name")
	updateCmd.Flags().StringVar(&uCost, "cost", "", "unit cost")
	updateCmd.Flags().StringVar(&uSalePrice, "sale-price", "", "unit sale price")
	productCmd.AddCommand(updateCmd)

	// remove
	var force bool
	removeCmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a product from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Printf("Remove %s? (y/N): ", args[0])
				var resp string
				if _, err := fmt.Scanln(&resp); err != nil || (resp != "y" && resp != "Y") {
					fmt.Println("aborted")
					return nil
				}
			}
			err := eng.RemoveProduct(context.Background(), args[0])
			if domain.IsProductNotFoundError(err) {
				fmt.Fprintln(os.Stderr, err)
				return nil
			}
			if err := reportPersist(err); err != nil {
				return err
			}
			fmt.Println("removed")
			return nil
		},
	}
	removeCmd.Flags().BoolVar(&force, "force", false, "skip confirmation")
	productCmd.AddCommand(removeCmd)

	return productCmd
}

func newLogCmd() *cobra.Command {
	logCmd := &cobra.Command{
		Use:   "log",
		Short: "Inspect the inventory audit log",
	}
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List audit entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := eng.InventoryLog()
			for i := len(entries) - 1; i >= 0; i-- {
				e := entries[i]
				fmt.Printf("%s | %s | %s | %d | %s | %s\n",
					e.ID, e.Date.Format("2006-01-02 15:04:05"), e.ProductName,
					e.Quantity, e.UnitCost.StringFixed(2), e.Action)
			}
			return nil
		},
	}
	logCmd.AddCommand(listCmd)
	return logCmd
}

func newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show recent activity across all collections",
		RunE: func(cmd *cobra.Command, args []string) error {
			printJSON(eng.Recent(3))
			return nil
		},
	}
}

func Execute() error {
	return rootCmd.Execute()
}
