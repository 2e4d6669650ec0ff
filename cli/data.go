package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"stockledger/store"
)

func newExportCmd() *cobra.Command {
	var dir, format string
	exportCmd := &cobra.Command{
		Use:   "export --dir <dir>",
		Short: "Export data as CSV histories or a JSON snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				return errors.New("--dir required")
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
			switch format {
			case "csv":
				if err := writeSalesCSV(filepath.Join(dir, "sales-history.csv"), eng.Orders()); err != nil {
					return err
				}
				return writeInventoryCSV(filepath.Join(dir, "inventory-history.csv"), eng.InventoryLog())
			case "json":
				b, err := json.MarshalIndent(eng.Export(), "", "  ")
				if err != nil {
					return err
				}
				return os.WriteFile(filepath.Join(dir, "snapshot.json"), b, 0o644)
			default:
				return fmt.Errorf("unknown format: %s", format)
			}
		},
	}
	exportCmd.Flags().StringVar(&dir, "dir", "", "output directory")
	exportCmd.Flags().StringVar(&format, "format", "csv", "export format: csv|json")
	return exportCmd
}

func newImportCmd() *cobra.Command {
	var file string
	importCmd := &cobra.Command{
		Use:   "import --file <file>",
		Short: "Import a JSON snapshot (absent collections are left untouched)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return errors.New("--file required")
			}
			b, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			var snap store.Snapshot
			if err := json.Unmarshal(b, &snap); err != nil {
				return err
			}
			if err := reportPersist(eng.Import(context.Background(), snap)); err != nil {
				return err
			}
			fmt.Println("imported")
			return nil
		},
	}
	importCmd.Flags().StringVar(&file, "file", "", "snapshot file")
	return importCmd
}

func newClearCmd() *cobra.Command {
	var force bool
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Wipe all stored data",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Print("Clear ALL data? (y/N): ")
				var resp string
				if _, err := fmt.Scanln(&resp); err != nil || (resp != "y" && resp != "Y") {
					fmt.Println("aborted")
					return nil
				}
			}
			if err := reportPersist(eng.ClearAll(context.Background())); err != nil {
				return err
			}
			fmt.Println("cleared")
			return nil
		},
	}
	clearCmd.Flags().BoolVar(&force, "force", false, "skip confirmation")
	return clearCmd
}
