package cli

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"stockledger/domain"
)

// writeSalesCSV writes the sales history. Lines are flattened into one
// column since CSV has no nesting.
func writeSalesCSV(path string, orders []domain.SalesOrder) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"id", "date", "storeName", "type", "total", "items"}); err != nil {
		return err
	}
	for _, o := range orders {
		lines := make([]string, 0, len(o.Items))
		for _, item := range o.Items {
			lines = append(lines, fmt.Sprintf("%s x %d @ %s",
				item.ProductName, item.Quantity, item.UnitPrice.StringFixed(2)))
		}
		rec := []string{
			o.ID,
			o.Date.Format("2006-01-02T15:04:05Z07:00"),
			o.StoreName,
			string(o.Kind),
			o.Total.StringFixed(2),
			strings.Join(lines, "; "),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// writeInventoryCSV writes the inventory audit history.
func writeInventoryCSV(path string, entries []domain.InventoryLogEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"id", "date", "productName", "quantity", "price", "action"}); err != nil {
		return err
	}
	for _, e := range entries {
		rec := []string{
			e.ID,
			e.Date.Format("2006-01-02T15:04:05Z07:00"),
			e.ProductName,
			strconv.Itoa(e.Quantity),
			e.UnitCost.StringFixed(2),
			string(e.Action),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
