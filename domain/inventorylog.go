package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryAction is the kind of catalog-level event an audit entry records.
type InventoryAction string

const (
	ActionAdd    InventoryAction = "add"
	ActionRemove InventoryAction = "remove"
)

// InventoryLogEntry is one append-only audit record of a catalog add or
// remove. Entries are never edited or deleted. Order-driven stock changes
// are not logged here; they are recoverable from the order ledger.
type InventoryLogEntry struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitCost    decimal.Decimal `json:"price"`
	Action      InventoryAction `json:"action"`
}
