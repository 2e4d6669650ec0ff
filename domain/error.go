// Package domain defines error types for the stock ledger.
package domain

import (
	"errors"
	"fmt"
)

// ProductNotFoundError is returned when a product with the given ID is not found
type ProductNotFoundError struct {
	ProductID string
}

// Error implements the error interface for ProductNotFoundError
func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product not found: id=%s", e.ProductID)
}

// Is allows proper error type checking with errors.Is()
func (e *ProductNotFoundError) Is(target error) bool {
	_, ok := target.(*ProductNotFoundError)
	return ok
}

// OrderNotFoundError is returned when an order with the given ID is not in the ledger
type OrderNotFoundError struct {
	OrderID string
}

// Error implements the error interface for OrderNotFoundError
func (e *OrderNotFoundError) Error() string {
	return fmt.Sprintf("order not found: id=%s", e.OrderID)
}

// Is allows proper error type checking with errors.Is()
func (e *OrderNotFoundError) Is(target error) bool {
	_, ok := target.(*OrderNotFoundError)
	return ok
}

// CustomerNotFoundError is returned when a customer with the given ID is not found
type CustomerNotFoundError struct {
	CustomerID string
}

// Error implements the error interface for CustomerNotFoundError
func (e *CustomerNotFoundError) Error() string {
	return fmt.Sprintf("customer not found: id=%s", e.CustomerID)
}

// Is allows proper error type checking with errors.Is()
func (e *CustomerNotFoundError) Is(target error) bool {
	_, ok := target.(*CustomerNotFoundError)
	return ok
}

// ValidationError is returned when a request fails validation before any
// state is mutated
type ValidationError struct {
	Field  string
	Reason string
	Value  interface{}
}

// Error implements the error interface for ValidationError
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: field=%s, reason=%s, value=%v", e.Field, e.Reason, e.Value)
}

// Is allows proper error type checking with errors.Is()
func (e *ValidationError) Is(target error) bool {
	_, ok := target.(*ValidationError)
	return ok
}

// StorageCapacityError is returned by a store when a write would exceed its
// capacity. The in-memory mutation has already succeeded when this surfaces
// from an engine operation; memory remains the source of truth.
type StorageCapacityError struct {
	Key   string
	Limit int
}

// Error implements the error interface for StorageCapacityError
func (e *StorageCapacityError) Error() string {
	return fmt.Sprintf("storage capacity exceeded: key=%s, limit=%d", e.Key, e.Limit)
}

// Is allows proper error type checking with errors.Is()
func (e *StorageCapacityError) Is(target error) bool {
	_, ok := target.(*StorageCapacityError)
	return ok
}

// PersistenceError wraps a store write failure that occurred after the
// in-memory mutation succeeded. Callers should surface a warning and keep
// going; the operation's result is still valid.
type PersistenceError struct {
	Err error
}

// Error implements the error interface for PersistenceError
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed: %v", e.Err)
}

// Unwrap exposes the underlying store error
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Is allows proper error type checking with errors.Is()
func (e *PersistenceError) Is(target error) bool {
	_, ok := target.(*PersistenceError)
	return ok
}

// Helper functions for creating errors with context

// NewProductNotFoundError creates a new ProductNotFoundError
func NewProductNotFoundError(productID string) error {
	return &ProductNotFoundError{ProductID: productID}
}

// NewOrderNotFoundError creates a new OrderNotFoundError
func NewOrderNotFoundError(orderID string) error {
	return &OrderNotFoundError{OrderID: orderID}
}

// NewCustomerNotFoundError creates a new CustomerNotFoundError
func NewCustomerNotFoundError(customerID string) error {
	return &CustomerNotFoundError{CustomerID: customerID}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, reason string, value interface{}) error {
	return &ValidationError{
		Field:  field,
		Reason: reason,
		Value:  value,
	}
}

// NewStorageCapacityError creates a new StorageCapacityError
func NewStorageCapacityError(key string, limit int) error {
	return &StorageCapacityError{Key: key, Limit: limit}
}

// NewPersistenceError creates a new PersistenceError
func NewPersistenceError(err error) error {
	return &PersistenceError{Err: err}
}

// Type assertion helpers for use with errors.As()

// IsProductNotFoundError checks if an error is a ProductNotFoundError
func IsProductNotFoundError(err error) bool {
	var pnf *ProductNotFoundError
	return errors.As(err, &pnf)
}

// IsOrderNotFoundError checks if an error is an OrderNotFoundError
func IsOrderNotFoundError(err error) bool {
	var onf *OrderNotFoundError
	return errors.As(err, &onf)
}

// IsCustomerNotFoundError checks if an error is a CustomerNotFoundError
func IsCustomerNotFoundError(err error) bool {
	var cnf *CustomerNotFoundError
	return errors.As(err, &cnf)
}

// IsValidationError checks if an error is a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsStorageCapacityError checks if an error is a StorageCapacityError
func IsStorageCapacityError(err error) bool {
	var sce *StorageCapacityError
	return errors.As(err, &sce)
}

// IsPersistenceError checks if an error is a PersistenceError
func IsPersistenceError(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
