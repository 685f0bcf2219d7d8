// Package types provides type definitions for structured data used throughout the job synthesis engine.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// OrderItem is one line item of an incoming order: the part to be produced
// and how the caller expects it to be manufactured. It is immutable input.
type OrderItem struct {
	PartName          string   `json:"part_name" validate:"required,min=1"`
	Description       string   `json:"description,omitempty"`
	Material          string   `json:"material,omitempty"`
	Quantity          int      `json:"quantity,omitempty" validate:"omitempty,gt=0"`
	AssignedProcesses []string `json:"assigned_processes,omitempty"`
}

// Validate validates the OrderItem using the validator.
func (o *OrderItem) Validate() error {
	validate := validator.New()
	return validate.Struct(o)
}

// JobCreationData is the raw order data a caller submits before synthesis.
// It is validated structurally by validation.ValidateJobCreationData rather
// than rejected with an error.
type JobCreationData struct {
	OrderID           string    `json:"order_id,omitempty"`
	PartName          string    `json:"part_name"`
	Material          string    `json:"material,omitempty"`
	Quantity          int       `json:"quantity"`
	DueDate           time.Time `json:"due_date"`
	AssignedProcesses []string  `json:"assigned_processes,omitempty"`
}

// OrderValidation is the structured result of validating JobCreationData.
// Problems are reported as errors or warnings, never as a thrown failure.
type OrderValidation struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}
