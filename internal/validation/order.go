// Package validation checks job-creation order data for structural
// problems, reporting them as errors and warnings rather than failures.
package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/ssalihyetim/jobforge/internal/types"
)

const (
	// nearDueWindow is how close a due date may be before it earns a
	// warning.
	nearDueWindow = 7 * 24 * time.Hour

	// largeQuantity is the order size above which a warning is raised.
	largeQuantity = 1000
)

// knownProcesses are the process names the shop can plan without manual
// review. Matching is case-insensitive.
var knownProcesses = map[string]bool{
	"turning":        true,
	"3-axis milling": true,
	"4-axis milling": true,
	"5-axis milling": true,
	"grinding":       true,
	"edm":            true,
	"deburring":      true,
	"heat treatment": true,
	"anodizing":      true,
	"passivation":    true,
	"inspection":     true,
	"assembly":       true,
}

// ValidateJobCreationData validates raw order data before synthesis.
// Structural problems come back as a result value; the function never
// returns a Go error.
func ValidateJobCreationData(data types.JobCreationData) types.OrderValidation {
	result := types.OrderValidation{
		Errors:   []string{},
		Warnings: []string{},
	}
	now := time.Now()

	if strings.TrimSpace(data.PartName) == "" {
		result.Errors = append(result.Errors, "part name is required")
	}

	if data.Quantity <= 0 {
		result.Errors = append(result.Errors, "quantity must be greater than zero")
	} else if data.Quantity > largeQuantity {
		result.Warnings = append(result.Warnings, fmt.Sprintf("quantity %d is unusually large; confirm material availability and capacity", data.Quantity))
	}

	switch {
	case data.DueDate.IsZero():
		result.Errors = append(result.Errors, "due date is required")
	case data.DueDate.Before(now):
		result.Errors = append(result.Errors, "due date is in the past")
	case data.DueDate.Before(now.Add(nearDueWindow)):
		result.Warnings = append(result.Warnings, "due date is less than 7 days out; expedite fees and schedule risk likely")
	}

	for _, p := range data.AssignedProcesses {
		if !knownProcesses[strings.ToLower(strings.TrimSpace(p))] {
			result.Warnings = append(result.Warnings, fmt.Sprintf("process %q is not a recognized process type", p))
		}
	}

	result.IsValid = len(result.Errors) == 0
	return result
}
