package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ssalihyetim/jobforge/internal/observability"
	"github.com/ssalihyetim/jobforge/internal/schemas"
	"github.com/ssalihyetim/jobforge/internal/types"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Rank archived jobs as suggestions for an incoming order",
	Long:  "Scores every order item against the job archive and produces a ranked list of archive-driven job suggestions as JSON, strongest precedent first.",
	RunE:  runSuggest,
}

var (
	suggestOrder    string
	suggestDelivery string
	suggestCustomer string
	suggestOutput   string
)

func init() {
	suggestCmd.Flags().StringVarP(&suggestOrder, "order", "i", "", "Path to input order items JSON file (required)")
	suggestCmd.Flags().StringVarP(&suggestDelivery, "delivery-date", "d", "", "Requested delivery date, RFC 3339 or YYYY-MM-DD")
	suggestCmd.Flags().StringVarP(&suggestCustomer, "customer", "c", "", "Customer ID to restrict the archive search to")
	suggestCmd.Flags().StringVarP(&suggestOutput, "out", "o", "", "Path to output suggestions JSON file (required)")

	if err := suggestCmd.MarkFlagRequired("order"); err != nil {
		panic(fmt.Sprintf("failed to mark order flag as required: %v", err))
	}
	if err := suggestCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	// Validate the order file against its schema before unmarshalling,
	// when the schema can be located.
	if schemaPath := schemas.ResolveSchemaPath("schemas/order_items.schema.json"); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, suggestOrder); err != nil {
			return fmt.Errorf("order file failed schema validation: %w", err)
		}
	}

	var items []types.OrderItem
	if err := readJSONFile(suggestOrder, &items); err != nil {
		return err
	}

	delivery, err := parseDate(suggestDelivery)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	eng, _, cleanup, err := buildEngine(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	suggestions, err := eng.GenerateSuggestions(ctx, items, delivery, suggestCustomer)
	if err != nil {
		return fmt.Errorf("failed to generate suggestions: %w", err)
	}
	if cfg.MaxSuggestions > 0 && len(suggestions) > cfg.MaxSuggestions {
		suggestions = suggestions[:cfg.MaxSuggestions]
	}

	if err := writeJSONFile(suggestOutput, suggestions); err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintSuggestions(suggestions)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully generated %d suggestion(s) to %s\n", len(suggestions), suggestOutput)

	return nil
}

// parseDate accepts RFC 3339 timestamps or bare dates. An empty value means
// no delivery date was requested and maps to the zero time.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	ts, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: use RFC 3339 or YYYY-MM-DD", s)
	}
	return ts, nil
}
