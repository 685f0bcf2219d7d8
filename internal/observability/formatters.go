// Package observability provides structured logging setup and formatted
// output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/ssalihyetim/jobforge/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSuggestions outputs the top ranked suggestions with scores and
// recommendation levels.
func (p *Printer) PrintSuggestions(suggestions []types.ArchiveDrivenJobSuggestion) {
	if len(suggestions) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total suggestions: %d\n\n", len(suggestions)))

	count := min(len(suggestions), maxItemsToShow)
	for i := 0; i < count; i++ {
		s := suggestions[i]
		name := s.PartName
		if len(name) > 40 {
			name = name[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, name))
		sb.WriteString(fmt.Sprintf("    Similarity: %.1f  Confidence: %.1f\n", s.SimilarityScore, s.ConfidenceLevel))
		sb.WriteString(fmt.Sprintf("    Recommendation: %s\n", s.RecommendationType))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(suggestions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more suggestions", len(suggestions)-maxItemsToShow))
	}

	p.printBox("RANKED SUGGESTIONS", sb.String())
}

// PrintPrediction outputs a predicted performance summary.
func (p *Printer) PrintPrediction(prediction *types.PerformancePrediction) {
	if prediction == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Duration:    %.1f hours\n", prediction.PredictedDurationHours))
	sb.WriteString(fmt.Sprintf("Quality:     %.1f / 10\n", prediction.PredictedQualityScore))
	sb.WriteString(fmt.Sprintf("On-time:     %.0f%%\n", prediction.OnTimeDeliveryProbability))
	sb.WriteString(fmt.Sprintf("Confidence:  %.0f%% (%d archives)\n", prediction.ConfidenceLevel, prediction.ArchivesAnalyzed))

	if len(prediction.RiskFactors) > 0 {
		sb.WriteString("\nRisk Factors:\n")
		count := min(len(prediction.RiskFactors), 3)
		for i := 0; i < count; i++ {
			factor := prediction.RiskFactors[i]
			if len(factor) > 50 {
				factor = factor[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", factor))
		}
		if len(prediction.RiskFactors) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(prediction.RiskFactors)-3))
		}
	}

	p.printBox("PERFORMANCE PREDICTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintInheritance outputs an inherited process plan summary.
func (p *Printer) PrintInheritance(plan *types.ProcessInheritance) {
	if plan == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Source job: %s\n", plan.SourceJobID))
	sb.WriteString(fmt.Sprintf("Inherited %d process(es)\n\n", len(plan.Processes)))

	count := min(len(plan.Processes), maxItemsToShow)
	for i := 0; i < count; i++ {
		proc := plan.Processes[i]
		sb.WriteString(fmt.Sprintf("• %s\n", proc.ProcessType))
		if proc.AdaptationRequired {
			sb.WriteString("  (adaptation required)\n")
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(plan.Processes) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more processes", len(plan.Processes)-maxItemsToShow))
	}

	if len(plan.ProcessOptimizations) > 0 || len(plan.SetupOptimizations) > 0 {
		sb.WriteString(fmt.Sprintf("\n\nOptimizations: %d process, %d setup",
			len(plan.ProcessOptimizations), len(plan.SetupOptimizations)))
	}

	p.printBox("INHERITED PROCESS PLAN", sb.String())
}

// PrintSynthesizedJob outputs the synthesized job with its task tree counts.
func (p *Printer) PrintSynthesizedJob(job *types.SynthesizedJob) {
	if job == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Job ID:    %s\n", job.Job.ID))
	sb.WriteString(fmt.Sprintf("Part:      %s\n", job.Job.PartName))
	sb.WriteString(fmt.Sprintf("Tasks:     %d\n", len(job.Tasks)))
	sb.WriteString(fmt.Sprintf("Subtasks:  %d\n", len(job.Subtasks)))

	if len(job.ProcessingNotes) > 0 {
		sb.WriteString("\nProcessing Notes:\n")
		count := min(len(job.ProcessingNotes), 3)
		for i := 0; i < count; i++ {
			note := job.ProcessingNotes[i]
			if len(note) > 50 {
				note = note[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", note))
		}
		if len(job.ProcessingNotes) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(job.ProcessingNotes)-3))
		}
	}

	p.printBox("SYNTHESIZED JOB", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintValidation outputs any validation errors and warnings found.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidation(validation *types.OrderValidation) {
	if validation == nil || (len(validation.Errors) == 0 && len(validation.Warnings) == 0) {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ ORDER IS VALID")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d error(s), %d warning(s):\n\n",
		len(validation.Errors), len(validation.Warnings)))

	for _, e := range validation.Errors {
		msg := e
		if len(msg) > 45 {
			msg = msg[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("✗ %s\n", msg))
	}
	for _, w := range validation.Warnings {
		msg := w
		if len(msg) > 45 {
			msg = msg[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", msg))
	}

	p.printBox("ORDER VALIDATION", strings.TrimSuffix(sb.String(), "\n"))
}
