package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ssalihyetim/jobforge/internal/types"
)

func TestPrintSuggestions(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	suggestions := []types.ArchiveDrivenJobSuggestion{
		{
			PartName:           "Landing Gear Bracket",
			SimilarityScore:    92.5,
			ConfidenceLevel:    88.0,
			RecommendationType: types.RecommendationExactMatch,
		},
		{
			PartName:           "Hydraulic Manifold",
			SimilarityScore:    61.0,
			ConfidenceLevel:    55.0,
			RecommendationType: types.RecommendationSimilarPart,
		},
	}

	p.PrintSuggestions(suggestions)
	output := buf.String()

	assert.Contains(t, output, "RANKED SUGGESTIONS")
	assert.Contains(t, output, "Landing Gear Bracket")
	assert.Contains(t, output, "92.5")
	assert.Contains(t, output, "Hydraulic Manifold")
	assert.Contains(t, output, string(types.RecommendationExactMatch))
}

func TestPrintSuggestions_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSuggestions(nil)

	assert.Empty(t, buf.String())
}

func TestPrintPrediction(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	prediction := &types.PerformancePrediction{
		PredictedDurationHours:    12.5,
		PredictedQualityScore:     8.4,
		OnTimeDeliveryProbability: 75,
		ConfidenceLevel:           60,
		ArchivesAnalyzed:          12,
		RiskFactors:               []string{"On-time delivery rate below 80%"},
	}

	p.PrintPrediction(prediction)
	output := buf.String()

	assert.Contains(t, output, "PERFORMANCE PREDICTION")
	assert.Contains(t, output, "12.5 hours")
	assert.Contains(t, output, "8.4 / 10")
	assert.Contains(t, output, "12 archives")
	assert.Contains(t, output, "On-time delivery rate")
}

func TestPrintPrediction_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintPrediction(nil)

	assert.Empty(t, buf.String())
}

func TestPrintInheritance(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	plan := &types.ProcessInheritance{
		SourceJobID: "job-834",
		Processes: []types.InheritedProcess{
			{ProcessType: "5-Axis Milling", AdaptationRequired: true},
			{ProcessType: "Deburring"},
		},
		SetupOptimizations: []types.SetupOptimization{
			{Description: "Reuse proven fixture setup"},
		},
	}

	p.PrintInheritance(plan)
	output := buf.String()

	assert.Contains(t, output, "INHERITED PROCESS PLAN")
	assert.Contains(t, output, "job-834")
	assert.Contains(t, output, "5-Axis Milling")
	assert.Contains(t, output, "adaptation required")
	assert.Contains(t, output, "1 setup")
}

func TestPrintSynthesizedJob(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	job := &types.SynthesizedJob{
		Job: types.Job{
			ID:       "job-1700000000000-archive",
			PartName: "Wing Rib Segment",
		},
		Tasks:    []types.Task{{ID: "t1"}, {ID: "t2"}},
		Subtasks: []types.Subtask{{ID: "s1"}},
		ProcessingNotes: []string{
			"Applied setup optimization: Reuse proven fixture setup",
		},
	}

	p.PrintSynthesizedJob(job)
	output := buf.String()

	assert.Contains(t, output, "SYNTHESIZED JOB")
	assert.Contains(t, output, "job-1700000000000-archive")
	assert.Contains(t, output, "Wing Rib Segment")
	assert.Contains(t, output, "Tasks:     2")
	assert.Contains(t, output, "Applied setup optimization")
}

func TestPrintValidation_WithProblems(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	validation := &types.OrderValidation{
		Errors:   []string{"part name is required"},
		Warnings: []string{"due date is less than 7 days away"},
	}

	p.PrintValidation(validation)
	output := buf.String()

	assert.Contains(t, output, "ORDER VALIDATION")
	assert.Contains(t, output, "part name is required")
	assert.Contains(t, output, "due date is less than 7 days")
}

func TestPrintValidation_Valid(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintValidation(&types.OrderValidation{IsValid: true})
	output := buf.String()

	assert.Contains(t, output, "ORDER IS VALID")
}

func TestPrintBox_LongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	suggestions := []types.ArchiveDrivenJobSuggestion{
		{
			PartName: "A Very Long Part Name That Should Be Truncated To Fit The Box",
		},
	}

	p.PrintSuggestions(suggestions)
	output := buf.String()

	// Should contain box characters
	assert.True(t, strings.Contains(output, "┌"))
	assert.True(t, strings.Contains(output, "└"))
	assert.True(t, strings.Contains(output, "│"))
}
