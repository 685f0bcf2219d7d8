package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssalihyetim/jobforge/internal/types"
)

const testArchivesJSON = `[
	{
		"id": "arch-001",
		"original_job_id": "job-100",
		"archive_date": "2025-06-01T00:00:00Z",
		"job_snapshot": {
			"part_name": "Landing Gear Bracket",
			"material": "Ti-6Al-4V",
			"quantity": 4,
			"assigned_processes": ["5-axis milling", "anodizing"]
		},
		"task_snapshots": [
			{
				"id": "t1",
				"name": "Rough Milling",
				"category": "manufacturing",
				"process_type": "5-axis milling",
				"operation_index": 1,
				"estimated_duration_hours": 6
			}
		],
		"subtask_snapshots": [
			{"id": "s1", "task_id": "t1", "name": "Fixture Setup", "operation_index": 1}
		],
		"performance_data": {
			"total_duration_hours": 12.5,
			"quality_score": 9.2,
			"on_time_delivery": true,
			"efficiency_rating": 8.5
		},
		"completed_forms": {"setup_sheets": 2}
	}
]`

const testOrderJSON = `[
	{
		"part_name": "Landing Gear Bracket",
		"material": "Ti-6Al-4V",
		"quantity": 4,
		"assigned_processes": ["5-axis milling", "anodizing"]
	}
]`

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSuggestCommand_MissingOrderFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	cmd := exec.Command(binaryPath, "suggest",
		"--out", filepath.Join(tmpDir, "out.json"))
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestSuggestCommand_MissingArchiveSource(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	orderFile := writeTestFile(t, tmpDir, "order.json", testOrderJSON)

	cmd := exec.Command(binaryPath, "suggest",
		"--order", orderFile,
		"--out", filepath.Join(tmpDir, "out.json"))
	cmd.Env = append(os.Environ(), "DATABASE_URL=")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "no archive source configured")
}

func TestSuggestCommand_InvalidOrderFile(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	archivesFile := writeTestFile(t, tmpDir, "archives.json", testArchivesJSON)

	cmd := exec.Command(binaryPath, "suggest",
		"--archives", archivesFile,
		"--order", "/nonexistent/order.json",
		"--out", filepath.Join(tmpDir, "out.json"))
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "order.json")
}

func TestSuggestCommand_InvalidDeliveryDate(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	archivesFile := writeTestFile(t, tmpDir, "archives.json", testArchivesJSON)
	orderFile := writeTestFile(t, tmpDir, "order.json", testOrderJSON)

	cmd := exec.Command(binaryPath, "suggest",
		"--archives", archivesFile,
		"--order", orderFile,
		"--delivery-date", "next tuesday",
		"--out", filepath.Join(tmpDir, "out.json"))
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "invalid date")
}

func TestSuggestCommand_ValidInput(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	archivesFile := writeTestFile(t, tmpDir, "archives.json", testArchivesJSON)
	orderFile := writeTestFile(t, tmpDir, "order.json", testOrderJSON)
	outputFile := filepath.Join(tmpDir, "suggestions.json")

	cmd := exec.Command(binaryPath, "suggest",
		"--archives", archivesFile,
		"--order", orderFile,
		"--delivery-date", "2026-12-01",
		"--out", outputFile)
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "command should succeed: %s", string(output))
	assert.Contains(t, string(output), "Successfully generated")

	outputContent, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	var suggestions []types.ArchiveDrivenJobSuggestion
	require.NoError(t, json.Unmarshal(outputContent, &suggestions))
	require.NotEmpty(t, suggestions)
	assert.Equal(t, "arch-001", suggestions[0].SourceArchiveID)
	assert.Greater(t, suggestions[0].SimilarityScore, 90.0)
}

func TestParseDate_RFC3339(t *testing.T) {
	ts, err := parseDate("2026-12-01T08:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 12, 1, 8, 0, 0, 0, time.UTC), ts)
}

func TestParseDate_BareDate(t *testing.T) {
	ts, err := parseDate("2026-12-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC), ts)
}

func TestParseDate_Empty(t *testing.T) {
	ts, err := parseDate("")
	require.NoError(t, err)
	assert.True(t, ts.IsZero())
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := parseDate("next tuesday")
	assert.Error(t, err)
}
