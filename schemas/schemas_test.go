package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssalihyetim/jobforge/internal/schemas"
)

var schemaFiles = []string{
	"order_item.schema.json",
	"order_items.schema.json",
	"job_archive.schema.json",
	"job_archives.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestOrderItemSchema_AcceptsValidItem(t *testing.T) {
	item := `{
		"part_name": "Landing Gear Bracket",
		"material": "Ti-6Al-4V",
		"quantity": 4,
		"assigned_processes": ["5-axis milling", "anodizing"]
	}`

	schema, err := os.ReadFile("order_item.schema.json")
	require.NoError(t, err)

	err = schemas.ValidateJSONString(string(schema), item)
	assert.NoError(t, err)
}

func TestOrderItemSchema_RejectsMissingPartName(t *testing.T) {
	item := `{"material": "Ti-6Al-4V", "quantity": 4}`

	schema, err := os.ReadFile("order_item.schema.json")
	require.NoError(t, err)

	err = schemas.ValidateJSONString(string(schema), item)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "part_name")
}

func TestJobArchiveSchema_AcceptsValidArchive(t *testing.T) {
	archive := `{
		"id": "arch-001",
		"original_job_id": "job-100",
		"archive_date": "2025-06-01T00:00:00Z",
		"job_snapshot": {
			"part_name": "Landing Gear Bracket",
			"material": "Ti-6Al-4V",
			"quantity": 4
		},
		"task_snapshots": [
			{
				"id": "t1",
				"name": "Rough Milling",
				"category": "manufacturing",
				"operation_index": 1
			}
		],
		"performance_data": {
			"total_duration_hours": 12.5,
			"quality_score": 9.2,
			"on_time_delivery": true
		}
	}`

	schema, err := os.ReadFile("job_archive.schema.json")
	require.NoError(t, err)

	err = schemas.ValidateJSONString(string(schema), archive)
	assert.NoError(t, err)
}

func TestJobArchiveSchema_RejectsBadCategory(t *testing.T) {
	archive := `{
		"id": "arch-001",
		"original_job_id": "job-100",
		"archive_date": "2025-06-01T00:00:00Z",
		"job_snapshot": {"part_name": "Bracket"},
		"task_snapshots": [
			{"id": "t1", "name": "Rough Milling", "category": "marketing"}
		]
	}`

	schema, err := os.ReadFile("job_archive.schema.json")
	require.NoError(t, err)

	err = schemas.ValidateJSONString(string(schema), archive)
	assert.Error(t, err)
}

func TestJobArchivesSchema_ValidatesWholeFile(t *testing.T) {
	archives := `[
		{
			"id": "arch-001",
			"original_job_id": "job-100",
			"archive_date": "2025-06-01T00:00:00Z",
			"job_snapshot": {"part_name": "Bracket"}
		}
	]`

	err := schemas.ValidateJSON("job_archives.schema.json", writeTemp(t, archives))
	assert.NoError(t, err)
}

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "archives.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
