package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaiyomaru/fieldassign/core/assign"
)

func TestWriteCSV(t *testing.T) {
	res := assign.ScheduleResult{
		RunID: "run-1",
		Days: map[string]assign.DayResult{
			"2025-04-01": {
				Date: "2025-04-01",
				Assignments: map[string][]string{
					"river survey":    {"sato", "suzuki"},
					"harbor sampling": {},
				},
			},
		},
		Failures: map[string]string{"2025-04-02": "solver timeout"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, res))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4) // header + 2 tasks + 1 failed date

	assert.Equal(t, []string{"date", "weekday", "task", "worker1", "worker2", "worker3", "worker4"}, rows[0])
	assert.Equal(t, []string{"2025-04-01", "Tuesday", "harbor sampling", "", "", "", ""}, rows[1])
	assert.Equal(t, []string{"2025-04-01", "Tuesday", "river survey", "sato", "suzuki", "", ""}, rows[2])
	assert.Equal(t, "FAILED: solver timeout", rows[3][3])
}

func TestWriteCSVSpillsWideCrews(t *testing.T) {
	res := assign.ScheduleResult{
		Days: map[string]assign.DayResult{
			"2025-04-03": {
				Date: "2025-04-03",
				Assignments: map[string][]string{
					"big dig": {"a", "b", "c", "d", "e", "f"},
				},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, res))
	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "d,e,f", rows[1][6])
}
