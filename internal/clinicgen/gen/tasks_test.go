package gen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nroy-dev/clinicgen/internal/clinicgen/model"
)

func TestGenerateTasks_RequiresKeys(t *testing.T) {
	g := testGenerator(t, 2)

	_, err := g.GenerateTasks(10, nil, idRange(5))
	assert.Error(t, err, "missing appointment keys must fail")

	_, err = g.GenerateTasks(10, idRange(5), nil)
	assert.Error(t, err, "missing patient keys must fail")
}

func TestGenerateTasks_StaticTypeAttributes(t *testing.T) {
	specByType := map[string]TaskSpec{}
	for _, s := range TaskSpecs {
		specByType[s.Type] = s
	}

	g := testGenerator(t, 47)
	tasks, err := g.GenerateTasks(500, idRange(100), idRange(50))
	require.NoError(t, err)
	require.Len(t, tasks, 500)

	for _, task := range tasks {
		spec, ok := specByType[task.TaskType]
		require.True(t, ok, "unknown task type %s", task.TaskType)
		assert.Equal(t, spec.Priority, task.Priority, "%s priority is static", task.TaskType)
		assert.Equal(t, spec.EstimatedMinutes, task.EstimatedMinutes, "%s estimate is static", task.TaskType)
		assert.Contains(t, Assignees, task.AssignedTo)
	}
}

func TestGenerateTasks_TargetReferences(t *testing.T) {
	g := testGenerator(t, 53)
	tasks, err := g.GenerateTasks(600, idRange(100), idRange(50))
	require.NoError(t, err)

	for _, task := range tasks {
		switch task.TaskType {
		case "Appointment Confirmation", "Patient Check-in":
			require.NotNil(t, task.AppointmentID, "%s must reference an appointment", task.TaskType)
			assert.Nil(t, task.PatientID, "%s carries no patient reference", task.TaskType)
		default:
			require.NotNil(t, task.PatientID, "%s must reference a patient", task.TaskType)
			assert.True(t, *task.PatientID >= 1 && *task.PatientID <= 50, "patient FK out of range")
		}
		if task.AppointmentID != nil {
			assert.True(t, *task.AppointmentID >= 1 && *task.AppointmentID <= 100, "appointment FK out of range")
		}
	}
}

func TestGenerateTasks_AgeDependentStatus(t *testing.T) {
	g := testGenerator(t, 59)
	tasks, err := g.GenerateTasks(600, idRange(100), idRange(50))
	require.NoError(t, err)

	terminal, open := 0, 0
	for _, task := range tasks {
		if task.CreatedAt.Before(testNow.Add(-24 * time.Hour)) {
			terminal++
			assert.Contains(t, []model.TaskStatus{model.TaskCompleted, model.TaskCancelled}, task.Status,
				"old task must be terminal, got %s", task.Status)
		} else {
			open++
			assert.Contains(t, []model.TaskStatus{model.TaskPending, model.TaskInProgress}, task.Status,
				"recent task must be open, got %s", task.Status)
		}
	}
	assert.Greater(t, terminal, 0)
	assert.Greater(t, open, 0)
}

func TestGenerateTasks_CompletionFields(t *testing.T) {
	g := testGenerator(t, 61)
	tasks, err := g.GenerateTasks(600, idRange(100), idRange(50))
	require.NoError(t, err)

	completed := 0
	for _, task := range tasks {
		if task.Status == model.TaskCompleted {
			completed++
			require.NotNil(t, task.CompletedDate, "completed task missing completion time")
			require.NotNil(t, task.ActualMinutes, "completed task missing actual duration")
			assert.True(t, task.CompletedDate.After(task.CreatedAt), "completion before creation")
			assert.True(t, *task.ActualMinutes >= task.EstimatedMinutes-2 && *task.ActualMinutes <= task.EstimatedMinutes+3,
				"actual duration %d too far from estimate %d", *task.ActualMinutes, task.EstimatedMinutes)
		} else {
			assert.Nil(t, task.CompletedDate, "%s task carries completion time", task.Status)
			assert.Nil(t, task.ActualMinutes, "%s task carries actual duration", task.Status)
		}

		assert.Equal(t, task.CreatedAt.Add(24*time.Hour), task.DueDate, "due date is a fixed 24h SLA")
	}
	assert.Greater(t, completed, 0)
}
