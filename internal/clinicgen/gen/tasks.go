package gen

import (
	"fmt"
	"time"

	"github.com/nroy-dev/clinicgen/internal/clinicgen/logger"
	"github.com/nroy-dev/clinicgen/internal/clinicgen/model"
)

// GenerateTasks produces n reception workflow tasks referencing generated
// appointment and patient keys. Priority and estimated duration are static
// per task type; status depends on the task's age relative to the run time.
func (g *Generator) GenerateTasks(n int, apptIDs, patientIDs []int64) ([]model.ReceptionTask, error) {
	if len(apptIDs) == 0 || len(patientIDs) == 0 {
		return nil, fmt.Errorf("gen: task generation requires appointment and patient keys; got %d/%d", len(apptIDs), len(patientIDs))
	}

	logger.L().Infow("Generating reception tasks", "count", n)

	tasks := make([]model.ReceptionTask, 0, n)
	for i := 0; i < n; i++ {
		spec := TaskSpecs[g.rng.Intn(len(TaskSpecs))]

		task := model.ReceptionTask{
			TaskType:         spec.Type,
			Priority:         spec.Priority,
			AssignedTo:       Assignees[g.rng.Intn(len(Assignees))],
			EstimatedMinutes: spec.EstimatedMinutes,
			Notes:            g.maybeNote(0.3),
		}

		if spec.NeedsAppointment {
			id := g.pickID(apptIDs)
			task.AppointmentID = &id
		} else {
			pid := g.pickID(patientIDs)
			task.PatientID = &pid
			if g.coin(0.7) {
				aid := g.pickID(apptIDs)
				task.AppointmentID = &aid
			}
		}

		created := g.p.Now.AddDate(0, 0, -(1 + g.rng.Intn(30)))
		task.CreatedAt = created
		task.DueDate = created.Add(24 * time.Hour) // fixed SLA window

		if created.Before(g.p.Now.Add(-24 * time.Hour)) {
			// old enough to have reached a terminal state
			if g.coin(0.5) {
				task.Status = model.TaskCompleted
				done := created.Add(time.Duration(1+g.rng.Intn(48)) * time.Hour)
				actual := spec.EstimatedMinutes - 2 + g.rng.Intn(6)
				task.CompletedDate = &done
				task.ActualMinutes = &actual
			} else {
				task.Status = model.TaskCancelled
			}
		} else {
			if g.coin(0.5) {
				task.Status = model.TaskPending
			} else {
				task.Status = model.TaskInProgress
			}
		}

		tasks = append(tasks, task)
	}

	logger.L().Debugw("Reception tasks generated", "count", len(tasks))
	return tasks, nil
}
