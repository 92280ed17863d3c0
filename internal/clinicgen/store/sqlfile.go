package store

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/nroy-dev/clinicgen/internal/clinicgen/logger"
	"github.com/nroy-dev/clinicgen/internal/clinicgen/model"
)

// WriteSQL emits the schema, the treatment catalog and the whole batch as a
// SQL script for offline import with psql/mysql, instead of writing to a
// live database.
func WriteSQL(w io.Writer, driver, runID string, catalog []model.Treatment, batch *model.Batch) error {
	logger.L().Infow("Writing SQL script", "driver", driver, "run_id", runID)

	if driver == "postgres" {
		fmt.Fprintf(w, "-- Generated clinic dataset (PostgreSQL), run_id=%s\n", runID)
		fmt.Fprintf(w, "-- Import with: psql -U <user> -d <database> -f <this file>\n\n")
	} else {
		fmt.Fprintf(w, "-- Generated clinic dataset (MySQL), run_id=%s\n", runID)
		fmt.Fprintf(w, "-- Import with: mysql -u <user> -p <database> < <this file>\n\n")
	}

	for _, stmt := range ddlStatements(driver) {
		fmt.Fprintln(w, stmt)
	}
	fmt.Fprintln(w)

	for _, tr := range catalog {
		fmt.Fprintf(w,
			"INSERT INTO treatments (treatment_id, treatment_name, treatment_code, duration_minutes, base_price, description, requires_equipment, category, is_active) "+
				"VALUES (%d,'%s','%s',%d,%.2f,'%s',%s,'%s',%s);\n",
			tr.ID, sqlEscape(tr.Name), sqlEscape(tr.Code), tr.DurationMinutes, tr.BasePrice,
			sqlEscape(tr.Description), sqlBool(tr.NeedsEquipment), sqlEscape(tr.Category), sqlBool(tr.Active))
	}
	fmt.Fprintf(w, "\n-- Inserted %d treatments\n\n", len(catalog))

	for _, p := range batch.Patients {
		fmt.Fprintf(w,
			"INSERT INTO patients (patient_id, first_name, last_name, email, phone, date_of_birth, gender, address, insurance_type, primary_condition, registration_date, emergency_contact, emergency_phone, notes) "+
				"VALUES (%d,'%s','%s','%s','%s','%s','%s','%s','%s','%s','%s','%s','%s',%s);\n",
			p.ID, sqlEscape(p.FirstName), sqlEscape(p.LastName), sqlEscape(p.Email), sqlEscape(p.Phone),
			sqlDate(p.DateOfBirth), p.Gender, sqlEscape(p.Address), p.InsuranceType,
			sqlEscape(p.PrimaryCondition), sqlDate(p.RegistrationDate),
			sqlEscape(p.EmergencyContact), sqlEscape(p.EmergencyPhone), sqlStringOrNull(p.Notes))
	}
	fmt.Fprintf(w, "\n-- Inserted %d patients\n\n", len(batch.Patients))

	for _, t := range batch.Therapists {
		fmt.Fprintf(w,
			"INSERT INTO therapists (therapist_id, first_name, last_name, email, phone, specialization, license_number, hire_date, hourly_rate, max_patients_per_day, working_days, start_time, end_time, is_active) "+
				"VALUES (%d,'%s','%s','%s','%s','%s','%s','%s',%.2f,%d,'%s','%s','%s',%s);\n",
			t.ID, sqlEscape(t.FirstName), sqlEscape(t.LastName), sqlEscape(t.Email), sqlEscape(t.Phone),
			sqlEscape(t.Specialization), sqlEscape(t.LicenseNumber), sqlDate(t.HireDate),
			t.HourlyRate, t.MaxPatientsDay, t.WorkingDays, t.StartTime, t.EndTime, sqlBool(t.Active))
	}
	fmt.Fprintf(w, "\n-- Inserted %d therapists\n\n", len(batch.Therapists))

	for _, a := range batch.Appointments {
		fmt.Fprintf(w,
			"INSERT INTO appointments (appointment_id, patient_id, therapist_id, treatment_id, appointment_date, appointment_time, duration_minutes, status, booking_date, booking_method, price, insurance_covered, copay_amount, notes, reminder_sent, check_in_time, treatment_start_time, treatment_end_time) "+
				"VALUES (%d,%d,%d,%d,'%s','%s',%d,'%s','%s','%s',%.2f,%s,%.2f,%s,%s,%s,%s,%s);\n",
			a.ID, a.PatientID, a.TherapistID, a.TreatmentID,
			sqlDate(a.Start), a.Start.Format("15:04"), a.DurationMinutes, a.Status,
			sqlDateTime(a.BookingDate), a.BookingMethod, a.Price, sqlBool(a.InsuranceCover),
			a.CopayAmount, sqlStringOrNull(a.Notes), sqlBool(a.ReminderSent),
			sqlTimeOrNull(a.CheckInTime), sqlTimeOrNull(a.TreatmentStart), sqlTimeOrNull(a.TreatmentEnd))
	}
	fmt.Fprintf(w, "\n-- Inserted %d appointments\n\n", len(batch.Appointments))

	for _, c := range batch.Cancellations {
		fmt.Fprintf(w,
			"INSERT INTO cancellations (appointment_id, cancelled_by, cancellation_date, hours_before_appointment, reason_category, reason_detail, refund_issued, refund_amount, rescheduled) "+
				"VALUES (%d,'%s','%s',%d,'%s','%s',%s,%.2f,%s);\n",
			c.AppointmentID, c.CancelledBy, sqlDateTime(c.CancelledAt), c.HoursBefore,
			c.ReasonCategory, sqlEscape(c.ReasonDetail), sqlBool(c.RefundIssued),
			c.RefundAmount, sqlBool(c.Rescheduled))
	}
	fmt.Fprintf(w, "\n-- Inserted %d cancellations\n\n", len(batch.Cancellations))

	for _, t := range batch.Tasks {
		fmt.Fprintf(w,
			"INSERT INTO reception_tasks (task_type, patient_id, appointment_id, priority, status, assigned_to, estimated_duration_minutes, actual_duration_minutes, due_date, completed_date, notes, created_at) "+
				"VALUES ('%s',%s,%s,%d,'%s','%s',%d,%s,'%s',%s,%s,'%s');\n",
			t.TaskType, sqlInt64OrNull(t.PatientID), sqlInt64OrNull(t.AppointmentID),
			t.Priority, t.Status, sqlEscape(t.AssignedTo), t.EstimatedMinutes,
			sqlIntOrNull(t.ActualMinutes), sqlDateTime(t.DueDate),
			sqlTimeOrNull(t.CompletedDate), sqlStringOrNull(t.Notes), sqlDateTime(t.CreatedAt))
	}
	fmt.Fprintf(w, "\n-- Inserted %d reception tasks\n", len(batch.Tasks))

	return nil
}

// sqlEscape escapes single quotes for safe inline SQL generation.
func sqlEscape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func sqlBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func sqlDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func sqlDateTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

func sqlTimeOrNull(t *time.Time) string {
	if t == nil {
		return "NULL"
	}
	return "'" + sqlDateTime(*t) + "'"
}

func sqlStringOrNull(s *string) string {
	if s == nil {
		return "NULL"
	}
	return "'" + sqlEscape(*s) + "'"
}

func sqlInt64OrNull(n *int64) string {
	if n == nil {
		return "NULL"
	}
	return fmt.Sprintf("%d", *n)
}

func sqlIntOrNull(n *int) string {
	if n == nil {
		return "NULL"
	}
	return fmt.Sprintf("%d", *n)
}
