// Package store is the persistence collaborator: it owns the relational
// schema, seeds the treatment catalog, and writes a generated batch in one
// all-or-nothing transaction. MySQL and PostgreSQL are supported through the
// standard database/sql drivers.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"

	"github.com/nroy-dev/clinicgen/internal/clinicgen/logger"
	"github.com/nroy-dev/clinicgen/internal/clinicgen/model"
)

type Store struct {
	db     *sql.DB
	driver string
}

// BuildDSN constructs a DSN for postgres/mysql.
func BuildDSN(driver, user, pass, host string, port int, db string) string {
	if driver == "postgres" {
		return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable", user, pass, host, port, db)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&multiStatements=true", user, pass, host, port, db)
}

// Open connects to the store. Only "postgres" and "mysql" drivers are known.
func Open(driver, dsn string) (*Store, error) {
	if driver != "postgres" && driver != "mysql" {
		return nil, fmt.Errorf("store: unsupported driver %q", driver)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", driver, err)
	}
	return &Store{db: db, driver: driver}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// ph returns the driver's placeholder for the i-th (1-based) argument.
func (s *Store) ph(i int) string {
	if s.driver == "postgres" {
		return fmt.Sprintf("$%d", i)
	}
	return "?"
}

// placeholders builds "(ph1,ph2,...,phN)".
func (s *Store) placeholders(n int) string {
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = s.ph(i + 1)
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// EnsureSchema drops and recreates the clinic tables. Destructive on
// purpose: repeated generation runs against a populated store would
// duplicate data.
func (s *Store) EnsureSchema(ctx context.Context) error {
	logger.L().Infow("Creating schema", "driver", s.driver)
	for _, stmt := range ddlStatements(s.driver) {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("store: ddl failed: %w", err)
		}
	}
	return nil
}

// SeedTreatments inserts the default treatment catalog.
func (s *Store) SeedTreatments(ctx context.Context) error {
	catalog := DefaultCatalog()
	logger.L().Infow("Seeding treatment catalog", "count", len(catalog))

	stmt := "INSERT INTO treatments (treatment_id, treatment_name, treatment_code, duration_minutes, base_price, description, requires_equipment, category, is_active) VALUES " + s.placeholders(9)
	for _, tr := range catalog {
		if _, err := s.db.ExecContext(ctx, stmt,
			tr.ID, tr.Name, tr.Code, tr.DurationMinutes, tr.BasePrice,
			tr.Description, tr.NeedsEquipment, tr.Category, tr.Active); err != nil {
			return fmt.Errorf("store: seed treatment %s: %w", tr.Code, err)
		}
	}
	return nil
}

// Treatments loads the active treatment catalog the engine references.
func (s *Store) Treatments(ctx context.Context) ([]model.Treatment, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT treatment_id, treatment_name, treatment_code, duration_minutes, base_price, description, requires_equipment, category, is_active FROM treatments WHERE is_active = true")
	if err != nil {
		return nil, fmt.Errorf("store: load treatments: %w", err)
	}
	defer rows.Close()

	var catalog []model.Treatment
	for rows.Next() {
		var tr model.Treatment
		if err := rows.Scan(&tr.ID, &tr.Name, &tr.Code, &tr.DurationMinutes, &tr.BasePrice,
			&tr.Description, &tr.NeedsEquipment, &tr.Category, &tr.Active); err != nil {
			return nil, fmt.Errorf("store: scan treatment: %w", err)
		}
		catalog = append(catalog, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: read treatments: %w", err)
	}
	return catalog, nil
}

// InsertBatch writes one generation batch inside a single transaction in
// foreign-key order. Any failure rolls the whole batch back; partial writes
// are never left visible.
func (s *Store) InsertBatch(ctx context.Context, batch *model.Batch) (err error) {
	logger.L().Infow("Inserting batch",
		"patients", len(batch.Patients),
		"therapists", len(batch.Therapists),
		"appointments", len(batch.Appointments),
		"cancellations", len(batch.Cancellations),
		"tasks", len(batch.Tasks))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
				logger.L().Errorw("Rollback failed", "error", rbErr)
			}
		}
	}()

	if err = s.insertPatients(ctx, tx, batch.Patients); err != nil {
		return err
	}
	if err = s.insertTherapists(ctx, tx, batch.Therapists); err != nil {
		return err
	}
	if err = s.insertAppointments(ctx, tx, batch.Appointments); err != nil {
		return err
	}
	if err = s.insertCancellations(ctx, tx, batch.Cancellations); err != nil {
		return err
	}
	if err = s.insertTasks(ctx, tx, batch.Tasks); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("store: commit batch: %w", err)
	}
	return nil
}

func (s *Store) insertPatients(ctx context.Context, tx *sql.Tx, patients []model.Patient) error {
	stmt := "INSERT INTO patients (patient_id, first_name, last_name, email, phone, date_of_birth, gender, address, insurance_type, primary_condition, registration_date, emergency_contact, emergency_phone, notes) VALUES " + s.placeholders(14)
	ps, err := tx.PrepareContext(ctx, stmt)
	if err != nil {
		return fmt.Errorf("store: prepare patients: %w", err)
	}
	defer ps.Close()

	for _, p := range patients {
		if _, err := ps.ExecContext(ctx,
			p.ID, p.FirstName, p.LastName, p.Email, p.Phone, p.DateOfBirth, p.Gender,
			p.Address, p.InsuranceType, p.PrimaryCondition, p.RegistrationDate,
			p.EmergencyContact, p.EmergencyPhone, p.Notes); err != nil {
			return fmt.Errorf("store: insert patient %d: %w", p.ID, err)
		}
	}
	return nil
}

func (s *Store) insertTherapists(ctx context.Context, tx *sql.Tx, therapists []model.Therapist) error {
	stmt := "INSERT INTO therapists (therapist_id, first_name, last_name, email, phone, specialization, license_number, hire_date, hourly_rate, max_patients_per_day, working_days, start_time, end_time, is_active) VALUES " + s.placeholders(14)
	ps, err := tx.PrepareContext(ctx, stmt)
	if err != nil {
		return fmt.Errorf("store: prepare therapists: %w", err)
	}
	defer ps.Close()

	for _, t := range therapists {
		if _, err := ps.ExecContext(ctx,
			t.ID, t.FirstName, t.LastName, t.Email, t.Phone, t.Specialization,
			t.LicenseNumber, t.HireDate, t.HourlyRate, t.MaxPatientsDay,
			t.WorkingDays, t.StartTime, t.EndTime, t.Active); err != nil {
			return fmt.Errorf("store: insert therapist %d: %w", t.ID, err)
		}
	}
	return nil
}

func (s *Store) insertAppointments(ctx context.Context, tx *sql.Tx, appts []model.Appointment) error {
	stmt := "INSERT INTO appointments (appointment_id, patient_id, therapist_id, treatment_id, appointment_date, appointment_time, duration_minutes, status, booking_date, booking_method, price, insurance_covered, copay_amount, notes, reminder_sent, check_in_time, treatment_start_time, treatment_end_time) VALUES " + s.placeholders(18)
	ps, err := tx.PrepareContext(ctx, stmt)
	if err != nil {
		return fmt.Errorf("store: prepare appointments: %w", err)
	}
	defer ps.Close()

	for _, a := range appts {
		if _, err := ps.ExecContext(ctx,
			a.ID, a.PatientID, a.TherapistID, a.TreatmentID,
			a.Start, a.Start.Format("15:04"), a.DurationMinutes, string(a.Status),
			a.BookingDate, a.BookingMethod, a.Price, a.InsuranceCover, a.CopayAmount,
			a.Notes, a.ReminderSent, a.CheckInTime, a.TreatmentStart, a.TreatmentEnd); err != nil {
			return fmt.Errorf("store: insert appointment %d: %w", a.ID, err)
		}
	}
	return nil
}

func (s *Store) insertCancellations(ctx context.Context, tx *sql.Tx, cancels []model.Cancellation) error {
	stmt := "INSERT INTO cancellations (appointment_id, cancelled_by, cancellation_date, hours_before_appointment, reason_category, reason_detail, refund_issued, refund_amount, rescheduled) VALUES " + s.placeholders(9)
	ps, err := tx.PrepareContext(ctx, stmt)
	if err != nil {
		return fmt.Errorf("store: prepare cancellations: %w", err)
	}
	defer ps.Close()

	for _, c := range cancels {
		if _, err := ps.ExecContext(ctx,
			c.AppointmentID, c.CancelledBy, c.CancelledAt, c.HoursBefore,
			c.ReasonCategory, c.ReasonDetail, c.RefundIssued, c.RefundAmount,
			c.Rescheduled); err != nil {
			return fmt.Errorf("store: insert cancellation for appointment %d: %w", c.AppointmentID, err)
		}
	}
	return nil
}

func (s *Store) insertTasks(ctx context.Context, tx *sql.Tx, tasks []model.ReceptionTask) error {
	stmt := "INSERT INTO reception_tasks (task_type, patient_id, appointment_id, priority, status, assigned_to, estimated_duration_minutes, actual_duration_minutes, due_date, completed_date, notes, created_at) VALUES " + s.placeholders(12)
	ps, err := tx.PrepareContext(ctx, stmt)
	if err != nil {
		return fmt.Errorf("store: prepare tasks: %w", err)
	}
	defer ps.Close()

	for i, t := range tasks {
		if _, err := ps.ExecContext(ctx,
			t.TaskType, t.PatientID, t.AppointmentID, t.Priority, string(t.Status),
			t.AssignedTo, t.EstimatedMinutes, t.ActualMinutes, t.DueDate,
			t.CompletedDate, t.Notes, t.CreatedAt); err != nil {
			return fmt.Errorf("store: insert task %d: %w", i, err)
		}
	}
	return nil
}

// Summary holds post-run aggregates for the log line at the end of a run.
type Summary struct {
	Patients      int
	Therapists    int
	Appointments  int
	Cancellations int
	Tasks         int
	AvgCompleted  float64 // average price of completed appointments
}

// LoadSummary reads row counts and the completed-revenue average back from
// the store after a run.
func (s *Store) LoadSummary(ctx context.Context) (Summary, error) {
	var sum Summary
	counts := []struct {
		table string
		dest  *int
	}{
		{"patients", &sum.Patients},
		{"therapists", &sum.Therapists},
		{"appointments", &sum.Appointments},
		{"cancellations", &sum.Cancellations},
		{"reception_tasks", &sum.Tasks},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+c.table).Scan(c.dest); err != nil {
			return sum, fmt.Errorf("store: count %s: %w", c.table, err)
		}
	}

	var avg sql.NullFloat64
	if err := s.db.QueryRowContext(ctx,
		"SELECT AVG(price) FROM appointments WHERE status = 'Completed'").Scan(&avg); err != nil {
		return sum, fmt.Errorf("store: avg completed price: %w", err)
	}
	if avg.Valid {
		sum.AvgCompleted = avg.Float64
	}
	return sum, nil
}
