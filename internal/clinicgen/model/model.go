// Package model defines the clinic entities the generator produces and the
// relational schema expects. Keys are plain int64 sequence values assigned by
// the generator's key arena and written verbatim at insert time.
package model

import "time"

// Appointment lifecycle status.
type AppointmentStatus string

const (
	StatusScheduled  AppointmentStatus = "Scheduled"
	StatusCompleted  AppointmentStatus = "Completed"
	StatusCancelled  AppointmentStatus = "Cancelled"
	StatusNoShow     AppointmentStatus = "No-show"
	StatusInProgress AppointmentStatus = "In-progress" // valid in schema, not produced by generation
)

// Reception task status.
type TaskStatus string

const (
	TaskPending    TaskStatus = "Pending"
	TaskInProgress TaskStatus = "In Progress"
	TaskCompleted  TaskStatus = "Completed"
	TaskCancelled  TaskStatus = "Cancelled"
)

type Patient struct {
	ID               int64
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	DateOfBirth      time.Time
	Gender           string // M, F, Other
	Address          string
	InsuranceType    string // Public, Private, Self-pay
	PrimaryCondition string
	RegistrationDate time.Time
	EmergencyContact string
	EmergencyPhone   string
	Notes            *string
}

type Therapist struct {
	ID             int64
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Specialization string
	LicenseNumber  string
	HireDate       time.Time
	HourlyRate     float64
	MaxPatientsDay int
	WorkingDays    string // e.g. "Mon,Tue,Wed,Thu,Fri"
	StartTime      string // "08:00"
	EndTime        string // "17:00"
	Active         bool
}

// Treatment is the external catalog entry. The generator references
// treatments, it never creates them.
type Treatment struct {
	ID              int64
	Name            string
	Code            string
	DurationMinutes int
	BasePrice       float64
	Description     string
	NeedsEquipment  bool
	Category        string // Manual Therapy, Exercise Therapy, Electrotherapy, Hydrotherapy, Assessment
	Active          bool
}

type Appointment struct {
	ID              int64
	PatientID       int64
	TherapistID     int64
	TreatmentID     int64
	Start           time.Time // appointment date + time
	DurationMinutes int
	Status          AppointmentStatus
	BookingDate     time.Time
	BookingMethod   string // Online, Phone, Walk-in, Referral
	Price           float64
	InsuranceCover  bool
	CopayAmount     float64
	Notes           *string
	ReminderSent    bool
	// Present only for Completed appointments, in strict order
	// CheckInTime < TreatmentStart < TreatmentEnd.
	CheckInTime    *time.Time
	TreatmentStart *time.Time
	TreatmentEnd   *time.Time
}

// Cancellation exists iff its appointment's status is Cancelled (1:1).
type Cancellation struct {
	AppointmentID  int64
	CancelledBy    string // Patient, Clinic, Therapist, System
	CancelledAt    time.Time
	HoursBefore    int
	ReasonCategory string // Personal, Medical, Transportation, Work, Weather, Other
	ReasonDetail   string
	RefundIssued   bool
	RefundAmount   float64
	Rescheduled    bool
}

type ReceptionTask struct {
	TaskType         string
	PatientID        *int64
	AppointmentID    *int64
	Priority         int // 1..5
	Status           TaskStatus
	AssignedTo       string
	EstimatedMinutes int
	ActualMinutes    *int
	DueDate          time.Time
	CompletedDate    *time.Time
	Notes            *string
	CreatedAt        time.Time
}

// Batch is one complete generation run, handed to the store for a single
// all-or-nothing write.
type Batch struct {
	Patients      []Patient
	Therapists    []Therapist
	Appointments  []Appointment
	Cancellations []Cancellation
	Tasks         []ReceptionTask
}
