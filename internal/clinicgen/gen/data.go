package gen

// Shared fixed lists and lookup tables for synthetic clinic data.

var Specializations = []string{
	"Orthopedic Physical Therapy",
	"Sports Physical Therapy",
	"Neurological Physical Therapy",
	"Geriatric Physical Therapy",
	"Manual Therapy",
	"Pediatric Physical Therapy",
}

// StaffPattern fixes working days, hours and daily capacity together so the
// three can never be combined into an impossible schedule.
type StaffPattern struct {
	Name        string
	WorkingDays string
	StartTime   string
	EndTime     string
	MaxPatients int
}

var (
	PatternFullTime = StaffPattern{
		Name:        "full-time",
		WorkingDays: "Mon,Tue,Wed,Thu,Fri",
		StartTime:   "08:00",
		EndTime:     "17:00",
		MaxPatients: 12,
	}
	PatternMorning = StaffPattern{
		Name:        "part-time-morning",
		WorkingDays: "Mon,Wed,Fri",
		StartTime:   "08:00",
		EndTime:     "13:00",
		MaxPatients: 6,
	}
	PatternAfternoon = StaffPattern{
		Name:        "part-time-afternoon",
		WorkingDays: "Tue,Thu,Fri",
		StartTime:   "13:00",
		EndTime:     "18:00",
		MaxPatients: 6,
	}
)

// patternFor assigns staffing patterns by therapist index: the last two
// slots go to the part-time patterns, everyone else is full-time.
func patternFor(i, total int) StaffPattern {
	switch {
	case total >= 3 && i == total-2:
		return PatternMorning
	case total >= 3 && i == total-1:
		return PatternAfternoon
	default:
		return PatternFullTime
	}
}

// CancellationPhrases maps each reason category to its fixed detail texts.
var CancellationPhrases = map[string][]string{
	"Personal":       {"Family emergency", "Personal commitment", "Childcare issues", "Travel conflict"},
	"Medical":        {"Feeling unwell", "Other medical appointment", "Injury worsened", "Doctor advised rest"},
	"Work":           {"Work meeting", "Unable to leave work", "Business travel", "Shift change"},
	"Transportation": {"Car trouble", "Public transport delay", "Traffic jam", "No ride available"},
	"Weather":        {"Heavy rain", "Snow storm", "Icy roads", "Severe weather warning"},
	"Other":          {"Forgot appointment", "Double booked", "Financial reasons", "No longer needed"},
}

// TaskSpec fixes the static attributes of a reception task type.
type TaskSpec struct {
	Type             string
	Priority         int
	EstimatedMinutes int
	// NeedsAppointment marks types that always reference an appointment and
	// never a bare patient.
	NeedsAppointment bool
}

var TaskSpecs = []TaskSpec{
	{Type: "Appointment Confirmation", Priority: 2, EstimatedMinutes: 3, NeedsAppointment: true},
	{Type: "Insurance Verification", Priority: 3, EstimatedMinutes: 8},
	{Type: "Payment Processing", Priority: 2, EstimatedMinutes: 5},
	{Type: "Patient Check-in", Priority: 1, EstimatedMinutes: 2, NeedsAppointment: true},
	{Type: "Reminder Call", Priority: 3, EstimatedMinutes: 4},
	{Type: "Follow-up", Priority: 4, EstimatedMinutes: 6},
}

var Assignees = []string{"Sarah", "Mike", "Jennifer", "Auto-System"}
