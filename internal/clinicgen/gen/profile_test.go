package gen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixed reference time for deterministic runs (a Monday)
var testNow = time.Date(2025, 6, 16, 12, 0, 0, 0, time.UTC)

func testGenerator(t *testing.T, seed int64) *Generator {
	t.Helper()
	g, err := New(Params{
		Seed:         seed,
		Now:          testNow,
		Patients:     500,
		Therapists:   6,
		Appointments: 3000,
		Tasks:        200,
		PastDays:     180,
		FutureDays:   30,
	})
	require.NoError(t, err)
	return g
}

// yearsBetween computes whole years from birth to now.
func yearsBetween(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	if birth.AddDate(years, 0, 0).After(now) {
		years--
	}
	return years
}

func TestGeneratePatients_AgeWithinBrackets(t *testing.T) {
	g := testGenerator(t, 42)
	patients := g.GeneratePatients(500)
	require.Len(t, patients, 500)

	for _, p := range patients {
		age := yearsBetween(p.DateOfBirth, testNow)
		assert.GreaterOrEqual(t, age, 25, "patient %d age %d below minimum", p.ID, age)
		assert.LessOrEqual(t, age, 90, "patient %d age %d above maximum", p.ID, age)

		// birth date consistent with the derived age to within a day
		reconstructed := testNow.AddDate(-age, 0, 0)
		diff := reconstructed.Sub(p.DateOfBirth)
		if diff < 0 {
			diff = -diff
		}
		assert.LessOrEqual(t, diff, 24*time.Hour, "patient %d birth date inconsistent with age", p.ID)
	}
}

func TestGeneratePatients_Fields(t *testing.T) {
	g := testGenerator(t, 7)
	patients := g.GeneratePatients(200)

	emails := map[string]bool{}
	for _, p := range patients {
		assert.NotEmpty(t, p.FirstName)
		assert.NotEmpty(t, p.LastName)
		assert.False(t, emails[p.Email], "duplicate email %s", p.Email)
		emails[p.Email] = true

		assert.Contains(t, []string{"M", "F", "Other"}, p.Gender)
		assert.Contains(t, []string{"Public", "Private", "Self-pay"}, p.InsuranceType)
		assert.NotEmpty(t, p.PrimaryCondition)

		assert.False(t, p.RegistrationDate.After(testNow), "registration in the future")
		lookback := testNow.AddDate(0, 0, -180)
		assert.False(t, p.RegistrationDate.Before(lookback), "registration before lookback window")
	}
}

func TestGeneratePatients_KeysSequential(t *testing.T) {
	g := testGenerator(t, 3)
	patients := g.GeneratePatients(50)
	for i, p := range patients {
		assert.Equal(t, int64(i+1), p.ID)
	}
}

func TestGenerateTherapists_Patterns(t *testing.T) {
	g := testGenerator(t, 42)
	therapists := g.GenerateTherapists(6)
	require.Len(t, therapists, 6)

	// first four full-time, then one morning, one afternoon
	for i := 0; i < 4; i++ {
		assert.Equal(t, "Mon,Tue,Wed,Thu,Fri", therapists[i].WorkingDays)
		assert.Equal(t, "08:00", therapists[i].StartTime)
		assert.Equal(t, "17:00", therapists[i].EndTime)
		assert.Equal(t, 12, therapists[i].MaxPatientsDay)
	}
	assert.Equal(t, "Mon,Wed,Fri", therapists[4].WorkingDays)
	assert.Equal(t, "13:00", therapists[4].EndTime)
	assert.Equal(t, 6, therapists[4].MaxPatientsDay)

	assert.Equal(t, "Tue,Thu,Fri", therapists[5].WorkingDays)
	assert.Equal(t, "13:00", therapists[5].StartTime)
	assert.Equal(t, 6, therapists[5].MaxPatientsDay)
}

func TestGenerateTherapists_PatternFieldsNeverMixed(t *testing.T) {
	// pattern fields must always come from one enumerated pattern
	known := map[StaffPattern]bool{PatternFullTime: true, PatternMorning: true, PatternAfternoon: true}

	g := testGenerator(t, 9)
	for _, th := range g.GenerateTherapists(12) {
		got := StaffPattern{
			WorkingDays: th.WorkingDays,
			StartTime:   th.StartTime,
			EndTime:     th.EndTime,
			MaxPatients: th.MaxPatientsDay,
		}
		matched := false
		for p := range known {
			if p.WorkingDays == got.WorkingDays && p.StartTime == got.StartTime &&
				p.EndTime == got.EndTime && p.MaxPatients == got.MaxPatients {
				matched = true
			}
		}
		assert.True(t, matched, "therapist %d carries a non-enumerated schedule %+v", th.ID, got)
	}
}

func TestGenerateTherapists_Fields(t *testing.T) {
	g := testGenerator(t, 21)
	therapists := g.GenerateTherapists(6)

	licenses := map[string]bool{}
	for _, th := range therapists {
		assert.True(t, th.Active)
		assert.Greater(t, th.MaxPatientsDay, 0)
		assert.Regexp(t, `^PT\d{5}$`, th.LicenseNumber)
		assert.False(t, licenses[th.LicenseNumber], "duplicate license %s", th.LicenseNumber)
		licenses[th.LicenseNumber] = true

		assert.GreaterOrEqual(t, th.HourlyRate, 35.0)
		assert.LessOrEqual(t, th.HourlyRate, 55.01)
		assert.False(t, th.HireDate.After(testNow.AddDate(0, 0, -365)), "hired less than a year ago")
	}
}

func TestGenerate_DeterministicForSeed(t *testing.T) {
	a := testGenerator(t, 1234)
	b := testGenerator(t, 1234)

	pa := a.GeneratePatients(50)
	pb := b.GeneratePatients(50)
	assert.Equal(t, pa, pb, "same seed must reproduce the same patients")
}
