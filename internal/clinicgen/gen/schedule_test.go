package gen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nroy-dev/clinicgen/internal/clinicgen/model"
)

func testCatalog() []model.Treatment {
	return []model.Treatment{
		{ID: 1, Name: "Manual Therapy", Code: "MT-001", DurationMinutes: 45, BasePrice: 75.00, Category: "Manual Therapy", Active: true},
		{ID: 2, Name: "Electrotherapy", Code: "ELECTRO-001", DurationMinutes: 30, BasePrice: 45.00, Category: "Electrotherapy", Active: true},
		{ID: 3, Name: "Hydrotherapy", Code: "HYDRO-001", DurationMinutes: 45, BasePrice: 80.00, Category: "Hydrotherapy", Active: true},
	}
}

func idRange(n int) []int64 {
	ids := make([]int64, n)
	for i := range ids {
		ids[i] = int64(i + 1)
	}
	return ids
}

func TestGenerateAppointments_RequiresKeys(t *testing.T) {
	g := testGenerator(t, 1)

	_, _, err := g.GenerateAppointments(10, nil, idRange(3), testCatalog())
	assert.Error(t, err, "missing patient keys must fail")

	_, _, err = g.GenerateAppointments(10, idRange(10), nil, testCatalog())
	assert.Error(t, err, "missing therapist keys must fail")
}

func TestGenerateAppointments_References(t *testing.T) {
	g := testGenerator(t, 5)
	appts, _, err := g.GenerateAppointments(1000, idRange(50), idRange(4), testCatalog())
	require.NoError(t, err)
	require.Len(t, appts, 1000)

	byID := map[int64]model.Treatment{}
	for _, tr := range testCatalog() {
		byID[tr.ID] = tr
	}

	for _, a := range appts {
		assert.True(t, a.PatientID >= 1 && a.PatientID <= 50, "patient FK %d out of range", a.PatientID)
		assert.True(t, a.TherapistID >= 1 && a.TherapistID <= 4, "therapist FK %d out of range", a.TherapistID)

		tr, ok := byID[a.TreatmentID]
		require.True(t, ok, "treatment FK %d not in catalog", a.TreatmentID)
		assert.Equal(t, tr.DurationMinutes, a.DurationMinutes, "duration must be copied from the treatment")
	}
}

func TestGenerateAppointments_SlotPlacement(t *testing.T) {
	g := testGenerator(t, 11)
	appts, _, err := g.GenerateAppointments(2000, idRange(50), idRange(4), testCatalog())
	require.NoError(t, err)

	windowStart := testNow.AddDate(0, 0, -180)
	windowEnd := testNow.AddDate(0, 0, 30+2) // weekend shift can push past the raw window
	weekend := 0

	for _, a := range appts {
		assert.False(t, a.Start.Before(windowStart), "slot %v before window", a.Start)
		assert.False(t, a.Start.After(windowEnd), "slot %v after window", a.Start)

		hour := a.Start.Hour()
		assert.True(t, hour >= 8 && hour <= 16, "hour %d outside business hours", hour)
		assert.Contains(t, []int{0, 15, 30, 45}, a.Start.Minute(), "minute off the 15-minute grid")

		if wd := a.Start.Weekday(); wd == time.Saturday || wd == time.Sunday {
			weekend++
		}
	}

	// the weekend shift keeps some noise but most load lands on weekdays
	assert.Less(t, float64(weekend)/float64(len(appts)), 0.06, "too many weekend appointments")
	assert.Greater(t, weekend, 0, "weekend noise should survive the shift")
}

func TestGenerateAppointments_BookingPrecedesSlot(t *testing.T) {
	g := testGenerator(t, 13)
	appts, _, err := g.GenerateAppointments(500, idRange(20), idRange(3), testCatalog())
	require.NoError(t, err)

	for _, a := range appts {
		assert.True(t, a.BookingDate.Before(a.Start), "booking %v not before slot %v", a.BookingDate, a.Start)
		lead := a.Start.Sub(a.BookingDate)
		assert.True(t, lead >= 24*time.Hour && lead <= 14*24*time.Hour, "lead time %v outside 1-14 days", lead)
	}
}

func TestGenerateAppointments_Pricing(t *testing.T) {
	g := testGenerator(t, 17)
	appts, _, err := g.GenerateAppointments(1000, idRange(20), idRange(3), testCatalog())
	require.NoError(t, err)

	byID := map[int64]model.Treatment{}
	for _, tr := range testCatalog() {
		byID[tr.ID] = tr
	}

	insured := 0
	for _, a := range appts {
		base := byID[a.TreatmentID].BasePrice
		if a.InsuranceCover {
			insured++
			assert.InDelta(t, a.CopayAmount, a.Price, 0.001, "insured price must equal the co-pay")
			assert.GreaterOrEqual(t, a.CopayAmount, base*0.1-0.01, "co-pay under 10%%")
			assert.LessOrEqual(t, a.CopayAmount, base*0.3+0.01, "co-pay over 30%%")
		} else {
			assert.Equal(t, base, a.Price, "uninsured price must be the base price")
			assert.Zero(t, a.CopayAmount)
		}

		assert.Contains(t, []string{"Online", "Phone", "Walk-in", "Referral"}, a.BookingMethod)
	}
	// coin flip: roughly half insured
	assert.InDelta(t, 500, insured, 80)
}
