package gen

import (
	"fmt"
	"time"

	"github.com/nroy-dev/clinicgen/internal/clinicgen/logger"
	"github.com/nroy-dev/clinicgen/internal/clinicgen/model"
	"github.com/nroy-dev/clinicgen/internal/clinicgen/sampler"
)

// Clinic business hours. Peak pools carry 70% of bookings; the minute is
// always on the 15-minute grid.
var (
	peakHours    = []int{9, 10, 11, 14, 15}
	regularHours = []int{8, 12, 13, 16}
	minuteGrid   = []int{0, 15, 30, 45}
)

// GenerateAppointments produces n appointment skeletons with their lifecycle
// outcome assigned and outcome-derived records synthesized. Returned
// cancellations are exactly the appointments whose status is Cancelled.
//
// Participants are selected uniformly; therapist daily capacity is not
// enforced (documented simplification).
func (g *Generator) GenerateAppointments(n int, patientIDs, therapistIDs []int64, catalog []model.Treatment) ([]model.Appointment, []model.Cancellation, error) {
	if len(patientIDs) == 0 || len(therapistIDs) == 0 {
		return nil, nil, fmt.Errorf("gen: appointment generation requires patient and therapist keys; got %d/%d", len(patientIDs), len(therapistIDs))
	}

	logger.L().Infow("Generating appointments", "count", n)

	appts := make([]model.Appointment, 0, n)
	cancels := make([]model.Cancellation, 0, n/5)

	for i := 0; i < n; i++ {
		id := int64(i + 1)
		treatment := catalog[g.rng.Intn(len(catalog))]

		slot := g.appointmentSlot()
		bookingLead := 1 + g.rng.Intn(14) // 1..14 days
		booking := slot.AddDate(0, 0, -bookingLead)

		insured := g.coin(0.5)
		var price, copay float64
		if insured {
			copay = round2(treatment.BasePrice * (0.1 + 0.2*g.rng.Float64()))
			price = copay
		} else {
			price = treatment.BasePrice
		}

		appt := model.Appointment{
			ID:              id,
			PatientID:       g.pickID(patientIDs),
			TherapistID:     g.pickID(therapistIDs),
			TreatmentID:     treatment.ID,
			Start:           slot,
			DurationMinutes: treatment.DurationMinutes,
			BookingDate:     booking,
			BookingMethod:   g.tbl.bookingMethod.Pick(g.rng),
			Price:           price,
			InsuranceCover:  insured,
			CopayAmount:     copay,
			Notes:           g.maybeNote(0.2),
			ReminderSent:    g.coin(0.5),
		}

		cancel := g.assignOutcome(&appt, treatment.DurationMinutes)
		appts = append(appts, appt)
		if cancel != nil {
			cancels = append(cancels, *cancel)
		}
	}

	logger.L().Debugw("Appointments generated", "count", len(appts), "cancellations", len(cancels))
	return appts, cancels, nil
}

// appointmentSlot places an appointment inside the generation window: a
// triangular day-offset biased toward recent dates, a weekend shift of two
// days with 90% probability (the residual weekend noise is intentional), and
// a business-hours time drawn from the peak or regular pool.
func (g *Generator) appointmentSlot() time.Time {
	totalDays := g.p.PastDays + g.p.FutureDays
	mode := float64(totalDays) * 2 / 3
	offset := int(sampler.Triangular(g.rng, 0, float64(totalDays), mode))

	day := g.p.Now.AddDate(0, 0, offset-g.p.PastDays)
	if wd := day.Weekday(); (wd == time.Saturday || wd == time.Sunday) && g.coin(0.9) {
		day = day.AddDate(0, 0, 2)
	}

	pool := regularHours
	if g.coin(0.7) {
		pool = peakHours
	}
	hour := pool[g.rng.Intn(len(pool))]
	minute := minuteGrid[g.rng.Intn(len(minuteGrid))]

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}
