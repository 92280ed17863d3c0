package gen

import (
	"time"

	"github.com/nroy-dev/clinicgen/internal/clinicgen/model"
)

// assignOutcome classifies the appointment's lifecycle outcome at creation
// time and synthesizes the outcome-derived fields. A future-dated slot is
// always Scheduled; past slots get a weighted draw. Returns the Cancellation
// record when, and only when, the outcome is Cancelled.
func (g *Generator) assignOutcome(a *model.Appointment, durationMinutes int) *model.Cancellation {
	if a.Start.After(g.p.Now) {
		a.Status = model.StatusScheduled
		return nil
	}

	a.Status = model.AppointmentStatus(g.tbl.outcome.Pick(g.rng))

	switch a.Status {
	case model.StatusCompleted:
		g.fillTreatmentTimes(a, durationMinutes)
		return nil
	case model.StatusCancelled:
		c := g.cancellation(a)
		return &c
	default:
		// No-show and residual past Scheduled carry no derived record.
		return nil
	}
}

// fillTreatmentTimes synthesizes the in-clinic timestamps for a completed
// appointment: check-in 5-15 min before the slot, treatment start 0-10 min
// after it, end at start + duration with -5..+15 min jitter. The minimum
// catalog duration keeps the three strictly ordered.
func (g *Generator) fillTreatmentTimes(a *model.Appointment, durationMinutes int) {
	checkIn := a.Start.Add(-time.Duration(5+g.rng.Intn(11)) * time.Minute)
	start := a.Start.Add(time.Duration(g.rng.Intn(11)) * time.Minute)
	end := start.Add(time.Duration(durationMinutes-5+g.rng.Intn(21)) * time.Minute)

	a.CheckInTime = &checkIn
	a.TreatmentStart = &start
	a.TreatmentEnd = &end
}

// cancellation synthesizes the 1:1 derived record for a cancelled
// appointment. Hours-before is a two-stage draw: a weighted bucket ceiling,
// then uniform 1..ceiling. Refunds are a hard business rule: never issued
// under 24 hours notice, a coin flip for a fixed amount otherwise.
func (g *Generator) cancellation(a *model.Appointment) model.Cancellation {
	const refundAmount = 25.0

	hoursBefore := g.tbl.cancelHours.Pick(g.rng).Pick(g.rng)
	reason := g.tbl.cancelReason.Pick(g.rng)
	phrases := CancellationPhrases[reason]

	c := model.Cancellation{
		AppointmentID:  a.ID,
		CancelledBy:    g.tbl.cancelledBy.Pick(g.rng),
		CancelledAt:    a.Start.Add(-time.Duration(hoursBefore) * time.Hour),
		HoursBefore:    hoursBefore,
		ReasonCategory: reason,
		ReasonDetail:   phrases[g.rng.Intn(len(phrases))],
		Rescheduled:    g.coin(0.5),
	}

	if hoursBefore >= 24 && g.coin(0.5) {
		c.RefundIssued = true
		c.RefundAmount = refundAmount
	}
	return c
}
