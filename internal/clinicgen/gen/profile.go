package gen

import (
	"fmt"
	"strings"

	"github.com/nroy-dev/clinicgen/internal/clinicgen/logger"
	"github.com/nroy-dev/clinicgen/internal/clinicgen/model"
)

// GeneratePatients produces n patient profiles with provisional ids 1..n.
// Age is a two-stage draw: weighted bracket, then uniform within it; the
// birth date is derived so the age in whole years is exact at run time.
func (g *Generator) GeneratePatients(n int) []model.Patient {
	logger.L().Infow("Generating patients", "count", n)

	patients := make([]model.Patient, 0, n)
	for i := 0; i < n; i++ {
		id := int64(i + 1)

		age := g.tbl.age.Pick(g.rng).Pick(g.rng)
		birth := g.p.Now.AddDate(-age, 0, 0)

		regDaysAgo := 30 + g.rng.Intn(151) // 30..180
		registration := g.p.Now.AddDate(0, 0, -regDaysAgo)

		first := g.fake.FirstName()
		last := g.fake.LastName()

		patients = append(patients, model.Patient{
			ID:               id,
			FirstName:        first,
			LastName:         last,
			Email:            uniqueEmail(first, last, id, "example.org"),
			Phone:            g.fake.PhoneFormatted(),
			DateOfBirth:      birth,
			Gender:           g.tbl.gender.Pick(g.rng),
			Address:          g.address(),
			InsuranceType:    g.tbl.insurance.Pick(g.rng),
			PrimaryCondition: g.tbl.condition.Pick(g.rng),
			RegistrationDate: registration,
			EmergencyContact: g.fake.Name(),
			EmergencyPhone:   g.fake.PhoneFormatted(),
			Notes:            g.maybeNote(0.3),
		})
	}

	logger.L().Debugw("Patients generated", "count", len(patients))
	return patients
}

// GenerateTherapists produces n therapist profiles with provisional ids 1..n.
// Each therapist gets one of the enumerated staffing patterns by index, so
// working days, hours and capacity always form a valid combination.
func (g *Generator) GenerateTherapists(n int) []model.Therapist {
	logger.L().Infow("Generating therapists", "count", n)

	seenLicenses := make(map[string]bool, n)
	therapists := make([]model.Therapist, 0, n)
	for i := 0; i < n; i++ {
		id := int64(i + 1)
		pattern := patternFor(i, n)

		hireDaysAgo := 365 + g.rng.Intn(1436) // 1..5 years back
		first := g.fake.FirstName()
		last := g.fake.LastName()

		license := g.licenseNumber(seenLicenses)

		therapists = append(therapists, model.Therapist{
			ID:             id,
			FirstName:      first,
			LastName:       last,
			Email:          uniqueEmail(first, last, id, "clinic.example"),
			Phone:          g.fake.PhoneFormatted(),
			Specialization: Specializations[i%len(Specializations)],
			LicenseNumber:  license,
			HireDate:       g.p.Now.AddDate(0, 0, -hireDaysAgo),
			HourlyRate:     round2(35 + g.rng.Float64()*20),
			MaxPatientsDay: pattern.MaxPatients,
			WorkingDays:    pattern.WorkingDays,
			StartTime:      pattern.StartTime,
			EndTime:        pattern.EndTime,
			Active:         true,
		})
	}

	logger.L().Debugw("Therapists generated", "count", len(therapists))
	return therapists
}

// licenseNumber draws PT license ids, retrying on the rare collision since
// the schema requires them unique.
func (g *Generator) licenseNumber(seen map[string]bool) string {
	for {
		lic := fmt.Sprintf("PT%05d", 10000+g.rng.Intn(90000))
		if !seen[lic] {
			seen[lic] = true
			return lic
		}
	}
}

func (g *Generator) address() string {
	return fmt.Sprintf("%s, %s, %s %s", g.fake.Street(), g.fake.City(), g.fake.State(), g.fake.Zip())
}

// uniqueEmail derives a contact address from the name and the entity id so
// the schema's UNIQUE constraint holds without a global registry.
func uniqueEmail(first, last string, id int64, domain string) string {
	return fmt.Sprintf("%s.%s%d@%s",
		strings.ToLower(strings.ReplaceAll(first, " ", "")),
		strings.ToLower(strings.ReplaceAll(last, " ", "")),
		id, domain)
}

func round2(f float64) float64 {
	return float64(int64(f*100+0.5)) / 100
}
