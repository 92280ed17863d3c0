// Package gen is the clinic data generation engine. A Generator owns one
// seeded random stream for the whole run and produces an internally
// consistent batch: profiles first, then appointments referencing their
// keys, then outcome-derived records, then workflow tasks.
package gen

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/nroy-dev/clinicgen/internal/clinicgen/logger"
	"github.com/nroy-dev/clinicgen/internal/clinicgen/model"
)

// Params configures one generation run.
type Params struct {
	Seed         int64
	Now          time.Time // reference time; zero means time.Now()
	Patients     int
	Therapists   int
	Appointments int
	Tasks        int
	PastDays     int // window start = Now - PastDays
	FutureDays   int // window end = Now + FutureDays
	Weights      Weights
}

// Generator holds the run's random stream and compiled weight tables. It is
// not safe for concurrent use; a run is a single sequential batch.
type Generator struct {
	p    Params
	rng  *rand.Rand
	fake *gofakeit.Faker
	tbl  *tables
}

// New validates params, seeds the random stream and compiles the weight
// tables. Seed 0 picks a time-based seed.
func New(p Params) (*Generator, error) {
	if p.Now.IsZero() {
		p.Now = time.Now()
	}
	if p.Seed == 0 {
		p.Seed = time.Now().UnixNano()
	}
	if p.PastDays <= 0 {
		p.PastDays = 180
	}
	if p.FutureDays < 0 {
		p.FutureDays = 0
	}
	if p.Patients <= 0 || p.Therapists <= 0 {
		return nil, fmt.Errorf("gen: patient and therapist counts must be > 0")
	}

	if p.Weights.AgeBrackets == nil {
		p.Weights = DefaultWeights()
	}
	tbl, err := compileTables(p.Weights)
	if err != nil {
		return nil, fmt.Errorf("gen: compile weight tables: %w", err)
	}

	return &Generator{
		p:    p,
		rng:  rand.New(rand.NewSource(p.Seed)),
		fake: gofakeit.New(uint64(p.Seed)),
		tbl:  tbl,
	}, nil
}

// Seed returns the effective seed of the run.
func (g *Generator) Seed() int64 { return g.p.Seed }

// Run produces a full batch against the given treatment catalog. Generation
// order enforces referential integrity: profiles are generated before any
// appointment references them, appointments before cancellations and tasks.
func (g *Generator) Run(catalog []model.Treatment) (*model.Batch, error) {
	if len(catalog) == 0 {
		return nil, fmt.Errorf("gen: empty treatment catalog; refusing to generate appointments with undefined pricing")
	}

	logger.L().Infow("Starting generation run",
		"seed", g.p.Seed,
		"patients", g.p.Patients,
		"therapists", g.p.Therapists,
		"appointments", g.p.Appointments,
		"tasks", g.p.Tasks,
		"treatments", len(catalog))

	batch := &model.Batch{}

	batch.Patients = g.GeneratePatients(g.p.Patients)
	batch.Therapists = g.GenerateTherapists(g.p.Therapists)

	patientIDs := make([]int64, len(batch.Patients))
	for i, p := range batch.Patients {
		patientIDs[i] = p.ID
	}
	therapistIDs := make([]int64, 0, len(batch.Therapists))
	for _, th := range batch.Therapists {
		if th.Active {
			therapistIDs = append(therapistIDs, th.ID)
		}
	}

	appts, cancels, err := g.GenerateAppointments(g.p.Appointments, patientIDs, therapistIDs, catalog)
	if err != nil {
		return nil, err
	}
	batch.Appointments = appts
	batch.Cancellations = cancels

	apptIDs := make([]int64, len(appts))
	for i, a := range appts {
		apptIDs[i] = a.ID
	}

	tasks, err := g.GenerateTasks(g.p.Tasks, apptIDs, patientIDs)
	if err != nil {
		return nil, err
	}
	batch.Tasks = tasks

	logger.L().Infow("Generation complete",
		"patients", len(batch.Patients),
		"therapists", len(batch.Therapists),
		"appointments", len(batch.Appointments),
		"cancellations", len(batch.Cancellations),
		"tasks", len(batch.Tasks))

	return batch, nil
}

// coin returns true with probability p.
func (g *Generator) coin(p float64) bool {
	return g.rng.Float64() < p
}

// pickID selects one key uniformly from an already-assigned key set.
func (g *Generator) pickID(ids []int64) int64 {
	return ids[g.rng.Intn(len(ids))]
}

func (g *Generator) maybeNote(prob float64) *string {
	if !g.coin(prob) {
		return nil
	}
	s := g.fake.Sentence(8)
	return &s
}
