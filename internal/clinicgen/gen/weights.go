package gen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nroy-dev/clinicgen/internal/clinicgen/sampler"
)

// BracketWeight is a weighted integer bracket (e.g. an age band or an
// hours-before-cancellation ceiling).
type BracketWeight struct {
	Lo     int     `yaml:"lo"`
	Hi     int     `yaml:"hi"`
	Weight float64 `yaml:"weight"`
}

// ItemWeight is a weighted categorical outcome.
type ItemWeight struct {
	Item   string  `yaml:"item"`
	Weight float64 `yaml:"weight"`
}

// Weights holds every weighted table the engine draws from. Defaults mirror
// observed clinic behavior; a YAML weights file can override any table
// wholesale (empty tables keep their defaults).
type Weights struct {
	AgeBrackets    []BracketWeight `yaml:"age_brackets"`
	Gender         []ItemWeight    `yaml:"gender"`
	Insurance      []ItemWeight    `yaml:"insurance"`
	Conditions     []ItemWeight    `yaml:"conditions"`
	Outcomes       []ItemWeight    `yaml:"outcomes"`
	BookingMethods []ItemWeight    `yaml:"booking_methods"`
	CancelHours    []BracketWeight `yaml:"cancel_hours"`
	CancelReasons  []ItemWeight    `yaml:"cancel_reasons"`
	CancelledBy    []ItemWeight    `yaml:"cancelled_by"`
}

// DefaultWeights returns the built-in tables.
func DefaultWeights() Weights {
	return Weights{
		AgeBrackets: []BracketWeight{
			{Lo: 25, Hi: 35, Weight: 0.15},
			{Lo: 35, Hi: 50, Weight: 0.25},
			{Lo: 50, Hi: 65, Weight: 0.35},
			{Lo: 65, Hi: 80, Weight: 0.20},
			{Lo: 80, Hi: 90, Weight: 0.05},
		},
		Gender: []ItemWeight{
			{Item: "M", Weight: 0.48},
			{Item: "F", Weight: 0.48},
			{Item: "Other", Weight: 0.04},
		},
		Insurance: []ItemWeight{
			{Item: "Public", Weight: 0.70},
			{Item: "Private", Weight: 0.25},
			{Item: "Self-pay", Weight: 0.05},
		},
		Conditions: []ItemWeight{
			{Item: "Lower Back Pain", Weight: 0.25},
			{Item: "Neck Pain", Weight: 0.15},
			{Item: "Knee Injury", Weight: 0.12},
			{Item: "Shoulder Pain", Weight: 0.10},
			{Item: "Sports Injury", Weight: 0.08},
			{Item: "Post-Surgery Rehab", Weight: 0.07},
			{Item: "Arthritis Management", Weight: 0.06},
			{Item: "Postural Problems", Weight: 0.05},
			{Item: "Sciatica", Weight: 0.04},
			{Item: "Tennis Elbow", Weight: 0.03},
			{Item: "Fibromyalgia", Weight: 0.02},
			{Item: "Other", Weight: 0.03},
		},
		Outcomes: []ItemWeight{
			{Item: "Completed", Weight: 0.75},
			{Item: "Cancelled", Weight: 0.15},
			{Item: "No-show", Weight: 0.07},
			{Item: "Scheduled", Weight: 0.03},
		},
		BookingMethods: []ItemWeight{
			{Item: "Phone", Weight: 0.60},
			{Item: "Online", Weight: 0.25},
			{Item: "Walk-in", Weight: 0.10},
			{Item: "Referral", Weight: 0.05},
		},
		// Hi is the ceiling of the bucket; the draw is uniform 1..Hi.
		CancelHours: []BracketWeight{
			{Lo: 1, Hi: 1, Weight: 0.15},
			{Lo: 1, Hi: 4, Weight: 0.20},
			{Lo: 1, Hi: 24, Weight: 0.30},
			{Lo: 1, Hi: 48, Weight: 0.20},
			{Lo: 1, Hi: 168, Weight: 0.15},
		},
		CancelReasons: []ItemWeight{
			{Item: "Personal", Weight: 0.30},
			{Item: "Medical", Weight: 0.20},
			{Item: "Work", Weight: 0.18},
			{Item: "Transportation", Weight: 0.12},
			{Item: "Weather", Weight: 0.10},
			{Item: "Other", Weight: 0.10},
		},
		CancelledBy: []ItemWeight{
			{Item: "Patient", Weight: 0.85},
			{Item: "Clinic", Weight: 0.10},
			{Item: "Therapist", Weight: 0.05},
		},
	}
}

// LoadWeights reads a YAML weights file and overlays it on the defaults.
// Tables absent from the file keep their default entries.
func LoadWeights(path string) (Weights, error) {
	w := DefaultWeights()
	data, err := os.ReadFile(path)
	if err != nil {
		return w, fmt.Errorf("read weights file: %w", err)
	}

	var override Weights
	if err := yaml.Unmarshal(data, &override); err != nil {
		return w, fmt.Errorf("parse weights file %s: %w", path, err)
	}

	if len(override.AgeBrackets) > 0 {
		w.AgeBrackets = override.AgeBrackets
	}
	if len(override.Gender) > 0 {
		w.Gender = override.Gender
	}
	if len(override.Insurance) > 0 {
		w.Insurance = override.Insurance
	}
	if len(override.Conditions) > 0 {
		w.Conditions = override.Conditions
	}
	if len(override.Outcomes) > 0 {
		w.Outcomes = override.Outcomes
	}
	if len(override.BookingMethods) > 0 {
		w.BookingMethods = override.BookingMethods
	}
	if len(override.CancelHours) > 0 {
		w.CancelHours = override.CancelHours
	}
	if len(override.CancelReasons) > 0 {
		w.CancelReasons = override.CancelReasons
	}
	if len(override.CancelledBy) > 0 {
		w.CancelledBy = override.CancelledBy
	}
	return w, nil
}

// tables holds the compiled sampler tables for one run.
type tables struct {
	age           *sampler.Table[sampler.IntRange]
	gender        *sampler.Table[string]
	insurance     *sampler.Table[string]
	condition     *sampler.Table[string]
	outcome       *sampler.Table[string]
	bookingMethod *sampler.Table[string]
	cancelHours   *sampler.Table[sampler.IntRange]
	cancelReason  *sampler.Table[string]
	cancelledBy   *sampler.Table[string]
}

func compileTables(w Weights) (*tables, error) {
	t := &tables{}
	var err error

	if t.age, err = compileBrackets(w.AgeBrackets); err != nil {
		return nil, fmt.Errorf("age_brackets: %w", err)
	}
	if t.gender, err = compileItems(w.Gender); err != nil {
		return nil, fmt.Errorf("gender: %w", err)
	}
	if t.insurance, err = compileItems(w.Insurance); err != nil {
		return nil, fmt.Errorf("insurance: %w", err)
	}
	if t.condition, err = compileItems(w.Conditions); err != nil {
		return nil, fmt.Errorf("conditions: %w", err)
	}
	if t.outcome, err = compileItems(w.Outcomes); err != nil {
		return nil, fmt.Errorf("outcomes: %w", err)
	}
	if t.bookingMethod, err = compileItems(w.BookingMethods); err != nil {
		return nil, fmt.Errorf("booking_methods: %w", err)
	}
	if t.cancelHours, err = compileBrackets(w.CancelHours); err != nil {
		return nil, fmt.Errorf("cancel_hours: %w", err)
	}
	if t.cancelReason, err = compileItems(w.CancelReasons); err != nil {
		return nil, fmt.Errorf("cancel_reasons: %w", err)
	}
	// every reason category must carry detail phrases, or cancellation
	// synthesis has nothing to draw from
	for _, it := range w.CancelReasons {
		if len(CancellationPhrases[it.Item]) == 0 {
			return nil, fmt.Errorf("cancel_reasons: unknown category %q (no detail phrases)", it.Item)
		}
	}
	if t.cancelledBy, err = compileItems(w.CancelledBy); err != nil {
		return nil, fmt.Errorf("cancelled_by: %w", err)
	}
	return t, nil
}

func compileItems(items []ItemWeight) (*sampler.Table[string], error) {
	choices := make([]sampler.Choice[string], 0, len(items))
	for _, it := range items {
		choices = append(choices, sampler.Choice[string]{Item: it.Item, Weight: it.Weight})
	}
	return sampler.New(choices)
}

func compileBrackets(brackets []BracketWeight) (*sampler.Table[sampler.IntRange], error) {
	choices := make([]sampler.Choice[sampler.IntRange], 0, len(brackets))
	for _, b := range brackets {
		if b.Hi < b.Lo {
			return nil, fmt.Errorf("bracket hi %d < lo %d", b.Hi, b.Lo)
		}
		choices = append(choices, sampler.Choice[sampler.IntRange]{
			Item:   sampler.IntRange{Lo: b.Lo, Hi: b.Hi},
			Weight: b.Weight,
		})
	}
	return sampler.New(choices)
}
