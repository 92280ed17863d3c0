package store

import "github.com/nroy-dev/clinicgen/internal/clinicgen/model"

// DefaultCatalog is the standard physiotherapy treatment offering seeded into
// a fresh store. The generator only ever references these rows; it never
// creates treatments.
func DefaultCatalog() []model.Treatment {
	return []model.Treatment{
		{ID: 1, Name: "Initial Assessment", Code: "ASSESS-001", DurationMinutes: 60, BasePrice: 85.00, Description: "Comprehensive initial evaluation and treatment planning", Category: "Assessment", Active: true},
		{ID: 2, Name: "Manual Therapy", Code: "MT-001", DurationMinutes: 45, BasePrice: 75.00, Description: "Hands-on techniques including mobilization and manipulation", Category: "Manual Therapy", Active: true},
		{ID: 3, Name: "Exercise Therapy", Code: "ET-001", DurationMinutes: 45, BasePrice: 65.00, Description: "Supervised therapeutic exercises and movement training", NeedsEquipment: true, Category: "Exercise Therapy", Active: true},
		{ID: 4, Name: "Sports Massage", Code: "SM-001", DurationMinutes: 30, BasePrice: 55.00, Description: "Deep tissue massage for athletes and active individuals", Category: "Manual Therapy", Active: true},
		{ID: 5, Name: "Electrotherapy", Code: "ELECTRO-001", DurationMinutes: 30, BasePrice: 45.00, Description: "TENS, ultrasound, and electrical stimulation", NeedsEquipment: true, Category: "Electrotherapy", Active: true},
		{ID: 6, Name: "Dry Needling", Code: "DN-001", DurationMinutes: 30, BasePrice: 70.00, Description: "Trigger point dry needling for muscle pain relief", NeedsEquipment: true, Category: "Manual Therapy", Active: true},
		{ID: 7, Name: "Postural Correction", Code: "PC-001", DurationMinutes: 45, BasePrice: 65.00, Description: "Assessment and correction of postural imbalances", Category: "Exercise Therapy", Active: true},
		{ID: 8, Name: "Balance Training", Code: "BT-001", DurationMinutes: 30, BasePrice: 50.00, Description: "Proprioceptive and balance enhancement exercises", NeedsEquipment: true, Category: "Exercise Therapy", Active: true},
		{ID: 9, Name: "Hydrotherapy", Code: "HYDRO-001", DurationMinutes: 45, BasePrice: 80.00, Description: "Water-based rehabilitation and exercise", NeedsEquipment: true, Category: "Hydrotherapy", Active: true},
		{ID: 10, Name: "Follow-up Session", Code: "FU-001", DurationMinutes: 30, BasePrice: 60.00, Description: "Progress review and treatment adjustment", Category: "Assessment", Active: true},
	}
}
