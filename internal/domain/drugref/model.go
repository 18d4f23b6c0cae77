package drugref

import (
	"time"

	"github.com/google/uuid"
)

// Drug is a reference table entry. Name is the lowercase generic name and
// acts as the lookup key.
type Drug struct {
	ID                uuid.UUID `db:"id" json:"id"`
	Name              string    `db:"name" json:"name"`
	GenericName       string    `db:"generic_name" json:"generic_name"`
	BrandNames        []string  `db:"brand_names" json:"brand_names,omitempty"`
	Class             string    `db:"class" json:"class"`
	Interactions      []string  `db:"interactions" json:"interactions,omitempty"`
	FoodInteractions  []string  `db:"food_interactions" json:"food_interactions,omitempty"`
	Contraindications []string  `db:"contraindications" json:"contraindications,omitempty"`
	SideEffects       []string  `db:"side_effects" json:"side_effects,omitempty"`
	Warnings          string    `db:"warnings" json:"warnings,omitempty"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}

// Interaction finding types.
const (
	FindingDrugDrug         = "drug-drug"
	FindingDrugFood         = "drug-food"
	FindingContraindication = "contraindication"
)

// Interaction severities.
const (
	SeverityModerate = "moderate"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// InteractionFinding is one flagged interaction. For drug-food findings
// DrugB holds the food; for contraindications it holds the condition.
type InteractionFinding struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	DrugA    string `json:"drug_a"`
	DrugB    string `json:"drug_b"`
	Detail   string `json:"detail,omitempty"`
}

// CheckRequest is the check-interactions payload.
type CheckRequest struct {
	Medications []string `json:"medications"`
	Conditions  []string `json:"conditions,omitempty"`
}

// CheckResult reports findings plus any drugs missing from the reference.
type CheckResult struct {
	Findings []InteractionFinding `json:"findings"`
	Unknown  []string             `json:"unknown,omitempty"`
}

// Stats summarizes the reference table.
type Stats struct {
	TotalDrugs int `json:"total_drugs"`
}
