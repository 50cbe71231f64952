package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CropStatus is the lifecycle state of a growing cycle.
type CropStatus string

const (
	// CropActive marks an ongoing growing cycle.
	CropActive CropStatus = "Active"
	// CropHarvested marks a completed growing cycle.
	CropHarvested CropStatus = "Harvested"
	// CropAbandoned marks a growing cycle given up before harvest.
	CropAbandoned CropStatus = "Abandoned"
)

// IsValid checks if the CropStatus is a valid value.
func (s CropStatus) IsValid() bool {
	switch s {
	case CropActive, CropHarvested, CropAbandoned:
		return true
	default:
		return false
	}
}

// ActionType is the fixed vocabulary of agricultural actions.
type ActionType string

const (
	ActionSowing        ActionType = "sowing"
	ActionWatering      ActionType = "watering"
	ActionFertilization ActionType = "fertilization"
	ActionHarvest       ActionType = "harvest"
	ActionPruning       ActionType = "pruning"
	ActionOther         ActionType = "other"
)

// IsValid checks if the ActionType is a valid value.
func (t ActionType) IsValid() bool {
	switch t {
	case ActionSowing, ActionWatering, ActionFertilization, ActionHarvest, ActionPruning, ActionOther:
		return true
	default:
		return false
	}
}

// CropRecord is one growing cycle of a named crop at a named location,
// exclusively owning its ordered action history (newest first).
type CropRecord struct {
	ID              uuid.UUID      `json:"id"`
	UserID          uuid.UUID      `json:"userId"`
	CropName        string         `json:"crop"`
	Location        string         `json:"location"`
	Status          CropStatus     `json:"status"`
	Humidity        *float64       `json:"humidity"`
	BioFertilizer   string         `json:"bioFertilizer"`
	SowingDate      time.Time      `json:"sowingDate"`
	Observations    string         `json:"observations"`
	Recommendations string         `json:"recommendations"`
	History         []*ActionEntry `json:"history"`
	CreatedAt       time.Time      `json:"createdAt"`
}

// ActionEntry is a single discrete action inside a crop record's history.
// Entries are never mutated once written; they are only appended at the
// front of the history or removed by id.
type ActionEntry struct {
	ID            uuid.UUID  `json:"id"`
	Date          time.Time  `json:"date"`
	Type          ActionType `json:"type"`
	Seed          string     `json:"seed"`
	Action        string     `json:"action"`
	BioFertilizer string     `json:"bioFertilizer"`
	Observations  string     `json:"observations"`
	Synced        bool       `json:"synced"`
}

// NormalizeKey produces the match key used to identify a growing cycle:
// comparison on crop name and location is whitespace-trimmed and
// case-insensitive, with no fuzzy matching.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ActionDescription derives the human-readable history line for an action.
// It is a pure function of its inputs; identical inputs always yield
// identical text.
func ActionDescription(t ActionType, seed, bioFertilizer string) string {
	switch t {
	case ActionSowing:
		if seed == "" {
			seed = "cultivo"
		}

		return "Sowing of " + seed
	case ActionWatering:
		return "Watering applied"
	case ActionFertilization:
		if bioFertilizer == "" {
			bioFertilizer = "biofertilizante"
		}

		return "Application of " + bioFertilizer
	case ActionHarvest:
		return "Harvest performed"
	case ActionPruning:
		return "Pruning performed"
	default:
		return "Action performed"
	}
}

// NewActionEntry builds a history entry with a fresh id, the current
// timestamp and the generated description.
func NewActionEntry(t ActionType, seed, bioFertilizer, observations string) *ActionEntry {
	return &ActionEntry{
		ID:            uuid.New(),
		Date:          time.Now(),
		Type:          t,
		Seed:          seed,
		Action:        ActionDescription(t, seed, bioFertilizer),
		BioFertilizer: bioFertilizer,
		Observations:  observations,
		Synced:        true,
	}
}

// Prepend inserts an entry at the front of the history, keeping
// most-recent-first ordering.
func (c *CropRecord) Prepend(entry *ActionEntry) {
	c.History = append([]*ActionEntry{entry}, c.History...)
}
