package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeKey_TrimsAndLowercases(t *testing.T) {
	assert.Equal(t, "maíz", NormalizeKey("  Maíz "))
	assert.Equal(t, "campo norte", NormalizeKey("Campo Norte"))
	assert.Equal(t, "", NormalizeKey("   "))
}

func TestActionDescription_PerType(t *testing.T) {
	tests := []struct {
		name          string
		actionType    ActionType
		seed          string
		bioFertilizer string
		want          string
	}{
		{name: "sowing with seed", actionType: ActionSowing, seed: "frijol negro", want: "Sowing of frijol negro"},
		{name: "sowing without seed", actionType: ActionSowing, want: "Sowing of cultivo"},
		{name: "watering", actionType: ActionWatering, want: "Watering applied"},
		{name: "fertilization with product", actionType: ActionFertilization, bioFertilizer: "Compost", want: "Application of Compost"},
		{name: "fertilization without product", actionType: ActionFertilization, want: "Application of biofertilizante"},
		{name: "harvest", actionType: ActionHarvest, want: "Harvest performed"},
		{name: "pruning", actionType: ActionPruning, want: "Pruning performed"},
		{name: "other", actionType: ActionOther, want: "Action performed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ActionDescription(tt.actionType, tt.seed, tt.bioFertilizer)
			assert.Equal(t, tt.want, got)

			// Same inputs must always yield the same text.
			assert.Equal(t, got, ActionDescription(tt.actionType, tt.seed, tt.bioFertilizer))
		})
	}
}

func TestNewActionEntry_PopulatesEntry(t *testing.T) {
	entry := NewActionEntry(ActionFertilization, "", "Bocashi", "suelo seco")

	require.NotNil(t, entry)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", entry.ID.String())
	assert.False(t, entry.Date.IsZero())
	assert.Equal(t, ActionFertilization, entry.Type)
	assert.Equal(t, "Application of Bocashi", entry.Action)
	assert.Equal(t, "Bocashi", entry.BioFertilizer)
	assert.Equal(t, "suelo seco", entry.Observations)
	assert.True(t, entry.Synced)
}

func TestCropRecord_Prepend_KeepsNewestFirst(t *testing.T) {
	record := &CropRecord{}

	first := NewActionEntry(ActionSowing, "maíz", "", "")
	second := NewActionEntry(ActionWatering, "", "", "")
	third := NewActionEntry(ActionHarvest, "", "", "")

	record.Prepend(first)
	record.Prepend(second)
	record.Prepend(third)

	require.Len(t, record.History, 3)
	assert.Equal(t, third.ID, record.History[0].ID)
	assert.Equal(t, second.ID, record.History[1].ID)
	assert.Equal(t, first.ID, record.History[2].ID)
}

func TestCropStatus_IsValid(t *testing.T) {
	assert.True(t, CropActive.IsValid())
	assert.True(t, CropHarvested.IsValid())
	assert.True(t, CropAbandoned.IsValid())
	assert.False(t, CropStatus("Flooded").IsValid())
	assert.False(t, CropStatus("active").IsValid())
}

func TestActionType_IsValid(t *testing.T) {
	assert.True(t, ActionSowing.IsValid())
	assert.True(t, ActionOther.IsValid())
	assert.False(t, ActionType("dancing").IsValid())
}
