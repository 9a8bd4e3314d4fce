package genie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitIsCreatable(t *testing.T) {
	archer := &Unit{ID: 4, TrainLocationID: 87}
	deer := &Unit{ID: 65, TrainLocationID: -1}

	assert.True(t, archer.IsCreatable())
	assert.False(t, deer.IsCreatable())
}

func TestUnitCommands(t *testing.T) {
	villager := &Unit{
		ID: 83,
		Commands: []Command{
			{Type: CommandTypeGather, ResourceIn: ResourceFood, ResourceOut: -1},
			{Type: CommandTypeHunt, ResourceIn: ResourceFood, ResourceOut: ResourceFood},
		},
	}

	assert.True(t, villager.HasCommand(CommandTypeGather))
	assert.False(t, villager.HasCommand(CommandTypeTrade))

	cmd, ok := villager.FirstCommand(CommandTypeHunt)
	assert.True(t, ok)
	assert.Equal(t, ResourceFood, cmd.ResourceOut)

	_, ok = villager.FirstCommand(CommandTypeTrade)
	assert.False(t, ok)
}

func TestTechIsResearchable(t *testing.T) {
	tests := []struct {
		name     string
		location int
		want     bool
	}{
		{"researched at a building", 104, true},
		{"no location", -1, false},
		{"zero location means none", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tech := &Tech{ID: 22, ResearchLocationID: tt.location}
			assert.Equal(t, tt.want, tech.IsResearchable())
		})
	}
}

func TestEffectsOfType(t *testing.T) {
	bundle := &EffectBundle{
		ID: 10,
		Effects: []Effect{
			{TypeID: EffectTypeUpgrade, A: 70, B: 72},
			{TypeID: EffectTypeUnlock, A: 82},
			{TypeID: EffectTypeUpgrade, A: 68, B: 129},
		},
	}

	upgrades := bundle.EffectsOfType(EffectTypeUpgrade)
	assert.Len(t, upgrades, 2)
	assert.Equal(t, 70, upgrades[0].A)
	assert.Equal(t, 68, upgrades[1].A)

	assert.Empty(t, bundle.EffectsOfType(EffectTypeDisableTech))
}

func TestIsSiegeClass(t *testing.T) {
	assert.True(t, IsSiegeClass(13))
	assert.True(t, IsSiegeClass(51))
	assert.True(t, IsSiegeClass(54))
	assert.True(t, IsSiegeClass(55))
	assert.False(t, IsSiegeClass(6))
	assert.False(t, IsSiegeClass(0))
}

func TestRefKindString(t *testing.T) {
	assert.Equal(t, "age", RefAge.String())
	assert.Equal(t, "building", RefBuilding.String())
	assert.Equal(t, "unit", RefUnit.String())
	assert.Equal(t, "tech", RefTech.String())
	assert.Equal(t, "unknown", RefKind(99).String())
}

func TestRefHelpers(t *testing.T) {
	refs := []Ref{
		{Kind: RefTech, ID: 101},
		{Kind: RefUnit, ID: 4},
		{Kind: RefTech, ID: 100},
		{Kind: RefBuilding, ID: 87},
	}

	id, ok := FirstRef(refs, RefUnit)
	assert.True(t, ok)
	assert.Equal(t, 4, id)

	_, ok = FirstRef(refs, RefAge)
	assert.False(t, ok)

	assert.Equal(t, []int{101, 100}, RefIDs(refs, RefTech))
	assert.Nil(t, RefIDs(refs, RefAge))
}
