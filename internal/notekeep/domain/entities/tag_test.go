package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"notekeep/internal/notekeep/domain/entities"
)

func TestRandomPaletteColor(t *testing.T) {
	for range 50 {
		assert.True(t, entities.IsPaletteColor(entities.RandomPaletteColor()))
	}
}

func TestRepairColor(t *testing.T) {
	tests := []struct {
		name       string
		color      string
		wantRepair bool
	}{
		{name: "palette color untouched", color: "bg-red-500", wantRepair: false},
		{name: "unknown color replaced", color: "magenta", wantRepair: true},
		{name: "empty color replaced", color: "", wantRepair: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag := &entities.Tag{ID: "id-1", Name: "Work", Color: tt.color}

			repaired := tag.RepairColor()

			assert.Equal(t, tt.wantRepair, repaired)
			assert.True(t, entities.IsPaletteColor(tag.Color))
			if !tt.wantRepair {
				assert.Equal(t, tt.color, tag.Color)
			}
			// Починка не трогает идентификатор и имя.
			assert.Equal(t, "id-1", tag.ID)
			assert.Equal(t, "Work", tag.Name)
		})
	}
}
