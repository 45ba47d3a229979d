package formatting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/benjaauf/reservas-salasUSM/internal/model"
)

func TestActivityLabel(t *testing.T) {
	assert.Equal(t, "Ayudantía", ActivityLabel(model.ActivityAyudantia))
	assert.Equal(t, "Evento Inamovible", ActivityLabel(model.ActivityEvento))
	// Unknown tokens pass through unchanged.
	assert.Equal(t, "taller", ActivityLabel(model.ActivityType("taller")))
}

func TestBlockPairLabel(t *testing.T) {
	assert.Equal(t, "Bloque 1-2", BlockPairLabel(1))
	assert.Equal(t, "Bloque 19-20", BlockPairLabel(10))
}

func TestBlockTimeLabel(t *testing.T) {
	assert.Equal(t, "08:15-09:25", BlockTimeLabel(1))
	assert.Equal(t, "14:40-15:50", BlockTimeLabel(5))
	assert.Equal(t, "", BlockTimeLabel(0))
}

func TestFormatConflict(t *testing.T) {
	c := model.ConflictDate{
		Date:         time.Date(2025, time.October, 20, 0, 0, 0, 0, time.UTC),
		ActivityType: model.ActivityAyudantia,
	}
	assert.Equal(t, "Tope Día 20/10/2025 por Ayudantía", FormatConflict(c))
}
