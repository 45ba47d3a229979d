// Package formatting renders domain values for display: Spanish labels,
// dd/mm/yyyy dates and block time ranges.
package formatting

import (
	"fmt"

	"github.com/benjaauf/reservas-salasUSM/internal/model"
	"github.com/benjaauf/reservas-salasUSM/internal/timeblock"
)

// ActivityLabel returns the human label for an activity token.
func ActivityLabel(t model.ActivityType) string {
	labels := map[model.ActivityType]string{
		model.ActivityReunion:   "Reunión",
		model.ActivityControl:   "Control",
		model.ActivityCertamen:  "Certamen",
		model.ActivityAyudantia: "Ayudantía",
		model.ActivityOtro:      "Otro",
		model.ActivityEvento:    "Evento Inamovible",
	}
	if label, ok := labels[t]; ok {
		return label
	}
	return string(t)
}

// StatusLabel returns the legend label for a slot status.
func StatusLabel(s model.SlotStatus) string {
	labels := map[model.SlotStatus]string{
		model.SlotStatusAvailable:    "Disponible",
		model.SlotStatusOccupied:     "Ocupado",
		model.SlotStatusSpecificDate: "Reservas específicas",
		model.SlotStatusPending:      "Pendiente aprobación",
	}
	if label, ok := labels[s]; ok {
		return label
	}
	return "Desconocido"
}

// DayShort returns the three-letter day abbreviation.
func DayShort(d model.Day) string {
	shorts := map[model.Day]string{
		model.DayLunes:     "Lun",
		model.DayMartes:    "Mar",
		model.DayMiercoles: "Mié",
		model.DayJueves:    "Jue",
		model.DayViernes:   "Vie",
		model.DaySabado:    "Sáb",
		model.DayDomingo:   "Dom",
	}
	if short, ok := shorts[d]; ok {
		return short
	}
	return "?"
}

// BlockPairLabel renders a block index with the paired numbering the grid
// uses ("Bloque 1-2" for block 1, "Bloque 3-4" for block 2, ...).
func BlockPairLabel(block int) string {
	return fmt.Sprintf("Bloque %d-%d", block*2-1, block*2)
}

// BlockTimeLabel renders the block's wall-clock range, or an empty string
// for an out-of-range block.
func BlockTimeLabel(block int) string {
	label, err := timeblock.Label(block)
	if err != nil {
		return ""
	}
	return label
}
