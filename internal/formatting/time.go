package formatting

import (
	"fmt"
	"time"

	"github.com/benjaauf/reservas-salasUSM/internal/model"
)

// FormatDate renders a calendar date as dd/mm/yyyy.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatConflict renders one conflict the way the exception review lists
// them: "Tope Día 20/10/2025 por Ayudantía".
func FormatConflict(c model.ConflictDate) string {
	return fmt.Sprintf("Tope Día %s por %s", FormatDate(c.Date), ActivityLabel(c.ActivityType))
}
