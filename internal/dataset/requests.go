package dataset

import (
	"time"

	"github.com/benjaauf/reservas-salasUSM/internal/model"
)

func isoDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SeedExceptionRequests returns the pending requests the secretary view
// starts the session with.
func SeedExceptionRequests() []*model.ExceptionRequest {
	return []*model.ExceptionRequest{
		{
			ID:           "req-001",
			RoomID:       "M-2",
			RoomNumber:   "M-02",
			BuildingCode: "M",
			Day:          model.DayLunes,
			Block:        1,
			Professor:    "Dra. Martínez",
			Subject:      "Cálculo Avanzado",
			Conflicts: []model.ConflictDate{
				{Date: isoDate(2025, time.October, 20), ActivityType: model.ActivityControl, Professor: "Dr. García", Subject: "Taller de Programación Avanzada"},
				{Date: isoDate(2025, time.November, 3), ActivityType: model.ActivityCertamen, Professor: "Dr. García", Subject: "Taller de Programación Avanzada"},
			},
			Message:   "Esta asignatura es fundamental para el primer semestre y no hay otros horarios disponibles que no generen conflictos con otras materias del plan de estudios.",
			Status:    model.RequestStatusPending,
			CreatedAt: time.Date(2025, time.November, 5, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:           "req-002",
			RoomID:       "C-5",
			RoomNumber:   "C-05",
			BuildingCode: "C",
			Day:          model.DayJueves,
			Block:        2,
			Professor:    "Prof. Rodríguez",
			Subject:      "Física Cuántica",
			Conflicts: []model.ConflictDate{
				{Date: isoDate(2025, time.November, 13), ActivityType: model.ActivityEvento, Professor: "Varios", Subject: "Conferencia de Física Moderna"},
			},
			Message:   "El curso tiene 45 estudiantes y necesitamos una sala con capacidad adecuada.",
			Status:    model.RequestStatusPending,
			CreatedAt: time.Date(2025, time.November, 5, 14, 15, 0, 0, time.UTC),
		},
		{
			ID:           "req-003",
			RoomID:       "R-3",
			RoomNumber:   "R-03",
			BuildingCode: "R",
			Day:          model.DayMartes,
			Block:        3,
			Professor:    "Ing. López",
			Subject:      "Estructuras de Datos",
			Conflicts: []model.ConflictDate{
				{Date: isoDate(2025, time.October, 28), ActivityType: model.ActivityAyudantia, Professor: "Dr. Fernández", Subject: "Algoritmos"},
				{Date: isoDate(2025, time.November, 11), ActivityType: model.ActivityControl, Professor: "Dr. Fernández", Subject: "Algoritmos"},
				{Date: isoDate(2025, time.November, 25), ActivityType: model.ActivityCertamen, Professor: "Dr. Fernández", Subject: "Algoritmos"},
			},
			Status:    model.RequestStatusPending,
			CreatedAt: time.Date(2025, time.November, 6, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:           "req-004",
			RoomID:       "B-1",
			RoomNumber:   "B-01",
			BuildingCode: "B",
			Day:          model.DayMiercoles,
			Block:        4,
			Professor:    "Dra. Morales",
			Subject:      "Termodinámica",
			Conflicts: []model.ConflictDate{
				{Date: isoDate(2025, time.November, 19), ActivityType: model.ActivityReunion, Professor: "Prof. Herrera", Subject: "Mecánica de Fluidos"},
			},
			Message:   "Necesitamos realizar experimentos prácticos que requieren el equipo específico de esta sala.",
			Status:    model.RequestStatusPending,
			CreatedAt: time.Date(2025, time.November, 6, 11, 45, 0, 0, time.UTC),
		},
	}
}
