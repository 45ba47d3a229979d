package main

import (
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/benjaauf/reservas-salasUSM/internal/app"
	"github.com/benjaauf/reservas-salasUSM/internal/config"
	"github.com/benjaauf/reservas-salasUSM/internal/formatting"
	"github.com/benjaauf/reservas-salasUSM/internal/model"
	"github.com/benjaauf/reservas-salasUSM/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Sugar().Infow("Starting room reservation demo",
		"environment", cfg.Environment,
		"seed", cfg.DatasetSeed)

	st, err := app.BuildStore(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to build dataset", zap.Error(err))
	}

	reservations := service.NewReservationService(st, logger)
	secretary := service.NewSecretaryService(st, logger)

	// Walk the demo scenario: a semester reservation on M-02's Monday
	// block 1 collides with its specific-date fixtures and goes pending.
	slot, err := reservations.SelectSlot("M-2", model.DayLunes, 1)
	if err != nil {
		logger.Fatal("Failed to select slot", zap.Error(err))
	}
	logger.Info("Slot selected",
		zap.String("room", "M-02"),
		zap.String("label", formatting.BlockPairLabel(slot.Block)),
		zap.String("time", formatting.BlockTimeLabel(slot.Block)),
		zap.Int("specific_reservations", len(slot.SpecificDateReservations)),
	)

	result, err := reservations.Reserve("M-2", model.DayLunes, 1, model.ReservationRequest{
		Type:      model.ReservationSemester,
		Professor: "Rodrigo Muñoz",
		Subject:   "Arquitectura de Software",
		Message:   "Único bloque compatible con el horario del curso.",
	})
	if err != nil {
		logger.Fatal("Failed to reserve", zap.Error(err))
	}

	for _, conflict := range result.Conflicts {
		logger.Info("Conflict detected", zap.String("detail", formatting.FormatConflict(conflict)))
	}

	if result.Pending() {
		logger.Info("Exception request raised", zap.String("request_id", result.Request.ID))

		// The secretary approves it; the slot becomes occupied.
		if err := secretary.Approve(result.Request.ID, "Aprobado por prioridad académica."); err != nil {
			logger.Fatal("Failed to approve request", zap.Error(err))
		}
	}

	// A single-date reservation on C-05's free Thursday block 2 lands
	// immediately.
	date := nextDate(model.DayJueves)
	specific, err := reservations.Reserve("C-5", model.DayJueves, 2, model.ReservationRequest{
		Type:         model.ReservationSpecific,
		Professor:    "Rodrigo Muñoz",
		Subject:      "Reunión de Coordinación",
		Date:         &date,
		ActivityType: model.ActivityReunion,
	})
	if err != nil {
		logger.Fatal("Failed to reserve specific date", zap.Error(err))
	}
	logger.Info("Specific date reserved",
		zap.String("room", "C-05"),
		zap.String("date", formatting.FormatDate(date)),
		zap.String("status", string(specific.Slot.Status)),
	)

	logger.Info("Demo finished",
		zap.Int("pending_requests", len(secretary.PendingRequests())),
		zap.Int("processed_requests", len(secretary.ProcessedRequests())),
	)
}

// nextDate returns the next calendar date falling on the given day.
func nextDate(day model.Day) time.Time {
	d := time.Now().AddDate(0, 0, 1)
	for model.DayOf(d) != day {
		d = d.AddDate(0, 0, 1)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}
