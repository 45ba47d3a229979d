package main

import (
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/benjaauf/reservas-salasUSM/internal/app"
	"github.com/benjaauf/reservas-salasUSM/internal/config"
	"github.com/benjaauf/reservas-salasUSM/internal/render"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	st, err := app.BuildStore(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to build dataset", zap.Error(err))
	}

	roomID := "M-2"
	if len(os.Args) > 1 {
		roomID = os.Args[1]
	}

	_, room, err := st.Room(roomID)
	if err != nil {
		logger.Fatal("Room not found", zap.String("room_id", roomID), zap.Error(err))
	}

	imageData, err := render.WeekGrid(room)
	if err != nil {
		logger.Fatal("Failed to render schedule", zap.Error(err))
	}

	if err := os.WriteFile(cfg.OutputPath, imageData, 0644); err != nil {
		logger.Fatal("Failed to write image", zap.Error(err))
	}

	fmt.Printf("Horario de la sala %s guardado en %s\n", room.Number, cfg.OutputPath)
}
