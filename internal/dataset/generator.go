package dataset

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/benjaauf/reservas-salasUSM/internal/model"
	"github.com/benjaauf/reservas-salasUSM/internal/timeblock"
)

const roomsPerBuilding = 10

// baseDate anchors all generated specific-date reservations; the first
// entry for a slot lands on the first owning weekday after this date.
var baseDate = time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC)

var (
	subjects = []string{
		"Matemáticas I", "Física I", "Química General", "Programación I", "Cálculo I",
		"Álgebra Lineal", "Estadística", "Base de Datos", "Estructuras de Datos",
		"Análisis Matemático", "Mecánica", "Termodinámica", "Electromagnetismo",
		"Ingeniería de Software", "Redes de Computadores", "Inteligencia Artificial",
	}

	professors = []string{
		"Dr. García", "Ing. López", "Dra. Martínez", "Prof. Rodríguez", "Dr. Fernández",
		"Ing. Sánchez", "Dra. Morales", "Prof. Herrera", "Dr. Castillo", "Ing. Vargas",
	}

	groups = []string{"A1", "A2", "B1", "B2", "C1", "C2", "D1", "D2"}

	eventNames = []string{
		"Conferencia IA", "Simposio Ingeniería", "Taller Robótica",
		"Seminario Innovación", "Charla Tecnología",
	}

	capacities = []int{20, 30, 40, 50, 80, 100, 120}

	roomTypes = []model.RoomType{
		model.RoomTypeAula, model.RoomTypeLaboratorio, model.RoomTypeAuditorio,
		model.RoomTypeEstudio, model.RoomTypeConferencias,
	}

	equipmentCatalog = []model.Equipment{
		{ID: "1", Name: "Proyector", Icon: "Projector"},
		{ID: "2", Name: "Computadora", Icon: "Monitor"},
		{ID: "3", Name: "Audio", Icon: "Volume2"},
		{ID: "4", Name: "Pizarra Digital", Icon: "Tablet"},
		{ID: "5", Name: "Red WiFi", Icon: "Wifi"},
	}
)

// Clock is the reference instant the availability hints are derived from.
// It is an input, not something the generator reads off the wall.
type Clock struct {
	Day   model.Day
	Block int
}

type Generator struct {
	rng   *rand.Rand
	clock Clock
}

func NewGenerator(seed int64, clock Clock) *Generator {
	return &Generator{
		rng:   rand.New(rand.NewSource(seed)),
		clock: clock,
	}
}

// Buildings generates the full campus for the given catalog.
func (g *Generator) Buildings(catalog []*BuildingRecord) []*model.Building {
	buildings := make([]*model.Building, 0, len(catalog))
	for _, rec := range catalog {
		buildings = append(buildings, g.building(rec))
	}
	return buildings
}

func (g *Generator) building(rec *BuildingRecord) *model.Building {
	rooms := g.rooms(rec.Code)

	// Fixed demo fixtures the rest of the dataset references.
	switch rec.Code {
	case "M":
		fixtureM02(rooms)
	case "C":
		fixtureC05(rooms)
	}

	return &model.Building{
		ID:         rec.ID,
		Name:       rec.Name,
		Code:       rec.Code,
		TotalRooms: len(rooms),
		Rooms:      rooms,
	}
}

func (g *Generator) rooms(code string) []*model.Room {
	rooms := make([]*model.Room, 0, roomsPerBuilding)
	for i := 1; i <= roomsPerBuilding; i++ {
		sched := g.schedule()
		available, nextFree := g.availability(sched)

		rooms = append(rooms, &model.Room{
			ID:          fmt.Sprintf("%s-%d", code, i),
			Number:      fmt.Sprintf("%s-%02d", code, i),
			Capacity:    capacities[g.rng.Intn(len(capacities))],
			Equipment:   g.equipment(code, i),
			Type:        roomTypes[g.rng.Intn(len(roomTypes))],
			Schedule:    sched,
			IsAvailable: available,
			NextFree:    nextFree,
		})
	}
	return rooms
}

// equipment always includes a projector (working 70% of the time) plus
// two to four other items.
func (g *Generator) equipment(code string, index int) []model.Equipment {
	projector := equipmentCatalog[0]
	projector.ID = fmt.Sprintf("projector-%s-%d", code, index)
	projector.Working = g.rng.Float64() > 0.3

	others := make([]model.Equipment, len(equipmentCatalog)-1)
	copy(others, equipmentCatalog[1:])
	g.rng.Shuffle(len(others), func(i, j int) {
		others[i], others[j] = others[j], others[i]
	})

	count := 2 + g.rng.Intn(3)
	out := []model.Equipment{projector}
	for _, eq := range others[:count] {
		eq.Working = true
		out = append(out, eq)
	}
	return out
}

func (g *Generator) schedule() model.Schedule {
	sched := make(model.Schedule, len(model.Days))
	for _, day := range model.Days {
		slots := make([]model.Slot, 0, timeblock.MaxBlock)
		for block := timeblock.MinBlock; block <= timeblock.MaxBlock; block++ {
			slots = append(slots, g.slot(day, block))
		}
		sched[day] = slots
	}
	return sched
}

// slot rolls one (day, block) cell. Weekends see far less use.
func (g *Generator) slot(day model.Day, block int) model.Slot {
	occupancyRate, eventRate, specificRate := 0.25, 0.3, 0.2
	if day.IsWeekend() {
		occupancyRate, eventRate, specificRate = 0.1, 0.15, 0.05
	}

	roll := g.rng.Float64()
	switch {
	case roll < specificRate:
		count := 2 + g.rng.Intn(4)
		return model.Slot{
			Block:                    block,
			Status:                   model.SlotStatusSpecificDate,
			SpecificDateReservations: g.specificDates(count, day),
		}
	case roll < specificRate+eventRate:
		// A department event occupies a single future date of this slot.
		weeksAhead := g.rng.Intn(8)
		date := firstOwningDate(day).AddDate(0, 0, weeksAhead*7)
		return model.Slot{
			Block:  block,
			Status: model.SlotStatusSpecificDate,
			SpecificDateReservations: []model.SpecificDateReservation{{
				Date:         date,
				Subject:      eventNames[g.rng.Intn(len(eventNames))],
				Professor:    "Departamento",
				ActivityType: model.ActivityEvento,
			}},
		}
	case roll < specificRate+eventRate+occupancyRate:
		return model.Slot{
			Block:     block,
			Status:    model.SlotStatusOccupied,
			Subject:   subjects[g.rng.Intn(len(subjects))],
			Professor: professors[g.rng.Intn(len(professors))],
			Group:     groups[g.rng.Intn(len(groups))],
		}
	default:
		return model.Slot{Block: block, Status: model.SlotStatusAvailable}
	}
}

// specificDates generates count reservations on consecutive weeks, all on
// the slot's owning weekday.
func (g *Generator) specificDates(count int, day model.Day) []model.SpecificDateReservation {
	first := firstOwningDate(day)
	out := make([]model.SpecificDateReservation, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, model.SpecificDateReservation{
			Date:         first.AddDate(0, 0, i*7),
			Subject:      subjects[g.rng.Intn(len(subjects))],
			Professor:    professors[g.rng.Intn(len(professors))],
			ActivityType: model.ActivityTypes[g.rng.Intn(len(model.ActivityTypes))],
		})
	}
	return out
}

// firstOwningDate returns the first date strictly after baseDate that
// falls on the given day.
func firstOwningDate(day model.Day) time.Time {
	target, _ := day.Weekday()
	daysAhead := (int(target) - int(baseDate.Weekday()) + 7) % 7
	if daysAhead == 0 {
		daysAhead = 7
	}
	return baseDate.AddDate(0, 0, daysAhead)
}

// availability derives the room-card hint from the reference clock: is the
// room free right now, and if not, when is its next free block today.
func (g *Generator) availability(sched model.Schedule) (bool, string) {
	current, ok := sched.Slot(g.clock.Day, g.clock.Block)
	if ok && current.Status == model.SlotStatusAvailable {
		return true, ""
	}

	for _, slot := range sched[g.clock.Day] {
		if slot.Block > g.clock.Block && slot.Status == model.SlotStatusAvailable {
			start, _, err := timeblock.Interval(slot.Block)
			if err == nil {
				return false, start
			}
		}
	}
	return false, "08:15 (mañana)"
}

// fixtureM02 pins M-02's Monday block 1 to a known set of specific-date
// reservations so demos and walkthroughs have a stable collision target.
func fixtureM02(rooms []*model.Room) {
	room := findByNumber(rooms, "M-02")
	if room == nil {
		return
	}

	monday := time.Date(2025, time.October, 20, 0, 0, 0, 0, time.UTC)
	slot := model.Slot{
		Block:  1,
		Status: model.SlotStatusSpecificDate,
		SpecificDateReservations: []model.SpecificDateReservation{
			{Date: monday, Subject: "Taller de Programación Avanzada", Professor: "Dr. García", ActivityType: model.ActivityAyudantia},
			{Date: monday.AddDate(0, 0, 7), Subject: "Sesión de Consultas", Professor: "Dr. García", ActivityType: model.ActivityOtro},
			{Date: monday.AddDate(0, 0, 14), Subject: "Laboratorio de Electrónica", Professor: "Ing. López", ActivityType: model.ActivityReunion},
		},
	}
	replaceSlot(room.Schedule, model.DayLunes, slot)
}

// fixtureC05 guarantees a 60-seat room with Thursday block 2 free.
func fixtureC05(rooms []*model.Room) {
	room := findByNumber(rooms, "C-05")
	if room == nil {
		return
	}
	room.Capacity = 60
	replaceSlot(room.Schedule, model.DayJueves, model.Slot{Block: 2, Status: model.SlotStatusAvailable})
}

func findByNumber(rooms []*model.Room, number string) *model.Room {
	for _, r := range rooms {
		if r.Number == number {
			return r
		}
	}
	return nil
}

func replaceSlot(sched model.Schedule, day model.Day, slot model.Slot) {
	for i, existing := range sched[day] {
		if existing.Block == slot.Block {
			sched[day][i] = slot
			return
		}
	}
}
