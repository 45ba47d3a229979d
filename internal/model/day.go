package model

import "time"

// Day is one of the seven weekday labels used as Schedule keys.
// Labels match the dataset ("Lunes" ... "Domingo").
type Day string

const (
	DayLunes     Day = "Lunes"
	DayMartes    Day = "Martes"
	DayMiercoles Day = "Miércoles"
	DayJueves    Day = "Jueves"
	DayViernes   Day = "Viernes"
	DaySabado    Day = "Sábado"
	DayDomingo   Day = "Domingo"
)

// Days lists the week in display order, Monday first.
var Days = []Day{
	DayLunes,
	DayMartes,
	DayMiercoles,
	DayJueves,
	DayViernes,
	DaySabado,
	DayDomingo,
}

var dayByWeekday = map[time.Weekday]Day{
	time.Sunday:    DayDomingo,
	time.Monday:    DayLunes,
	time.Tuesday:   DayMartes,
	time.Wednesday: DayMiercoles,
	time.Thursday:  DayJueves,
	time.Friday:    DayViernes,
	time.Saturday:  DaySabado,
}

// DayOf returns the Day label for the calendar date t.
func DayOf(t time.Time) Day {
	return dayByWeekday[t.Weekday()]
}

// Weekday returns the time.Weekday matching the label, or false if unknown.
func (d Day) Weekday() (time.Weekday, bool) {
	for wd, day := range dayByWeekday {
		if day == d {
			return wd, true
		}
	}
	return 0, false
}

// IsValid checks that d is one of the seven known labels.
func (d Day) IsValid() bool {
	_, ok := d.Weekday()
	return ok
}

// IsWeekend reports whether d is Saturday or Sunday.
func (d Day) IsWeekend() bool {
	return d == DaySabado || d == DayDomingo
}
