package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeToMinutes converte "HH:MM" em minutos desde a meia-noite.
// Segmentos não numéricos contam como zero.
func TimeToMinutes(hm string) int {
	parts := strings.SplitN(hm, ":", 2)

	h := 0
	m := 0
	if len(parts) > 0 {
		h, _ = strconv.Atoi(parts[0])
	}
	if len(parts) > 1 {
		m, _ = strconv.Atoi(parts[1])
	}

	return h*60 + m
}

// MinutesToTime formata minutos desde a meia-noite como "HH:MM",
// sem wraparound: 1450 vira "24:10", não "00:10".
func MinutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Date é uma data de calendário validada (sem hora, sem timezone).
//
// O weekday é derivado só dos componentes ano/mês/dia. Nunca parseamos
// a string com um parser sensível a timezone: "2024-03-15" tem que ser
// sexta-feira em qualquer servidor, inclusive a leste de UTC.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate aceita apenas "YYYY-MM-DD".
func ParseDate(s string) (Date, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return Date{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, fmt.Errorf("invalid year in %q", s)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return Date{}, fmt.Errorf("invalid month in %q", s)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil || day < 1 || day > 31 {
		return Date{}, fmt.Errorf("invalid day in %q", s)
	}

	d := Date{Year: year, Month: time.Month(month), Day: day}
	if d.toTime(time.UTC).Day() != day {
		return Date{}, fmt.Errorf("invalid date %q: day out of range", s)
	}

	return d, nil
}

func (d Date) toTime(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Weekday retorna 0=domingo … 6=sábado. Componentes de calendário
// determinam o weekday sozinhos; a location usada aqui é irrelevante.
func (d Date) Weekday() int {
	return int(d.toTime(time.UTC).Weekday())
}

// String devolve "YYYY-MM-DD" normalizado (zero-padded).
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// At ancora a data num horário "HH:MM" dentro da location dada.
// Usado por exportação de calendário e carimbos locais, nunca pelo
// motor de slots.
func (d Date) At(hm string, loc *time.Location) time.Time {
	min := TimeToMinutes(hm)
	return time.Date(d.Year, d.Month, d.Day, min/60, min%60, 0, 0, loc)
}
