package timeutil

import (
	"testing"
	"time"
)

func TestTimeToMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:30", 570},
		{"17:00", 1020},
		{"23:59", 1439},
		{"9", 540},     // sem minutos → minutos = 0
		{"ab:cd", 0},   // segmentos não numéricos contam como zero
		{"ab:30", 30},  // só a hora é inválida
		{"", 0},
	}

	for _, tc := range cases {
		if got := TimeToMinutes(tc.in); got != tc.want {
			t.Errorf("TimeToMinutes(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestMinutesToTime(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{570, "09:30"},
		{1020, "17:00"},
		// sem wraparound: valor acima de 1440 não volta pra madrugada
		{1450, "24:10"},
	}

	for _, tc := range cases {
		if got := MinutesToTime(tc.in); got != tc.want {
			t.Errorf("MinutesToTime(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseDateValid(t *testing.T) {
	d, err := ParseDate("2024-03-15")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Year != 2024 || d.Month != time.March || d.Day != 15 {
		t.Errorf("unexpected components: %+v", d)
	}
	if d.String() != "2024-03-15" {
		t.Errorf("String() = %q", d.String())
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, in := range []string{
		"",
		"2024-3-15",
		"15-03-2024",
		"2024-13-01",
		"2024-02-30",
		"2024-00-10",
		"not-a-date",
	} {
		if _, err := ParseDate(in); err == nil {
			t.Errorf("ParseDate(%q): expected error", in)
		}
	}
}

// 2024-03-15 é sexta-feira em qualquer timezone do servidor: o weekday
// sai dos componentes de calendário, nunca de um parse UTC da string.
func TestWeekdayIsTimezoneIndependent(t *testing.T) {
	d, err := ParseDate("2024-03-15")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got := d.Weekday(); got != 5 {
		t.Fatalf("Weekday() = %d, want 5 (friday)", got)
	}

	// mesmo resultado ancorando a data em locations extremas
	for _, name := range []string{"UTC", "Pacific/Auckland", "America/Los_Angeles"} {
		loc, err := time.LoadLocation(name)
		if err != nil {
			t.Skipf("tzdata unavailable: %v", err)
		}
		if wd := int(d.toTime(loc).Weekday()); wd != 5 {
			t.Errorf("weekday in %s = %d, want 5", name, wd)
		}
	}
}

func TestDateAt(t *testing.T) {
	d, _ := ParseDate("2024-03-18")
	got := d.At("09:30", time.UTC)
	want := time.Date(2024, time.March, 18, 9, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("At() = %v, want %v", got, want)
	}
}
