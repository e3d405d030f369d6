package scheduling

import (
	"testing"
	"time"

	"github.com/bookora/scheduler-api/internal/httperr"
	"github.com/bookora/scheduler-api/internal/models"
)

func TestCancelFromScheduled(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusScheduled)}
	now := time.Date(2024, time.March, 18, 10, 0, 0, 0, time.UTC)

	if err := Cancel(ap, now); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if ap.Status != string(StatusCancelled) {
		t.Errorf("status = %q", ap.Status)
	}
	if ap.CancelledAt == nil || !ap.CancelledAt.Equal(now) {
		t.Errorf("cancelled_at = %v", ap.CancelledAt)
	}
}

func TestCompleteFromScheduled(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusScheduled)}
	now := time.Date(2024, time.March, 18, 11, 0, 0, 0, time.UTC)

	if err := Complete(ap, now); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if ap.Status != string(StatusCompleted) {
		t.Errorf("status = %q", ap.Status)
	}
	if ap.CompletedAt == nil {
		t.Error("completed_at not set")
	}
}

// scheduled é o único estado que transiciona; cancelado e concluído são
// terminais.
func TestTransitionsFromTerminalStates(t *testing.T) {
	now := time.Now()

	for _, status := range []Status{StatusCancelled, StatusCompleted} {
		ap := &models.Appointment{Status: string(status)}

		if err := Cancel(ap, now); !httperr.IsBusiness(err, "invalid_state") {
			t.Errorf("Cancel from %s: %v", status, err)
		}
		if err := Complete(ap, now); !httperr.IsBusiness(err, "invalid_state") {
			t.Errorf("Complete from %s: %v", status, err)
		}
		if ap.Status != string(status) {
			t.Errorf("status mutated to %q", ap.Status)
		}
	}
}

func TestValidateWindows(t *testing.T) {
	valid := models.AvailabilitySlot{DayOfWeek: 3, StartTime: "09:00", EndTime: "18:00", SlotDurationMin: 45}
	if err := ValidateWindows([]models.AvailabilitySlot{valid}); err != nil {
		t.Fatalf("valid window rejected: %v", err)
	}
	if err := ValidateWindows(nil); err != nil {
		t.Fatalf("empty list rejected: %v", err)
	}

	cases := []struct {
		name   string
		window models.AvailabilitySlot
		code   string
	}{
		{"weekday negativo", models.AvailabilitySlot{DayOfWeek: -1, StartTime: "09:00", EndTime: "10:00", SlotDurationMin: 30}, "invalid_weekday"},
		{"weekday 7", models.AvailabilitySlot{DayOfWeek: 7, StartTime: "09:00", EndTime: "10:00", SlotDurationMin: 30}, "invalid_weekday"},
		{"duração negativa", models.AvailabilitySlot{DayOfWeek: 1, StartTime: "09:00", EndTime: "10:00", SlotDurationMin: -30}, "invalid_slot_duration"},
		{"janela de tamanho zero", models.AvailabilitySlot{DayOfWeek: 1, StartTime: "10:00", EndTime: "10:00", SlotDurationMin: 30}, "invalid_availability_window"},
	}

	for _, tc := range cases {
		err := ValidateWindows([]models.AvailabilitySlot{tc.window})
		if !httperr.IsBusiness(err, tc.code) {
			t.Errorf("%s: expected %s, got %v", tc.name, tc.code, err)
		}
	}
}
