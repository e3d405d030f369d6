//go:build integration

package store

import (
	"context"
	"os"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/bookora/scheduler-api/internal/httperr"
	"github.com/bookora/scheduler-api/internal/models"
)

// Roda com: TEST_DATABASE_URL=postgres://... go test -tags integration ./internal/store
func newTestPostgres(t *testing.T) *Postgres {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	p, err := NewPostgres(dsn, zap.NewNop())
	if err != nil {
		t.Fatalf("NewPostgres: %v", err)
	}

	// banco de teste: limpa tudo entre execuções
	for _, table := range []string{"appointments", "availability_slots", "services", "team_members", "audit_logs", "businesses"} {
		p.db.Exec("DELETE FROM " + table)
	}
	return p
}

func seedScenario(t *testing.T, s Store) string {
	t.Helper()
	ctx := context.Background()

	b := &models.Business{Name: "Parity Studio", Slug: "parity-studio"}
	if err := s.CreateBusiness(ctx, b); err != nil {
		t.Fatalf("CreateBusiness: %v", err)
	}

	windows := []models.AvailabilitySlot{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "11:00", SlotDurationMin: 30, Active: true},
		{DayOfWeek: 1, StartTime: "10:00", EndTime: "12:00", SlotDurationMin: 30, Active: true},
		{DayOfWeek: 2, StartTime: "09:00", EndTime: "17:00", SlotDurationMin: 30, Active: false},
	}
	if err := s.ReplaceAvailability(ctx, b.ID, windows); err != nil {
		t.Fatalf("ReplaceAvailability: %v", err)
	}

	for _, tc := range []struct{ start, status string }{
		{"09:30", "scheduled"},
		{"10:30", "cancelled"},
	} {
		err := s.CreateAppointment(ctx, &models.Appointment{
			BusinessID: b.ID, CustomerName: "Seed",
			AppointmentDate: "2024-03-18", StartTime: tc.start, Status: tc.status,
		})
		if err != nil {
			t.Fatalf("CreateAppointment(%s): %v", tc.start, err)
		}
	}

	return b.ID
}

// Os dois backends do facade devem devolver exatamente os mesmos slots
// para o mesmo estado: o motor é compartilhado, o storage só alimenta.
func TestPostgresSlotsMatchMemory(t *testing.T) {
	ctx := context.Background()
	monday := mustDate(t, "2024-03-18")

	pg := newTestPostgres(t)
	mem := NewMemory(false)

	pgBiz := seedScenario(t, pg)
	memBiz := seedScenario(t, mem)

	fromPG, err := pg.GetAvailableSlots(ctx, pgBiz, monday)
	if err != nil {
		t.Fatalf("postgres GetAvailableSlots: %v", err)
	}
	fromMem, err := mem.GetAvailableSlots(ctx, memBiz, monday)
	if err != nil {
		t.Fatalf("memory GetAvailableSlots: %v", err)
	}

	if !reflect.DeepEqual(fromPG, fromMem) {
		t.Errorf("backend mismatch: postgres=%v memory=%v", fromPG, fromMem)
	}

	want := []string{"09:00", "10:00", "11:00", "11:30"}
	if !reflect.DeepEqual(fromPG, want) {
		t.Errorf("slots = %v, want %v", fromPG, want)
	}
}

// O índice único (business_id, appointment_date, start_time) é a trava
// real contra double-booking; o erro do driver tem que virar slot_taken.
func TestPostgresUniqueIndexMapsToSlotTaken(t *testing.T) {
	ctx := context.Background()
	pg := newTestPostgres(t)
	bizID := seedScenario(t, pg)

	err := pg.CreateAppointment(ctx, &models.Appointment{
		BusinessID: bizID, CustomerName: "Dup",
		AppointmentDate: "2024-03-18", StartTime: "09:30",
	})
	if !httperr.IsBusiness(err, "slot_taken") {
		t.Fatalf("expected slot_taken, got %v", err)
	}
}

func TestPostgresReplaceAvailabilityIsTransactional(t *testing.T) {
	ctx := context.Background()
	pg := newTestPostgres(t)
	bizID := seedScenario(t, pg)

	bad := []models.AvailabilitySlot{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "10:00", SlotDurationMin: 30, Active: true},
		{DayOfWeek: 9, StartTime: "09:00", EndTime: "10:00", SlotDurationMin: 30, Active: true},
	}
	if err := pg.ReplaceAvailability(ctx, bizID, bad); err == nil {
		t.Fatal("expected validation error")
	}

	windows, err := pg.ListAvailability(ctx, bizID)
	if err != nil {
		t.Fatalf("ListAvailability: %v", err)
	}
	if len(windows) != 3 {
		t.Errorf("windows after failed replace = %d, want 3", len(windows))
	}
}
