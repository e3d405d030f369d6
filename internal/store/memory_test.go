package store

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/bookora/scheduler-api/internal/httperr"
	"github.com/bookora/scheduler-api/internal/models"
	"github.com/bookora/scheduler-api/internal/timeutil"
)

func newBusiness(t *testing.T, m *Memory) *models.Business {
	t.Helper()
	b := &models.Business{Name: "Studio Teste", Slug: "studio-teste", Timezone: "America/Sao_Paulo"}
	if err := m.CreateBusiness(context.Background(), b); err != nil {
		t.Fatalf("CreateBusiness: %v", err)
	}
	return b
}

func mustDate(t *testing.T, s string) timeutil.Date {
	t.Helper()
	d, err := timeutil.ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return d
}

func TestMemoryBusinessCRUD(t *testing.T) {
	m := NewMemory(false)
	ctx := context.Background()
	b := newBusiness(t, m)

	if b.ID == "" {
		t.Fatal("expected generated ID")
	}

	got, err := m.GetBusiness(ctx, b.ID)
	if err != nil {
		t.Fatalf("GetBusiness: %v", err)
	}
	if got.Slug != "studio-teste" {
		t.Errorf("slug = %q", got.Slug)
	}

	bySlug, err := m.GetBusinessBySlug(ctx, "studio-teste")
	if err != nil || bySlug.ID != b.ID {
		t.Fatalf("GetBusinessBySlug: %v (%+v)", err, bySlug)
	}

	got.Name = "Studio Renomeado"
	if err := m.UpdateBusiness(ctx, got); err != nil {
		t.Fatalf("UpdateBusiness: %v", err)
	}
	again, _ := m.GetBusiness(ctx, b.ID)
	if again.Name != "Studio Renomeado" {
		t.Errorf("name after update = %q", again.Name)
	}

	if _, err := m.GetBusiness(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryRejectsDuplicateSlug(t *testing.T) {
	m := NewMemory(false)
	ctx := context.Background()
	newBusiness(t, m)

	err := m.CreateBusiness(ctx, &models.Business{Name: "Outro", Slug: "studio-teste"})
	if !httperr.IsBusiness(err, "slug_already_exists") {
		t.Fatalf("expected slug_already_exists, got %v", err)
	}
}

func TestMemoryReplaceAvailability(t *testing.T) {
	m := NewMemory(false)
	ctx := context.Background()
	b := newBusiness(t, m)

	first := []models.AvailabilitySlot{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00", SlotDurationMin: 30, Active: true},
		{DayOfWeek: 2, StartTime: "09:00", EndTime: "12:00", SlotDurationMin: 30, Active: true},
	}
	if err := m.ReplaceAvailability(ctx, b.ID, first); err != nil {
		t.Fatalf("ReplaceAvailability: %v", err)
	}

	// replace total: a segunda chamada apaga as janelas anteriores
	second := []models.AvailabilitySlot{
		{DayOfWeek: 5, StartTime: "14:00", EndTime: "18:00", SlotDurationMin: 60, Active: true},
	}
	if err := m.ReplaceAvailability(ctx, b.ID, second); err != nil {
		t.Fatalf("ReplaceAvailability (second): %v", err)
	}

	windows, err := m.ListAvailability(ctx, b.ID)
	if err != nil {
		t.Fatalf("ListAvailability: %v", err)
	}
	if len(windows) != 1 || windows[0].DayOfWeek != 5 {
		t.Errorf("windows after replace = %+v", windows)
	}
	if windows[0].BusinessID != b.ID || windows[0].ID == "" {
		t.Errorf("window not stamped: %+v", windows[0])
	}
}

func TestMemoryReplaceAvailabilityValidates(t *testing.T) {
	m := NewMemory(false)
	ctx := context.Background()
	b := newBusiness(t, m)

	cases := []struct {
		name   string
		window models.AvailabilitySlot
		code   string
	}{
		{"weekday fora de 0..6", models.AvailabilitySlot{DayOfWeek: 7, StartTime: "09:00", EndTime: "10:00", SlotDurationMin: 30}, "invalid_weekday"},
		{"duração zero", models.AvailabilitySlot{DayOfWeek: 1, StartTime: "09:00", EndTime: "10:00", SlotDurationMin: 0}, "invalid_slot_duration"},
		{"início depois do fim", models.AvailabilitySlot{DayOfWeek: 1, StartTime: "12:00", EndTime: "10:00", SlotDurationMin: 30}, "invalid_availability_window"},
	}

	for _, tc := range cases {
		err := m.ReplaceAvailability(ctx, b.ID, []models.AvailabilitySlot{tc.window})
		if !httperr.IsBusiness(err, tc.code) {
			t.Errorf("%s: expected %s, got %v", tc.name, tc.code, err)
		}
		// escrita inválida não pode ter apagado nada
		windows, _ := m.ListAvailability(ctx, b.ID)
		if len(windows) != 0 {
			t.Errorf("%s: windows written despite validation error", tc.name)
		}
	}
}

func TestMemoryCreateAppointmentRejectsTakenSlot(t *testing.T) {
	m := NewMemory(false)
	ctx := context.Background()
	b := newBusiness(t, m)

	ap := &models.Appointment{
		BusinessID:      b.ID,
		CustomerName:    "Ana",
		AppointmentDate: "2024-03-18",
		StartTime:       "10:00",
	}
	if err := m.CreateAppointment(ctx, ap); err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}
	if ap.Status != "scheduled" {
		t.Errorf("status = %q, want scheduled", ap.Status)
	}

	dup := &models.Appointment{
		BusinessID:      b.ID,
		CustomerName:    "Bruno",
		AppointmentDate: "2024-03-18",
		StartTime:       "10:00",
	}
	if err := m.CreateAppointment(ctx, dup); !httperr.IsBusiness(err, "slot_taken") {
		t.Fatalf("expected slot_taken, got %v", err)
	}

	// mesmo horário em negócio diferente não conflita
	other := newOtherBusiness(t, m)
	ok := &models.Appointment{
		BusinessID:      other.ID,
		CustomerName:    "Carla",
		AppointmentDate: "2024-03-18",
		StartTime:       "10:00",
	}
	if err := m.CreateAppointment(ctx, ok); err != nil {
		t.Fatalf("CreateAppointment (other business): %v", err)
	}
}

func newOtherBusiness(t *testing.T, m *Memory) *models.Business {
	t.Helper()
	b := &models.Business{Name: "Outro Studio", Slug: "outro-studio"}
	if err := m.CreateBusiness(context.Background(), b); err != nil {
		t.Fatalf("CreateBusiness: %v", err)
	}
	return b
}

func TestMemoryGetAvailableSlots(t *testing.T) {
	m := NewMemory(false)
	ctx := context.Background()
	b := newBusiness(t, m)
	other := newOtherBusiness(t, m)

	windows := []models.AvailabilitySlot{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "11:00", SlotDurationMin: 30, Active: true},
	}
	if err := m.ReplaceAvailability(ctx, b.ID, windows); err != nil {
		t.Fatalf("ReplaceAvailability: %v", err)
	}

	// agendamento de outro negócio no mesmo horário não interfere
	if err := m.CreateAppointment(ctx, &models.Appointment{
		BusinessID: other.ID, CustomerName: "X",
		AppointmentDate: "2024-03-18", StartTime: "09:30",
	}); err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}

	monday := mustDate(t, "2024-03-18")
	slots, err := m.GetAvailableSlots(ctx, b.ID, monday)
	if err != nil {
		t.Fatalf("GetAvailableSlots: %v", err)
	}
	want := []string{"09:00", "09:30", "10:00", "10:30"}
	if !reflect.DeepEqual(slots, want) {
		t.Errorf("slots = %v, want %v", slots, want)
	}

	if err := m.CreateAppointment(ctx, &models.Appointment{
		BusinessID: b.ID, CustomerName: "Ana",
		AppointmentDate: "2024-03-18", StartTime: "09:30",
	}); err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}

	slots, _ = m.GetAvailableSlots(ctx, b.ID, monday)
	want = []string{"09:00", "10:00", "10:30"}
	if !reflect.DeepEqual(slots, want) {
		t.Errorf("slots after booking = %v, want %v", slots, want)
	}
}

func TestMemoryListAppointmentsByDate(t *testing.T) {
	m := NewMemory(false)
	ctx := context.Background()
	b := newBusiness(t, m)

	for _, tc := range []struct{ date, start string }{
		{"2024-03-18", "09:00"},
		{"2024-03-18", "10:00"},
		{"2024-03-19", "09:00"},
	} {
		err := m.CreateAppointment(ctx, &models.Appointment{
			BusinessID: b.ID, CustomerName: "Ana",
			AppointmentDate: tc.date, StartTime: tc.start,
		})
		if err != nil {
			t.Fatalf("CreateAppointment(%s %s): %v", tc.date, tc.start, err)
		}
	}

	got, err := m.ListAppointmentsByDate(ctx, b.ID, mustDate(t, "2024-03-18"))
	if err != nil {
		t.Fatalf("ListAppointmentsByDate: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("appointments on 2024-03-18 = %d, want 2", len(got))
	}
}

func TestMemoryWebsiteConfigUpsert(t *testing.T) {
	m := NewMemory(false)
	ctx := context.Background()
	b := newBusiness(t, m)

	if _, err := m.GetWebsiteConfig(ctx, b.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound before upsert, got %v", err)
	}

	wc := &models.WebsiteConfig{BusinessID: b.ID, Template: "classic", PrimaryColor: "#112233"}
	if err := m.UpsertWebsiteConfig(ctx, wc); err != nil {
		t.Fatalf("UpsertWebsiteConfig: %v", err)
	}
	firstID := wc.ID

	wc2 := &models.WebsiteConfig{BusinessID: b.ID, Template: "modern"}
	if err := m.UpsertWebsiteConfig(ctx, wc2); err != nil {
		t.Fatalf("UpsertWebsiteConfig (update): %v", err)
	}
	if wc2.ID != firstID {
		t.Errorf("upsert created new row: %q != %q", wc2.ID, firstID)
	}

	got, err := m.GetWebsiteConfig(ctx, b.ID)
	if err != nil || got.Template != "modern" {
		t.Errorf("GetWebsiteConfig: %v (%+v)", err, got)
	}
}

func TestMemoryAuditLogsNewestFirstWithLimit(t *testing.T) {
	m := NewMemory(false)
	ctx := context.Background()
	b := newBusiness(t, m)

	for _, action := range []string{"first", "second", "third"} {
		err := m.AppendAuditLog(ctx, &models.AuditLog{BusinessID: b.ID, Action: action})
		if err != nil {
			t.Fatalf("AppendAuditLog: %v", err)
		}
	}

	logs, err := m.ListAuditLogs(ctx, b.ID, 2)
	if err != nil {
		t.Fatalf("ListAuditLogs: %v", err)
	}
	if len(logs) != 2 || logs[0].Action != "third" || logs[1].Action != "second" {
		t.Errorf("logs = %+v", logs)
	}
}

func TestMemorySeedDemoData(t *testing.T) {
	ctx := context.Background()

	empty := NewMemory(false)
	if _, err := empty.GetBusinessBySlug(ctx, "luna-beauty"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unseeded store has demo business: %v", err)
	}

	seeded := NewMemory(true)
	biz, err := seeded.GetBusinessBySlug(ctx, "luna-beauty")
	if err != nil {
		t.Fatalf("demo business missing: %v", err)
	}

	services, _ := seeded.ListServices(ctx, biz.ID)
	if len(services) == 0 {
		t.Error("demo services missing")
	}
	windows, _ := seeded.ListAvailability(ctx, biz.ID)
	if len(windows) == 0 {
		t.Error("demo availability missing")
	}

	// demo vem com janelas de seg a sex: uma segunda qualquer tem slots
	slots, err := seeded.GetAvailableSlots(ctx, biz.ID, mustDate(t, "2024-03-18"))
	if err != nil || len(slots) == 0 {
		t.Errorf("demo slots: %v (%v)", slots, err)
	}
}
