package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bookora/scheduler-api/internal/httperr"
	"github.com/bookora/scheduler-api/internal/models"
	"github.com/bookora/scheduler-api/internal/scheduling"
	"github.com/bookora/scheduler-api/internal/timeutil"
)

// Memory é o backend de desenvolvimento local: slices protegidos por
// RWMutex, vida útil igual à do processo. Sem connection string é o
// fallback zero-dependência do facade.
type Memory struct {
	mu sync.RWMutex

	businesses   []models.Business
	services     []models.Service
	team         []models.TeamMember
	availability []models.AvailabilitySlot
	appointments []models.Appointment
	websites     []models.WebsiteConfig
	auditLogs    []models.AuditLog
}

func NewMemory(seedDemo bool) *Memory {
	m := &Memory{}
	if seedDemo {
		m.seedDemoData()
	}
	return m
}

// -------- Business --------

func (m *Memory) CreateBusiness(_ context.Context, b *models.Business) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.businesses {
		if existing.Slug == b.Slug {
			return httperr.ErrBusiness("slug_already_exists")
		}
	}

	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt

	m.businesses = append(m.businesses, *b)
	return nil
}

func (m *Memory) GetBusiness(_ context.Context, id string) (*models.Business, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.businesses {
		if m.businesses[i].ID == id {
			b := m.businesses[i]
			return &b, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) GetBusinessBySlug(_ context.Context, slug string) (*models.Business, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.businesses {
		if m.businesses[i].Slug == slug {
			b := m.businesses[i]
			return &b, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) UpdateBusiness(_ context.Context, b *models.Business) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.businesses {
		if m.businesses[i].ID == b.ID {
			b.CreatedAt = m.businesses[i].CreatedAt
			b.UpdatedAt = time.Now()
			m.businesses[i] = *b
			return nil
		}
	}
	return ErrNotFound
}

// -------- Service --------

func (m *Memory) CreateService(_ context.Context, s *models.Service) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt

	m.services = append(m.services, *s)
	return nil
}

func (m *Memory) GetService(_ context.Context, businessID, id string) (*models.Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.services {
		if m.services[i].ID == id && m.services[i].BusinessID == businessID {
			s := m.services[i]
			return &s, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) ListServices(_ context.Context, businessID string) ([]models.Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []models.Service{}
	for _, s := range m.services {
		if s.BusinessID == businessID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *Memory) UpdateService(_ context.Context, s *models.Service) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.services {
		if m.services[i].ID == s.ID && m.services[i].BusinessID == s.BusinessID {
			s.CreatedAt = m.services[i].CreatedAt
			s.UpdatedAt = time.Now()
			m.services[i] = *s
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) DeleteService(_ context.Context, businessID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.services {
		if m.services[i].ID == id && m.services[i].BusinessID == businessID {
			m.services = append(m.services[:i], m.services[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// -------- Team --------

func (m *Memory) CreateTeamMember(_ context.Context, tm *models.TeamMember) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if tm.ID == "" {
		tm.ID = uuid.NewString()
	}
	tm.CreatedAt = time.Now()
	tm.UpdatedAt = tm.CreatedAt

	m.team = append(m.team, *tm)
	return nil
}

func (m *Memory) ListTeamMembers(_ context.Context, businessID string) ([]models.TeamMember, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []models.TeamMember{}
	for _, tm := range m.team {
		if tm.BusinessID == businessID {
			out = append(out, tm)
		}
	}
	return out, nil
}

func (m *Memory) UpdateTeamMember(_ context.Context, tm *models.TeamMember) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.team {
		if m.team[i].ID == tm.ID && m.team[i].BusinessID == tm.BusinessID {
			tm.CreatedAt = m.team[i].CreatedAt
			tm.UpdatedAt = time.Now()
			m.team[i] = *tm
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) DeleteTeamMember(_ context.Context, businessID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.team {
		if m.team[i].ID == id && m.team[i].BusinessID == businessID {
			m.team = append(m.team[:i], m.team[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// -------- Availability --------

// ReplaceAvailability troca a semana inteira do negócio de uma vez:
// apaga tudo e insere a lista nova (mesma semântica do backend
// relacional). Validação roda antes de qualquer escrita.
func (m *Memory) ReplaceAvailability(_ context.Context, businessID string, windows []models.AvailabilitySlot) error {
	if err := scheduling.ValidateWindows(windows); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.availability[:0]
	for _, w := range m.availability {
		if w.BusinessID != businessID {
			kept = append(kept, w)
		}
	}
	m.availability = kept

	now := time.Now()
	for _, w := range windows {
		w.BusinessID = businessID
		if w.ID == "" {
			w.ID = uuid.NewString()
		}
		w.CreatedAt = now
		w.UpdatedAt = now
		m.availability = append(m.availability, w)
	}

	return nil
}

func (m *Memory) ListAvailability(_ context.Context, businessID string) ([]models.AvailabilitySlot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []models.AvailabilitySlot{}
	for _, w := range m.availability {
		if w.BusinessID == businessID {
			out = append(out, w)
		}
	}
	return out, nil
}

// -------- Appointments --------

func (m *Memory) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Recheck embaixo do write lock — equivalente local do índice
	// único do backend relacional.
	for _, existing := range m.appointments {
		if existing.BusinessID == ap.BusinessID &&
			existing.AppointmentDate == ap.AppointmentDate &&
			existing.StartTime == ap.StartTime {
			return httperr.ErrBusiness("slot_taken")
		}
	}

	if ap.ID == "" {
		ap.ID = uuid.NewString()
	}
	if ap.Status == "" {
		ap.Status = string(scheduling.InitialStatus())
	}
	ap.CreatedAt = time.Now()
	ap.UpdatedAt = ap.CreatedAt

	m.appointments = append(m.appointments, *ap)
	return nil
}

func (m *Memory) GetAppointment(_ context.Context, businessID, id string) (*models.Appointment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.appointments {
		if m.appointments[i].ID == id && m.appointments[i].BusinessID == businessID {
			ap := m.appointments[i]
			return &ap, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) ListAppointments(_ context.Context, businessID string) ([]models.Appointment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []models.Appointment{}
	for _, ap := range m.appointments {
		if ap.BusinessID == businessID {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (m *Memory) ListAppointmentsByDate(_ context.Context, businessID string, date timeutil.Date) ([]models.Appointment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	key := date.String()
	out := []models.Appointment{}
	for _, ap := range m.appointments {
		if ap.BusinessID == businessID && ap.AppointmentDate == key {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (m *Memory) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.appointments {
		if m.appointments[i].ID == ap.ID && m.appointments[i].BusinessID == ap.BusinessID {
			ap.CreatedAt = m.appointments[i].CreatedAt
			ap.UpdatedAt = time.Now()
			m.appointments[i] = *ap
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) DeleteAppointment(_ context.Context, businessID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.appointments {
		if m.appointments[i].ID == id && m.appointments[i].BusinessID == businessID {
			m.appointments = append(m.appointments[:i], m.appointments[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// -------- Slot engine --------

func (m *Memory) GetAvailableSlots(_ context.Context, businessID string, date timeutil.Date) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	windows := []models.AvailabilitySlot{}
	for _, w := range m.availability {
		if w.BusinessID == businessID {
			windows = append(windows, w)
		}
	}

	appointments := []models.Appointment{}
	for _, ap := range m.appointments {
		if ap.BusinessID == businessID {
			appointments = append(appointments, ap)
		}
	}

	return scheduling.AvailableSlots(windows, appointments, date), nil
}

// -------- Website --------

func (m *Memory) GetWebsiteConfig(_ context.Context, businessID string) (*models.WebsiteConfig, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.websites {
		if m.websites[i].BusinessID == businessID {
			wc := m.websites[i]
			return &wc, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) UpsertWebsiteConfig(_ context.Context, wc *models.WebsiteConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.websites {
		if m.websites[i].BusinessID == wc.BusinessID {
			wc.ID = m.websites[i].ID
			wc.CreatedAt = m.websites[i].CreatedAt
			wc.UpdatedAt = time.Now()
			m.websites[i] = *wc
			return nil
		}
	}

	if wc.ID == "" {
		wc.ID = uuid.NewString()
	}
	wc.CreatedAt = time.Now()
	wc.UpdatedAt = wc.CreatedAt
	m.websites = append(m.websites, *wc)
	return nil
}

// -------- Audit --------

func (m *Memory) AppendAuditLog(_ context.Context, entry *models.AuditLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	entry.CreatedAt = time.Now()

	m.auditLogs = append(m.auditLogs, *entry)
	return nil
}

func (m *Memory) ListAuditLogs(_ context.Context, businessID string, limit int) ([]models.AuditLog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []models.AuditLog{}
	for i := len(m.auditLogs) - 1; i >= 0; i-- {
		if m.auditLogs[i].BusinessID != businessID {
			continue
		}
		out = append(out, m.auditLogs[i])
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

// Compile-time check
var _ Store = (*Memory)(nil)
