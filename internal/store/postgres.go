package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/bookora/scheduler-api/internal/httperr"
	"github.com/bookora/scheduler-api/internal/models"
	"github.com/bookora/scheduler-api/internal/scheduling"
	"github.com/bookora/scheduler-api/internal/timeutil"
)

// Postgres é o backend relacional do facade. O AutoMigrate do boot é
// idempotente: cria tabelas/colunas que faltam e deixa deployments
// antigos se auto-curarem no primeiro uso.
type Postgres struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewPostgres(dsn string, logger *zap.Logger) (*Postgres, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	// WebsiteConfig fica de fora de propósito: a entidade ainda não
	// foi portada para este backend (ver métodos de website abaixo).
	if err := db.AutoMigrate(
		&models.Business{},
		&models.Service{},
		&models.TeamMember{},
		&models.AvailabilitySlot{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		return nil, err
	}

	db.Exec(`
        UPDATE businesses
        SET timezone = 'America/New_York'
        WHERE timezone IS NULL OR timezone = ''
    `)

	return &Postgres{db: db, logger: logger}, nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// -------- Business --------

func (p *Postgres) CreateBusiness(ctx context.Context, b *models.Business) error {
	var count int64
	if err := p.db.WithContext(ctx).
		Model(&models.Business{}).
		Where("slug = ?", b.Slug).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return httperr.ErrBusiness("slug_already_exists")
	}

	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return p.db.WithContext(ctx).Create(b).Error
}

func (p *Postgres) GetBusiness(ctx context.Context, id string) (*models.Business, error) {
	var b models.Business
	if err := p.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &b, nil
}

func (p *Postgres) GetBusinessBySlug(ctx context.Context, slug string) (*models.Business, error) {
	var b models.Business
	if err := p.db.WithContext(ctx).First(&b, "slug = ?", slug).Error; err != nil {
		return nil, notFound(err)
	}
	return &b, nil
}

func (p *Postgres) UpdateBusiness(ctx context.Context, b *models.Business) error {
	return p.db.WithContext(ctx).Save(b).Error
}

// -------- Service --------

func (p *Postgres) CreateService(ctx context.Context, s *models.Service) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return p.db.WithContext(ctx).Create(s).Error
}

func (p *Postgres) GetService(ctx context.Context, businessID, id string) (*models.Service, error) {
	var s models.Service
	if err := p.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", id, businessID).
		First(&s).Error; err != nil {
		return nil, notFound(err)
	}
	return &s, nil
}

func (p *Postgres) ListServices(ctx context.Context, businessID string) ([]models.Service, error) {
	services := []models.Service{}
	if err := p.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (p *Postgres) UpdateService(ctx context.Context, s *models.Service) error {
	return p.db.WithContext(ctx).Save(s).Error
}

func (p *Postgres) DeleteService(ctx context.Context, businessID, id string) error {
	res := p.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", id, businessID).
		Delete(&models.Service{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// -------- Team --------

func (p *Postgres) CreateTeamMember(ctx context.Context, m *models.TeamMember) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return p.db.WithContext(ctx).Create(m).Error
}

func (p *Postgres) ListTeamMembers(ctx context.Context, businessID string) ([]models.TeamMember, error) {
	team := []models.TeamMember{}
	if err := p.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at ASC").
		Find(&team).Error; err != nil {
		return nil, err
	}
	return team, nil
}

func (p *Postgres) UpdateTeamMember(ctx context.Context, m *models.TeamMember) error {
	return p.db.WithContext(ctx).Save(m).Error
}

func (p *Postgres) DeleteTeamMember(ctx context.Context, businessID, id string) error {
	res := p.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", id, businessID).
		Delete(&models.TeamMember{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// -------- Availability --------

func (p *Postgres) ReplaceAvailability(ctx context.Context, businessID string, windows []models.AvailabilitySlot) error {
	if err := scheduling.ValidateWindows(windows); err != nil {
		return err
	}

	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("business_id = ?", businessID).
			Delete(&models.AvailabilitySlot{}).Error; err != nil {
			return err
		}

		if len(windows) == 0 {
			return nil
		}

		toCreate := make([]models.AvailabilitySlot, 0, len(windows))
		for _, w := range windows {
			w.BusinessID = businessID
			if w.ID == "" {
				w.ID = uuid.NewString()
			}
			toCreate = append(toCreate, w)
		}

		return tx.Create(&toCreate).Error
	})
}

func (p *Postgres) ListAvailability(ctx context.Context, businessID string) ([]models.AvailabilitySlot, error) {
	windows := []models.AvailabilitySlot{}
	if err := p.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("day_of_week ASC, start_time ASC").
		Find(&windows).Error; err != nil {
		return nil, err
	}
	return windows, nil
}

// -------- Appointments --------

func (p *Postgres) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if ap.ID == "" {
		ap.ID = uuid.NewString()
	}
	if ap.Status == "" {
		ap.Status = string(scheduling.InitialStatus())
	}

	if err := p.db.WithContext(ctx).Create(ap).Error; err != nil {
		// Índice único (business_id, appointment_date, start_time):
		// o perdedor da corrida read-then-book cai aqui.
		if httperr.IsUniqueViolation(err) {
			return httperr.ErrBusiness("slot_taken")
		}
		return err
	}
	return nil
}

func (p *Postgres) GetAppointment(ctx context.Context, businessID, id string) (*models.Appointment, error) {
	var ap models.Appointment
	if err := p.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", id, businessID).
		First(&ap).Error; err != nil {
		return nil, notFound(err)
	}
	return &ap, nil
}

func (p *Postgres) ListAppointments(ctx context.Context, businessID string) ([]models.Appointment, error) {
	aps := []models.Appointment{}
	if err := p.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("appointment_date ASC, start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (p *Postgres) ListAppointmentsByDate(ctx context.Context, businessID string, date timeutil.Date) ([]models.Appointment, error) {
	aps := []models.Appointment{}
	if err := p.db.WithContext(ctx).
		Where("business_id = ? AND appointment_date = ?", businessID, date.String()).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (p *Postgres) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	return p.db.WithContext(ctx).Save(ap).Error
}

func (p *Postgres) DeleteAppointment(ctx context.Context, businessID, id string) error {
	res := p.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", id, businessID).
		Delete(&models.Appointment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// -------- Slot engine --------

func (p *Postgres) GetAvailableSlots(ctx context.Context, businessID string, date timeutil.Date) ([]string, error) {
	windows := []models.AvailabilitySlot{}
	if err := p.db.WithContext(ctx).
		Where("business_id = ? AND day_of_week = ? AND active = ?",
			businessID, date.Weekday(), true).
		Find(&windows).Error; err != nil {
		return nil, err
	}

	aps := []models.Appointment{}
	if err := p.db.WithContext(ctx).
		Select("appointment_date", "start_time").
		Where("business_id = ? AND appointment_date = ?", businessID, date.String()).
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return scheduling.AvailableSlots(windows, aps, date), nil
}

// -------- Website --------
//
// WebsiteConfig ainda não existe neste backend. Fallback seguro:
// leitura vazia, escrita no-op. Gap documentado, não bug.

func (p *Postgres) GetWebsiteConfig(_ context.Context, _ string) (*models.WebsiteConfig, error) {
	return nil, ErrNotFound
}

func (p *Postgres) UpsertWebsiteConfig(_ context.Context, wc *models.WebsiteConfig) error {
	p.logger.Warn("website config not persisted on postgres backend",
		zap.String("business_id", wc.BusinessID))
	return nil
}

// -------- Audit --------

func (p *Postgres) AppendAuditLog(ctx context.Context, entry *models.AuditLog) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	return p.db.WithContext(ctx).Create(entry).Error
}

func (p *Postgres) ListAuditLogs(ctx context.Context, businessID string, limit int) ([]models.AuditLog, error) {
	logs := []models.AuditLog{}
	q := p.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// Compile-time check
var _ Store = (*Postgres)(nil)
