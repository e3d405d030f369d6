package store

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/bookora/scheduler-api/internal/config"
	"github.com/bookora/scheduler-api/internal/models"
	"github.com/bookora/scheduler-api/internal/timeutil"
)

// ErrNotFound é o sentinela comum dos dois backends. Erros de I/O do
// backend relacional sobem sem tradução.
var ErrNotFound = errors.New("record not found")

// Store é a superfície única de storage do produto. Handlers recebem
// a interface e nunca sabem qual backend está ativo; a escolha
// acontece uma vez em New, no boot do processo.
type Store interface {
	// -------- Business --------
	CreateBusiness(ctx context.Context, b *models.Business) error
	GetBusiness(ctx context.Context, id string) (*models.Business, error)
	GetBusinessBySlug(ctx context.Context, slug string) (*models.Business, error)
	UpdateBusiness(ctx context.Context, b *models.Business) error

	// -------- Service --------
	CreateService(ctx context.Context, s *models.Service) error
	GetService(ctx context.Context, businessID, id string) (*models.Service, error)
	ListServices(ctx context.Context, businessID string) ([]models.Service, error)
	UpdateService(ctx context.Context, s *models.Service) error
	DeleteService(ctx context.Context, businessID, id string) error

	// -------- Team --------
	CreateTeamMember(ctx context.Context, m *models.TeamMember) error
	ListTeamMembers(ctx context.Context, businessID string) ([]models.TeamMember, error)
	UpdateTeamMember(ctx context.Context, m *models.TeamMember) error
	DeleteTeamMember(ctx context.Context, businessID, id string) error

	// -------- Availability (replace em bloco) --------
	ReplaceAvailability(ctx context.Context, businessID string, windows []models.AvailabilitySlot) error
	ListAvailability(ctx context.Context, businessID string) ([]models.AvailabilitySlot, error)

	// -------- Appointments --------
	CreateAppointment(ctx context.Context, ap *models.Appointment) error
	GetAppointment(ctx context.Context, businessID, id string) (*models.Appointment, error)
	ListAppointments(ctx context.Context, businessID string) ([]models.Appointment, error)
	ListAppointmentsByDate(ctx context.Context, businessID string, date timeutil.Date) ([]models.Appointment, error)
	UpdateAppointment(ctx context.Context, ap *models.Appointment) error
	DeleteAppointment(ctx context.Context, businessID, id string) error

	// -------- Slot engine --------
	GetAvailableSlots(ctx context.Context, businessID string, date timeutil.Date) ([]string, error)

	// -------- Website --------
	GetWebsiteConfig(ctx context.Context, businessID string) (*models.WebsiteConfig, error)
	UpsertWebsiteConfig(ctx context.Context, wc *models.WebsiteConfig) error

	// -------- Audit --------
	AppendAuditLog(ctx context.Context, entry *models.AuditLog) error
	ListAuditLogs(ctx context.Context, businessID string, limit int) ([]models.AuditLog, error)
}

// New escolhe o backend a partir do ambiente: connection string
// presente → Postgres; ausente → memória. Um deploy target relacional
// sem DATABASE_URL é erro de configuração, não fallback silencioso.
func New(cfg *config.Config, logger *zap.Logger) (Store, error) {
	if cfg.DatabaseURL != "" {
		logger.Info("storage: using postgres backend")
		return NewPostgres(cfg.DatabaseURL, logger)
	}

	switch cfg.DeployTarget {
	case "render", "fly", "railway":
		return nil, fmt.Errorf("DEPLOY_TARGET=%s requires DATABASE_URL", cfg.DeployTarget)
	}

	logger.Info("storage: using in-memory backend",
		zap.Bool("seed_demo_data", cfg.SeedDemoData))
	return NewMemory(cfg.SeedDemoData), nil
}
