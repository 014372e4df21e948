package ctrl

import (
	"context"
	"io"
	"time"

	"github.com/JMURv/attendance-guard/internal/config"
	md "github.com/JMURv/attendance-guard/internal/models"
)

type AppRepo interface {
	deviceRepo
	auditRepo
	locationRepo
	attendanceRepo
}

type AppCtrl interface {
	deviceCtrl
	locationCtrl
	attendanceCtrl
}

type CacheService interface {
	io.Closer
	GetToStruct(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, t time.Duration, key string, val any)
	Delete(ctx context.Context, key string)
	InvalidateKeysByPattern(ctx context.Context, pattern string)
}

// Notifier hands manager alerts to background delivery. Enqueue must not
// block the caller.
type Notifier interface {
	Enqueue(alert md.ManagerAlert) bool
}

type Archiver interface {
	PutJSON(ctx context.Context, key string, payload []byte) (string, error)
}

type Controller struct {
	repo     AppRepo
	cache    CacheService
	notifier Notifier
	archiver Archiver
	conf     config.RiskConfig
	now      func() time.Time
}

func New(
	repo AppRepo,
	cache CacheService,
	notifier Notifier,
	archiver Archiver,
	conf config.RiskConfig,
) *Controller {
	return &Controller{
		repo:     repo,
		cache:    cache,
		notifier: notifier,
		archiver: archiver,
		conf:     conf,
		now:      time.Now,
	}
}
