package notify

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/JMURv/attendance-guard/internal/config"
	md "github.com/JMURv/attendance-guard/internal/models"
	metrics "github.com/JMURv/attendance-guard/internal/observability/metrics/prometheus"
	"github.com/JMURv/attendance-guard/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type ContactRepo interface {
	GetManagerContact(ctx context.Context, employeeID uuid.UUID) (*md.ManagerContact, error)
}

type Sender interface {
	SendManagerAlert(ctx context.Context, contact *md.ManagerContact, alert md.ManagerAlert) error
}

// Worker delivers manager alerts off the request path. Alerts are queued in a
// bounded buffer and dropped when it is full.
type Worker struct {
	conf   config.NotifyConfig
	repo   ContactRepo
	sender Sender
	queue  chan md.ManagerAlert

	mu      sync.Mutex
	cancel  context.CancelFunc
	running bool
	closed  bool
	wg      sync.WaitGroup
}

func New(conf config.NotifyConfig, repo ContactRepo, sender Sender) *Worker {
	if conf.Workers <= 0 {
		conf.Workers = 1
	}
	if conf.QueueSize <= 0 {
		conf.QueueSize = 1
	}

	return &Worker{
		conf:   conf,
		repo:   repo,
		sender: sender,
		queue:  make(chan md.ManagerAlert, conf.QueueSize),
	}
}

// Enqueue never blocks. It reports false when the alert was not accepted.
func (w *Worker) Enqueue(alert md.ManagerAlert) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		metrics.ObserveNotification(metrics.NotificationDropped)
		return false
	}

	select {
	case w.queue <- alert:
		return true
	default:
		metrics.ObserveNotification(metrics.NotificationDropped)
		zap.L().Warn(
			"notification queue is full, alert dropped",
			zap.String("employeeID", alert.EmployeeID.String()),
			zap.String("deviceID", alert.DeviceID.String()),
		)
		return false
	}
}

func (w *Worker) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running || w.closed {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.running = true

	for i := 0; i < w.conf.Workers; i++ {
		w.wg.Add(1)
		go w.loop(runCtx)
	}
	zap.L().Info("notification workers started", zap.Int("workers", w.conf.Workers))
}

// Close stops accepting alerts and waits for queued ones to be handled. When
// ctx expires first, in-flight deliveries are canceled.
func (w *Worker) Close(ctx context.Context) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.queue)
	cancel := w.cancel
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	var err error
	select {
	case <-done:
	case <-ctx.Done():
		err = ctx.Err()
	}

	if cancel != nil {
		cancel()
	}
	<-done
	return err
}

func (w *Worker) loop(ctx context.Context) {
	defer w.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case alert, ok := <-w.queue:
			if !ok {
				return
			}
			w.deliver(ctx, alert)
		}
	}
}

func (w *Worker) deliver(ctx context.Context, alert md.ManagerAlert) {
	const op = "notify.deliver"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := sleep(ctx, w.conf.Delay); err != nil {
		return
	}

	contact, err := w.repo.GetManagerContact(ctx, alert.EmployeeID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			zap.L().Info(
				"employee has no active manager, alert skipped",
				zap.String("employeeID", alert.EmployeeID.String()),
			)
			metrics.ObserveNotification(metrics.NotificationDropped)
			return
		}

		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error(
			"failed to get manager contact",
			zap.String("op", op),
			zap.String("employeeID", alert.EmployeeID.String()),
			zap.Error(err),
		)
		metrics.ObserveNotification(metrics.NotificationFailed)
		return
	}

	for attempt := 0; attempt <= w.conf.MaxRetries; attempt++ {
		if attempt > 0 {
			if err = sleep(ctx, w.conf.Backoff*time.Duration(attempt)); err != nil {
				break
			}
		}

		sendCtx, cancel := w.withTimeout(ctx)
		err = w.sender.SendManagerAlert(sendCtx, contact, alert)
		cancel()
		if err == nil {
			metrics.ObserveNotification(metrics.NotificationSent)
			zap.L().Debug(
				"manager alert sent",
				zap.String("employeeID", alert.EmployeeID.String()),
				zap.String("manager", contact.ManagerEmail),
				zap.Int("attempt", attempt+1),
			)
			return
		}

		zap.L().Warn(
			"failed to send manager alert",
			zap.String("op", op),
			zap.Int("attempt", attempt+1),
			zap.Error(err),
		)
	}

	span.SetTag(config.ErrorSpanTag, true)
	metrics.ObserveNotification(metrics.NotificationFailed)
	zap.L().Error(
		"manager alert was not delivered",
		zap.String("op", op),
		zap.String("employeeID", alert.EmployeeID.String()),
		zap.String("deviceID", alert.DeviceID.String()),
		zap.Error(err),
	)
}

func (w *Worker) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if w.conf.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, w.conf.Timeout)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
