package assignment_run

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/service/assignment"
	"dispatch/pkg/logger"
)

type Service interface {
	RunAssignment(ctx context.Context) (*entities.AssignmentResult, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// AssignmentRun периодически запускает батч распределения заказов по
// водителям. Пустой пул водителей не считается сбоем задачи: заказы остаются
// заклеймленными release-ом и будут подобраны следующим батчем.
type AssignmentRun struct {
	log      handlerLogger
	service  Service
	interval time.Duration
}

func New(log handlerLogger, service Service, interval time.Duration) *AssignmentRun {
	return &AssignmentRun{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (a *AssignmentRun) TTL() time.Duration {
	return a.interval
}

func (a *AssignmentRun) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, a.interval)
	defer cancel()

	result, err := a.service.RunAssignment(ctxWithTimeout)
	if err != nil {
		if errors.Is(err, assignment.ErrNoDriversAvailable) {
			a.log.Warn("assignment skipped: no drivers available")
			return nil
		}
		return err
	}

	if result.TotalOrders > 0 {
		a.log.With(
			logger.NewField("groups", len(result.Groups)),
			logger.NewField("drivers", result.TotalDrivers),
			logger.NewField("orders", result.TotalOrders),
		).Info("assignment batch")
	}

	return nil
}

func (a *AssignmentRun) Info() string {
	return "assignment run"
}
