//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	courierGateway "dispatch/internal/gateway/http/courier"
	"dispatch/internal/gateway/notification_log"
	assignment_run_post "dispatch/internal/handlers/rest/assignment_run_post"
	driver_get "dispatch/internal/handlers/rest/driver_get"
	driver_post "dispatch/internal/handlers/rest/driver_post"
	driver_put "dispatch/internal/handlers/rest/driver_put"
	drivers_get "dispatch/internal/handlers/rest/drivers_get"
	order_get "dispatch/internal/handlers/rest/order_get"
	order_post "dispatch/internal/handlers/rest/order_post"
	order_slot_post "dispatch/internal/handlers/rest/order_slot_post"
	order_status_post "dispatch/internal/handlers/rest/order_status_post"
	"dispatch/internal/handlers/tasks/assignment_run"
	"dispatch/internal/handlers/tasks/outbox_relay"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/factory/notification_text"
	"dispatch/internal/pkg/factory/status_handle"

	auditRepo "dispatch/internal/repository/audit"
	driverRepo "dispatch/internal/repository/driver"
	orderRepo "dispatch/internal/repository/order"
	outboxRepo "dispatch/internal/repository/outbox"
	assignmentService "dispatch/internal/service/assignment"
	auditService "dispatch/internal/service/audit"
	courierService "dispatch/internal/service/courier"
	driverService "dispatch/internal/service/driver"
	lifecycleService "dispatch/internal/service/lifecycle"
	notificationService "dispatch/internal/service/notification"
	"dispatch/internal/service/status"

	"dispatch/pkg/background"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	AssignmentInterval  time.Duration
	OutboxRelayInterval time.Duration
)

type Application struct {
	ServiceLifecycle  ServiceLifecycle
	ServiceDriver     ServiceDriver
	ServiceAssignment ServiceAssignment
	BackgroundWorkers *background.Worker
}

type ServiceLifecycle interface {
	order_post.Service
	order_get.Service
	order_status_post.Service
	order_slot_post.Service
}

type ServiceDriver interface {
	driver_get.Service
	driver_post.Service
	driver_put.Service
	drivers_get.Service
}

type ServiceAssignment interface {
	assignment_run_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideAssignmentInterval,
		provideOutboxRelayInterval,

		provideOrderRepository,
		provideDriverRepository,
		provideAuditRepository,
		provideOutboxRepository,

		provideStatusValidator,
		provideAuditRecorder,
		provideServiceLifecycle,
		provideServiceDriver,
		provideServiceAssignment,
		assignmentService.NewEngine,

		provideHTTPClient,
		provideCourierGateway,
		provideSigner,
		provideCourierNotifier,
		notification_text.New,
		provideNotificationLogGateway,
		provideNotificationDispatcher,

		provideAssignmentRunTask,
		provideOutboxRelayTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceLifecycle), new(*lifecycleService.Service)),
		wire.Bind(new(ServiceDriver), new(*driverService.Driver)),
		wire.Bind(new(ServiceAssignment), new(*assignmentService.Service)),

		wire.Bind(new(lifecycleService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(lifecycleService.Validator), new(*status.Validator)),
		wire.Bind(new(lifecycleService.AuditRecorder), new(*auditService.Recorder)),
		wire.Bind(new(lifecycleService.Outbox), new(*outboxRepo.Repository)),
		wire.Bind(new(lifecycleService.TxManager), new(*tx.Manager)),

		wire.Bind(new(driverService.Repository), new(*driverRepo.Repository)),
		wire.Bind(new(auditService.Repository), new(*auditRepo.Repository)),

		wire.Bind(new(assignmentService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(assignmentService.DriverRepository), new(*driverRepo.Repository)),
		wire.Bind(new(assignmentService.LifecycleService), new(*lifecycleService.Service)),

		wire.Bind(new(courierService.Sender), new(*courierGateway.Gateway)),
		wire.Bind(new(courierService.AttemptLog), new(*outboxRepo.Repository)),

		wire.Bind(new(notificationService.MessageFactory), new(*notification_text.MessageTextFactory)),
		wire.Bind(new(notificationService.Sender), new(*notification_log.Gateway)),

		wire.Bind(new(assignment_run.Service), new(*assignmentService.Service)),
		wire.Bind(new(outbox_relay.Outbox), new(*outboxRepo.Repository)),
		wire.Bind(new(outbox_relay.OrderProvider), new(*orderRepo.Repository)),
		wire.Bind(new(outbox_relay.CourierNotifier), new(*courierService.Notifier)),
		wire.Bind(new(outbox_relay.CustomerNotifier), new(*notificationService.Dispatcher)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	HandlerFactory *status_handle.StatusHandlerFactory
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-events)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,
		provideAuditRepository,
		provideOutboxRepository,

		provideStatusValidator,
		provideAuditRecorder,
		provideServiceLifecycle,

		provideStatusHandlerFactory,

		wire.Bind(new(lifecycleService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(lifecycleService.Validator), new(*status.Validator)),
		wire.Bind(new(lifecycleService.AuditRecorder), new(*auditService.Recorder)),
		wire.Bind(new(lifecycleService.Outbox), new(*outboxRepo.Repository)),
		wire.Bind(new(lifecycleService.TxManager), new(*tx.Manager)),

		wire.Bind(new(auditService.Repository), new(*auditRepo.Repository)),
		wire.Bind(new(status_handle.LifecycleService), new(*lifecycleService.Service)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideDriverRepository(querier *querier.Querier) *driverRepo.Repository {
	return driverRepo.New(querier)
}

func provideAuditRepository(querier *querier.Querier) *auditRepo.Repository {
	return auditRepo.New(querier)
}

func provideOutboxRepository(querier *querier.Querier) *outboxRepo.Repository {
	return outboxRepo.New(querier)
}

func provideStatusValidator(cfg *config.Config) *status.Validator {
	return status.New(status.WithPermissiveUnknown(cfg.Status.PermissiveUnknown))
}

func provideAuditRecorder(repository auditService.Repository) *auditService.Recorder {
	return auditService.New(repository)
}

func provideServiceLifecycle(
	repository lifecycleService.Repository,
	validator lifecycleService.Validator,
	audit lifecycleService.AuditRecorder,
	outbox lifecycleService.Outbox,
	txManager lifecycleService.TxManager,
) *lifecycleService.Service {
	return lifecycleService.New(repository, validator, audit, outbox, txManager)
}

func provideServiceDriver(repository driverService.Repository) *driverService.Driver {
	return driverService.New(repository)
}

func provideServiceAssignment(
	engine *assignmentService.Engine,
	orders assignmentService.OrderRepository,
	drivers assignmentService.DriverRepository,
	lifecycle assignmentService.LifecycleService,
) *assignmentService.Service {
	return assignmentService.New(engine, orders, drivers, lifecycle)
}

func provideHTTPClient() *http.Client {
	return &http.Client{Timeout: 5 * time.Second}
}

func provideCourierGateway(client *http.Client, cfg *config.Config) *courierGateway.Gateway {
	return courierGateway.New(client, cfg.CourierEndpoint.URL)
}

func provideSigner(cfg *config.Config) *courierService.Signer {
	return courierService.NewSigner(cfg.CourierEndpoint.HMACSecret)
}

func provideCourierNotifier(
	log logger.Logger,
	signer *courierService.Signer,
	sender courierService.Sender,
	attemptLog courierService.AttemptLog,
) *courierService.Notifier {
	return courierService.New(log, signer, sender, attemptLog)
}

func provideNotificationLogGateway(log logger.Logger) *notification_log.Gateway {
	return notification_log.New(log)
}

func provideNotificationDispatcher(
	messages notificationService.MessageFactory,
	sender notificationService.Sender,
) *notificationService.Dispatcher {
	return notificationService.New(messages, sender)
}

func provideStatusHandlerFactory(lifecycle status_handle.LifecycleService) *status_handle.StatusHandlerFactory {
	return status_handle.NewStatusHandlerFactory(lifecycle)
}

func provideAssignmentInterval(cfg *config.Config) AssignmentInterval {
	return AssignmentInterval(cfg.Tasks.AssignmentRunInterval)
}

func provideOutboxRelayInterval(cfg *config.Config) OutboxRelayInterval {
	return OutboxRelayInterval(cfg.Tasks.OutboxRelayInterval)
}

func provideAssignmentRunTask(
	log logger.Logger,
	service assignment_run.Service,
	interval AssignmentInterval,
) *assignment_run.AssignmentRun {
	return assignment_run.New(log, service, time.Duration(interval))
}

func provideOutboxRelayTask(
	log logger.Logger,
	outbox outbox_relay.Outbox,
	orders outbox_relay.OrderProvider,
	courierNotifier outbox_relay.CourierNotifier,
	customerNotifier outbox_relay.CustomerNotifier,
	interval OutboxRelayInterval,
) *outbox_relay.OutboxRelay {
	return outbox_relay.New(log, outbox, orders, courierNotifier, customerNotifier, time.Duration(interval))
}

func provideTaskList(
	assignmentRunTask *assignment_run.AssignmentRun,
	outboxRelayTask *outbox_relay.OutboxRelay,
) []background.Task {
	return []background.Task{
		assignmentRunTask,
		outboxRelayTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
