package cmd

import (
	"log/slog"
	"strconv"
	"strings"

	httpin "shipmate/internal/adapters/in/http"
	"shipmate/internal/adapters/out/kafka"
	"shipmate/internal/adapters/out/postgres"
	"shipmate/internal/core/application/usecases/commands"
	"shipmate/internal/core/application/usecases/queries"
	"shipmate/internal/core/domain/services"
	"shipmate/internal/core/ports"
	"shipmate/internal/jobs"
	"shipmate/internal/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	calculator services.PriceCalculator
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	publisher ports.EventPublisher,
	m *metrics.Metrics,
	logger *slog.Logger,
) (*CompositionRoot, error) {
	tariff, err := config.Tariff()
	if err != nil {
		return nil, err
	}
	calculator, err := services.NewPriceCalculator(tariff)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, metrics.NewCountingPublisher(publisher, m), logger),
		calculator: calculator,
		metrics:    m,
		logger:     logger,
	}, nil
}

// ConnectionParams maps the DB_* settings onto the postgres adapter.
func (c Config) ConnectionParams() postgres.ConnectionParams {
	return postgres.ConnectionParams{
		Host:     c.DBHost,
		Port:     strconv.Itoa(c.DBPort),
		User:     c.DBUser,
		Password: c.DBPassword,
		DBName:   c.DBName,
		SSLMode:  c.DBSslMode,
	}
}

// EventPublisher is the Kafka producer of order events, or a publisher that drops them
// when no broker is configured.
type EventPublisher interface {
	ports.EventPublisher
	Close() error
}

func NewEventPublisher(config Config) EventPublisher {
	if config.KafkaHost == "" {
		return kafka.NopPublisher{}
	}
	return kafka.NewOrderEventsProducer(strings.Split(config.KafkaHost, ","), config.KafkaOrderChangedTopic)
}

func (c *CompositionRoot) CreateCreateSenderProfileCommandHandler() commands.CreateSenderProfileCommandHandler {
	var f commands.SenderUoWFactory = FuncSenderUoWFactory(func() commands.SenderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateSenderProfileCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateTravellerProfileCommandHandler() commands.CreateTravellerProfileCommandHandler {
	var f commands.TravellerUoWFactory = FuncTravellerUoWFactory(func() commands.TravellerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTravellerProfileCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uowFactoryFunc(), c.calculator)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.uowFactoryFunc())
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(c.uowFactoryFunc())
}

func (c *CompositionRoot) CreateFileComplaintCommandHandler() commands.FileComplaintCommandHandler {
	return commands.NewFileComplaintCommandHandler(c.uowFactoryFunc())
}

func (c *CompositionRoot) CreateExpireStaleOrdersCommandHandler() commands.ExpireStaleOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireStaleOrdersCommandHandler(f)
}

func (c *CompositionRoot) uowFactoryFunc() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateSender:        c.CreateCreateSenderProfileCommandHandler(),
		CreateTraveller:     c.CreateCreateTravellerProfileCommandHandler(),
		CreateOrder:         c.CreateCreateOrderCommandHandler(),
		AcceptOrder:         c.CreateAcceptOrderCommandHandler(),
		DeliverOrder:        c.CreateDeliverOrderCommandHandler(),
		FileComplaint:       c.CreateFileComplaintCommandHandler(),
		GetSender:           queries.NewGetSenderProfileQueryHandler(c.gormDB),
		GetTraveller:        queries.NewGetTravellerProfileQueryHandler(c.gormDB),
		GetOrder:            queries.NewGetOrderQueryHandler(c.gormDB),
		ListOrders:          queries.NewListOrdersQueryHandler(c.gormDB),
		ListAvailableOrders: queries.NewListAvailableOrdersQueryHandler(c.gormDB),
		ListComplaints:      queries.NewListComplaintsQueryHandler(c.gormDB),
		QuotePrice:          queries.NewQuotePriceQueryHandler(c.calculator),
	}
}

// NewRouter builds the HTTP entry point. gatherer backs the /metrics endpoint.
func (c *CompositionRoot) NewRouter(gatherer prometheus.Gatherer) (*echo.Echo, error) {
	server := httpin.NewServer(c.CreateHandlers(), c.metrics.AcceptConflicts)

	return httpin.NewRouter(server, httpin.RouterConfig{
		Auth: httpin.AuthConfig{
			Secret:   c.config.AuthJWTSecret,
			Audience: c.config.AuthAudience,
		},
		PriceRateLimit: c.config.PriceRateLimit,
		PriceRateBurst: c.config.PriceRateBurst,
		TrustedProxies: c.config.TrustedProxies,
	}, c.metrics, gatherer, c.logger)
}

func (c *CompositionRoot) NewJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewOrderExpiryJob(
			c.CreateExpireStaleOrdersCommandHandler(),
			c.config.OrderExpirySchedule,
			c.config.OrderTTL,
			c.logger,
		),
		jobs.NewAvailableOrdersGaugeJob(
			queries.NewCountAvailableOrdersQueryHandler(c.gormDB),
			c.metrics.AvailableOrders,
			c.config.AvailableOrdersSchedule,
			c.logger,
		),
	)
}

type FuncSenderUoWFactory func() commands.SenderUoW

func (f FuncSenderUoWFactory) Create() commands.SenderUoW {
	return f()
}

type FuncTravellerUoWFactory func() commands.TravellerUoW

func (f FuncTravellerUoWFactory) Create() commands.TravellerUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
