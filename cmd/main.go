package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	addressapp "github.com/omartarek/e-commerce-api/application/address"
	productapp "github.com/omartarek/e-commerce-api/application/product"
	userapp "github.com/omartarek/e-commerce-api/application/user"
	"github.com/omartarek/e-commerce-api/cmd/config"
	redisclient "github.com/omartarek/e-commerce-api/cmd/redis"
	_ "github.com/omartarek/e-commerce-api/docs"
	addressRepo "github.com/omartarek/e-commerce-api/repository/address"
	productRepo "github.com/omartarek/e-commerce-api/repository/product"
	redisRepo "github.com/omartarek/e-commerce-api/repository/redis"
	txRepo "github.com/omartarek/e-commerce-api/repository/tx"
	userRepo "github.com/omartarek/e-commerce-api/repository/user"
	"github.com/omartarek/e-commerce-api/thirdparty/rabbitmq"
	"github.com/omartarek/e-commerce-api/transport"
	"github.com/omartarek/e-commerce-api/utils/logger"
	validatorx "github.com/omartarek/e-commerce-api/utils/validator"
)

// @title E-COMMERCE API
// @version 1.0
// @description E-COMMERCE API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Register validations before serving any request
	validatorx.Init()

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Connect to RabbitMQ. Welcome events are optional, the API runs
	// without a broker.
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("err connect rabbitmq publisher", zap.Error(err))
		publisher = nil
	} else {
		defer publisher.Close()
	}

	if publisher != nil {
		consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, welcomeHandler)
		if err != nil {
			logger.Warn("err connect rabbitmq consumer", zap.Error(err))
		} else {
			defer consumer.Close()
			if err := consumer.Start(context.Background()); err != nil {
				logger.Warn("err start rabbitmq consumer", zap.Error(err))
			}
		}
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	AddressRepo := addressRepo.NewAddressRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, TxRepo, UserRepo, publisher)
	AddressApp := addressapp.NewAddressApp(AddressRepo)
	ProductApp := productapp.NewProductApp(cfg, ProductRepo, RedisRepo)

	httpTransport := transport.NewTransport(UserApp, AddressApp, ProductApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}

// welcomeHandler dispatches the welcome notification for a new user.
func welcomeHandler(ctx context.Context, msg rabbitmq.UserRegisteredMessage) error {
	logger.Info("welcome notification sent",
		zap.Uint64("user_id", msg.UserID),
		zap.String("email", msg.Email),
	)
	return nil
}
