package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chowline/internal/adapter/logger"
	"chowline/internal/adapter/onesignal"
	"chowline/internal/adapter/paystack"
	"chowline/internal/adapter/postgres"
	"chowline/internal/adapter/rabbitmq"
	"chowline/internal/adapter/termii"
	"chowline/internal/adapter/ws"
	"chowline/internal/app/auth"
	"chowline/internal/app/menu"
	"chowline/internal/app/notification"
	"chowline/internal/app/order"
	"chowline/internal/app/stats"
	"chowline/internal/config"

	amqpAdapter "chowline/internal/adapter/amqp"
	httpAdapter "chowline/internal/adapter/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

func main() {
	mode := flag.String("mode", "api", "Service mode: api, notification-subscriber")
	port := flag.Int("port", 3000, "HTTP port")
	configPath := flag.String("config", "config.yaml", "Path to config file")
	flag.Parse()

	// Secrets come from the environment; .env is optional.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	lgr := logger.New(*mode)

	db, err := postgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer db.Close()

	lgr.Info("db_connected", "Connected to PostgreSQL database", "", map[string]interface{}{
		"host": cfg.Database.Host,
		"db":   cfg.Database.Database,
	})

	mqConn, err := rabbitmq.Connect(cfg.RabbitMQ)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer mqConn.Close()

	lgr.Info("rabbitmq_connected", "Connected to RabbitMQ", "", map[string]interface{}{
		"host": cfg.RabbitMQ.Host,
	})

	switch *mode {
	case "api":
		runAPI(ctx, cfg, db, mqConn, lgr, *port)

	case "notification-subscriber":
		runNotificationSubscriber(ctx, mqConn, lgr)

	default:
		log.Fatalf("Invalid mode: %s", *mode)
	}
}

func runAPI(ctx context.Context, cfg *config.Config, db postgres.DB, mqConn rabbitmq.Connection, lgr logger.Logger, port int) {
	// Repositories
	orderRepo := postgres.NewOrderRepository(db)
	menuRepo := postgres.NewMenuRepository(db)
	userRepo := postgres.NewUserRepository(db)

	// Outbound adapters
	verifier := paystack.New(cfg.Payment)
	pushSender := onesignal.New(cfg.Push)
	smsSender := termii.New(cfg.SMS)
	publisher := rabbitmq.NewPublisher(mqConn)
	hub := ws.NewHub(lgr)

	// Services
	dispatcher := notification.NewService(pushSender, smsSender, lgr)
	orderService := order.NewService(orderRepo, verifier, dispatcher, hub, publisher, lgr)
	menuService := menu.NewService(menuRepo, lgr)
	statsService := stats.NewService(orderRepo, lgr)
	authService := auth.NewService(userRepo, cfg.Admin, lgr)

	if err := authService.EnsureAdmin(ctx); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	// HTTP handlers
	orderHandler := httpAdapter.NewOrderHandler(orderService, lgr)
	menuHandler := httpAdapter.NewMenuHandler(menuService, lgr)
	adminHandler := httpAdapter.NewAdminHandler(statsService, authService, lgr)

	router := mux.NewRouter()
	router.HandleFunc("/api/payment/verify", orderHandler.VerifyPayment).Methods(http.MethodPost)
	router.HandleFunc("/api/orders", orderHandler.ListOrders).Methods(http.MethodGet)
	router.HandleFunc("/api/orders/{reference}", orderHandler.GetOrder).Methods(http.MethodGet)
	router.HandleFunc("/api/orders/{reference}", orderHandler.DeleteOrder).Methods(http.MethodDelete)
	router.HandleFunc("/api/orders/update/{reference}", orderHandler.UpdateStatus).Methods(http.MethodPatch)
	router.HandleFunc("/api/menu", menuHandler.ListItems).Methods(http.MethodGet)
	router.HandleFunc("/api/menu", menuHandler.CreateItem).Methods(http.MethodPost)
	router.HandleFunc("/api/menu/{id}", menuHandler.GetItem).Methods(http.MethodGet)
	router.HandleFunc("/api/menu/{id}", menuHandler.UpdateItem).Methods(http.MethodPut)
	router.HandleFunc("/api/menu/{id}", menuHandler.DeleteItem).Methods(http.MethodDelete)
	router.HandleFunc("/api/admin/stats", adminHandler.GetStats).Methods(http.MethodGet)
	router.HandleFunc("/api/admin/login", adminHandler.Login).Methods(http.MethodPost)
	router.HandleFunc("/ws/admin", hub.HandleConnect)

	var handler http.Handler = router
	handler = httpAdapter.LoggingMiddleware(lgr)(handler)
	handler = httpAdapter.RequestIDMiddleware(handler)
	handler = httpAdapter.RecoveryMiddleware(lgr)(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	lgr.Info("service_started", fmt.Sprintf("API started on port %d", port), "", map[string]interface{}{
		"port": port,
	})

	// Graceful shutdown
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		lgr.Info("shutdown_initiated", "Shutting down API", "", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			lgr.Error("shutdown_error", "Error during shutdown", "", nil, err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		lgr.Error("server_error", "Server error", "", nil, err)
	}
}

func runNotificationSubscriber(ctx context.Context, mqConn rabbitmq.Connection, lgr logger.Logger) {
	consumer := rabbitmq.NewConsumer(mqConn)
	handler := amqpAdapter.NewNotificationHandler(lgr)

	lgr.Info("service_started", "Notification Subscriber started", "", nil)

	go func() {
		if err := consumer.ConsumeOrderEvents(ctx, handler.HandleOrderEvent); err != nil {
			lgr.Error("consumer_error", "Error consuming order events", "", nil, err)
		}
	}()

	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
	<-sigint

	lgr.Info("shutdown_initiated", "Shutting down Notification Subscriber", "", nil)
}
