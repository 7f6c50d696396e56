package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/taskfuse/site-api/internal/infra/database"
	"github.com/taskfuse/site-api/internal/infra/http/handlers"
	"github.com/taskfuse/site-api/internal/infra/http/middleware"
	"github.com/taskfuse/site-api/internal/infra/integration/webhook"
	"github.com/taskfuse/site-api/internal/infra/mail"
	"github.com/taskfuse/site-api/internal/infra/queue"
	"github.com/taskfuse/site-api/internal/usecase"
	"github.com/taskfuse/site-api/pkg/logger"
)

func main() {
	godotenv.Load()
	logger.Init()
	defer logger.Log.Sync()

	ctx := context.Background()

	// 1. Slot storage. Postgres when configured, in-memory otherwise so a
	// local run works with nothing but RabbitMQ.
	var db *sql.DB
	var storage usecase.SlotStorage
	if connString := os.Getenv("DATABASE_URL"); connString != "" {
		var err error
		db, err = database.NewDBConnection(connString)
		if err != nil {
			logger.Sugar.Fatalw("failed to connect to Postgres", "error", err)
		}
		defer db.Close()

		repo := database.NewSlotRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			logger.Sugar.Fatalw("failed to ensure slot schema", "error", err)
		}
		storage = repo
	} else {
		logger.Sugar.Warn("DATABASE_URL not set, content lives in memory only")
		storage = database.NewMemorySlotStore()
	}

	// 2. Content store, loaded with defensive defaulting.
	store := usecase.NewContentStore(storage)
	store.Load(ctx)

	// 3. Session gate for the admin panel.
	gate := usecase.NewSessionGate()

	// 4. Delivery pipeline: queue -> webhook POST + notification email.
	rabbitMQ, err := queue.NewRabbitMQ(
		envOr("RABBITMQ_USER", "guest"),
		envOr("RABBITMQ_PASS", "guest"),
		envOr("RABBITMQ_HOST", "localhost"),
		envOr("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		logger.Sugar.Fatalw("failed to connect to RabbitMQ", "error", err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

	var mailSender queue.NotificationSender
	if host := os.Getenv("MAIL_HOST"); host != "" {
		mailSender = mail.NewEmailSender(
			host, 587, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		)
	} else {
		logger.Sugar.Warn("MAIL_HOST not set, submission notices disabled")
	}

	worker := queue.NewWorker(rabbitMQ.Ch, webhook.NewClient(), mailSender, store)
	go worker.Start(queue.QueueName)

	// 5. UseCases
	submitContactUC := usecase.NewSubmitContactUseCase(producer)

	// 6. Handlers
	contentHandler := handlers.NewContentHandler(store)
	adminHandler := handlers.NewAdminHandler(store)
	authHandler := handlers.NewAuthHandler(gate)
	contactHandler := handlers.NewContactHandler(submitContactUC)
	uploadHandler := handlers.NewUploadHandler()
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 7. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/api/industries", contentHandler.HandleListIndustries)
	r.Get("/api/industries/{slug}", contentHandler.HandleGetIndustry)
	r.Get("/api/faqs", contentHandler.HandleListFAQs)
	r.Get("/api/settings", contentHandler.HandleGetSettings)
	r.Post("/api/contact", contactHandler.HandleSubmit)

	r.Route("/api/admin", func(r chi.Router) {
		r.Post("/login", authHandler.HandleLogin)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(gate))

			r.Post("/logout", authHandler.HandleLogout)

			r.Post("/industries", adminHandler.HandleCreateIndustry)
			r.Put("/industries/{id}", adminHandler.HandleUpdateIndustry)
			r.Delete("/industries/{id}", adminHandler.HandleDeleteIndustry)

			r.Post("/faqs", adminHandler.HandleCreateFAQ)
			r.Put("/faqs/{id}", adminHandler.HandleUpdateFAQ)
			r.Delete("/faqs/{id}", adminHandler.HandleDeleteFAQ)

			r.Get("/settings", adminHandler.HandleGetSettings)
			r.Put("/settings", adminHandler.HandleUpdateSettings)

			r.Post("/upload", uploadHandler.HandleUpload)
		})
	})

	port := ":" + envOr("PORT", "8080")
	logger.Sugar.Infow("TaskFuse site API listening", "port", port)
	if err := http.ListenAndServe(port, r); err != nil {
		logger.Sugar.Fatalw("server stopped", "error", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
