package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	config "github.com/Kupenya/landPage/configs"
	"github.com/Kupenya/landPage/internal/infra/asset"
	"github.com/Kupenya/landPage/internal/infra/http/handlers"
	appmiddleware "github.com/Kupenya/landPage/internal/infra/http/middleware"
	"github.com/Kupenya/landPage/internal/infra/integration/sheets"
	"github.com/Kupenya/landPage/internal/infra/mail"
	"github.com/Kupenya/landPage/internal/infra/queue"
	"github.com/Kupenya/landPage/internal/infra/storage"
	"github.com/Kupenya/landPage/internal/usecase"
)

func main() {
	godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ invalid configuration: %v", err)
	}

	// 1. Row store (the spreadsheet is the only persistent store)
	sheetsClient := sheets.NewClient(cfg.SheetsAccessToken, cfg.SheetsBaseURL, cfg.SpreadsheetID)
	leadRepo := storage.NewLeadRepository(sheetsClient)

	// 2. Notification pipeline (best-effort: the API runs without it)
	var producer usecase.QueueProducerInterface
	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQUser, cfg.RabbitMQPass, cfg.RabbitMQHost, cfg.RabbitMQPort)
	if err != nil {
		log.Printf("⚠️ RabbitMQ unavailable, download emails disabled: %v", err)
	} else {
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()
		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		if cfg.MailConfigured() {
			mailSender := mail.NewEmailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom)
			worker := queue.NewWorker(rabbitMQ.Ch, mailSender, leadRepo)
			go worker.Start(queue.QueueName)
		} else {
			log.Printf("⚠️ SMTP not configured, download emails will dead-letter")
		}
	}

	// 3. Assets
	ebook := asset.NewEbookProvider(cfg.EbookPath)

	// 4. UseCases
	submitLeadUC := usecase.NewSubmitLeadUseCase(leadRepo, producer, cfg.BaseURL)
	validateTokenUC := usecase.NewValidateTokenUseCase(leadRepo)
	trackDownloadUC := usecase.NewTrackDownloadUseCase(leadRepo)
	downloadEbookUC := usecase.NewDownloadEbookUseCase(leadRepo, ebook)

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(submitLeadUC)
	downloadHandler := handlers.NewDownloadHandler(validateTokenUC, trackDownloadUC, downloadEbookUC)

	var healthHandler *handlers.HealthHandler
	if rabbitMQ != nil {
		healthHandler = handlers.NewHealthHandler(rabbitMQ.Conn, true, cfg.MailConfigured())
	} else {
		healthHandler = handlers.NewHealthHandler(nil, true, cfg.MailConfigured())
	}

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(appmiddleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	r.Post("/api/submit-email", leadHandler.SubmitEmail)
	r.Get("/api/validate-download", downloadHandler.Validate)
	r.Post("/api/track-download", downloadHandler.Track)
	r.Post("/api/download-ebook", downloadHandler.Download)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.ServerPort
	log.Printf("🔥 StorySell landing API listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}
