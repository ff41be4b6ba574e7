package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/smartlead-sync/internal/infra/database"
	"github.com/xavierca1/smartlead-sync/internal/infra/http/handlers"
	appmiddleware "github.com/xavierca1/smartlead-sync/internal/infra/http/middleware"
	"github.com/xavierca1/smartlead-sync/internal/infra/integration/smartlead"
	"github.com/xavierca1/smartlead-sync/internal/infra/mail"
	"github.com/xavierca1/smartlead-sync/internal/infra/queue"
	"github.com/xavierca1/smartlead-sync/internal/usecase"
)

func main() {
	godotenv.Load()

	debug := strings.EqualFold(os.Getenv("DEBUG"), "true")
	if debug {
		log.Printf("🐛 Debug ligado (base Smartlead: %s)", envOr("SMARTLEAD_BASE_URL", smartlead.DefaultBaseURL))
	}

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// 1. Repositório
	leadRepo := database.NewLeadRepository(db)

	// 2. Gateway Smartlead
	gateway := smartlead.NewClient(os.Getenv("SMARTLEAD_API_KEY"), os.Getenv("SMARTLEAD_BASE_URL"))

	// 3. Fila de eventos (opcional; sem RABBITMQ_URL o serviço roda sem ela)
	var events usecase.EventProducerInterface
	var rabbitConn *amqp.Connection
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		rabbitMQ, err := queue.NewRabbitMQ(url)
		if err != nil {
			log.Fatal(err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()

		rabbitConn = rabbitMQ.Conn
		events = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		// Worker de conversão (consome a fila e avisa vendas)
		var notifier queue.ConversionNotifier
		if host := os.Getenv("MAIL_HOST"); host != "" {
			port := 587
			if p, err := strconv.Atoi(os.Getenv("MAIL_PORT")); err == nil {
				port = p
			}
			notifier = mail.NewEmailSender(host, port, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"))
		}
		worker := queue.NewWorker(rabbitMQ.Ch, notifier, os.Getenv("SALES_ALERT_EMAIL"))
		go worker.Start(queue.QueueName)
	} else {
		log.Println("⚠️ RABBITMQ_URL não configurado, eventos de lead desligados")
	}

	// 4. UseCases
	createCampaignUC := usecase.NewCreateCampaignUseCase(gateway)
	addLeadsUC := usecase.NewAddLeadsUseCase(gateway, leadRepo, events)
	updateStatusUC := usecase.NewUpdateLeadStatusUseCase(leadRepo, events)
	analyticsUC := usecase.NewCampaignAnalyticsUseCase(leadRepo)

	// 5. Handlers
	campaignHandler := handlers.NewCampaignHandler(createCampaignUC)
	leadHandler := handlers.NewLeadHandler(addLeadsUC)
	webhookHandler := handlers.NewWebhookHandler(updateStatusUC)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsUC)
	healthHandler := handlers.NewHealthHandler(db, rabbitConn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(appmiddleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/campaigns", campaignHandler.Handle)
		r.Post("/leads", leadHandler.Handle)
		r.Get("/campaigns/{campaignID}/analytics", analyticsHandler.Handle)
	})
	r.Post("/smartlead/webhook", webhookHandler.Handle)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := ":" + envOr("PORT", "8080")
	log.Printf("🔥 Smartlead sync rodando na porta %s", port)
	http.ListenAndServe(port, r)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
