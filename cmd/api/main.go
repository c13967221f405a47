package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/b2bflow/leadflow/internal/infra/database"
	"github.com/b2bflow/leadflow/internal/infra/http/handlers"
	"github.com/b2bflow/leadflow/internal/infra/http/middleware"
	"github.com/b2bflow/leadflow/internal/infra/integration/gcalendar"
	"github.com/b2bflow/leadflow/internal/infra/integration/pipedrive"
	"github.com/b2bflow/leadflow/internal/infra/integration/zapi"
	"github.com/b2bflow/leadflow/internal/infra/mail"
	"github.com/b2bflow/leadflow/internal/infra/queue"
	"github.com/b2bflow/leadflow/internal/security"
	"github.com/b2bflow/leadflow/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// RabbitMQ é opcional: sem broker o fluxo síncrono segue normal,
	// só os eventos de funil deixam de ser publicados
	var rabbitConn *amqp.Connection
	var producer usecase.EventPublisher
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		rabbitMQ, err := queue.NewRabbitMQ(url)
		if err != nil {
			log.Printf("⚠️ RabbitMQ indisponível, eventos de funil desativados: %v", err)
		} else {
			defer rabbitMQ.Conn.Close()
			defer rabbitMQ.Ch.Close()
			rabbitConn = rabbitMQ.Conn
			producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
		}
	}

	// 1. Repositórios
	leadRepo := database.NewLeadRepository(db)

	// 2. Gateways e Adapters
	whatsapp := zapi.NewClientFromEnv()
	crm := pipedrive.NewClientFromEnv()
	calendar := gcalendar.NewClientFromEnv()
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), 587, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		os.Getenv("MAIL_FROM"),
	)

	tokens, err := security.NewSessionTokenService(os.Getenv("JWT_SECRET_KEY"))
	if err != nil {
		log.Fatal(err)
	}

	// 3. UseCases
	createLeadUC := usecase.NewCreateLeadUseCase(leadRepo, crm, tokens, producer)
	updateLeadUC := usecase.NewUpdateLeadUseCase(leadRepo, crm)
	bookUC := usecase.NewBookAppointmentUseCase(
		leadRepo, calendar, crm, mailSender, producer,
		os.Getenv("BOOKING_ALERT_EMAIL"),
	)
	verifyUC := usecase.NewVerifyTokenUseCase(leadRepo)
	sweeps := usecase.NewCronSweepUseCase(leadRepo, whatsapp)

	// 4. Handlers
	leadHandler := handlers.NewLeadHandler(createLeadUC, updateLeadUC, leadRepo)
	appointmentHandler := handlers.NewAppointmentHandler(bookUC)
	authHandler := handlers.NewAuthHandler(verifyUC)
	cronHandler := handlers.NewCronHandler(sweeps)
	healthHandler := handlers.NewHealthHandler(db, rabbitConn)

	// 5. Guards
	clientToken := middleware.ClientToken(os.Getenv("API_CLIENT_TOKEN"))
	leadSession := middleware.LeadSession(tokens)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Client-Token"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/auth/verify-token", authHandler.VerifyToken)
	r.Get("/appointments/slots", appointmentHandler.Slots)

	r.Group(func(r chi.Router) {
		r.Use(clientToken)

		r.Get("/leads", leadHandler.List)
		r.Put("/leads", leadHandler.Update)
		r.Post("/cron/run", cronHandler.Run)

		r.Group(func(r chi.Router) {
			r.Use(leadSession)

			r.Post("/leads", leadHandler.Create)
			r.Post("/appointments", appointmentHandler.Create)
		})
	})

	port := ":8080"
	log.Printf("🔥 Server LeadFlow rodando na porta %s", port)
	http.ListenAndServe(port, r)
}
