package main

import (
	"database/sql"
	"log"

	"github.com/DoukeUCB/HotelManagement-sub000/internal/application"
	"github.com/DoukeUCB/HotelManagement-sub000/internal/config"
	"github.com/DoukeUCB/HotelManagement-sub000/internal/email"
	"github.com/DoukeUCB/HotelManagement-sub000/internal/infrastructure/repository"
	handlers "github.com/DoukeUCB/HotelManagement-sub000/internal/interfaces/http"
	"github.com/DoukeUCB/HotelManagement-sub000/internal/scheduler"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/lib/pq"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.GetDBConnString())
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Error pinging database: %v", err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
		ExposeHeaders:    "Content-Length",
		MaxAge:           86400,
	}))

	// Email Client (opcional: sin SMTP configurado no se envían correos)
	var emailClient *email.Client
	if cfg.EmailConfigurado() {
		emailClient, err = email.NewClient(
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPUser,
			cfg.SMTPPassword,
			cfg.SMTPFromName,
			cfg.SMTPFromEmail,
		)
		if err != nil {
			log.Printf("Warning: Email client initialization failed: %v", err)
			emailClient = nil
		}
	}

	// Repositorios
	clientRepo := repository.NewClientRepository(db)
	personRepo := repository.NewPersonRepository(db)
	habitacionRepo := repository.NewHabitacionRepository(db)
	reservaRepo := repository.NewReservaRepository(db)
	detalleRepo := repository.NewDetalleRepository(db)

	// Servicios
	refValidator := application.NewRefValidator(clientRepo, habitacionRepo, personRepo)
	reservaService := application.NewReservaService(reservaRepo, clientRepo, refValidator, emailClient)
	detalleService := application.NewDetalleService(detalleRepo, reservaRepo, refValidator)
	orquestadorService := application.NewOrquestadorService(detalleRepo, reservaRepo, refValidator)
	habitacionService := application.NewHabitacionService(habitacionRepo)

	// Handlers
	reservaHandler := handlers.NewReservaHandler(reservaService)
	detalleHandler := handlers.NewDetalleHandler(detalleService, orquestadorService)
	habitacionHandler := handlers.NewHabitacionHandler(habitacionService)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Rutas de reservas (cabeceras)
	reservas := app.Group("/reservations")
	reservas.Post("/", reservaHandler.CreateReserva)
	reservas.Get("/", reservaHandler.GetReservas)
	reservas.Get("/:id", reservaHandler.GetReservaByID)
	reservas.Patch("/:id", reservaHandler.UpdateReserva)
	reservas.Delete("/:id", reservaHandler.DeleteReserva)

	// Rutas de detalles de reserva
	detalles := app.Group("/reservation-details")
	detalles.Post("/", detalleHandler.CreateDetalle)
	detalles.Post("/bulk", detalleHandler.CreateDetallesBulk)
	detalles.Patch("/:id", detalleHandler.UpdateDetalle)
	detalles.Delete("/:id", detalleHandler.DeleteDetalle)
	detalles.Get("/by-reservation/:reservationId", detalleHandler.GetDetallesByReserva)

	// Rutas de habitaciones (solo lectura en este núcleo)
	habitaciones := app.Group("/rooms")
	habitaciones.Get("/", habitacionHandler.GetAllRooms)
	habitaciones.Get("/:id", habitacionHandler.GetRoomByID)

	// Scheduler de reservas expiradas
	reservationScheduler := scheduler.NewReservationScheduler(reservaRepo)
	reservationScheduler.Start()
	defer reservationScheduler.Stop()

	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
