package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/gofiber/contrib/otelfiber/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/nerkartran297/english-center-api/internal/api"
	"github.com/nerkartran297/english-center-api/internal/events"
	"github.com/nerkartran297/english-center-api/internal/repository"
	"github.com/nerkartran297/english-center-api/internal/repository/inmem"
	"github.com/nerkartran297/english-center-api/internal/service"
	"github.com/nerkartran297/english-center-api/internal/storage"
	"github.com/nerkartran297/english-center-api/internal/tracing"
	_ "github.com/nerkartran297/english-center-api/migrations"
)

func main() {
	if err := godotenv.Load(".env.dev"); err != nil {
		fmt.Println("No .env.dev file found, reading from environment variables provided by Docker")
	}

	api.SetupGlobalHandler("english-center-api")

	shutdownTracer, err := tracing.InitTracerProvider("english-center-api")
	if err != nil {
		log.Fatalf("Failed to initialize OpenTelemetry: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Error shutting down tracer provider: %v", err)
		}
	}()

	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		handleMigrations()
		return
	}

	db := connectDB()
	defer db.Close()

	natsURL := os.Getenv("NATS_URL")
	if natsURL == "" {
		natsURL = "nats://localhost:4222"
	}
	eventPublisher, err := events.NewNatsPublisher(natsURL)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	log.Println("Successfully connected to NATS.")

	proofStore, err := storage.NewS3ProofStore()
	if err != nil {
		log.Fatalf("Failed to initialize proof store: %v", err)
	}

	studentRepo := repository.NewPostgresStudentRepository(db)
	paymentRepo := repository.NewPostgresPaymentRepository(db)
	salaryRepo := repository.NewPostgresSalaryRepository(db)

	// Demo mode serves the catalog the legacy frontend shipped hard-coded,
	// behind the same repository contracts as the Postgres store.
	var courseRepo repository.CourseRepository
	var classRepo repository.ClassRepository
	if os.Getenv("DEMO_MODE") == "true" {
		log.Println("DEMO_MODE enabled: serving the in-memory demo catalog.")
		catalog := inmem.NewCatalog()
		courseRepo = catalog
		classRepo = inmem.ClassView{Catalog: catalog}
	} else {
		courseRepo = repository.NewPostgresCourseRepository(db)
		classRepo = repository.NewPostgresClassRepository(db)
	}

	courseService := service.NewCourseService(courseRepo, classRepo, studentRepo)
	scheduleService := service.NewScheduleService(classRepo)
	studentService := service.NewStudentService(studentRepo, classRepo, salaryRepo)
	paymentService := service.NewPaymentService(paymentRepo, studentRepo, courseRepo, proofStore, eventPublisher)

	courseHandler := api.NewCourseHandler(courseService)
	scheduleHandler := api.NewScheduleHandler(scheduleService)
	studentHandler := api.NewStudentHandler(studentService)
	paymentHandler := api.NewPaymentHandler(paymentService)

	app := fiber.New()
	app.Use(otelfiber.Middleware())
	app.Use(api.PrometheusMiddleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": "english-center-api"})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	routes := app.Group("/api")
	routes.Use(api.IdentityMiddleware(studentRepo))

	routes.Get("/courses", courseHandler.ListCourses)
	routes.Get("/course-information/:id", courseHandler.GetCourseInformation)
	routes.Get("/course-detail/:id", courseHandler.GetCourseDetail)
	routes.Get("/class/:id", courseHandler.GetClass)
	routes.Get("/my-classes", studentHandler.MyClasses)
	routes.Get("/schedule", scheduleHandler.GetWeeklySchedule)
	routes.Get("/student-information", studentHandler.GetStudentInformation)
	routes.Get("/get-role", studentHandler.GetRole)
	routes.Get("/salary", studentHandler.GetSalary)
	routes.Put("/purchase-course/:id", paymentHandler.PurchaseCourse)

	courseAdmin := api.RequireRole("manager", "admin")
	routes.Post("/add-course", courseAdmin, courseHandler.AddCourse)
	routes.Put("/courses/:id", courseAdmin, courseHandler.UpdateCourse)
	routes.Delete("/courses/:id", courseAdmin, courseHandler.DeleteCourse)
	routes.Post("/courses/:id/classes", courseAdmin, courseHandler.AddClass)
	routes.Put("/courses/:id/classes/:classID", courseAdmin, courseHandler.UpdateClass)
	routes.Get("/all-students", courseAdmin, studentHandler.ListStudents)

	paymentStaff := api.RequireRole("accountant", "manager", "admin")
	routes.Get("/staff/payments", paymentStaff, paymentHandler.ListPayments)
	routes.Put("/staff/payments/:id/verify", paymentStaff, paymentHandler.VerifyPayment)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8000"
	}

	log.Printf("Listening english-center-api on port %s", port)
	log.Fatal(app.Listen(":" + port))
}

func connectDB() *sqlx.DB {
	db, err := sqlx.Connect("pgx", databaseURL())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Successfully connected to the database.")
	return db
}

func databaseURL() string {
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPassword, dbHost, dbPort, dbName,
	)
}

func handleMigrations() {
	fmt.Println("Running database migrations...")

	db, err := sql.Open("pgx", databaseURL())
	if err != nil {
		log.Fatalf("failed to connect to database for migration: %v", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("failed to set goose dialect: %v", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		log.Fatalf("goose: failed to run migrations: %v", err)
	}

	fmt.Println("Migrations applied successfully!")
}
