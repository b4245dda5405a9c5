package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/yourorg/dashapi/internal/config"
	appdb "github.com/yourorg/dashapi/internal/db"
	"github.com/yourorg/dashapi/internal/middleware"
	"github.com/yourorg/dashapi/internal/routes"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ CRITICAL: %v", err)
	}

	app := fiber.New()
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:requestid} ${status} ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Authorization",
		AllowCredentials: true,
	}))

	// ============================================================================
	// DB CONNECTION
	// ============================================================================
	db, err := appdb.Connect(cfg)
	if err != nil {
		log.Fatalf("db open error: %v", err)
	}
	for i := 0; ; i++ {
		if err := db.Ping(); err == nil {
			break
		} else if i >= 5 {
			log.Fatalf("db ping error: %v (giving up after %d attempts)", err, i+1)
		} else {
			log.Printf("db ping error: %v (retrying in 5s)", err)
			time.Sleep(5 * time.Second)
		}
	}
	if err := appdb.EnsureSchema(db); err != nil {
		log.Fatalf("ensure schema error: %v", err)
	}
	log.Printf("✅ Database ready")

	routes.Register(app, cfg, db)

	// ============================================================================
	// GRACEFUL SHUTDOWN
	// ============================================================================
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("\n🛑 Señal de terminación recibida, cerrando servidor...")

		if err := app.Shutdown(); err != nil {
			log.Printf("⚠️  Error cerrando servidor: %v", err)
		}
		if err := db.Close(); err != nil {
			log.Printf("⚠️  Error cerrando conexión DB: %v", err)
		}

		log.Println("✅ Servidor cerrado correctamente")
		os.Exit(0)
	}()

	log.Printf("🚀 Servidor escuchando en :%s", cfg.Port)
	log.Println("📍 Endpoints disponibles:")
	log.Println("   POST /api/auth/login  - Autenticación (form: username, password)")
	log.Println("   GET  /api/dashboards  - Dashboards visibles según rol (bearer token)")
	log.Println("   GET  /api/health      - Health check")

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
