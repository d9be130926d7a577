package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"parcelhub/cmd"
	httpadapter "parcelhub/internal/adapters/in/http"
	"parcelhub/internal/adapters/out/postgres"
	"parcelhub/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := openDatabase(configs)
	redisClient := openRedis(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, redisClient)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateGetOrdersSummaryQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// A missing .env file is fine in containerized deployments where the
	// environment is injected directly.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:   os.Getenv("HTTP_PORT"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSslMode:  os.Getenv("DB_SSLMODE"),
		RedisAddr:  os.Getenv("REDIS_ADDR"),
	}
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = postgres.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err = postgres.SeedOrderStatuses(db); err != nil {
		log.Fatalf("Failed to seed order statuses: %v", err)
	}

	return db
}

// openRedis returns nil when no address is configured, which disables the
// pickup point cache and serves directory reads straight from the database.
func openRedis(configs cmd.Config) *redis.Client {
	if configs.RedisAddr == "" {
		return nil
	}

	return redis.NewClient(&redis.Options{Addr: configs.RedisAddr})
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateListOrdersQueryHandler(),
		app.CreateListPickupPointsQueryHandler(),
		app.CreateListOrderStatusesQueryHandler(),
		app.CreateGetOrdersSummaryQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
