package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"transcription/cmd"
	httpadapter "transcription/internal/adapters/in/http"
	"transcription/internal/adapters/out/postgres/filerepo"
	"transcription/internal/adapters/out/postgres/invoicerepo"
	"transcription/internal/adapters/out/postgres/jobrepo"
	"transcription/internal/adapters/out/postgres/orderrepo"
	"transcription/internal/adapters/out/queue"
	s3adapter "transcription/internal/adapters/out/s3"
	"transcription/internal/adapters/out/ses"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	gormDB := connectDB(configs)
	migrate(gormDB)

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(configs.AWSRegion))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}

	notifier, err := ses.NewNotifier(sesv2.NewFromConfig(awsCfg), configs.SESSender, configs.AlertEmail)
	if err != nil {
		log.Fatalf("Failed to create notifier: %v", err)
	}

	storage, err := s3adapter.NewStorage(s3.NewFromConfig(awsCfg), configs.S3Bucket)
	if err != nil {
		log.Fatalf("Failed to create object storage: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, notifier, storage, logger)

	jobManager, err := app.CreateJobManager()
	if err != nil {
		log.Fatalf("Failed to create job manager: %v", err)
	}
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		AWSRegion:              goDotEnvVariable("AWS_REGION"),
		S3Bucket:               goDotEnvVariable("S3_BUCKET"),
		SESSender:              goDotEnvVariable("SES_SENDER"),
		AlertEmail:             goDotEnvVariable("ALERT_EMAIL"),
		ApprovalTimeoutMinutes: goDotEnvIntVariable("APPROVAL_TIMEOUT_MINUTES"),
		RateCentsPerMinute:     int64(goDotEnvIntVariable("RATE_CENTS_PER_MINUTE")),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvIntVariable(key string) int {
	value, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Invalid integer value for %s: %v", key, err)
	}
	return value
}

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func migrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&jobrepo.AssignmentDTO{},
		&filerepo.FileDTO{},
		&invoicerepo.InvoiceDTO{},
		&queue.JobDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(app.CreateHandlers()).WithStorage(app.Storage())
	server.Register(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
