package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"eventsupply/cmd"
	httpadapter "eventsupply/internal/adapters/in/http"
	"eventsupply/internal/adapters/out/amqp"
	"eventsupply/internal/adapters/out/postgres/credentialrepo"
	"eventsupply/internal/adapters/out/postgres/evidencerepo"
	"eventsupply/internal/adapters/out/postgres/inventoryrepo"
	"eventsupply/internal/adapters/out/postgres/orderrepo"
	"eventsupply/internal/jobs"
	"eventsupply/internal/pkg/auth"
	"eventsupply/internal/pkg/metrics"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	gateway, err := amqp.NewNotificationGateway(configs.AMQPUrl)
	if err != nil {
		log.Fatalf("Failed to connect to AMQP broker: %v", err)
	}
	defer gateway.Close()

	jwtTTL, err := time.ParseDuration(configs.JWTTTL)
	if err != nil {
		log.Fatalf("Invalid JWT_TTL: %v", err)
	}
	signer, err := auth.NewTokenSigner(configs.JWTSecret, jwtTTL)
	if err != nil {
		log.Fatalf("Failed to create token signer: %v", err)
	}

	metrics.Register()

	app := cmd.NewCompositionRoot(configs, gormDB, gateway, signer, logger)

	jobManager := jobs.NewJobManager(app.CreatePurgeCredentialsCommandHandler(), logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
		AMQPUrl:    goDotEnvVariable("AMQP_URL"),
		JWTSecret:  goDotEnvVariable("JWT_SECRET"),
		JWTTTL:     goDotEnvVariable("JWT_TTL"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&credentialrepo.CredentialDTO{},
		&inventoryrepo.LineDTO{},
		&evidencerepo.ConfirmationDTO{},
		&evidencerepo.PhotoDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpadapter.NewServer(httpadapter.ServerHandlers{
		CreateOrder:        app.CreateCreateOrderCommandHandler(),
		ApproveOrder:       app.CreateApproveOrderCommandHandler(),
		AdvancePreparation: app.CreateAdvancePreparationCommandHandler(),
		AssignDelivery:     app.CreateAssignDeliveryCommandHandler(),
		DispatchOrder:      app.CreateDispatchOrderCommandHandler(),
		ConfirmDelivery:    app.CreateConfirmDeliveryCommandHandler(),
		ReturnOrder:        app.CreateReturnOrderCommandHandler(),
		CancelOrder:        app.CreateCancelOrderCommandHandler(),
		AttachPhoto:        app.CreateAttachPhotoCommandHandler(),
		IssueCredential:    app.CreateIssueCredentialCommandHandler(),
		ResendCredential:   app.CreateResendCredentialCommandHandler(),
		VerifyLogin:        app.CreateVerifyLoginCommandHandler(),
		GetOrder:           app.CreateGetOrderQueryHandler(),
		GetActiveOrders:    app.CreateGetActiveOrdersQueryHandler(),
		GetInventory:       app.CreateGetInventoryQueryHandler(),
	})

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
