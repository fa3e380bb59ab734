package main

import (
	"context"
	"dr-portal/internal/app/config"
	"dr-portal/internal/app/contracts"
	"dr-portal/internal/app/delivery/http/controllers"
	"dr-portal/internal/app/delivery/http/middlewares"
	"dr-portal/internal/app/delivery/http/routers"
	"dr-portal/internal/app/drivers/database"
	"dr-portal/internal/app/drivers/logger"
	"dr-portal/internal/app/drivers/messaging"
	"dr-portal/internal/app/drivers/storage"
	"dr-portal/internal/app/services/aiapi"
	"dr-portal/internal/app/services/audit"
	"dr-portal/internal/app/services/dashboard"
	"dr-portal/internal/app/services/dbapi"
	"dr-portal/internal/app/services/navigation"
	"dr-portal/internal/app/services/session"
	"dr-portal/internal/app/services/shared/apiclient"
	"dr-portal/internal/app/services/shared/events"
	maskstorage "dr-portal/internal/app/services/shared/storage"
	"dr-portal/internal/pkg/constvars"
	"dr-portal/internal/pkg/utils"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	accessLog := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	bootstrap := config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         log,
		AccessLogger:   accessLog,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	if internalConfig.Session.Store == constvars.SessionStoreRedis {
		bootstrap.Redis = database.NewRedisClient(driverConfig)
	}
	if driverConfig.MongoDB.Enabled {
		bootstrap.MongoDB = database.NewMongoDB(driverConfig)
	}
	if driverConfig.RabbitMQ.Enabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
	}
	if driverConfig.Minio.Enabled {
		bootstrap.Minio = storage.NewMinio(driverConfig, internalConfig.Minio.BucketName)
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatal("Error bootstrapping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		log.Info("Server started", zap.String("addr", server.Addr), zap.String("version", internalConfig.App.Version))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	accessLog.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		accessLog.Printf("Error closing drivers: %v", err)
	}

	accessLog.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) error {
	log := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig

	utils.ConfigureErrorResponses(internalConfig.App.Env)

	// API clients
	dbapiClient := dbapi.NewClient(apiclient.NewJSONTransport(apiclient.ConfigFromUpstream(internalConfig.DBAPI)), log)
	aiapiClient := aiapi.NewClient(apiclient.NewMultipartTransport(apiclient.ConfigFromUpstream(internalConfig.AIAPI)), log)

	// Session
	var sessionStore contracts.SessionStore = session.NewMemoryStore()
	if bootstrap.Redis != nil {
		sessionStore = session.NewRedisStore(bootstrap.Redis, time.Duration(internalConfig.Session.ExpiredTimeInHours)*time.Hour)
	}
	sessionService := session.NewService(dbapiClient, sessionStore, log)

	// Optional infrastructure
	var maskArchive contracts.MaskArchive
	if bootstrap.Minio != nil {
		maskArchive = maskstorage.NewMinioMaskArchive(
			bootstrap.Minio,
			internalConfig.Minio.BucketName,
			time.Duration(internalConfig.Minio.PreSignedUrlObjectExpiryInHours)*time.Hour,
		)
	}

	var eventPublisher contracts.EventPublisher
	if bootstrap.RabbitMQ != nil {
		publisher, err := events.NewPublisher(bootstrap.RabbitMQ, internalConfig.RabbitMQ.DiagnosisEventQueue, log)
		if err != nil {
			return err
		}
		eventPublisher = publisher
	}

	var auditRepository contracts.AuditRepository
	if bootstrap.MongoDB != nil {
		auditRepository = audit.NewAuditMongoRepository(bootstrap.MongoDB, internalConfig.MongoDB.DBName)
	}

	// Dashboard
	dashboardUsecase := dashboard.NewDashboardUsecase(dbapiClient, aiapiClient, maskArchive, eventPublisher, auditRepository, log)

	// Navigation
	routes := navigation.NewTable(navigation.DefaultRoutes())
	guard := navigation.NewGuard(sessionService, log)

	// Middlewares
	middlewareInstance := middlewares.NewMiddlewares(log, bootstrap.AccessLogger, internalConfig, guard, routes)
	uploadLimiter := middlewares.NewRateLimiter(
		internalConfig.App.UploadRequestsPerSecond,
		time.Second,
		time.Duration(internalConfig.App.UploadBlockTimeInSeconds)*time.Second,
		log,
	)

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		middlewareInstance,
		uploadLimiter,
		controllers.NewAuthController(log, sessionService, internalConfig),
		controllers.NewViewController(log, dashboardUsecase, sessionService),
		controllers.NewDiagnosisController(log, dashboardUsecase, sessionService, internalConfig),
		controllers.NewUserController(log, dbapiClient),
	)
	return nil
}
