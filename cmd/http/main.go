package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"spectrum-sense-service/internal/app/config"
	"spectrum-sense-service/internal/app/contracts"
	"spectrum-sense-service/internal/app/delivery/http/controllers"
	"spectrum-sense-service/internal/app/delivery/http/middlewares"
	"spectrum-sense-service/internal/app/delivery/http/routers"
	"spectrum-sense-service/internal/app/drivers/database"
	"spectrum-sense-service/internal/app/drivers/logger"
	"spectrum-sense-service/internal/app/drivers/messaging"
	assessmentResults "spectrum-sense-service/internal/app/services/core/assessment_results"
	"spectrum-sense-service/internal/app/services/core/assessments"
	"spectrum-sense-service/internal/app/services/core/auth"
	"spectrum-sense-service/internal/app/services/core/children"
	"spectrum-sense-service/internal/app/services/core/instruments"
	"spectrum-sense-service/internal/app/services/core/session"
	"spectrum-sense-service/internal/app/services/core/users"
	"spectrum-sense-service/internal/app/services/shared/locker"
	"spectrum-sense-service/internal/app/services/shared/publisher"
	"spectrum-sense-service/internal/app/services/shared/redis"
	"spectrum-sense-service/internal/pkg/screening"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 10*time.Second)
	err = database.EnsureMongoIndexes(indexCtx, mongoDB.Database(internalConfig.MongoDB.DbName))
	cancelIndex()
	if err != nil {
		log.Fatal("Failed to create mongo indexes", zap.Error(err))
	}

	redisClient := database.NewRedisClient(driverConfig)

	bootstrap := config.Bootstrap{
		Router:         chi.NewRouter(),
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if internalConfig.RabbitMQ.Enabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		log.Info("Server started", zap.String("address", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to release resources", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) error {
	log := bootstrap.Logger
	dbName := bootstrap.InternalConfig.MongoDB.DbName

	catalog, err := screening.DefaultCatalog()
	if err != nil {
		return err
	}

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository)
	lockerService := locker.NewLockService(redisRepository, log)

	// Publisher
	var eventPublisher contracts.EventPublisher
	if bootstrap.RabbitMQ != nil {
		eventPublisher, err = publisher.NewAssessmentPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.RabbitMQ.ResultQueue, log)
		if err != nil {
			return err
		}
	} else {
		eventPublisher = publisher.NewNoopPublisher(log)
	}

	// Repositories
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	childMongoRepository := children.NewChildMongoRepository(bootstrap.MongoDB, dbName)
	assessmentResultMongoRepository := assessmentResults.NewAssessmentResultMongoRepository(bootstrap.MongoDB, dbName)
	assessmentAttemptRedisRepository := assessments.NewAssessmentAttemptRedisRepository(redisRepository)

	// Usecases
	authUsecase := auth.NewAuthUsecase(userMongoRepository, sessionService, bootstrap.InternalConfig, log)
	userUsecase := users.NewUserUsecase(userMongoRepository, log)
	childUsecase := children.NewChildUsecase(childMongoRepository, log)
	instrumentUsecase := instruments.NewInstrumentUsecase(catalog, log)
	assessmentUsecase := assessments.NewAssessmentUsecase(
		childMongoRepository,
		assessmentAttemptRedisRepository,
		assessmentResultMongoRepository,
		eventPublisher,
		lockerService,
		catalog,
		bootstrap.InternalConfig,
		log,
	)
	assessmentResultUsecase := assessmentResults.NewAssessmentResultUsecase(assessmentResultMongoRepository, catalog, log)

	// Middlewares
	middlewareInstance := middlewares.NewMiddlewares(log, authUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewareInstance, &routers.Controllers{
		Health:           controllers.NewHealthController(bootstrap.InternalConfig),
		Auth:             controllers.NewAuthController(log, authUsecase, bootstrap.InternalConfig),
		User:             controllers.NewUserController(log, userUsecase, bootstrap.InternalConfig),
		Child:            controllers.NewChildController(log, childUsecase, bootstrap.InternalConfig),
		Instrument:       controllers.NewInstrumentController(log, instrumentUsecase, bootstrap.InternalConfig),
		Assessment:       controllers.NewAssessmentController(log, assessmentUsecase, bootstrap.InternalConfig),
		AssessmentResult: controllers.NewAssessmentResultController(log, assessmentResultUsecase, bootstrap.InternalConfig),
	})
	return nil
}
