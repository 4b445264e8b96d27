package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dentora-service/internal/app/config"
	"dentora-service/internal/app/delivery/http/middlewares"
	"dentora-service/internal/app/delivery/http/routers"
	"dentora-service/internal/app/drivers/database"
	"dentora-service/internal/app/drivers/logger"
	"dentora-service/internal/app/drivers/mailer"
	"dentora-service/internal/app/drivers/messaging"
	driverstorage "dentora-service/internal/app/drivers/storage"
	"dentora-service/internal/app/services/core/appointments"
	"dentora-service/internal/app/services/core/auth"
	"dentora-service/internal/app/services/core/coordinator"
	"dentora-service/internal/app/services/core/dentists"
	"dentora-service/internal/app/services/core/maintenance"
	"dentora-service/internal/app/services/core/patients"
	"dentora-service/internal/app/services/core/tenants"
	"dentora-service/internal/app/services/core/usage"
	"dentora-service/internal/app/services/core/users"
	"dentora-service/internal/app/services/shared/clock"
	"dentora-service/internal/app/services/shared/locker"
	sharedmailer "dentora-service/internal/app/services/shared/mailer"
	paymentgateway "dentora-service/internal/app/services/shared/payment_gateway"
	"dentora-service/internal/app/services/shared/ratelimiter"
	"dentora-service/internal/app/services/shared/redis"
	"dentora-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	bootLog := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		bootLog.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	minioClient := driverstorage.NewMinio(driverConfig)
	smtpClient := mailer.NewSMTPClient(driverConfig, bootLog)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQConnection,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	if err := bootstrapTheApp(&bootstrap, smtpClient, minioClient); err != nil {
		bootLog.Fatalf("Failed to bootstrap application: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			bootLog.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests to finish..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		bootLog.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		bootLog.Fatalf("Failed to shutdown dependencies cleanly: %v", err)
	}

	bootLog.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap, smtpClient *mailer.SMTPClient, minioClient *minio.Client) error {
	log := bootstrap.Logger
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, log)
	resourceLimiter := ratelimiter.NewResourceLimiter(redisRepository, log)
	mailerService, err := sharedmailer.NewMailerService(smtpClient, bootstrap.RabbitMQ, bootstrap.InternalConfig.RabbitMQ.MailerQueue)
	if err != nil {
		return err
	}
	paymentGatewayService := paymentgateway.NewPaymentGatewayService(bootstrap.InternalConfig, log)
	storageService := storage.NewMinioStorage(minioClient, bootstrap.InternalConfig.Minio.BucketName)
	systemClock := clock.NewSystemClock()

	// Repositories
	tenantRepository := tenants.NewTenantMongoRepository(bootstrap.MongoClient, dbName)
	userRepository := users.NewUserMongoRepository(bootstrap.MongoClient, dbName)
	dentistRepository := dentists.NewDentistMongoRepository(bootstrap.MongoClient, dbName)
	patientRepository := patients.NewPatientMongoRepository(bootstrap.MongoClient, dbName)
	appointmentRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoClient, dbName)

	// Usage
	usageUsecase := usage.NewUsageUsecase(tenantRepository, userRepository, patientRepository, appointmentRepository, systemClock, log)
	usageController := usage.NewUsageController(log, usageUsecase)

	// Dentists and the debounced counter coordinator
	dentistService := dentists.NewDentistUsecase(dentistRepository, patientRepository, log)
	updateCoordinator := coordinator.NewUpdateCoordinator(
		dentistService,
		dentistRepository,
		log,
		time.Duration(bootstrap.InternalConfig.Coordinator.DebounceDelayInMs)*time.Millisecond,
		time.Duration(bootstrap.InternalConfig.Coordinator.RecomputeTimeoutInSeconds)*time.Second,
	)
	dentistController := dentists.NewDentistController(log, dentistService)

	// Tenants
	tenantUsecase := tenants.NewTenantUsecase(
		tenantRepository,
		userRepository,
		mailerService,
		paymentGatewayService,
		bootstrap.InternalConfig.Mailer.EmailSender,
		log,
	)
	tenantController := tenants.NewTenantController(log, tenantUsecase, updateCoordinator)

	// Users
	userUsecase := users.NewUserUsecase(userRepository, usageUsecase, log)
	userController := users.NewUserController(log, userUsecase)

	// Patients
	patientUsecase := patients.NewPatientUsecase(patientRepository, dentistRepository, usageUsecase, updateCoordinator, log)
	documentUsecase := patients.NewPatientDocumentUsecase(
		patientRepository,
		storageService,
		time.Duration(bootstrap.InternalConfig.Minio.PreSignedUrlObjectExpiryInHours)*time.Hour,
		log,
	)
	patientController := patients.NewPatientController(log, patientUsecase, documentUsecase)

	// Appointments
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentRepository,
		dentistRepository,
		patientRepository,
		usageUsecase,
		updateCoordinator,
		log,
	)
	appointmentController := appointments.NewAppointmentController(log, appointmentUsecase)

	// Auth
	authUsecase := auth.NewAuthUsecase(
		userRepository,
		tenantRepository,
		redisRepository,
		bootstrap.InternalConfig.JWT.Secret,
		bootstrap.InternalConfig.JWT.ExpTimeInHour,
		time.Duration(bootstrap.InternalConfig.App.LoginSessionExpiredTimeInHours)*time.Hour,
		log,
	)
	authController := auth.NewAuthController(log, authUsecase, bootstrap.InternalConfig.JWT.Secret)

	// HTTP surface
	mws := middlewares.NewMiddlewares(log, bootstrap.InternalConfig, authUsecase, resourceLimiter)
	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		mws,
		authController,
		tenantController,
		usageController,
		userController,
		dentistController,
		patientController,
		appointmentController,
	)

	// Nightly maintenance: full recounts plus subscription refresh
	worker := maintenance.NewWorker(log, bootstrap.InternalConfig, lockerService, tenantUsecase, updateCoordinator)
	worker.Start(context.Background())

	bootstrap.WorkerStop = worker.Stop
	bootstrap.CoordinatorStop = updateCoordinator.Shutdown
	return nil
}
