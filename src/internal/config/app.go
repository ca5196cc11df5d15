package config

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"

	"tolleasy-service/src/internal/delivery/http"
	"tolleasy-service/src/internal/delivery/http/middleware"
	"tolleasy-service/src/internal/delivery/http/route"
	"tolleasy-service/src/internal/gateway/messaging"
	"tolleasy-service/src/internal/repository"
	"tolleasy-service/src/internal/usecase"
	"tolleasy-service/src/pkg/databases/mysql"
	kafkaPkgConfluent "tolleasy-service/src/pkg/kafka/confluent"
	"tolleasy-service/src/pkg/log"
)

type BootstrapConfig struct {
	DB          mysql.DBInterface
	App         *fiber.App
	Log         log.Log
	Validate    *validator.Validate
	Config      *viper.Viper
	Producer    kafkaPkgConfluent.Producer
	Redis       redis.UniversalClient
	AsynqClient *asynq.Client
	Async       *asynq.ServeMux
}

func Bootstrap(config *BootstrapConfig) {
	// setup repositories
	userRepository := repository.NewUserRepository(config.DB)
	vehicleRepository := repository.NewVehicleRepository(config.DB)
	plazaRepository := repository.NewPlazaRepository(config.DB)
	planRepository := repository.NewPlanRepository(config.DB)
	transactionRepository := repository.NewTransactionRepository(config.DB)
	accountRepository := repository.NewAccountTransactionRepository(config.DB)
	paymentMethodRepository := repository.NewPaymentMethodRepository(config.DB)
	trafficRepository := repository.NewTrafficRepository(config.DB)
	notificationRepository := repository.NewNotificationRepository(config.DB)

	if err := planRepository.SeedDefaults(context.Background()); err != nil {
		config.Log.Error("bootstrap", "failed to seed default plans", "SeedDefaults", err.Error())
	}

	transactionProducer := messaging.NewTransactionProducer(config.Producer, config.Log)

	// setup use cases
	authUseCase := usecase.NewAuthUseCase(config.Log, config.Validate, userRepository, config.Config)
	userUseCase := usecase.NewUserUseCase(config.Log, config.Validate, userRepository)
	vehicleUseCase := usecase.NewVehicleUseCase(config.Log, config.Validate, vehicleRepository, userRepository, planRepository)
	plazaUseCase := usecase.NewPlazaUseCase(config.Log, config.Validate, plazaRepository, config.Redis)
	planUseCase := usecase.NewPlanUseCase(config.Log, config.Validate, planRepository, userRepository)
	transactionUseCase := usecase.NewTransactionUseCase(
		config.Log,
		config.Validate,
		transactionRepository,
		vehicleRepository,
		plazaRepository,
		notificationRepository,
		transactionProducer,
		config.AsynqClient,
	)
	accountUseCase := usecase.NewAccountUseCase(
		config.Log,
		config.Validate,
		accountRepository,
		paymentMethodRepository,
		notificationRepository,
		userRepository,
		transactionProducer,
		config.AsynqClient,
	)
	paymentMethodUseCase := usecase.NewPaymentMethodUseCase(config.Log, config.Validate, paymentMethodRepository)
	trafficUseCase := usecase.NewTrafficUseCase(config.Log, config.Validate, trafficRepository, config.Redis)
	notificationUseCase := usecase.NewNotificationUseCase(config.Log, config.Validate, notificationRepository)
	geoUseCase := usecase.NewGeoUseCase(config.Log, config.Validate, config.Config)

	// setup controllers
	authController := http.NewAuthController(authUseCase, config.Log)
	userController := http.NewUserController(userUseCase, config.Log)
	vehicleController := http.NewVehicleController(vehicleUseCase, config.Log)
	plazaController := http.NewPlazaController(plazaUseCase, config.Log)
	planController := http.NewPlanController(planUseCase, config.Log)
	transactionController := http.NewTransactionController(transactionUseCase, config.Log)
	accountController := http.NewAccountController(accountUseCase, config.Log)
	paymentMethodController := http.NewPaymentMethodController(paymentMethodUseCase, config.Log)
	trafficController := http.NewTrafficController(trafficUseCase, config.Log)
	notificationController := http.NewNotificationController(notificationUseCase, config.Log)
	geoController := http.NewGeoController(geoUseCase, config.Log)

	// setup middleware
	authMiddleware := middleware.VerifyBearer(config.Config)

	if config.Async != nil {
		config.Async.HandleFunc(usecase.TaskTypeBalanceLow, notificationUseCase.HandleBalanceLow)
	}

	routeConfig := route.RouteConfig{
		App:                     config.App,
		AuthController:          authController,
		UserController:          userController,
		VehicleController:       vehicleController,
		PlazaController:         plazaController,
		PlanController:          planController,
		TransactionController:   transactionController,
		AccountController:       accountController,
		PaymentMethodController: paymentMethodController,
		TrafficController:       trafficController,
		NotificationController:  notificationController,
		GeoController:           geoController,
		AuthMiddleware:          authMiddleware,
	}
	routeConfig.Setup()
}
