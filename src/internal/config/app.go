package config

import (
	"context"
	"fmt"

	"payout-service/src/internal/delivery/http"
	"payout-service/src/internal/delivery/http/middleware"
	"payout-service/src/internal/delivery/http/route"
	"payout-service/src/internal/gateway/messaging"
	"payout-service/src/internal/payout"
	"payout-service/src/internal/repository"
	"payout-service/src/internal/usecase"
	"payout-service/src/pkg/databases/mysql"
	kafkaPkgConfluent "payout-service/src/pkg/kafka/confluent"
	"payout-service/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
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
	orderRepository := repository.NewOrderRepository(config.DB)
	walletRepository := repository.NewWalletRepository(config.DB)
	transactionRepository := repository.NewTransactionRepository(config.DB)
	settingsRepository := repository.NewSettingsRepository(config.DB)
	payoutProducer := messaging.NewPayoutProducer(config.Producer, config.Log)

	// the house wallet must exist before the first payout runs
	houseAccountID := config.Config.GetString("payout.house_account_id")
	if houseAccountID == "" {
		houseAccountID = payout.HouseAccountID
	}
	if err := walletRepository.EnsureWallet(context.Background(), houseAccountID); err != nil {
		config.Log.Error("bootstrap", fmt.Sprintf("Failed to provision house wallet: %v", err), "Bootstrap", houseAccountID)
	}

	// setup use cases
	ledgerWriter := usecase.NewLedgerWriter(
		config.Log,
		orderRepository,
		walletRepository,
		transactionRepository,
	)

	payoutUseCase := usecase.NewPayoutUseCase(
		config.Log,
		config.Validate,
		orderRepository,
		settingsRepository,
		transactionRepository,
		ledgerWriter,
		config.Config,
		config.Redis,
		payoutProducer,
		config.AsynqClient,
	)

	// setup controller
	payoutController := http.NewPayoutController(payoutUseCase, config.Log)
	// setup middleware
	authMiddleware := middleware.VerifyBearer(config.Config)
	config.Async.HandleFunc(usecase.TaskTypePayoutProcess, payoutUseCase.HandlePayoutTask)
	routeConfig := route.RouteConfig{
		App:              config.App,
		PayoutController: payoutController,
		AuthMiddleware:   authMiddleware,
	}
	routeConfig.Setup()
}
