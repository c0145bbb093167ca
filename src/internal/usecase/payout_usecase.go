package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"payout-service/src/internal/entity"
	"payout-service/src/internal/model"
	"payout-service/src/internal/model/converter"
	"payout-service/src/internal/payout"
	httpError "payout-service/src/pkg/http-error"
	"payout-service/src/pkg/log"
	"payout-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

// TaskTypePayoutProcess is the asynq task type upstream order-completion
// flows enqueue instead of calling the HTTP endpoint.
const TaskTypePayoutProcess = "payout:process"

const previewCacheTTL = 1 * time.Hour

type PayoutUseCase struct {
	Log          log.Log
	Validate     *validator.Validate
	Orders       OrderStore
	Settings     SettingsStore
	Transactions TransactionStore
	Ledger       *LedgerWriter
	Config       *viper.Viper
	Redis        redis.UniversalClient
	Notifier     PayoutNotifier
	AsynqClient  *asynq.Client
}

func NewPayoutUseCase(
	logger log.Log,
	validate *validator.Validate,
	orders OrderStore,
	settings SettingsStore,
	transactions TransactionStore,
	ledger *LedgerWriter,
	cfg *viper.Viper,
	redisClient redis.UniversalClient,
	notifier PayoutNotifier,
	asynqClient *asynq.Client,
) *PayoutUseCase {
	return &PayoutUseCase{
		Log:          logger,
		Validate:     validate,
		Orders:       orders,
		Settings:     settings,
		Transactions: transactions,
		Ledger:       ledger,
		Config:       cfg,
		Redis:        redisClient,
		Notifier:     notifier,
		AsynqClient:  asynqClient,
	}
}

// ProcessPayout runs the full payout for one order: eligibility, calculate,
// build, apply, notify.
func (c *PayoutUseCase) ProcessPayout(ctx context.Context, request *model.ProcessPayoutRequest) utils.Result {
	return c.runPayout(ctx, request, false)
}

// TestPayoutCalculation is the dry-run variant. It calculates and builds the
// would-be transactions but never touches payout state, so repeated calls are
// always safe.
func (c *PayoutUseCase) TestPayoutCalculation(ctx context.Context, request *model.ProcessPayoutRequest) utils.Result {
	return c.runPayout(ctx, request, true)
}

func (c *PayoutUseCase) runPayout(ctx context.Context, request *model.ProcessPayoutRequest, testMode bool) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("payout-usecase", errObj.Message, "runPayout", utils.ConvertString(request))
		return result
	}

	// Settings are loaded fresh every call so a stale snapshot can never
	// split money with yesterday's percentages.
	settings, err := c.Settings.GetPaymentSettings(ctx)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("payment settings unavailable: %v", err)
		result.Error = errObj
		c.Log.Error("payout-usecase", errObj.Message, "runPayout", request.OrderID)
		return result
	}
	if err := c.Validate.Struct(settings); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("payment settings out of range: %v", err)
		result.Error = errObj
		c.Log.Error("payout-usecase", errObj.Message, "runPayout", utils.ConvertString(settings))
		return result
	}

	order, err := c.Orders.GetOrder(ctx, request.OrderID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to fetch order %s: %v", request.OrderID, err)
		result.Error = errObj
		c.Log.Error("payout-usecase", errObj.Message, "runPayout", request.OrderID)
		return result
	}
	if order == nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("order not eligible for payout: order %s not found", request.OrderID)
		result.Error = errObj
		c.Log.Error("payout-usecase", errObj.Message, "runPayout", "")
		return result
	}

	if errObj := c.checkEligibility(order, settings); errObj != nil {
		result.Error = errObj
		c.Log.Error("payout-usecase", errObj.Message, "runPayout", utils.ConvertString(order))
		return result
	}

	calc, err := payout.Calculate(order, settings)
	if err != nil {
		result.Error = c.mapCalculationError(order.OrderID, err)
		return result
	}

	transactions := payout.BuildTransactions(order, calc, c.houseAccountID())

	payoutResult := &model.PayoutResult{
		Success:      true,
		OrderID:      order.OrderID,
		TestMode:     testMode,
		Calculation:  calc,
		Transactions: transactions,
	}

	if testMode {
		c.cachePreview(ctx, payoutResult)
		result.Data = payoutResult
		return result
	}

	if err := c.Ledger.Apply(ctx, order, transactions); err != nil {
		if errors.Is(err, payout.ErrOrderNotEligible) {
			errObj := httpError.NewConflict()
			errObj.Message = err.Error()
			result.Error = errObj
			c.Log.Error("payout-usecase", errObj.Message, "runPayout", "concurrent-claim")
			return result
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = err.Error()
		result.Error = errObj
		c.Log.Error("payout-usecase", errObj.Message, "runPayout", order.OrderID)
		return result
	}

	if c.Redis != nil {
		key := fmt.Sprintf("PAYOUT:PREVIEW:%s", order.OrderID)
		if err := c.Redis.Del(ctx, key).Err(); err != nil {
			c.Log.Warn("payout-usecase", fmt.Sprintf("Failed to invalidate preview cache: %v", err), "runPayout", key)
		}
	}

	// Notification is fire-and-forget. A publish failure never fails a
	// payout that already moved money.
	event := converter.PayoutToEvent(order.OrderID, calc)
	c.Log.Info("payout-usecase", "Publishing payout completed event", "runPayout", utils.ConvertString(event))
	if err := c.Notifier.SendPayoutCompleted(event); err != nil {
		c.Log.Error("payout-usecase", fmt.Sprintf("Failed publish payout completed event : %+v", err), "runPayout", order.OrderID)
	}

	result.Data = payoutResult
	return result
}

func (c *PayoutUseCase) checkEligibility(order *entity.Order, settings *entity.PaymentSettings) *httpError.CommonError {
	switch {
	case order.Status != entity.OrderStatusCompleted:
		errObj := httpError.NewConflict()
		errObj.Message = fmt.Sprintf("order not eligible for payout: order %s has status %s, want %s",
			order.OrderID, order.Status, entity.OrderStatusCompleted)
		return errObj

	case order.PayoutStatus != entity.PayoutStatusPending:
		errObj := httpError.NewConflict()
		errObj.Message = fmt.Sprintf("order not eligible for payout: order %s already paid out", order.OrderID)
		return errObj

	case order.Total() < settings.MinimumPayoutAmount:
		errObj := httpError.NewConflict()
		errObj.Message = fmt.Sprintf("order not eligible for payout: order %s total %.2f is below minimum payout amount %.2f",
			order.OrderID, order.Total(), settings.MinimumPayoutAmount)
		return errObj
	}

	return nil
}

func (c *PayoutUseCase) mapCalculationError(orderID string, err error) *httpError.CommonError {
	var mismatch *payout.CalculationMismatchError
	if errors.As(err, &mismatch) {
		// Conservation violation means a settings or data bug. Never
		// retried, needs investigation.
		errObj := httpError.NewInternalServerError()
		errObj.Message = mismatch.Error()
		c.Log.Error("payout-usecase", errObj.Message, "mapCalculationError", "FATAL")
		return errObj
	}

	errObj := httpError.NewBadRequest()
	errObj.Message = err.Error()
	c.Log.Error("payout-usecase", errObj.Message, "mapCalculationError", orderID)
	return errObj
}

func (c *PayoutUseCase) houseAccountID() string {
	if c.Config != nil {
		if id := c.Config.GetString("payout.house_account_id"); id != "" {
			return id
		}
	}
	return payout.HouseAccountID
}

func (c *PayoutUseCase) cachePreview(ctx context.Context, preview *model.PayoutResult) {
	if c.Redis == nil {
		return
	}

	data, err := json.Marshal(preview)
	if err != nil {
		c.Log.Warn("payout-usecase", fmt.Sprintf("Failed to marshal preview: %v", err), "cachePreview", preview.OrderID)
		return
	}

	key := fmt.Sprintf("PAYOUT:PREVIEW:%s", preview.OrderID)
	if err := c.Redis.Set(ctx, key, data, previewCacheTTL).Err(); err != nil {
		c.Log.Warn("payout-usecase", fmt.Sprintf("Failed to cache preview: %v", err), "cachePreview", key)
	}
}

// GetPayoutTransactions lists the ledger entries already written for an
// order, for reconciliation and support tooling.
func (c *PayoutUseCase) GetPayoutTransactions(ctx context.Context, request *model.ProcessPayoutRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	order, err := c.Orders.GetOrder(ctx, request.OrderID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to fetch order %s: %v", request.OrderID, err)
		result.Error = errObj
		c.Log.Error("payout-usecase", errObj.Message, "GetPayoutTransactions", request.OrderID)
		return result
	}
	if order == nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("order %s not found", request.OrderID)
		result.Error = errObj
		return result
	}

	transactions, err := c.Transactions.FindByOrderID(ctx, order.OrderID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to list transactions for order %s: %v", order.OrderID, err)
		result.Error = errObj
		c.Log.Error("payout-usecase", errObj.Message, "GetPayoutTransactions", order.OrderID)
		return result
	}

	result.Data = &model.PayoutTransactionsResponse{
		OrderID:      order.OrderID,
		PayoutStatus: order.PayoutStatus,
		Transactions: transactions,
	}
	return result
}

// EnqueuePayout queues the order for asynchronous processing instead of
// running it inline.
func (c *PayoutUseCase) EnqueuePayout(ctx context.Context, request *model.ProcessPayoutRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("payout-usecase", errObj.Message, "EnqueuePayout", utils.ConvertString(request))
		return result
	}

	payload, err := json.Marshal(model.PayoutTaskPayload{OrderID: request.OrderID})
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to marshal payout task: %v", err)
		result.Error = errObj
		return result
	}

	task := asynq.NewTask(TaskTypePayoutProcess, payload)
	info, err := c.AsynqClient.EnqueueContext(ctx, task, asynq.MaxRetry(5), asynq.Timeout(30*time.Second))
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to enqueue payout task: %v", err)
		result.Error = errObj
		c.Log.Error("payout-usecase", errObj.Message, "EnqueuePayout", request.OrderID)
		return result
	}

	c.Log.Info("payout-usecase", "Payout task enqueued", "EnqueuePayout", info.ID)
	result.Data = map[string]string{
		"task_id":  info.ID,
		"queue":    info.Queue,
		"order_id": request.OrderID,
	}
	return result
}

// HandlePayoutTask is the asynq handler for payout:process. Eligibility
// failures are terminal; everything else is left to asynq's retry policy.
func (c *PayoutUseCase) HandlePayoutTask(ctx context.Context, task *asynq.Task) error {
	var payload model.PayoutTaskPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payout task payload: %v: %w", err, asynq.SkipRetry)
	}

	result := c.ProcessPayout(ctx, &model.ProcessPayoutRequest{OrderID: payload.OrderID})
	if result.Error == nil {
		return nil
	}

	var commonErr *httpError.CommonError
	if errors.As(result.Error, &commonErr) && commonErr.Code < 500 {
		c.Log.Info("payout-usecase", fmt.Sprintf("Dropping payout task: %s", commonErr.Message), "HandlePayoutTask", payload.OrderID)
		return fmt.Errorf("%s: %w", commonErr.Message, asynq.SkipRetry)
	}

	return fmt.Errorf("process payout for order %s: %v", payload.OrderID, result.Error)
}
