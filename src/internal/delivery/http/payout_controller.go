package http

import (
	"payout-service/src/internal/model"
	"payout-service/src/internal/usecase"
	"payout-service/src/pkg/log"
	"payout-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type PayoutController struct {
	Log     log.Log
	UseCase *usecase.PayoutUseCase
}

func NewPayoutController(useCase *usecase.PayoutUseCase, logger log.Log) *PayoutController {
	return &PayoutController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *PayoutController) ProcessPayout(ctx *fiber.Ctx) error {
	request := &model.ProcessPayoutRequest{
		OrderID: ctx.Params("orderId"),
	}
	result := c.UseCase.ProcessPayout(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Process Payout", fiber.StatusOK, ctx)
}

func (c *PayoutController) TestPayout(ctx *fiber.Ctx) error {
	request := &model.ProcessPayoutRequest{
		OrderID: ctx.Params("orderId"),
	}
	result := c.UseCase.TestPayoutCalculation(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Payout Preview", fiber.StatusOK, ctx)
}

func (c *PayoutController) ListTransactions(ctx *fiber.Ctx) error {
	request := &model.ProcessPayoutRequest{
		OrderID: ctx.Params("orderId"),
	}
	result := c.UseCase.GetPayoutTransactions(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Payout Transactions", fiber.StatusOK, ctx)
}

func (c *PayoutController) EnqueuePayout(ctx *fiber.Ctx) error {
	request := &model.ProcessPayoutRequest{
		OrderID: ctx.Params("orderId"),
	}
	result := c.UseCase.EnqueuePayout(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Payout Enqueued", fiber.StatusAccepted, ctx)
}
