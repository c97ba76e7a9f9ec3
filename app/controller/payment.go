package controller

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-enrollment/app/checkout"
	"github.com/vibast-solutions/ms-go-enrollment/app/factory"
	"github.com/vibast-solutions/ms-go-enrollment/app/mapper"
	"github.com/vibast-solutions/ms-go-enrollment/app/provider"
	"github.com/vibast-solutions/ms-go-enrollment/app/service"
	"github.com/vibast-solutions/ms-go-enrollment/app/types"
	"github.com/vibast-solutions/ms-go-enrollment/config"
)

type PaymentController struct {
	paymentService *service.PaymentService
	pollPolicy     checkout.PollPolicy
	logger         logrus.FieldLogger
}

func NewPaymentController(paymentService *service.PaymentService, checkoutCfg config.CheckoutConfig) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
		pollPolicy: checkout.PollPolicy{
			Interval: checkoutCfg.PollInterval,
			Timeout:  checkoutCfg.PollTimeout,
		},
		logger: factory.NewModuleLogger("payments-controller"),
	}
}

func (c *PaymentController) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, &types.HealthResponse{Status: "ok"})
}

// Initiate answers browsers with a page that auto-submits the signed payload
// to the processor, and JSON clients with the raw redirect instruction.
func (c *PaymentController) Initiate(ctx echo.Context) error {
	req, err := types.NewInitiatePaymentRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	instruction, err := c.paymentService.Initiate(ctx.Request().Context(), req)
	if err != nil {
		logger := factory.LoggerWithContext(c.logger.WithField("application_id", req.GetApplicationId()), ctx)
		switch {
		case errors.Is(err, checkout.ErrInvalidAmount), errors.Is(err, service.ErrInvalidRequest):
			return c.writeError(ctx, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrApplicationNotFound):
			return c.writeError(ctx, http.StatusNotFound, "application not found")
		case errors.Is(err, provider.ErrNetwork):
			logger.WithError(err).Warn("Payment initiation endpoint unreachable")
			return c.writeError(ctx, http.StatusBadGateway, "payment service unavailable, please try again")
		case errors.Is(err, provider.ErrRemoteRejected):
			logger.WithError(err).Warn("Payment initiation rejected")
			return c.writeError(ctx, http.StatusBadGateway, "payment could not be started")
		default:
			logger.WithError(err).Error("Initiate payment failed")
			return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
		}
	}

	if req.Format == types.FormatJSON {
		return ctx.JSON(http.StatusOK, mapper.RedirectToResponse(instruction))
	}

	var page bytes.Buffer
	if err := checkout.RenderRedirectForm(&page, *instruction); err != nil {
		c.logger.WithError(err).Error("Render redirect form failed")
		return c.writeError(ctx, http.StatusBadGateway, "payment could not be started")
	}
	return ctx.HTMLBlob(http.StatusOK, page.Bytes())
}

// ReturnStatus classifies the processor's return trip. With wait=true a
// pending receipt is polled until it settles or times out.
func (c *PaymentController) ReturnStatus(ctx echo.Context) error {
	req, err := types.NewReturnStatusRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	var outcome checkout.Outcome
	if req.Wait {
		outcome, err = c.paymentService.AwaitOutcome(ctx.Request().Context(), req)
	} else {
		outcome, err = c.paymentService.ReturnStatus(ctx.Request().Context(), req)
	}
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return ctx.JSON(http.StatusOK, mapper.OutcomeToResponse(checkout.OutcomePending, c.pollPolicy))
		case errors.Is(err, service.ErrInvalidRequest):
			return c.writeError(ctx, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrApplicationNotFound):
			return c.writeError(ctx, http.StatusNotFound, "application not found")
		default:
			factory.LoggerWithContext(c.logger.WithField("application_id", req.GetApplicationId()), ctx).
				WithError(err).Error("Return status failed")
			return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
		}
	}

	return ctx.JSON(http.StatusOK, mapper.OutcomeToResponse(outcome, c.pollPolicy))
}

func (c *PaymentController) writeError(ctx echo.Context, statusCode int, message string) error {
	return ctx.JSON(statusCode, &types.ErrorResponse{Error: message})
}
