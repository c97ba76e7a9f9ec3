package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-enrollment/app/factory"
	"github.com/vibast-solutions/ms-go-enrollment/app/mapper"
	"github.com/vibast-solutions/ms-go-enrollment/app/service"
	"github.com/vibast-solutions/ms-go-enrollment/app/types"
)

type ReviewController struct {
	reviewService *service.ReviewService
	logger        logrus.FieldLogger
}

func NewReviewController(reviewService *service.ReviewService) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
		logger:        factory.NewModuleLogger("review-controller"),
	}
}

func (c *ReviewController) ListSubmissions(ctx echo.Context) error {
	req, err := types.NewListSubmissionsRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	items, err := c.reviewService.ListSubmissions(ctx.Request().Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			return c.writeError(ctx, http.StatusBadRequest, err.Error())
		}
		c.logger.WithError(err).Error("List submissions failed")
		return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusOK, &types.ListSubmissionsResponse{Submissions: mapper.SubmissionsToResponse(items)})
}

func (c *ReviewController) ReviewSubmission(ctx echo.Context) error {
	req, err := types.NewReviewSubmissionRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	item, err := c.reviewService.ReviewSubmission(ctx.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			return c.writeError(ctx, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrSubmissionNotFound):
			return c.writeError(ctx, http.StatusNotFound, "submission not found")
		case errors.Is(err, service.ErrInvalidStatus):
			return c.writeError(ctx, http.StatusConflict, err.Error())
		default:
			c.logger.WithError(err).Error("Review submission failed")
			return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
		}
	}

	return ctx.JSON(http.StatusOK, &types.SubmissionEnvelopeResponse{Submission: mapper.SubmissionToResponse(item)})
}

func (c *ReviewController) writeError(ctx echo.Context, statusCode int, message string) error {
	return ctx.JSON(statusCode, &types.ErrorResponse{Error: message})
}
