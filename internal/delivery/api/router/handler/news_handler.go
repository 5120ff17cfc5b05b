package handler

import (
	"log/slog"
	"net/http"

	"newsguard/internal/delivery/api/middleware"
	"newsguard/internal/delivery/api/response"
	domainerrors "newsguard/internal/domain/errors"
	"newsguard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// NewsHandlerParams holds dependencies for NewsHandler, injected by Fx.
type NewsHandlerParams struct {
	fx.In

	ClassificationUC usecase.ClassificationUsecase
	HistoryUC        usecase.HistoryUsecase
	Logger           *slog.Logger
}

// NewsHandler serves the classification pipeline and the caller's history.
type NewsHandler struct {
	classificationUC usecase.ClassificationUsecase
	historyUC        usecase.HistoryUsecase
	logger           *slog.Logger
}

func NewNewsHandler(params NewsHandlerParams) *NewsHandler {
	return &NewsHandler{
		classificationUC: params.ClassificationUC,
		historyUC:        params.HistoryUC,
		logger:           params.Logger,
	}
}

// CheckNewsRequest represents the request body for a classification
type CheckNewsRequest struct {
	Title   string `json:"title" validate:"required"`
	Date    string `json:"date" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Text    string `json:"text" validate:"required"`
}

// DeleteAllResult is the data of a cleared history.
type DeleteAllResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// CheckNews scores the submission and returns the stored record.
func (h *NewsHandler) CheckNews(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return domainerrors.ErrTokenMissing
	}

	var req CheckNewsRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails("malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	record, err := h.classificationUC.Check(c.Request().Context(), identity.ID, &usecase.CheckInput{
		Title:   req.Title,
		Date:    req.Date,
		Subject: req.Subject,
		Text:    req.Text,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, record)
}

// History lists the caller's records, newest first.
func (h *NewsHandler) History(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return domainerrors.ErrTokenMissing
	}

	records, err := h.historyUC.List(c.Request().Context(), identity.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, records)
}

// DeleteOne removes one of the caller's records.
func (h *NewsHandler) DeleteOne(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return domainerrors.ErrTokenMissing
	}

	if err := h.historyUC.DeleteOne(c.Request().Context(), identity.ID, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, "Deleted successfully", nil)
}

// DeleteAll clears the caller's history.
func (h *NewsHandler) DeleteAll(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return domainerrors.ErrTokenMissing
	}

	count, err := h.historyUC.DeleteAll(c.Request().Context(), identity.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, "All history cleared", DeleteAllResult{DeletedCount: count})
}
