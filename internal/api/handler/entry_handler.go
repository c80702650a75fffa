package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hrc-navate/worklog/internal/api/metrics"
	"github.com/hrc-navate/worklog/internal/core/ports"
	"github.com/hrc-navate/worklog/internal/core/report"
)

type EntryHandler struct {
	service ports.EntryService
}

func NewEntryHandler(service ports.EntryService) *EntryHandler {
	return &EntryHandler{service: service}
}

// List returns entries, newest first. Accepts the same filter as reports.
//
// @Summary      List entries
// @Tags         entries
// @Produce      json
// @Security     BearerAuth
// @Param        user_id     query     string  false  "Owner (administrators only)"
// @Param        project_id  query     string  false  "Project"
// @Param        unit        query     string  false  "HOURS or AREA"
// @Param        year        query     int     false  "ISO year"
// @Param        week        query     int     false  "ISO week (requires year)"
// @Success      200   {object}  listResponse[domain.WorkEntry]
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/entries [get]
func (h *EntryHandler) List(c echo.Context) error {
	viewer, err := ctxViewer(c)
	if err != nil {
		return err
	}
	req, err := bindReportRequest(c)
	if err != nil {
		return err
	}
	filter, err := req.Filter(report.Scope{UserID: req.UserID})
	if err != nil {
		return err
	}
	entries, err := h.service.List(c.Request().Context(), viewer, filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newList(entries))
}

// Create logs work.
//
// @Summary      Create entry
// @Tags         entries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      entryRequest  true  "Entry"
// @Success      201   {object}  domain.WorkEntry
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/entries [post]
func (h *EntryHandler) Create(c echo.Context) error {
	viewer, err := ctxViewer(c)
	if err != nil {
		return err
	}
	in, err := bindEntry(c)
	if err != nil {
		return err
	}
	e, err := h.service.Create(c.Request().Context(), viewer, in)
	if err != nil {
		return err
	}
	metrics.EntriesWrittenTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, e)
}

// Update edits an entry owned by the viewer, or any entry for administrators.
//
// @Summary      Update entry
// @Tags         entries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Entry ID"
// @Param        body  body      entryRequest  true  "Entry"
// @Success      200   {object}  domain.WorkEntry
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/entries/{id} [put]
func (h *EntryHandler) Update(c echo.Context) error {
	viewer, err := ctxViewer(c)
	if err != nil {
		return err
	}
	in, err := bindEntry(c)
	if err != nil {
		return err
	}
	e, err := h.service.Update(c.Request().Context(), viewer, c.Param("id"), in)
	if err != nil {
		return err
	}
	metrics.EntriesWrittenTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, e)
}

// Delete removes an entry.
//
// @Summary      Delete entry
// @Tags         entries
// @Security     BearerAuth
// @Param        id    path      string  true  "Entry ID"
// @Success      204
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/entries/{id} [delete]
func (h *EntryHandler) Delete(c echo.Context) error {
	viewer, err := ctxViewer(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), viewer, c.Param("id")); err != nil {
		return err
	}
	metrics.EntriesWrittenTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

func bindEntry(c echo.Context) (ports.EntryInput, error) {
	var req entryRequest
	if err := c.Bind(&req); err != nil {
		return ports.EntryInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return ports.EntryInput{}, echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return ports.EntryInput{
		UserID:    req.UserID,
		ProjectID: req.ProjectID,
		Date:      req.Date,
		Amount:    req.Amount,
		Unit:      req.Unit,
		Note:      req.Note,
	}, nil
}
