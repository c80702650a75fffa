package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hrc-navate/worklog/internal/api/metrics"
	"github.com/hrc-navate/worklog/internal/core/domain"
	"github.com/hrc-navate/worklog/internal/core/ports"
	"github.com/hrc-navate/worklog/internal/core/report"
)

// ReportService is what the report endpoints need. *service.ReportService satisfies it.
type ReportService interface {
	Dashboard(ctx context.Context, viewer domain.Viewer, req report.Request) (*report.Model, error)
	Export(ctx context.Context, viewer domain.Viewer, req report.Request, format string) (*ports.ExportedDocument, error)
}

type ReportHandler struct {
	service ReportService
}

func NewReportHandler(service ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Dashboard returns the aggregated report model.
//
// @Summary      Dashboard
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        user_id     query     string  false  "User, or \"all\" (administrators only)"
// @Param        project_id  query     string  false  "Project"
// @Param        unit        query     string  false  "HOURS or AREA"
// @Param        year        query     int     false  "ISO year"
// @Param        week        query     int     false  "ISO week (requires year)"
// @Success      200   {object}  report.Model
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c echo.Context) error {
	viewer, err := ctxViewer(c)
	if err != nil {
		return err
	}
	req, err := bindReportRequest(c)
	if err != nil {
		return err
	}

	start := time.Now()
	m, err := h.service.Dashboard(c.Request().Context(), viewer, req)
	if err != nil {
		return err
	}
	metrics.ReportsBuiltTotal.WithLabelValues("dashboard").Inc()
	metrics.ReportDuration.WithLabelValues("dashboard").Observe(time.Since(start).Seconds())
	return c.JSON(http.StatusOK, m)
}

// ExportPDF renders the report as a paginated PDF.
//
// @Summary      Export PDF
// @Tags         reports
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        user_id     query     string  false  "User, or \"all\" (administrators only)"
// @Param        project_id  query     string  false  "Project"
// @Param        unit        query     string  false  "HOURS or AREA"
// @Param        year        query     int     false  "ISO year"
// @Param        week        query     int     false  "ISO week (requires year)"
// @Success      200   {file}    file
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/reports/export.pdf [get]
func (h *ReportHandler) ExportPDF(c echo.Context) error {
	return h.export(c, "pdf")
}

// ExportXLSX renders the report as a spreadsheet.
//
// @Summary      Export XLSX
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        user_id     query     string  false  "User, or \"all\" (administrators only)"
// @Param        project_id  query     string  false  "Project"
// @Param        unit        query     string  false  "HOURS or AREA"
// @Param        year        query     int     false  "ISO year"
// @Param        week        query     int     false  "ISO week (requires year)"
// @Success      200   {file}    file
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/reports/export.xlsx [get]
func (h *ReportHandler) ExportXLSX(c echo.Context) error {
	return h.export(c, "xlsx")
}

func (h *ReportHandler) export(c echo.Context, format string) error {
	viewer, err := ctxViewer(c)
	if err != nil {
		return err
	}
	req, err := bindReportRequest(c)
	if err != nil {
		return err
	}

	start := time.Now()
	doc, err := h.service.Export(c.Request().Context(), viewer, req, format)
	if err != nil {
		return err
	}
	metrics.ReportsBuiltTotal.WithLabelValues(format).Inc()
	metrics.ReportDuration.WithLabelValues(format).Observe(time.Since(start).Seconds())
	metrics.ExportBytes.WithLabelValues(format).Observe(float64(len(doc.Body)))

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", doc.Filename))
	return c.Blob(http.StatusOK, doc.ContentType, doc.Body)
}

// bindReportRequest reads the filter from the query string only.
func bindReportRequest(c echo.Context) (report.Request, error) {
	var req report.Request
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, "invalid filter")
	}
	return req, nil
}
