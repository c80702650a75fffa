package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hrc-navate/worklog/internal/core/ports"
)

type DocumentHandler struct {
	service ports.DocumentService
}

func NewDocumentHandler(service ports.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

// Upload stores an attachment sent as the multipart field "file".
//
// @Summary      Upload document
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "Document"
// @Success      201   {object}  domain.Document
// @Failure      400   {object}  errorResponse
// @Failure      413   {object}  errorResponse
// @Router       /v1/documents [post]
func (h *DocumentHandler) Upload(c echo.Context) error {
	viewer, err := ctxViewer(c)
	if err != nil {
		return err
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file")
	}
	f, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}
	defer f.Close()

	doc, err := h.service.Upload(c.Request().Context(), viewer, ports.UploadInput{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
	}, f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, doc)
}

// List returns the viewer's documents, or every document for administrators.
//
// @Summary      List documents
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  listResponse[domain.Document]
// @Router       /v1/documents [get]
func (h *DocumentHandler) List(c echo.Context) error {
	viewer, err := ctxViewer(c)
	if err != nil {
		return err
	}
	docs, err := h.service.List(c.Request().Context(), viewer)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newList(docs))
}

// Delete removes a document and its stored bytes.
//
// @Summary      Delete document
// @Tags         documents
// @Security     BearerAuth
// @Param        id    path      string  true  "Document ID"
// @Success      204
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/documents/{id} [delete]
func (h *DocumentHandler) Delete(c echo.Context) error {
	viewer, err := ctxViewer(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), viewer, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
