package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hrc-navate/worklog/internal/core/ports"
)

type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// List returns every project.
//
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  listResponse[domain.Project]
// @Router       /v1/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	if _, err := ctxViewer(c); err != nil {
		return err
	}
	projects, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newList(projects))
}

// Create adds a project.
//
// @Summary      Create project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      projectRequest  true  "Project"
// @Success      201   {object}  domain.Project
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	viewer, err := ctxViewer(c)
	if err != nil {
		return err
	}
	req, err := bindProject(c)
	if err != nil {
		return err
	}
	p, err := h.service.Create(c.Request().Context(), viewer, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, p)
}

// Update renames a project or changes its default unit.
//
// @Summary      Update project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Project ID"
// @Param        body  body      projectRequest  true  "Project"
// @Success      200   {object}  domain.Project
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	viewer, err := ctxViewer(c)
	if err != nil {
		return err
	}
	req, err := bindProject(c)
	if err != nil {
		return err
	}
	p, err := h.service.Update(c.Request().Context(), viewer, c.Param("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Delete removes a project and all entries logged against it.
//
// @Summary      Delete project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Project ID"
// @Success      200   {object}  projectDeletedResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	viewer, err := ctxViewer(c)
	if err != nil {
		return err
	}
	removed, err := h.service.Delete(c.Request().Context(), viewer, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projectDeletedResponse{EntriesRemoved: removed})
}

// Entries returns a project together with its entries.
//
// @Summary      Project detail
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Project ID"
// @Success      200   {object}  projectDetailResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/projects/{id}/entries [get]
func (h *ProjectHandler) Entries(c echo.Context) error {
	viewer, err := ctxViewer(c)
	if err != nil {
		return err
	}
	p, entries, err := h.service.Entries(c.Request().Context(), viewer, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projectDetailResponse{Project: p, Entries: newList(entries).Items})
}

func bindProject(c echo.Context) (ports.ProjectInput, error) {
	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return ports.ProjectInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return ports.ProjectInput{}, echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return ports.ProjectInput{Name: req.Name, DefaultUnit: req.DefaultUnit}, nil
}
