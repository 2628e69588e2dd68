package http

import (
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/vncsmyrnk/projectvote/internal/core/domain"
	"github.com/vncsmyrnk/projectvote/internal/core/ports"
	"github.com/vncsmyrnk/projectvote/internal/logging"
)

const maxFormBytes = 1 << 20

//go:embed templates/*.html
var templatesFS embed.FS

var uploadTemplate = template.Must(template.ParseFS(templatesFS, "templates/upload.html"))

type ProjectHandler struct {
	service ports.ProjectService
	log     logging.Logger
}

func NewProjectHandler(service ports.ProjectService, log logging.Logger) *ProjectHandler {
	return &ProjectHandler{
		service: service,
		log:     log,
	}
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.service.List(r.Context())
	if err != nil {
		h.internalError(w, r, "failed to list projects", err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) Results(w http.ResponseWriter, r *http.Request) {
	projects, err := h.service.Results(r.Context())
	if err != nil {
		h.internalError(w, r, "failed to list results", err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		h.internalError(w, r, "failed to compute stats", err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := projectIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	project, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			writeError(w, http.StatusNotFound, "Project not found")
			return
		}
		h.internalError(w, r, "failed to get project", err)
		return
	}

	writeJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) UploadForm(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := uploadTemplate.Execute(w, nil); err != nil {
		h.log.Error(r.Context(), "failed to render upload form", "error", err)
	}
}

func (h *ProjectHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)

	input := ports.CreateProjectInput{
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
		Link:        r.PostFormValue("link"),
		Author:      r.PostFormValue("author"),
	}

	project, err := h.service.Create(r.Context(), input)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: verr.Error(), Field: verr.Field})
			return
		}
		h.internalError(w, r, "failed to create project", err)
		return
	}

	h.log.Info(r.Context(), "project created", "project_id", project.ID)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *ProjectHandler) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.log.Error(r.Context(), msg, "error", err)
	writeError(w, http.StatusInternalServerError, domain.ErrInternal.Error())
}
