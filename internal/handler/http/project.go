package http

import (
	"net/http"

	"github.com/workfriar/timesheet-backend-go/internal/handler/http/response"
	projectService "github.com/workfriar/timesheet-backend-go/internal/service/project"
)

type ProjectHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type ProjectHandlerImpl struct {
	projectService projectService.ProjectService
}

func NewProjectHandler(service projectService.ProjectService) ProjectHandler {
	return &ProjectHandlerImpl{projectService: service}
}

// List returns the signed-in user's assigned projects and the active
// task categories, used to populate a new timesheet row.
func (h *ProjectHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.projectService.ListForUser(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
