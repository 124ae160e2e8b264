package project

type ProjectResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	ClientName *string `json:"client_name,omitempty"`
}

type TaskCategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ListProjectsResponse struct {
	Projects   []ProjectResponse      `json:"projects"`
	Categories []TaskCategoryResponse `json:"categories"`
}
