package project

import "errors"

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrCategoryNotFound = errors.New("task category not found")
	ErrNotAssigned      = errors.New("user is not assigned to this project")
)
