package api

import "github.com/taskboard/taskboard-api/internal/service"

// CreateTaskRequest represents the request body for creating a task.
// Description and Status are pointers so an absent field can be told apart
// from an empty one.
type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// ToInput converts the request into the service payload shape.
func (r CreateTaskRequest) ToInput() service.CreateTaskInput {
	return service.CreateTaskInput{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
	}
}

// UpdateTaskRequest represents the request body for updating a task.
// Every field is optional; omitted fields retain their prior value.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// ToInput converts the request into the service payload shape.
func (r UpdateTaskRequest) ToInput() service.UpdateTaskInput {
	return service.UpdateTaskInput{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
	}
}

// MessageResponse is the body for confirmation-only responses, such as a
// successful delete.
type MessageResponse struct {
	Message string `json:"message"`
}
