package dtos

import "time"

type CreateApplicationRequest struct {
	Company  string `json:"company" binding:"required"`
	Position string `json:"position" binding:"required"`

	// Defaults to "applied" if empty
	Status string `json:"status" binding:"omitempty,oneof=applied interview offer rejected"`

	// Defaults to the creation time if absent
	ApplicationDate *time.Time `json:"application_date"`

	Salary       *int       `json:"salary"`
	Location     *string    `json:"location"`
	JobURL       *string    `json:"job_url"`
	Notes        *string    `json:"notes"`
	ContactEmail *string    `json:"contact_email" binding:"omitempty,email"`
	ContactName  *string    `json:"contact_name"`
	NextStepDate *time.Time `json:"next_step_date"`
}

// UpdateApplicationRequest is a partial update: nil fields keep their
// stored value, set fields overwrite it.
type UpdateApplicationRequest struct {
	Company  *string `json:"company"`
	Position *string `json:"position"`
	Status   *string `json:"status" binding:"omitempty,oneof=applied interview offer rejected"`

	ApplicationDate *time.Time `json:"application_date"`

	Salary       *int       `json:"salary"`
	Location     *string    `json:"location"`
	JobURL       *string    `json:"job_url"`
	Notes        *string    `json:"notes"`
	ContactEmail *string    `json:"contact_email" binding:"omitempty,email"`
	ContactName  *string    `json:"contact_name"`
	NextStepDate *time.Time `json:"next_step_date"`
}
