package dtos

import "time"

type CreateInterviewRequest struct {
	ApplicationID string    `json:"application_id" binding:"required"`
	InterviewType string    `json:"interview_type" binding:"required,oneof=phone video onsite final"`
	ScheduledDate time.Time `json:"scheduled_date" binding:"required"`

	// minutes
	Duration *int `json:"duration" binding:"omitempty,min=15,max=480"`

	InterviewerName  *string `json:"interviewer_name"`
	InterviewerEmail *string `json:"interviewer_email" binding:"omitempty,email"`
	Location         *string `json:"location"`
	Notes            *string `json:"notes"`
	Feedback         *string `json:"feedback"`

	// Defaults to "scheduled" if empty
	Status string `json:"status" binding:"omitempty,oneof=scheduled completed cancelled rescheduled"`
	// Defaults to 1
	Round *int `json:"round" binding:"omitempty,min=1"`
}

type UpdateInterviewRequest struct {
	InterviewType *string    `json:"interview_type" binding:"omitempty,oneof=phone video onsite final"`
	ScheduledDate *time.Time `json:"scheduled_date"`

	Duration *int `json:"duration" binding:"omitempty,min=15,max=480"`

	InterviewerName  *string `json:"interviewer_name"`
	InterviewerEmail *string `json:"interviewer_email" binding:"omitempty,email"`
	Location         *string `json:"location"`
	Notes            *string `json:"notes"`
	Feedback         *string `json:"feedback"`

	Status *string `json:"status" binding:"omitempty,oneof=scheduled completed cancelled rescheduled"`
	Round  *int    `json:"round" binding:"omitempty,min=1"`
}
