package models

import (
	"time"
)

type ApplicationStatus string

const (
	StatusApplied   ApplicationStatus = "applied"
	StatusInterview ApplicationStatus = "interview"
	StatusOffer     ApplicationStatus = "offer"
	StatusRejected  ApplicationStatus = "rejected"
)

// ApplicationStatuses is the closed set accepted on create/update.
var ApplicationStatuses = []ApplicationStatus{StatusApplied, StatusInterview, StatusOffer, StatusRejected}

func (s ApplicationStatus) Valid() bool {
	for _, v := range ApplicationStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type InterviewType string

const (
	InterviewPhone  InterviewType = "phone"
	InterviewVideo  InterviewType = "video"
	InterviewOnsite InterviewType = "onsite"
	InterviewFinal  InterviewType = "final"
)

var InterviewTypes = []InterviewType{InterviewPhone, InterviewVideo, InterviewOnsite, InterviewFinal}

func (t InterviewType) Valid() bool {
	for _, v := range InterviewTypes {
		if t == v {
			return true
		}
	}
	return false
}

type InterviewStatus string

const (
	InterviewScheduled   InterviewStatus = "scheduled"
	InterviewCompleted   InterviewStatus = "completed"
	InterviewCancelled   InterviewStatus = "cancelled"
	InterviewRescheduled InterviewStatus = "rescheduled"
)

var InterviewStatuses = []InterviewStatus{InterviewScheduled, InterviewCompleted, InterviewCancelled, InterviewRescheduled}

func (s InterviewStatus) Valid() bool {
	for _, v := range InterviewStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type JobApplication struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Company  string            `gorm:"not null" json:"company"`
	Position string            `gorm:"not null" json:"position"`
	Status   ApplicationStatus `gorm:"type:text;not null;default:'applied'" json:"status"`

	ApplicationDate time.Time `gorm:"not null" json:"application_date"`

	Salary       *int       `json:"salary"`
	Location     *string    `json:"location"`
	JobURL       *string    `json:"job_url"`
	Notes        *string    `gorm:"type:text" json:"notes"`
	ContactEmail *string    `json:"contact_email"`
	ContactName  *string    `json:"contact_name"`
	NextStepDate *time.Time `json:"next_step_date"`

	// 'omitempty' keeps application payloads small when interviews aren't preloaded
	Interviews []Interview `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE" json:"interviews,omitempty"`
}

type Interview struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Foreign Key: owning application
	ApplicationID string `gorm:"not null;index;type:varchar(36)" json:"application_id"`

	InterviewType InterviewType `gorm:"type:text;not null" json:"interview_type"`
	ScheduledDate time.Time     `gorm:"not null" json:"scheduled_date"`

	// minutes, 15..480 when supplied
	Duration *int `json:"duration"`

	InterviewerName  *string `json:"interviewer_name"`
	InterviewerEmail *string `json:"interviewer_email"`
	// physical address for onsite, meeting link for video
	Location *string `json:"location"`
	Notes    *string `gorm:"type:text" json:"notes"`
	Feedback *string `gorm:"type:text" json:"feedback"`

	Status InterviewStatus `gorm:"type:text;not null;default:'scheduled'" json:"status"`
	Round  int             `gorm:"not null;default:1" json:"round"`
}

// ApplicationStats is the aggregate returned by GET /api/stats.
type ApplicationStats struct {
	Total        int `json:"total"`
	Interviews   int `json:"interviews"`
	Offers       int `json:"offers"`
	Rejected     int `json:"rejected"`
	ResponseRate int `json:"responseRate"`
}

// ParsedJob is the transient output of the LinkedIn text/CSV parsers.
// Fields are empty strings when undetected, never pointers; it only
// becomes a JobApplication after validation by the import service.
type ParsedJob struct {
	Title          string `json:"title"`
	Company        string `json:"company"`
	Location       string `json:"location"`
	Description    string `json:"description"`
	JobURL         string `json:"jobUrl"`
	EmploymentType string `json:"employmentType"`
}
