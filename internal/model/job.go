package model

type JobStatus string

const (
	JobOpen   JobStatus = "open"
	JobPaused JobStatus = "paused"
	JobClosed JobStatus = "closed"
)

// Job is a posting. Its assessment hangs off JobID one-to-one; deleting a
// job deletes the assessment and its submissions.
// swagger:model Job
type Job struct {
	UUIDBase
	Title       string     `gorm:"size:255;not null" json:"title"`
	Department  string     `gorm:"size:100" json:"department"`
	Location    string     `gorm:"size:100" json:"location"`
	Description string     `gorm:"type:text" json:"description"`
	Status      JobStatus  `gorm:"size:20;default:'open'" json:"status"`
	Tags        StringList `gorm:"type:json" json:"tags"`
}

func (Job) TableName() string {
	return "jobs"
}
