package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type SubmissionStatus string

const (
	SubmissionInProgress SubmissionStatus = "in_progress"
	SubmissionCompleted  SubmissionStatus = "completed"
	SubmissionGraded     SubmissionStatus = "graded"
)

// SubmissionRecord is one respondent attempt against a job's assessment.
// This service only creates records; grading happens elsewhere.
// swagger:model SubmissionRecord
type SubmissionRecord struct {
	UUIDBase
	AssessmentID   string           `gorm:"index;type:varchar(36);not null" json:"assessmentId"`
	JobID          string           `gorm:"index;type:varchar(36);not null" json:"jobId"`
	CandidateID    string           `gorm:"index;type:varchar(36)" json:"candidateId"`
	CandidateName  string           `gorm:"size:255;not null" json:"candidateName"`
	CandidateEmail string           `gorm:"size:255" json:"candidateEmail,omitempty"`
	SubmittedAt    time.Time        `json:"submittedAt"`
	Status         SubmissionStatus `gorm:"size:20;default:'completed'" json:"status"`
	Answers        AnswerList       `gorm:"type:json" json:"answers"`
}

func (SubmissionRecord) TableName() string {
	return "submission_records"
}

// SubmissionAnswer holds one visible question's normalized response.
// Response is a string for choice/text types, []string for multi_choice,
// float64 or nil for numeric, and a file name or nil for file_upload.
// Score and Feedback stay nil at creation; a separate grading step fills
// them in.
type SubmissionAnswer struct {
	QuestionID       string      `json:"questionId"`
	Response         interface{} `json:"response"`
	UploadedFileName string      `json:"uploadedFileName,omitempty"`
	Score            *float64    `json:"score,omitempty"`
	Feedback         *string     `json:"feedback,omitempty"`
}

// FileValue is the wire shape of a file_upload answer. Only the reference
// travels; file contents never pass through this service.
type FileValue struct {
	FileName  string  `json:"fileName"`
	MediaType string  `json:"mediaType"`
	SizeMB    float64 `json:"sizeMb"`
}

type AnswerList []SubmissionAnswer

func (l AnswerList) Value() (driver.Value, error) {
	if l == nil {
		l = AnswerList{}
	}
	return json.Marshal(l)
}

func (l *AnswerList) Scan(value interface{}) error {
	if value == nil {
		*l = AnswerList{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		s, ok := value.(string)
		if !ok {
			return errors.New("answers column is not bytes")
		}
		b = []byte(s)
	}
	return json.Unmarshal(b, l)
}
