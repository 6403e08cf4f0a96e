package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

type QuestionType string

const (
	SingleChoice QuestionType = "single_choice"
	MultiChoice  QuestionType = "multi_choice"
	ShortText    QuestionType = "short_text"
	LongText     QuestionType = "long_text"
	Numeric      QuestionType = "numeric"
	FileUpload   QuestionType = "file_upload"
)

// IsChoice reports whether the type carries a Choice list.
func (t QuestionType) IsChoice() bool {
	return t == SingleChoice || t == MultiChoice
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type AssessmentStatus string

const (
	StatusDraft     AssessmentStatus = "draft"
	StatusPublished AssessmentStatus = "published"
	StatusArchived  AssessmentStatus = "archived"
)

// Assessment is the full questionnaire document for one job posting.
// Exactly one exists per JobID; it is created lazily on first access.
// Sections (and everything below them) live in a single JSON column so the
// whole document is replaced atomically on every persist.
// swagger:model Assessment
type Assessment struct {
	UUIDBase
	JobID           string           `gorm:"uniqueIndex;type:varchar(36);not null" json:"jobId"`
	Title           string           `gorm:"size:255" json:"title"`
	Summary         string           `gorm:"type:text" json:"summary"`
	RoleLabel       string           `gorm:"size:255" json:"roleLabel"`
	Difficulty      Difficulty       `gorm:"size:20;default:'medium'" json:"difficulty"`
	DurationMinutes int              `gorm:"default:0" json:"durationMinutes"`
	Status          AssessmentStatus `gorm:"size:20;default:'draft'" json:"status"`
	Tags            StringList       `gorm:"type:json" json:"tags"`
	Sections        SectionList      `gorm:"type:json" json:"sections"`
}

func (Assessment) TableName() string {
	return "assessments"
}

// Section is an ordered grouping of questions. Order values stay dense and
// contiguous (0..n-1) after every structural mutation.
type Section struct {
	ID               string     `json:"id"`
	Order            int        `json:"order"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	TimeLimitMinutes *int       `json:"timeLimitMinutes,omitempty"` // nil = unlimited
	Questions        []Question `json:"questions"`
}

// Question is a single typed prompt. The validation bundle only carries the
// fields that make sense for its type; Choices exist only for choice types.
type Question struct {
	ID          string            `json:"id"`
	Order       int               `json:"order"`
	Type        QuestionType      `json:"type"`
	Label       string            `json:"label"`
	Description string            `json:"description,omitempty"`
	Required    bool              `json:"required"`
	Validation  ValidationRules   `json:"validation"`
	Choices     []Choice          `json:"choices,omitempty"`
	Conditional *ConditionalLogic `json:"conditional,omitempty"`
}

// Choice is one selectable option. Value is the slug used for answer
// equality and conditional matching; it must be unique within the question.
type Choice struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

type ValidationRules struct {
	MinLength        *int     `json:"minLength,omitempty"`
	MaxLength        *int     `json:"maxLength,omitempty"`
	MinValue         *float64 `json:"minValue,omitempty"`
	MaxValue         *float64 `json:"maxValue,omitempty"`
	AllowedFileTypes []string `json:"allowedFileTypes,omitempty"`
	MaxFileSizeMB    *float64 `json:"maxFileSizeMb,omitempty"`
}

// ConditionalLogic makes a question's visibility depend on another
// question's current answer. QuestionID must reference a different question
// in the same assessment; a dangling reference keeps the question hidden.
type ConditionalLogic struct {
	QuestionID string         `json:"questionId"`
	Equals     ConditionMatch `json:"equals"`
}

// ConditionMatch is the comparand of a conditional rule: either a single
// value or a set of acceptable values. Both JSON forms round-trip unchanged.
type ConditionMatch struct {
	One  string
	Many []string
}

// Values flattens the comparand into the set it matches against.
func (m ConditionMatch) Values() []string {
	if m.Many != nil {
		return m.Many
	}
	if m.One != "" {
		return []string{m.One}
	}
	return nil
}

func (m ConditionMatch) MarshalJSON() ([]byte, error) {
	if m.Many != nil {
		return json.Marshal(m.Many)
	}
	return json.Marshal(m.One)
}

func (m *ConditionMatch) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		m.One = one
		m.Many = nil
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("conditional equals must be a string or a string list: %w", err)
	}
	m.One = ""
	m.Many = many
	return nil
}

// SectionList stores the section tree as a JSON document column.
type SectionList []Section

func (l SectionList) Value() (driver.Value, error) {
	if l == nil {
		l = SectionList{}
	}
	return json.Marshal(l)
}

func (l *SectionList) Scan(value interface{}) error {
	if value == nil {
		*l = SectionList{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		s, ok := value.(string)
		if !ok {
			return errors.New("sections column is not bytes")
		}
		b = []byte(s)
	}
	return json.Unmarshal(b, l)
}

type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		s, ok := value.(string)
		if !ok {
			return errors.New("tags column is not bytes")
		}
		b = []byte(s)
	}
	return json.Unmarshal(b, l)
}

// AllQuestions returns every question in section-order then question-order.
func (a *Assessment) AllQuestions() []Question {
	var out []Question
	for _, sec := range a.Sections {
		out = append(out, sec.Questions...)
	}
	return out
}

// FindQuestion scans all sections for a question by its global identifier.
func (a *Assessment) FindQuestion(id string) (*Question, *Section) {
	for si := range a.Sections {
		sec := &a.Sections[si]
		for qi := range sec.Questions {
			if sec.Questions[qi].ID == id {
				return &sec.Questions[qi], sec
			}
		}
	}
	return nil, nil
}

// Normalize re-derives dense 0..n-1 order values from slice position for
// sections and their questions. Every persist goes through this.
func (a *Assessment) Normalize() {
	for si := range a.Sections {
		a.Sections[si].Order = si
		for qi := range a.Sections[si].Questions {
			a.Sections[si].Questions[qi].Order = qi
		}
	}
}
