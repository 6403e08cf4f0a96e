package model

// Candidate is a directory entry for the recruiting screens. Resume is a
// file name reference only.
// swagger:model Candidate
type Candidate struct {
	UUIDBase
	Name           string `gorm:"size:255;not null" json:"name"`
	Email          string `gorm:"size:255;index" json:"email"`
	Phone          string `gorm:"size:50" json:"phone,omitempty"`
	ResumeFileName string `gorm:"size:255" json:"resumeFileName,omitempty"`
	Notes          string `gorm:"type:text" json:"notes,omitempty"`
}

func (Candidate) TableName() string {
	return "candidates"
}
