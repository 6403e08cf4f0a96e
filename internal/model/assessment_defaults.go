package model

// Initial-content policy for freshly created assessments. The two seeded
// sections are illustrative placeholders for the builder UI; swap this
// factory out if a deployment wants blank or templated documents instead.

func NewDefaultAssessment(jobID string) *Assessment {
	a := &Assessment{
		JobID:      jobID,
		Title:      "Candidate Assessment",
		Summary:    "Tell us about yourself and how you work.",
		Difficulty: DifficultyMedium,
		Status:     StatusDraft,
		Tags:       StringList{},
		Sections: SectionList{
			{
				ID:    GenerateUUID(),
				Title: "Screening",
				Questions: []Question{
					{
						ID:       GenerateUUID(),
						Type:     SingleChoice,
						Label:    "Are you legally authorized to work in this role's location?",
						Required: true,
						Choices: []Choice{
							{ID: GenerateUUID(), Label: "Yes", Value: "yes"},
							{ID: GenerateUUID(), Label: "No", Value: "no"},
						},
					},
					{
						ID:    GenerateUUID(),
						Type:  Numeric,
						Label: "Years of relevant experience",
						Validation: ValidationRules{
							MinValue: floatPtr(0),
							MaxValue: floatPtr(50),
						},
					},
				},
			},
			{
				ID:    GenerateUUID(),
				Title: "Background",
				Questions: []Question{
					{
						ID:         GenerateUUID(),
						Type:       LongText,
						Label:      "Describe a project you are proud of.",
						Validation: ValidationRules{MaxLength: intPtr(2000)},
					},
				},
			},
		},
	}
	a.ID = GenerateUUID()
	a.Normalize()
	return a
}

// DefaultValidation returns the type-appropriate starting bundle for a new
// question.
func DefaultValidation(t QuestionType) ValidationRules {
	switch t {
	case ShortText:
		return ValidationRules{MaxLength: intPtr(255)}
	case LongText:
		return ValidationRules{MaxLength: intPtr(2000)}
	case Numeric:
		return ValidationRules{}
	case FileUpload:
		return ValidationRules{
			AllowedFileTypes: []string{"application/pdf"},
			MaxFileSizeMB:    floatPtr(10),
		}
	default:
		return ValidationRules{}
	}
}

// PlaceholderChoices seeds choice-type questions so they immediately satisfy
// the two-entry minimum.
func PlaceholderChoices() []Choice {
	return []Choice{
		{ID: GenerateUUID(), Label: "Option 1", Value: "option_1"},
		{ID: GenerateUUID(), Label: "Option 2", Value: "option_2"},
		{ID: GenerateUUID(), Label: "Option 3", Value: "option_3"},
	}
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
