package service

import (
	"fmt"
	"sync"
	"sync/atomic"

	"hirehub_backend/internal/model"
	"hirehub_backend/internal/util"

	"github.com/jinzhu/copier"
)

// BuilderSession owns the single in-memory assessment document being edited
// by one builder session. All mutation operations are synchronous, purely
// in-memory and never persist; persistence works on a snapshot taken at
// call time so an in-flight write can never observe a half-applied
// mutation. Order fields stay dense and contiguous after every structural
// change.
//
// Concurrent edits from two sessions against the same job are not
// reconciled; the repository's last write wins.
type BuilderSession struct {
	mu         sync.Mutex
	assessment *model.Assessment
	token      atomic.Uint64
}

func NewBuilderSession(a *model.Assessment) *BuilderSession {
	return &BuilderSession{assessment: a}
}

// Snapshot returns a deep copy of the current document, safe to serialize
// while further mutations continue.
func (s *BuilderSession) Snapshot() *model.Assessment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAssessment(s.assessment)
}

// NextToken marks the start of a load or persist. A completion whose token
// is no longer current has been superseded and must be discarded.
func (s *BuilderSession) NextToken() uint64 {
	return s.token.Add(1)
}

// Adopt installs an externally loaded document, unless a newer load or
// persist has started since the token was taken.
func (s *BuilderSession) Adopt(a *model.Assessment, token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	// The comparison must happen under the lock, or a stale completion
	// could pass it, lose the CPU, and commit over a newer document.
	if token != s.token.Load() {
		return false
	}
	s.assessment = cloneAssessment(a)
	return true
}

type MetadataPatch struct {
	Title           *string                 `json:"title"`
	Summary         *string                 `json:"summary"`
	RoleLabel       *string                 `json:"roleLabel"`
	Difficulty      *model.Difficulty       `json:"difficulty"`
	DurationMinutes *int                    `json:"durationMinutes"`
	Status          *model.AssessmentStatus `json:"status"`
	Tags            []string                `json:"tags"`
}

// UpdateMetadata shallow-merges onto the document's scalar fields.
func (s *BuilderSession) UpdateMetadata(patch MetadataPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.assessment
	if patch.Title != nil {
		a.Title = *patch.Title
	}
	if patch.Summary != nil {
		a.Summary = *patch.Summary
	}
	if patch.RoleLabel != nil {
		a.RoleLabel = *patch.RoleLabel
	}
	if patch.Difficulty != nil {
		a.Difficulty = *patch.Difficulty
	}
	if patch.DurationMinutes != nil {
		a.DurationMinutes = *patch.DurationMinutes
	}
	if patch.Status != nil {
		a.Status = *patch.Status
	}
	if patch.Tags != nil {
		a.Tags = model.StringList(patch.Tags)
	}
}

type SectionInit struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	TimeLimitMinutes *int   `json:"timeLimitMinutes"`
}

// AddSection appends a new section; untitled sections get "Section {n+1}".
func (s *BuilderSession) AddSection(init SectionInit) model.Section {
	s.mu.Lock()
	defer s.mu.Unlock()
	title := init.Title
	if title == "" {
		title = fmt.Sprintf("Section %d", len(s.assessment.Sections)+1)
	}
	sec := model.Section{
		ID:               model.GenerateUUID(),
		Order:            len(s.assessment.Sections),
		Title:            title,
		Description:      init.Description,
		TimeLimitMinutes: init.TimeLimitMinutes,
		Questions:        []model.Question{},
	}
	s.assessment.Sections = append(s.assessment.Sections, sec)
	return sec
}

type SectionPatch struct {
	Title            *string `json:"title"`
	Description      *string `json:"description"`
	TimeLimitMinutes *int    `json:"timeLimitMinutes"`
	ClearTimeLimit   bool    `json:"clearTimeLimit"`
}

// UpdateSection merges onto the addressed section. Order and questions are
// never touched through this path.
func (s *BuilderSession) UpdateSection(id string, patch SectionPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sec := s.findSection(id)
	if sec == nil {
		return util.ErrNotFound
	}
	if patch.Title != nil {
		sec.Title = *patch.Title
	}
	if patch.Description != nil {
		sec.Description = *patch.Description
	}
	if patch.TimeLimitMinutes != nil {
		sec.TimeLimitMinutes = patch.TimeLimitMinutes
	}
	if patch.ClearTimeLimit {
		sec.TimeLimitMinutes = nil
	}
	return nil
}

func (s *BuilderSession) RemoveSection(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sections := s.assessment.Sections
	idx := -1
	for i := range sections {
		if sections[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return util.ErrNotFound
	}
	s.assessment.Sections = append(sections[:idx], sections[idx+1:]...)
	s.assessment.Normalize()
	return nil
}

type QuestionInit struct {
	Type     model.QuestionType `json:"type"`
	Label    string             `json:"label"`
	Required bool               `json:"required"`
}

// AddQuestion appends a question with type-appropriate defaults: a starting
// validation bundle, and placeholder choices for choice types.
func (s *BuilderSession) AddQuestion(sectionID string, init QuestionInit) (model.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sec := s.findSection(sectionID)
	if sec == nil {
		return model.Question{}, util.ErrNotFound
	}
	q := model.Question{
		ID:         model.GenerateUUID(),
		Order:      len(sec.Questions),
		Type:       init.Type,
		Label:      init.Label,
		Required:   init.Required,
		Validation: model.DefaultValidation(init.Type),
	}
	if q.Type.IsChoice() {
		q.Choices = model.PlaceholderChoices()
	}
	sec.Questions = append(sec.Questions, q)
	return q, nil
}

type QuestionPatch struct {
	Type        *model.QuestionType `json:"type"`
	Label       *string             `json:"label"`
	Description *string             `json:"description"`
	Required    *bool               `json:"required"`
}

// UpdateQuestion merges scalar fields. Changing the type re-seeds the
// validation bundle and fixes up the choice list so the document keeps its
// type-appropriateness invariants.
func (s *BuilderSession) UpdateQuestion(id string, patch QuestionPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, _ := s.assessment.FindQuestion(id)
	if q == nil {
		return util.ErrNotFound
	}
	if patch.Type != nil && *patch.Type != q.Type {
		q.Type = *patch.Type
		q.Validation = model.DefaultValidation(q.Type)
		if q.Type.IsChoice() {
			if len(q.Choices) < 2 {
				q.Choices = model.PlaceholderChoices()
			}
		} else {
			q.Choices = nil
		}
	}
	if patch.Label != nil {
		q.Label = *patch.Label
	}
	if patch.Description != nil {
		q.Description = *patch.Description
	}
	if patch.Required != nil {
		q.Required = *patch.Required
	}
	return nil
}

func (s *BuilderSession) UpdateQuestionValidation(id string, rules model.ValidationRules) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, _ := s.assessment.FindQuestion(id)
	if q == nil {
		return util.ErrNotFound
	}
	q.Validation = rules
	return nil
}

// UpdateQuestionConditional sets or clears the visibility rule. A rule may
// not reference its own question.
func (s *BuilderSession) UpdateQuestionConditional(id string, logic *model.ConditionalLogic) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, _ := s.assessment.FindQuestion(id)
	if q == nil {
		return util.ErrNotFound
	}
	if logic != nil && logic.QuestionID == id {
		return util.ErrMalformedPayload
	}
	q.Conditional = logic
	return nil
}

// SetQuestionChoices replaces the choice list, assigning identifiers to
// entries that arrive without one.
func (s *BuilderSession) SetQuestionChoices(id string, choices []model.Choice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, _ := s.assessment.FindQuestion(id)
	if q == nil {
		return util.ErrNotFound
	}
	for i := range choices {
		if choices[i].ID == "" {
			choices[i].ID = model.GenerateUUID()
		}
	}
	q.Choices = choices
	return nil
}

func (s *BuilderSession) RemoveQuestion(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for si := range s.assessment.Sections {
		sec := &s.assessment.Sections[si]
		for qi := range sec.Questions {
			if sec.Questions[qi].ID == id {
				sec.Questions = append(sec.Questions[:qi], sec.Questions[qi+1:]...)
				s.assessment.Normalize()
				return nil
			}
		}
	}
	return util.ErrNotFound
}

// DuplicateQuestion clones a question into the same section's tail with a
// fresh identifier and fresh choice identifiers; everything else is
// preserved.
func (s *BuilderSession) DuplicateQuestion(id string) (model.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, sec := s.assessment.FindQuestion(id)
	if q == nil {
		return model.Question{}, util.ErrNotFound
	}

	var clone model.Question
	if err := copier.CopyWithOption(&clone, q, copier.Option{DeepCopy: true}); err != nil {
		return model.Question{}, err
	}
	clone.ID = model.GenerateUUID()
	for i := range clone.Choices {
		clone.Choices[i].ID = model.GenerateUUID()
	}
	clone.Order = len(sec.Questions)
	sec.Questions = append(sec.Questions, clone)
	return clone, nil
}

// ReorderSections places the named sections first in the given order, then
// appends any not named, then renormalizes. Partial lists lose nothing.
func (s *BuilderSession) ReorderSections(orderedIDs []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assessment.Sections = reorderSectionSlice(s.assessment.Sections, orderedIDs)
	s.assessment.Normalize()
}

func (s *BuilderSession) ReorderQuestions(sectionID string, orderedIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sec := s.findSection(sectionID)
	if sec == nil {
		return util.ErrNotFound
	}
	sec.Questions = reorderQuestionSlice(sec.Questions, orderedIDs)
	s.assessment.Normalize()
	return nil
}

func (s *BuilderSession) findSection(id string) *model.Section {
	for i := range s.assessment.Sections {
		if s.assessment.Sections[i].ID == id {
			return &s.assessment.Sections[i]
		}
	}
	return nil
}

func reorderSectionSlice(sections []model.Section, orderedIDs []string) []model.Section {
	byID := make(map[string]int, len(sections))
	for i := range sections {
		byID[sections[i].ID] = i
	}
	out := make([]model.Section, 0, len(sections))
	taken := make(map[string]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		if i, ok := byID[id]; ok && !taken[id] {
			out = append(out, sections[i])
			taken[id] = true
		}
	}
	for i := range sections {
		if !taken[sections[i].ID] {
			out = append(out, sections[i])
		}
	}
	return out
}

func reorderQuestionSlice(questions []model.Question, orderedIDs []string) []model.Question {
	byID := make(map[string]int, len(questions))
	for i := range questions {
		byID[questions[i].ID] = i
	}
	out := make([]model.Question, 0, len(questions))
	taken := make(map[string]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		if i, ok := byID[id]; ok && !taken[id] {
			out = append(out, questions[i])
			taken[id] = true
		}
	}
	for i := range questions {
		if !taken[questions[i].ID] {
			out = append(out, questions[i])
		}
	}
	return out
}

// cloneAssessment builds a snapshot sharing no memory with the source.
// copier treats driver.Valuer implementers like SectionList as scalar
// values and copies only the slice header, so the section tree is cloned
// by hand.
func cloneAssessment(a *model.Assessment) *model.Assessment {
	clone := *a
	if a.Tags != nil {
		clone.Tags = append(model.StringList{}, a.Tags...)
	}
	if a.Sections != nil {
		clone.Sections = make(model.SectionList, len(a.Sections))
		for i := range a.Sections {
			clone.Sections[i] = cloneSection(a.Sections[i])
		}
	}
	return &clone
}

func cloneSection(sec model.Section) model.Section {
	out := sec
	out.TimeLimitMinutes = copyIntPtr(sec.TimeLimitMinutes)
	if sec.Questions != nil {
		out.Questions = make([]model.Question, len(sec.Questions))
		for i := range sec.Questions {
			out.Questions[i] = cloneQuestion(sec.Questions[i])
		}
	}
	return out
}

func cloneQuestion(q model.Question) model.Question {
	out := q
	out.Validation = cloneValidation(q.Validation)
	if q.Choices != nil {
		out.Choices = append([]model.Choice{}, q.Choices...)
	}
	if q.Conditional != nil {
		cond := *q.Conditional
		if cond.Equals.Many != nil {
			cond.Equals.Many = append([]string{}, cond.Equals.Many...)
		}
		out.Conditional = &cond
	}
	return out
}

func cloneValidation(v model.ValidationRules) model.ValidationRules {
	out := v
	out.MinLength = copyIntPtr(v.MinLength)
	out.MaxLength = copyIntPtr(v.MaxLength)
	out.MinValue = copyFloatPtr(v.MinValue)
	out.MaxValue = copyFloatPtr(v.MaxValue)
	out.MaxFileSizeMB = copyFloatPtr(v.MaxFileSizeMB)
	if v.AllowedFileTypes != nil {
		out.AllowedFileTypes = append([]string{}, v.AllowedFileTypes...)
	}
	return out
}

func copyIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyFloatPtr(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
