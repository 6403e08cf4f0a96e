package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"hirehub_backend/internal/model"
	"hirehub_backend/internal/repository"
	"hirehub_backend/internal/util"
	"hirehub_backend/pkg/monitoring"
)

type SubmissionService struct {
	Assessments repository.AssessmentStore
	Submissions repository.SubmissionStore
}

func NewSubmissionService(assessments repository.AssessmentStore, submissions repository.SubmissionStore) *SubmissionService {
	return &SubmissionService{Assessments: assessments, Submissions: submissions}
}

type SubmitRequest struct {
	CandidateID    string                 `json:"candidateId"`
	CandidateName  string                 `json:"candidateName"`
	CandidateEmail string                 `json:"candidateEmail"`
	Answers        map[string]interface{} `json:"answers"`
}

// AssembleAnswers converts raw form values into the normalized answer list
// for only the currently visible questions, in section-order then
// question-order. Hidden questions are omitted entirely. The function is
// pure: identical inputs always produce identical lists.
func AssembleAnswers(a *model.Assessment, values map[string]interface{}) []model.SubmissionAnswer {
	questions := a.AllQuestions()
	vals := ResetHiddenValues(questions, values)

	answers := make([]model.SubmissionAnswer, 0, len(questions))
	for _, sec := range a.Sections {
		for _, q := range sec.Questions {
			if !IsVisible(q, vals) {
				continue
			}
			answers = append(answers, assembleAnswer(q, vals[q.ID]))
		}
	}
	return answers
}

func assembleAnswer(q model.Question, value interface{}) model.SubmissionAnswer {
	ans := model.SubmissionAnswer{QuestionID: q.ID}

	switch q.Type {
	case model.SingleChoice, model.ShortText, model.LongText:
		s, _ := asString(value)
		ans.Response = strings.TrimSpace(s)
	case model.MultiChoice:
		list, ok := asStringSlice(value)
		if !ok {
			list = []string{}
		}
		ans.Response = list
	case model.Numeric:
		if n, state := parseNumeric(value); state == numericValid {
			ans.Response = n
		} else {
			ans.Response = nil
		}
	case model.FileUpload:
		if file, ok := asFileValue(value); ok {
			ans.Response = file.FileName
			ans.UploadedFileName = file.FileName
		} else {
			ans.Response = nil
		}
	}
	return ans
}

// Submit validates the form against the job's current assessment and, when
// it passes, records one respondent attempt. Validation problems come back
// as field issues, not as an error; the record is only created on a clean
// pass.
func (s *SubmissionService) Submit(ctx context.Context, jobID string, req SubmitRequest) (*model.SubmissionRecord, []FieldIssue, error) {
	a, err := s.Assessments.GetByJob(ctx, jobID)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, nil, util.ErrAssessmentMissing
		}
		return nil, nil, err
	}

	values := make(map[string]interface{}, len(req.Answers)+2)
	for k, v := range req.Answers {
		values[k] = v
	}
	values["candidateName"] = req.CandidateName
	values["candidateEmail"] = req.CandidateEmail

	schema := CompileSchema(a.AllQuestions())
	if issues := schema.Validate(values); len(issues) > 0 {
		monitoring.SubmissionCounter.WithLabelValues("rejected").Inc()
		return nil, issues, nil
	}

	candidateID := req.CandidateID
	if candidateID == "" {
		candidateID = model.GenerateUUID()
	}

	rec := &model.SubmissionRecord{
		AssessmentID:   a.ID,
		JobID:          jobID,
		CandidateID:    candidateID,
		CandidateName:  strings.TrimSpace(req.CandidateName),
		CandidateEmail: strings.TrimSpace(req.CandidateEmail),
		SubmittedAt:    time.Now(),
		Status:         model.SubmissionCompleted,
		Answers:        model.AnswerList(AssembleAnswers(a, req.Answers)),
	}
	rec.ID = model.GenerateUUID()

	if err := s.Submissions.Create(ctx, rec); err != nil {
		monitoring.SubmissionCounter.WithLabelValues("failed").Inc()
		return nil, nil, err
	}

	monitoring.SubmissionCounter.WithLabelValues("accepted").Inc()
	return rec, nil, nil
}

func (s *SubmissionService) ListByJob(ctx context.Context, jobID string) ([]model.SubmissionRecord, error) {
	return s.Submissions.ListByJob(ctx, jobID)
}

func (s *SubmissionService) GetByID(ctx context.Context, id string) (*model.SubmissionRecord, error) {
	return s.Submissions.FindByID(ctx, id)
}
