package service

import (
	"context"

	"hirehub_backend/internal/model"
	"hirehub_backend/internal/repository"
)

type JobService struct {
	Repo        *repository.JobRepository
	Assessments *AssessmentService
}

func NewJobService(repo *repository.JobRepository, assessments *AssessmentService) *JobService {
	return &JobService{Repo: repo, Assessments: assessments}
}

type JobRequest struct {
	Title       string   `json:"title" binding:"required"`
	Department  string   `json:"department"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	Tags        []string `json:"tags"`
}

func (s *JobService) Create(ctx context.Context, req JobRequest) (*model.Job, error) {
	job := &model.Job{
		Title:       req.Title,
		Department:  req.Department,
		Location:    req.Location,
		Description: req.Description,
		Status:      model.JobOpen,
		Tags:        model.StringList(req.Tags),
	}
	if req.Status != "" {
		job.Status = model.JobStatus(req.Status)
	}
	if err := s.Repo.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) List(ctx context.Context, page, limit int) ([]model.Job, int64, error) {
	return s.Repo.List(ctx, page, limit)
}

func (s *JobService) Get(ctx context.Context, id string) (*model.Job, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *JobService) Update(ctx context.Context, id string, req JobRequest) (*model.Job, error) {
	job, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	job.Title = req.Title
	job.Department = req.Department
	job.Location = req.Location
	job.Description = req.Description
	if req.Status != "" {
		job.Status = model.JobStatus(req.Status)
	}
	if req.Tags != nil {
		job.Tags = model.StringList(req.Tags)
	}
	if err := s.Repo.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// Delete removes the posting and everything hanging off it: the job's
// assessment and that assessment's submission records.
func (s *JobService) Delete(ctx context.Context, id string) error {
	if _, err := s.Repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.Assessments.RemoveForJob(ctx, id); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, id)
}
