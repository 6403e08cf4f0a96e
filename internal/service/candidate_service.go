package service

import (
	"context"

	"hirehub_backend/internal/model"
	"hirehub_backend/internal/repository"
)

type CandidateService struct {
	Repo *repository.CandidateRepository
}

func NewCandidateService(repo *repository.CandidateRepository) *CandidateService {
	return &CandidateService{Repo: repo}
}

type CandidateRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	ResumeFileName string `json:"resumeFileName"`
	Notes          string `json:"notes"`
}

func (s *CandidateService) Create(ctx context.Context, req CandidateRequest) (*model.Candidate, error) {
	c := &model.Candidate{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		ResumeFileName: req.ResumeFileName,
		Notes:          req.Notes,
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CandidateService) List(ctx context.Context, page, limit int) ([]model.Candidate, int64, error) {
	return s.Repo.List(ctx, page, limit)
}

func (s *CandidateService) Get(ctx context.Context, id string) (*model.Candidate, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *CandidateService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
