package services

import (
	"encoding/json"
	"time"

	"jobboard_backend/internal/authz"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type JobService interface {
	CreateJob(actorUserID, employerProfileID string, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	GetJob(actorUserID *string, jobID string) (*dto.JobResponse, error)
	UpdateJob(actorUserID, jobID string, req *dto.UpdateJobRequest) (*dto.JobResponse, error)
	PublishJob(actorUserID, jobID string) (*dto.JobResponse, error)
	DeleteJob(actorUserID, jobID string) error
	ListCompanyJobs(actorUserID, employerProfileID string, page, pageSize int) (*dto.JobListResponse, error)
	ListPublishedJobs(page, pageSize int) (*dto.JobListResponse, error)
}

type jobService struct {
	jobRepo      repositories.JobRepository
	userRepo     repositories.UserRepository
	employerRepo repositories.EmployerProfileRepository
	evaluator    *authz.Evaluator
	gate         *authz.SubscriptionGate
}

func NewJobService(
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	employerRepo repositories.EmployerProfileRepository,
	evaluator *authz.Evaluator,
	gate *authz.SubscriptionGate,
) JobService {
	return &jobService{
		jobRepo:      jobRepo,
		userRepo:     userRepo,
		employerRepo: employerRepo,
		evaluator:    evaluator,
		gate:         gate,
	}
}

func (s *jobService) CreateJob(actorUserID, employerProfileID string, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	actor, err := s.userRepo.FindByID(actorUserID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	allowed, err := s.evaluator.CanPerform(actor, employerProfileID, models.CapPostJobs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !allowed {
		return nil, apperrors.ErrInsufficientPermissions
	}

	skills, err := marshalSkills(req.Skills)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	job := &models.Job{
		EmployerProfileID: employerProfileID,
		CreatedByUserID:   actorUserID,
		Title:             req.Title,
		Description:       req.Description,
		Location:          req.Location,
		SalaryMin:         req.SalaryMin,
		SalaryMax:         req.SalaryMax,
		EmploymentType:    req.EmploymentType,
		Skills:            skills,
		Status:            models.JobStatusDraft,
	}

	if req.Publish {
		if err := s.requireSubscription(employerProfileID); err != nil {
			return nil, err
		}
		now := time.Now()
		job.Status = models.JobStatusActive
		job.PublishedAt = &now
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("job created", "job_id", job.ID, "employer_profile_id", employerProfileID, "status", job.Status)
	return buildJobResponse(job), nil
}

func (s *jobService) GetJob(actorUserID *string, jobID string) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	if job.Status == models.JobStatusActive {
		return buildJobResponse(job), nil
	}

	// черновики и закрытые вакансии видны только команде компании
	if actorUserID == nil {
		return nil, apperrors.ErrNotFound(repositories.ErrNotFound)
	}
	actor, err := s.userRepo.FindByID(*actorUserID)
	if err != nil {
		return nil, apperrors.ErrNotFound(repositories.ErrNotFound)
	}
	principal, err := s.evaluator.ResolvePrincipal(actor, job.EmployerProfileID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if principal.Kind == authz.NoAccess {
		// не подтверждаем существование черновика посторонним
		return nil, apperrors.ErrNotFound(repositories.ErrNotFound)
	}
	return buildJobResponse(job), nil
}

func (s *jobService) UpdateJob(actorUserID, jobID string, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := s.authorizeJobChange(actorUserID, jobID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.SalaryMin != nil {
		job.SalaryMin = req.SalaryMin
	}
	if req.SalaryMax != nil {
		job.SalaryMax = req.SalaryMax
	}
	if req.EmploymentType != nil {
		job.EmploymentType = *req.EmploymentType
	}
	if req.Skills != nil {
		skills, err := marshalSkills(req.Skills)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		job.Skills = skills
	}
	if req.Status != nil && *req.Status != job.Status {
		switch *req.Status {
		case models.JobStatusActive:
			if err := s.requireSubscription(job.EmployerProfileID); err != nil {
				return nil, err
			}
			now := time.Now()
			job.PublishedAt = &now
		case models.JobStatusClosed:
			now := time.Now()
			job.ClosesAt = &now
		}
		job.Status = *req.Status
	}

	if err := s.jobRepo.Update(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildJobResponse(job), nil
}

func (s *jobService) PublishJob(actorUserID, jobID string) (*dto.JobResponse, error) {
	job, err := s.authorizeJobChange(actorUserID, jobID)
	if err != nil {
		return nil, err
	}

	if job.Status == models.JobStatusActive {
		return buildJobResponse(job), nil
	}
	if err := s.requireSubscription(job.EmployerProfileID); err != nil {
		return nil, err
	}

	now := time.Now()
	job.Status = models.JobStatusActive
	job.PublishedAt = &now
	if err := s.jobRepo.Update(job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("job published", "job_id", job.ID, "employer_profile_id", job.EmployerProfileID)
	return buildJobResponse(job), nil
}

func (s *jobService) DeleteJob(actorUserID, jobID string) error {
	if _, err := s.authorizeJobChange(actorUserID, jobID); err != nil {
		return err
	}
	if err := s.jobRepo.Delete(jobID); err != nil {
		return apperrors.InternalError(err)
	}
	logger.Info("job deleted", "job_id", jobID)
	return nil
}

func (s *jobService) ListCompanyJobs(actorUserID, employerProfileID string, page, pageSize int) (*dto.JobListResponse, error) {
	actor, err := s.userRepo.FindByID(actorUserID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	principal, err := s.evaluator.ResolvePrincipal(actor, employerProfileID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if principal.Kind == authz.NoAccess {
		return nil, apperrors.ErrInsufficientPermissions
	}

	page, pageSize = normalizePagination(page, pageSize)
	jobs, total, err := s.jobRepo.ListByCompany(employerProfileID, page, pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildJobListResponse(jobs, total), nil
}

func (s *jobService) ListPublishedJobs(page, pageSize int) (*dto.JobListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)
	jobs, total, err := s.jobRepo.ListPublished(page, pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildJobListResponse(jobs, total), nil
}

// authorizeJobChange загружает вакансию и проверяет право can_post_jobs
// в рамках компании-владельца вакансии.
func (s *jobService) authorizeJobChange(actorUserID, jobID string) (*models.Job, error) {
	actor, err := s.userRepo.FindByID(actorUserID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	allowed, err := s.evaluator.CanPerform(actor, job.EmployerProfileID, models.CapPostJobs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !allowed {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return job, nil
}

// requireSubscription проверяет подписку владельца компании.
// Подписка привязана к user_id владельца и покрывает всю команду.
func (s *jobService) requireSubscription(employerProfileID string) error {
	profile, err := s.employerRepo.FindByID(employerProfileID)
	if err != nil {
		return apperrors.ErrNotFound(err)
	}
	ok, err := s.gate.HasGatedAccess(profile.UserID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if !ok {
		return apperrors.ErrSubscriptionRequired
	}
	return nil
}

func buildJobResponse(job *models.Job) *dto.JobResponse {
	resp := &dto.JobResponse{
		ID:                job.ID,
		EmployerProfileID: job.EmployerProfileID,
		CompanyName:       job.EmployerProfile.CompanyName,
		Title:             job.Title,
		Description:       job.Description,
		Location:          job.Location,
		SalaryMin:         job.SalaryMin,
		SalaryMax:         job.SalaryMax,
		EmploymentType:    job.EmploymentType,
		Status:            job.Status,
		PublishedAt:       job.PublishedAt,
		CreatedAt:         job.CreatedAt,
	}
	if len(job.Skills) > 0 {
		_ = json.Unmarshal(job.Skills, &resp.Skills)
	}
	return resp
}

func buildJobListResponse(jobs []models.Job, total int64) *dto.JobListResponse {
	resp := &dto.JobListResponse{Total: total}
	for i := range jobs {
		resp.Jobs = append(resp.Jobs, *buildJobResponse(&jobs[i]))
	}
	return resp
}

func marshalSkills(skills []string) (datatypes.JSON, error) {
	if skills == nil {
		return nil, nil
	}
	raw, err := json.Marshal(skills)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func normalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
