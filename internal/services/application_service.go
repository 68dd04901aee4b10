package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"jobboard_backend/internal/authz"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/privacy"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/telemetry"
	"jobboard_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type ApplicationService interface {
	Apply(candidateUserID string, req *dto.ApplyRequest) (*dto.ApplicationResponse, error)
	ListMyApplications(candidateUserID string) (*dto.ApplicationListResponse, error)
	ListJobApplications(actorUserID, jobID string, page, pageSize int) (*dto.ApplicationListResponse, error)
	// GetApplication отдает отклик с полным профилем кандидата.
	// Полный профиль - платная возможность: требуется подписка
	// владельца компании, и профиль проходит privacy-фильтр.
	GetApplication(actorUserID, applicationID string, meta ViewerMeta) (*dto.ApplicationResponse, error)
	ReviewApplication(actorUserID, applicationID string, req *dto.ReviewApplicationRequest) (*dto.ApplicationResponse, error)
}

type applicationService struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	userRepo        repositories.UserRepository
	employerRepo    repositories.EmployerProfileRepository
	profileRepo     repositories.CandidateProfileRepository
	privacyRepo     repositories.PrivacySettingRepository
	notifications   repositories.NotificationRepository
	evaluator       *authz.Evaluator
	gate            *authz.SubscriptionGate
	recorder        *telemetry.ViewRecorder
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	employerRepo repositories.EmployerProfileRepository,
	profileRepo repositories.CandidateProfileRepository,
	privacyRepo repositories.PrivacySettingRepository,
	notifications repositories.NotificationRepository,
	evaluator *authz.Evaluator,
	gate *authz.SubscriptionGate,
	recorder *telemetry.ViewRecorder,
) ApplicationService {
	return &applicationService{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		userRepo:        userRepo,
		employerRepo:    employerRepo,
		profileRepo:     profileRepo,
		privacyRepo:     privacyRepo,
		notifications:   notifications,
		evaluator:       evaluator,
		gate:            gate,
		recorder:        recorder,
	}
}

func (s *applicationService) Apply(candidateUserID string, req *dto.ApplyRequest) (*dto.ApplicationResponse, error) {
	candidate, err := s.userRepo.FindByID(candidateUserID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	if candidate.Role != models.UserRoleCandidate {
		return nil, apperrors.NewForbiddenError("Only candidates can apply to jobs")
	}

	job, err := s.jobRepo.FindByID(req.JobID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	if job.Status != models.JobStatusActive {
		return nil, apperrors.ErrInvalidOperation("application", "Job is not open for applications")
	}

	if _, err := s.applicationRepo.FindByJobAndCandidate(req.JobID, candidateUserID); err == nil {
		return nil, apperrors.ErrAlreadyExists(errors.New("application already submitted"))
	}

	application := &models.Application{
		JobID:             job.ID,
		CandidateID:       candidateUserID,
		EmployerProfileID: job.EmployerProfileID,
		CoverLetter:       req.CoverLetter,
		Status:            models.ApplicationStatusPending,
	}
	if err := s.applicationRepo.Create(application); err != nil {
		return nil, apperrors.InternalError(err)
	}
	application.Job = *job

	// уведомление владельцу компании, best-effort
	telemetry.BestEffort("application.notify_employer", func() error {
		company, err := s.employerRepo.FindByID(job.EmployerProfileID)
		if err != nil {
			return err
		}
		data, err := json.Marshal(map[string]string{
			"jobId":         job.ID,
			"applicationId": application.ID,
		})
		if err != nil {
			return err
		}
		return s.notifications.Create(&models.Notification{
			UserID:  company.UserID,
			Type:    repositories.NotificationTypeNewApplication,
			Title:   "New application received",
			Message: fmt.Sprintf("A candidate applied to %q", job.Title),
			Data:    datatypes.JSON(data),
		})
	})

	logger.Info("application submitted", "application_id", application.ID, "job_id", job.ID)
	return buildApplicationResponse(application), nil
}

func (s *applicationService) ListMyApplications(candidateUserID string) (*dto.ApplicationListResponse, error) {
	applications, err := s.applicationRepo.ListByCandidate(candidateUserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.ApplicationListResponse{Total: int64(len(applications))}
	for i := range applications {
		resp.Applications = append(resp.Applications, *buildApplicationResponse(&applications[i]))
	}
	return resp, nil
}

func (s *applicationService) ListJobApplications(actorUserID, jobID string, page, pageSize int) (*dto.ApplicationListResponse, error) {
	actor, err := s.userRepo.FindByID(actorUserID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	allowed, err := s.evaluator.CanPerform(actor, job.EmployerProfileID, models.CapViewApplications)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !allowed {
		return nil, apperrors.ErrInsufficientPermissions
	}

	page, pageSize = normalizePagination(page, pageSize)
	applications, total, err := s.applicationRepo.ListByJob(jobID, page, pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// в листинге только сводка отклика, без профилей кандидатов
	resp := &dto.ApplicationListResponse{Total: total}
	for i := range applications {
		resp.Applications = append(resp.Applications, *buildApplicationResponse(&applications[i]))
	}
	return resp, nil
}

func (s *applicationService) GetApplication(actorUserID, applicationID string, meta ViewerMeta) (*dto.ApplicationResponse, error) {
	actor, err := s.userRepo.FindByID(actorUserID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	application, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	allowed, err := s.evaluator.CanPerform(actor, application.EmployerProfileID, models.CapViewApplications)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !allowed {
		return nil, apperrors.ErrInsufficientPermissions
	}

	// гейт подписки отдельно от прав: различимый отказ 402
	company, err := s.employerRepo.FindByID(application.EmployerProfileID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	hasAccess, err := s.gate.HasGatedAccess(company.UserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !hasAccess {
		return nil, apperrors.ErrSubscriptionRequired
	}

	resp := buildApplicationResponse(application)

	profile, err := s.profileRepo.FindByUserID(application.CandidateID)
	if err != nil {
		// отклик без профиля (удален): отдаем без вложения
		logger.WithError(err).Warn("candidate profile missing for application", "application_id", application.ID)
		return resp, nil
	}

	// отклик - явное действие кандидата в адрес компании, гейт
	// profile_visibility здесь не применяется; контактный гейт
	// и анонимизация применяются как обычно
	rows, err := s.privacyRepo.FindActiveByUser(application.CandidateID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	settings := privacy.ParseSettings(rows)

	candidate := buildCandidateResponse(profile)
	privacy.Apply(settings, false, candidate)
	resp.Candidate = candidate

	s.recorder.RecordProfileView(application.CandidateID, profile.ID, s.viewerInfo(actor, company, meta))

	return resp, nil
}

func (s *applicationService) ReviewApplication(actorUserID, applicationID string, req *dto.ReviewApplicationRequest) (*dto.ApplicationResponse, error) {
	actor, err := s.userRepo.FindByID(actorUserID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	application, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	allowed, err := s.evaluator.CanPerform(actor, application.EmployerProfileID, models.CapReviewApplications)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !allowed {
		return nil, apperrors.ErrInsufficientPermissions
	}

	now := time.Now()
	application.Status = req.Status
	application.ReviewedAt = &now
	application.ReviewedByUserID = &actorUserID
	if err := s.applicationRepo.Update(application); err != nil {
		return nil, apperrors.InternalError(err)
	}

	telemetry.BestEffort("application.notify_candidate", func() error {
		data, err := json.Marshal(map[string]string{
			"jobId":         application.JobID,
			"applicationId": application.ID,
			"status":        string(application.Status),
		})
		if err != nil {
			return err
		}
		return s.notifications.Create(&models.Notification{
			UserID:  application.CandidateID,
			Type:    repositories.NotificationTypeApplicationStatus,
			Title:   "Application status updated",
			Message: fmt.Sprintf("Your application for %q is now %s", application.Job.Title, application.Status),
			Data:    datatypes.JSON(data),
		})
	})

	logger.Info("application reviewed",
		"application_id", application.ID, "status", application.Status, "reviewer_id", actorUserID)
	return buildApplicationResponse(application), nil
}

func (s *applicationService) viewerInfo(actor *models.User, company *models.EmployerProfile, meta ViewerMeta) telemetry.ViewerInfo {
	viewerType := "team_member"
	if actor.Role == models.UserRoleEmployer {
		viewerType = "employer"
	}
	return telemetry.ViewerInfo{
		UserID:      actor.ID,
		ViewerType:  viewerType,
		Email:       actor.Email,
		CompanyName: company.CompanyName,
		IPAddress:   meta.IPAddress,
		UserAgent:   meta.UserAgent,
	}
}

func buildApplicationResponse(application *models.Application) *dto.ApplicationResponse {
	return &dto.ApplicationResponse{
		ID:          application.ID,
		JobID:       application.JobID,
		JobTitle:    application.Job.Title,
		CandidateID: application.CandidateID,
		CoverLetter: application.CoverLetter,
		Status:      application.Status,
		ReviewedAt:  application.ReviewedAt,
		CreatedAt:   application.CreatedAt,
	}
}
