package services

import (
	"encoding/json"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/privacy"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/telemetry"
	"jobboard_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

// ViewerMeta - технические атрибуты запроса просмотра, для телеметрии.
type ViewerMeta struct {
	IPAddress string
	UserAgent string
}

type CandidateProfileService interface {
	GetOwnProfile(userID string) (*dto.CandidateProfileResponse, error)
	UpdateOwnProfile(userID string, req *dto.UpdateCandidateProfileRequest) (*dto.CandidateProfileResponse, error)
	// ViewCandidateProfile - просмотр чужого профиля: гейт видимости,
	// privacy-фильтр, затем запись телеметрии.
	ViewCandidateProfile(viewerUserID, profileID string, meta ViewerMeta) (*dto.CandidateProfileResponse, error)
	SearchCandidates(viewerUserID string, criteria dto.CandidateSearchCriteria) (*dto.CandidateSearchResponse, error)
}

type candidateProfileService struct {
	profileRepo  repositories.CandidateProfileRepository
	userRepo     repositories.UserRepository
	employerRepo repositories.EmployerProfileRepository
	privacyRepo  repositories.PrivacySettingRepository
	recorder     *telemetry.ViewRecorder
}

func NewCandidateProfileService(
	profileRepo repositories.CandidateProfileRepository,
	userRepo repositories.UserRepository,
	employerRepo repositories.EmployerProfileRepository,
	privacyRepo repositories.PrivacySettingRepository,
	recorder *telemetry.ViewRecorder,
) CandidateProfileService {
	return &candidateProfileService{
		profileRepo:  profileRepo,
		userRepo:     userRepo,
		employerRepo: employerRepo,
		privacyRepo:  privacyRepo,
		recorder:     recorder,
	}
}

func (s *candidateProfileService) GetOwnProfile(userID string) (*dto.CandidateProfileResponse, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	return buildCandidateResponse(profile), nil
}

func (s *candidateProfileService) UpdateOwnProfile(userID string, req *dto.UpdateCandidateProfileRequest) (*dto.CandidateProfileResponse, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	if req.Headline != nil {
		profile.Headline = *req.Headline
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.CurrentCompany != nil {
		profile.CurrentCompany = *req.CurrentCompany
	}
	if req.CurrentTitle != nil {
		profile.CurrentTitle = *req.CurrentTitle
	}
	if req.YearsOfExp != nil {
		profile.YearsOfExp = *req.YearsOfExp
	}
	if req.ExpectedSalary != nil {
		profile.ExpectedSalary = req.ExpectedSalary
	}
	if req.Skills != nil {
		raw, err := json.Marshal(req.Skills)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		profile.Skills = datatypes.JSON(raw)
	}
	if req.References != nil {
		raw, err := json.Marshal(req.References)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		profile.References = datatypes.JSON(raw)
	}

	if err := s.profileRepo.Update(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildCandidateResponse(profile), nil
}

func (s *candidateProfileService) ViewCandidateProfile(viewerUserID, profileID string, meta ViewerMeta) (*dto.CandidateProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(profileID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	isOwner := profile.UserID == viewerUserID
	if isOwner {
		return buildCandidateResponse(profile), nil
	}

	settings, err := s.loadSettings(profile.UserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !settings.ProfilePublic {
		// скрытый профиль неотличим от несуществующего
		return nil, apperrors.ErrNotFound(repositories.ErrNotFound)
	}

	resp := buildCandidateResponse(profile)
	privacy.ApplyForDetailView(settings, false, resp)

	s.recorder.RecordProfileView(profile.UserID, profile.ID, s.viewerInfo(viewerUserID, meta))

	return resp, nil
}

func (s *candidateProfileService) SearchCandidates(viewerUserID string, criteria dto.CandidateSearchCriteria) (*dto.CandidateSearchResponse, error) {
	// гейт видимости: скрытые профили не попадают в выборку вообще
	hidden, err := s.privacyRepo.FindHiddenProfileUserIDs()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	// владелец видит собственный профиль даже со скрытой видимостью
	for i, userID := range hidden {
		if userID == viewerUserID {
			hidden = append(hidden[:i], hidden[i+1:]...)
			break
		}
	}

	if criteria.Page < 1 {
		criteria.Page = 1
	}
	if criteria.PageSize < 1 || criteria.PageSize > 100 {
		criteria.PageSize = 20
	}

	profiles, total, err := s.profileRepo.Search(criteria, hidden)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.CandidateSearchResponse{
		Total:    total,
		Page:     criteria.Page,
		PageSize: criteria.PageSize,
	}
	for i := range profiles {
		p := &profiles[i]
		item := buildCandidateResponse(p)

		settings, err := s.loadSettings(p.UserID)
		if err != nil {
			logger.WithError(err).Warn("failed to load privacy settings for search row", "user_id", p.UserID)
			settings = privacy.DefaultSettings()
		}
		privacy.Apply(settings, p.UserID == viewerUserID, item)
		// рекомендации в выдаче поиска не показываем никому
		item.References = nil

		resp.Candidates = append(resp.Candidates, *item)
	}
	return resp, nil
}

func (s *candidateProfileService) loadSettings(candidateUserID string) (privacy.Settings, error) {
	rows, err := s.privacyRepo.FindActiveByUser(candidateUserID)
	if err != nil {
		return privacy.Settings{}, err
	}
	return privacy.ParseSettings(rows), nil
}

// viewerInfo собирает атрибуты смотрящего для телеметрии.
// Ошибки здесь не фатальны: просмотр записывается и с частичными данными.
func (s *candidateProfileService) viewerInfo(viewerUserID string, meta ViewerMeta) telemetry.ViewerInfo {
	info := telemetry.ViewerInfo{
		UserID:    viewerUserID,
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
	}

	viewer, err := s.userRepo.FindByID(viewerUserID)
	if err != nil {
		return info
	}
	info.Email = viewer.Email

	switch viewer.Role {
	case models.UserRoleEmployer:
		info.ViewerType = "employer"
		if company, err := s.employerRepo.FindEmployerProfileByUserID(viewerUserID); err == nil {
			info.CompanyName = company.CompanyName
		}
	case models.UserRoleTeamMember:
		info.ViewerType = "team_member"
	default:
		info.ViewerType = "candidate"
	}
	return info
}

func buildCandidateResponse(profile *models.CandidateProfile) *dto.CandidateProfileResponse {
	resp := &dto.CandidateProfileResponse{
		ID:             profile.ID,
		UserID:         profile.UserID,
		Name:           profile.User.Name,
		Headline:       profile.Headline,
		Bio:            profile.Bio,
		Email:          profile.User.Email,
		Phone:          profile.Phone,
		Location:       profile.Location,
		CurrentCompany: profile.CurrentCompany,
		CurrentTitle:   profile.CurrentTitle,
		YearsOfExp:     profile.YearsOfExp,
		ExpectedSalary: profile.ExpectedSalary,
		ViewsCount:     profile.ViewsCount,
		CreatedAt:      profile.CreatedAt,
	}
	if len(profile.Skills) > 0 {
		_ = json.Unmarshal(profile.Skills, &resp.Skills)
	}
	if len(profile.References) > 0 {
		_ = json.Unmarshal(profile.References, &resp.References)
	}
	return resp
}
