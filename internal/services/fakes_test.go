package services

import (
	"strings"
	"time"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/pkg/email"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"

	"github.com/google/uuid"
)

// In-memory фейки репозиториев для юнит-тестов сервисов.
// Семантика повторяет реализации на gorm: ErrNotFound вместо nil,
// Create проставляет ID.

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[string]*models.User{}}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (f *fakeUserRepo) Create(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(id string) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, user := range f.users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserRepo) Update(user *models.User) error {
	f.users[user.ID] = user
	return nil
}

type fakeEmployerRepo struct {
	profiles map[string]*models.EmployerProfile
}

func newFakeEmployerRepo(profiles ...*models.EmployerProfile) *fakeEmployerRepo {
	repo := &fakeEmployerRepo{profiles: map[string]*models.EmployerProfile{}}
	for _, p := range profiles {
		repo.profiles[p.ID] = p
	}
	return repo
}

func (f *fakeEmployerRepo) Create(profile *models.EmployerProfile) error {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	f.profiles[profile.ID] = profile
	return nil
}

func (f *fakeEmployerRepo) FindByID(id string) (*models.EmployerProfile, error) {
	profile, ok := f.profiles[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return profile, nil
}

func (f *fakeEmployerRepo) FindEmployerProfileByUserID(userID string) (*models.EmployerProfile, error) {
	for _, profile := range f.profiles {
		if profile.UserID == userID {
			return profile, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeEmployerRepo) Update(profile *models.EmployerProfile) error {
	f.profiles[profile.ID] = profile
	return nil
}

type fakeTeamRepo struct {
	members map[string]*models.TeamMember
}

func newFakeTeamRepo(members ...*models.TeamMember) *fakeTeamRepo {
	repo := &fakeTeamRepo{members: map[string]*models.TeamMember{}}
	for _, m := range members {
		repo.members[m.ID] = m
	}
	return repo
}

func (f *fakeTeamRepo) Create(member *models.TeamMember) error {
	if member.ID == "" {
		member.ID = uuid.NewString()
	}
	f.members[member.ID] = member
	return nil
}

func (f *fakeTeamRepo) FindByID(id string) (*models.TeamMember, error) {
	member, ok := f.members[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return member, nil
}

func (f *fakeTeamRepo) FindActiveTeamMember(userID, employerProfileID string) (*models.TeamMember, error) {
	for _, m := range f.members {
		if m.UserID != nil && *m.UserID == userID && m.EmployerProfileID == employerProfileID && m.IsActive {
			return m, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeTeamRepo) FindByInvitationToken(token string) (*models.TeamMember, error) {
	if token == "" {
		return nil, repositories.ErrInvitationNotFound
	}
	for _, m := range f.members {
		if m.InvitationToken == token {
			return m, nil
		}
	}
	return nil, repositories.ErrInvitationNotFound
}

func (f *fakeTeamRepo) FindByEmailAndCompany(email, employerProfileID string) (*models.TeamMember, error) {
	for _, m := range f.members {
		if strings.EqualFold(m.Email, email) && m.EmployerProfileID == employerProfileID {
			return m, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeTeamRepo) ListByCompany(employerProfileID string) ([]models.TeamMember, int64, error) {
	var members []models.TeamMember
	for _, m := range f.members {
		if m.EmployerProfileID == employerProfileID {
			members = append(members, *m)
		}
	}
	return members, int64(len(members)), nil
}

func (f *fakeTeamRepo) Update(member *models.TeamMember) error {
	f.members[member.ID] = member
	return nil
}

func (f *fakeTeamRepo) Delete(id string) error {
	if _, ok := f.members[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.members, id)
	return nil
}

func (f *fakeTeamRepo) MarkExpiredInvitations(employerProfileID string, now time.Time) error {
	for _, m := range f.members {
		if m.EmployerProfileID == employerProfileID &&
			m.InvitationStatus == models.InvitationStatusPending &&
			m.InvitationExpires != nil && m.InvitationExpires.Before(now) {
			m.InvitationStatus = models.InvitationStatusExpired
		}
	}
	return nil
}

type fakeAuditLogRepo struct {
	entries []*models.AuditLog
}

func (f *fakeAuditLogRepo) Create(entry *models.AuditLog) error {
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeAuditLogRepo) FindByTargetUser(targetUserID string, criteria dto.AuditTrailCriteria) ([]models.AuditLog, int64, error) {
	var entries []models.AuditLog
	for _, e := range f.entries {
		if e.TargetUserID == targetUserID {
			entries = append(entries, *e)
		}
	}
	return entries, int64(len(entries)), nil
}

type fakeJobRepo struct {
	jobs map[string]*models.Job
}

func newFakeJobRepo(jobs ...*models.Job) *fakeJobRepo {
	repo := &fakeJobRepo{jobs: map[string]*models.Job{}}
	for _, j := range jobs {
		repo.jobs[j.ID] = j
	}
	return repo
}

func (f *fakeJobRepo) Create(job *models.Job) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	f.jobs[job.ID] = job
	return nil
}

func (f *fakeJobRepo) FindByID(id string) (*models.Job, error) {
	job, ok := f.jobs[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return job, nil
}

func (f *fakeJobRepo) Update(job *models.Job) error {
	f.jobs[job.ID] = job
	return nil
}

func (f *fakeJobRepo) Delete(id string) error {
	if _, ok := f.jobs[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.jobs, id)
	return nil
}

func (f *fakeJobRepo) ListByCompany(employerProfileID string, page, pageSize int) ([]models.Job, int64, error) {
	var jobs []models.Job
	for _, j := range f.jobs {
		if j.EmployerProfileID == employerProfileID {
			jobs = append(jobs, *j)
		}
	}
	return jobs, int64(len(jobs)), nil
}

func (f *fakeJobRepo) ListPublished(page, pageSize int) ([]models.Job, int64, error) {
	var jobs []models.Job
	for _, j := range f.jobs {
		if j.Status == models.JobStatusActive {
			jobs = append(jobs, *j)
		}
	}
	return jobs, int64(len(jobs)), nil
}

type fakePrivacyRepo struct {
	rows   []*models.PrivacySetting
	hidden []string
}

func (f *fakePrivacyRepo) FindActiveByUser(userID string) ([]models.PrivacySetting, error) {
	var rows []models.PrivacySetting
	for _, r := range f.rows {
		if r.UserID == userID && r.IsActive {
			rows = append(rows, *r)
		}
	}
	return rows, nil
}

func (f *fakePrivacyRepo) FindActiveByUserAndType(userID string, settingType models.PrivacySettingType) (*models.PrivacySetting, error) {
	for _, r := range f.rows {
		if r.UserID == userID && r.SettingType == settingType && r.IsActive {
			return r, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakePrivacyRepo) UpsertActive(setting *models.PrivacySetting) error {
	for _, r := range f.rows {
		if r.UserID == setting.UserID && r.SettingType == setting.SettingType {
			r.IsActive = false
		}
	}
	if setting.ID == "" {
		setting.ID = uuid.NewString()
	}
	setting.IsActive = true
	f.rows = append(f.rows, setting)
	return nil
}

func (f *fakePrivacyRepo) FindHiddenProfileUserIDs() ([]string, error) {
	return f.hidden, nil
}

type fakeCandidateRepo struct {
	profiles    map[string]*models.CandidateProfile
	incremented []string
}

func newFakeCandidateRepo(profiles ...*models.CandidateProfile) *fakeCandidateRepo {
	repo := &fakeCandidateRepo{profiles: map[string]*models.CandidateProfile{}}
	for _, p := range profiles {
		repo.profiles[p.ID] = p
	}
	return repo
}

func (f *fakeCandidateRepo) Create(profile *models.CandidateProfile) error {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	f.profiles[profile.ID] = profile
	return nil
}

func (f *fakeCandidateRepo) FindByID(id string) (*models.CandidateProfile, error) {
	profile, ok := f.profiles[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return profile, nil
}

func (f *fakeCandidateRepo) FindByUserID(userID string) (*models.CandidateProfile, error) {
	for _, p := range f.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeCandidateRepo) Update(profile *models.CandidateProfile) error {
	f.profiles[profile.ID] = profile
	return nil
}

func (f *fakeCandidateRepo) IncrementViews(id string) error {
	f.incremented = append(f.incremented, id)
	if p, ok := f.profiles[id]; ok {
		p.ViewsCount++
	}
	return nil
}

func (f *fakeCandidateRepo) Search(criteria dto.CandidateSearchCriteria, excludeUserIDs []string) ([]models.CandidateProfile, int64, error) {
	excluded := map[string]bool{}
	for _, id := range excludeUserIDs {
		excluded[id] = true
	}
	var profiles []models.CandidateProfile
	for _, p := range f.profiles {
		if !excluded[p.UserID] {
			profiles = append(profiles, *p)
		}
	}
	return profiles, int64(len(profiles)), nil
}

type fakeApplicationRepo struct {
	applications map[string]*models.Application
}

func newFakeApplicationRepo(applications ...*models.Application) *fakeApplicationRepo {
	repo := &fakeApplicationRepo{applications: map[string]*models.Application{}}
	for _, a := range applications {
		repo.applications[a.ID] = a
	}
	return repo
}

func (f *fakeApplicationRepo) Create(application *models.Application) error {
	if application.ID == "" {
		application.ID = uuid.NewString()
	}
	f.applications[application.ID] = application
	return nil
}

func (f *fakeApplicationRepo) FindByID(id string) (*models.Application, error) {
	application, ok := f.applications[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return application, nil
}

func (f *fakeApplicationRepo) FindByJobAndCandidate(jobID, candidateID string) (*models.Application, error) {
	for _, a := range f.applications {
		if a.JobID == jobID && a.CandidateID == candidateID {
			return a, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeApplicationRepo) ListByJob(jobID string, page, pageSize int) ([]models.Application, int64, error) {
	var applications []models.Application
	for _, a := range f.applications {
		if a.JobID == jobID {
			applications = append(applications, *a)
		}
	}
	return applications, int64(len(applications)), nil
}

func (f *fakeApplicationRepo) ListByCandidate(candidateID string) ([]models.Application, error) {
	var applications []models.Application
	for _, a := range f.applications {
		if a.CandidateID == candidateID {
			applications = append(applications, *a)
		}
	}
	return applications, nil
}

func (f *fakeApplicationRepo) Update(application *models.Application) error {
	f.applications[application.ID] = application
	return nil
}

type fakeSubscriptionFinder struct {
	subs map[string]*models.Subscription
}

func (f *fakeSubscriptionFinder) FindSubscriptionByUserID(userID string) (*models.Subscription, error) {
	sub, ok := f.subs[userID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return sub, nil
}

type sentInvitation struct {
	To        string
	Company   string
	AcceptURL string
}

type fakeEmailProvider struct {
	invitations []sentInvitation
}

func (f *fakeEmailProvider) Send(e *email.Email) (*email.SendResult, error) {
	return &email.SendResult{Success: true}, nil
}

func (f *fakeEmailProvider) SendTeamInvitation(to, inviterCompany, acceptURL string) error {
	f.invitations = append(f.invitations, sentInvitation{To: to, Company: inviterCompany, AcceptURL: acceptURL})
	return nil
}

func (f *fakeEmailProvider) SendVerification(to, verifyURL string) error {
	return nil
}

type fakeViewRepo struct {
	created []*models.ProfileView
}

func (f *fakeViewRepo) Create(view *models.ProfileView) error {
	f.created = append(f.created, view)
	return nil
}

func (f *fakeViewRepo) HasViewSince(candidateID, viewerID string, cutoff time.Time) (bool, error) {
	for _, v := range f.created {
		if v.CandidateID == candidateID && v.ViewerID == viewerID && !v.ViewedAt.Before(cutoff) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeViewRepo) CountForCandidate(candidateID string) (int64, error) {
	return int64(len(f.created)), nil
}

func (f *fakeViewRepo) ListForCandidate(candidateID string, limit int) ([]models.ProfileView, error) {
	return nil, nil
}

type fakeNotificationRepo struct {
	created []*models.Notification
}

func (f *fakeNotificationRepo) Create(n *models.Notification) error {
	f.created = append(f.created, n)
	return nil
}

func (f *fakeNotificationRepo) FindByID(id string) (*models.Notification, error) {
	return nil, repositories.ErrNotificationNotFound
}

func (f *fakeNotificationRepo) FindUserNotifications(userID string, criteria dto.NotificationCriteria) ([]models.Notification, int64, error) {
	return nil, 0, nil
}

func (f *fakeNotificationRepo) HasRecentProfileViewNotification(userID, viewerType string, cutoff time.Time) (bool, error) {
	for _, n := range f.created {
		if n.UserID == userID && n.Type == repositories.NotificationTypeProfileView {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeNotificationRepo) MarkAsRead(userID, notificationID string) error { return nil }
func (f *fakeNotificationRepo) MarkAllAsRead(userID string) error              { return nil }
func (f *fakeNotificationRepo) GetUnreadCount(userID string) (int64, error)    { return 0, nil }
