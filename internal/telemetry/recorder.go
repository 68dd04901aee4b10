package telemetry

import (
	"encoding/json"
	"fmt"
	"time"

	"jobboard_backend/internal/dedup"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"

	"gorm.io/datatypes"
)

// ViewerInfo - кто смотрит профиль. Заполняется хэндлером из
// аутентифицированного пользователя и запроса.
type ViewerInfo struct {
	UserID      string
	ViewerType  string // "employer", "team_member", "candidate"
	Email       string
	CompanyName string
	IPAddress   string
	UserAgent   string
}

// ViewRecorder записывает просмотры профиля кандидата не-владельцем:
// строку ProfileView, запись аудита и уведомление кандидату.
//
// Просмотры и уведомления дедуплицируются независимо в одном и том же
// 5-минутном окне. Гонка двух конкурентных запросов в окне возможна
// и принята: дедупликация best-effort, без блокировок и уникальных
// ограничений.
type ViewRecorder struct {
	views         repositories.ProfileViewRepository
	notifications repositories.NotificationRepository
	audit         repositories.AuditLogRepository
	profiles      repositories.CandidateProfileRepository
	window        dedup.Window
}

func NewViewRecorder(
	views repositories.ProfileViewRepository,
	notifications repositories.NotificationRepository,
	audit repositories.AuditLogRepository,
	profiles repositories.CandidateProfileRepository,
	window dedup.Window,
) *ViewRecorder {
	return &ViewRecorder{
		views:         views,
		notifications: notifications,
		audit:         audit,
		profiles:      profiles,
		window:        window,
	}
}

// RecordProfileView фиксирует просмотр. Ошибок наружу нет:
// каждая стадия - BestEffort.
//
// candidateUserID - user_id кандидата, profileID - id его профиля.
func (r *ViewRecorder) RecordProfileView(candidateUserID, profileID string, viewer ViewerInfo) {
	if viewer.UserID == candidateUserID {
		// владелец не генерирует телеметрию по своему профилю
		return
	}

	fresh := false
	BestEffort("profile_view.dedup", func() error {
		shouldRecord, err := r.window.ShouldRecord(func(cutoff time.Time) (bool, error) {
			return r.views.HasViewSince(candidateUserID, viewer.UserID, cutoff)
		})
		if err != nil {
			return err
		}
		fresh = shouldRecord
		return nil
	})
	if !fresh {
		// повторный просмотр внутри окна: не считаем и не спамим
		return
	}

	BestEffort("profile_view.insert", func() error {
		if err := r.views.Create(&models.ProfileView{
			CandidateID:   candidateUserID,
			ViewerID:      viewer.UserID,
			ViewerType:    viewer.ViewerType,
			ViewerEmail:   viewer.Email,
			ViewerCompany: viewer.CompanyName,
			IPAddress:     viewer.IPAddress,
			UserAgent:     viewer.UserAgent,
			ViewedAt:      time.Now(),
		}); err != nil {
			return err
		}
		return r.profiles.IncrementViews(profileID)
	})

	BestEffort("profile_view.audit", func() error {
		metadata, err := json.Marshal(map[string]string{
			"viewerType":    viewer.ViewerType,
			"viewerEmail":   viewer.Email,
			"viewerCompany": viewer.CompanyName,
		})
		if err != nil {
			return err
		}
		return r.audit.Create(&models.AuditLog{
			ActorID:      viewer.UserID,
			TargetUserID: candidateUserID,
			ActionType:   models.AuditActionProfileView,
			Category:     models.AuditCategoryProfile,
			Metadata:     datatypes.JSON(metadata),
		})
	})

	// Уведомление: свой ключ дедупликации (user, type, viewerType),
	// проверяется независимо от ProfileView.
	BestEffort("profile_view.notify", func() error {
		shouldNotify, err := r.window.ShouldRecord(func(cutoff time.Time) (bool, error) {
			return r.notifications.HasRecentProfileViewNotification(candidateUserID, viewer.ViewerType, cutoff)
		})
		if err != nil {
			return err
		}
		if !shouldNotify {
			return nil
		}

		data, err := json.Marshal(map[string]string{
			"viewerType":    viewer.ViewerType,
			"viewerCompany": viewer.CompanyName,
		})
		if err != nil {
			return err
		}
		return r.notifications.Create(&models.Notification{
			UserID:  candidateUserID,
			Type:    repositories.NotificationTypeProfileView,
			Title:   "Your profile was viewed",
			Message: viewMessage(viewer),
			Data:    datatypes.JSON(data),
		})
	})
}

func viewMessage(viewer ViewerInfo) string {
	if viewer.CompanyName != "" {
		return fmt.Sprintf("Someone from %s viewed your profile", viewer.CompanyName)
	}
	return "An employer viewed your profile"
}
