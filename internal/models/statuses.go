package models

type UserStatus string
type UserRole string
type TeamRole string
type InvitationStatus string
type JobStatus string
type ApplicationStatus string
type SubscriptionStatus string

const (
	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusBanned    UserStatus = "banned"

	UserRoleSuperAdmin UserRole = "super_admin"
	UserRoleEmployer   UserRole = "employer"
	UserRoleCandidate  UserRole = "candidate"
	UserRoleTeamMember UserRole = "team_member"

	TeamRolePrimaryOwner TeamRole = "primary_owner"
	TeamRoleHRManager    TeamRole = "hr_manager"
	TeamRoleRecruiter    TeamRole = "recruiter"
	TeamRoleInterviewer  TeamRole = "interviewer"
	TeamRoleAdmin        TeamRole = "admin"

	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusExpired  InvitationStatus = "expired"

	JobStatusDraft  JobStatus = "draft"
	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"

	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusReviewed    ApplicationStatus = "reviewed"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusHired       ApplicationStatus = "hired"

	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusTrialing  SubscriptionStatus = "trialing"
	SubscriptionStatusPastDue   SubscriptionStatus = "past_due"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
)

// GatesAccess reports whether a subscription status still unlocks
// paid features. past_due keeps access during the payment grace period.
func (s SubscriptionStatus) GatesAccess() bool {
	switch s {
	case SubscriptionStatusActive, SubscriptionStatusTrialing, SubscriptionStatusPastDue:
		return true
	default:
		return false
	}
}
