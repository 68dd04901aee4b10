package apperrors

import (
	"net/http"
)

/*
Фабрики и предопределенные переменные для доменных ошибок
авторизации, подписок и приватности.
*/

// =========================================================================
// Фабричные функции
// =========================================================================

// ErrNotFound - фабрика для ошибки "не найдено" (404).
// Также используется для приватных профилей при просмотре не-владельцем:
// существование ресурса не подтверждается.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// =========================================================================
// Предопределенные переменные
// =========================================================================

// ErrInsufficientPermissions - у принципала нет нужной capability.
// Сообщение намеренно не раскрывает, существует ли ресурс.
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"authz",
	"Insufficient permissions",
	http.StatusForbidden,
)

// ErrPrimaryOwnerOnly - операция доступна только primary owner'у компании.
var ErrPrimaryOwnerOnly = New(
	CodeForbidden,
	"authz",
	"Only the primary owner can perform this action",
	http.StatusForbidden,
)

// ErrSubscriptionRequired - нет активной подписки. Отдельный код,
// чтобы клиент мог показать upgrade-путь вместо generic 403.
var ErrSubscriptionRequired = New(
	CodeSubscriptionRequired,
	"billing",
	"An active subscription is required for this action",
	http.StatusPaymentRequired,
)

// ErrInvitationExpired - срок действия приглашения истек.
var ErrInvitationExpired = New(
	CodeTokenExpired,
	"team",
	"Invitation token has expired",
	http.StatusGone,
)

// ErrInvitationInvalid - токен не найден или уже использован.
var ErrInvitationInvalid = New(
	CodeInvalidToken,
	"team",
	"Invitation token is invalid",
	http.StatusBadRequest,
)

// ErrInvalidUserRole - операция не предусмотрена для роли пользователя.
var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

// ErrInvalidPrivacySetting - неподдерживаемый тип или значение настройки.
var ErrInvalidPrivacySetting = New(
	CodeValidationFailed,
	"privacy",
	"Invalid privacy setting payload",
	http.StatusBadRequest,
)
