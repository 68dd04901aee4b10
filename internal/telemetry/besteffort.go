// Package telemetry - побочные эффекты просмотра профилей:
// запись ProfileView, аудит, уведомления. Всё в режиме best-effort.
package telemetry

import (
	"fmt"

	"jobboard_backend/internal/logger"
)

// BestEffort выполняет побочный эффект по политике "fire-and-log":
// любая ошибка (или паника) логируется и проглатывается, вызывающая
// операция продолжается как ни в чем не бывало. Просмотр профиля
// обязан отработать, даже если аудит или уведомление упали.
//
// Возвращает true при успехе - некоторым вызывающим нужно знать,
// состоялся ли эффект (например, чтобы не слать уведомление
// о незаписанном просмотре).
func BestEffort(operation string, fn func() error) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.SideEffectLog(operation, fmt.Errorf("panic: %v", r))
			ok = false
		}
	}()

	if err := fn(); err != nil {
		logger.SideEffectLog(operation, err)
		return false
	}
	return true
}
