// Package dedup централизует окна дедупликации событий.
// Просмотры профилей и уведомления о них используют одно и то же
// 5-минутное окно, но проверяются независимо друг от друга.
package dedup

import "time"

// DefaultCooldown - окно дедупликации просмотров профиля и уведомлений.
const DefaultCooldown = 5 * time.Minute

// LookupFunc проверяет наличие события новее cutoff.
// Реализация - запрос к БД; позже может быть заменена кэшем
// без изменения вызывающего кода.
type LookupFunc func(cutoff time.Time) (bool, error)

// Window - окно дедупликации, отсчитывается от последнего
// совпадающего события, а не от календарного интервала.
type Window struct {
	duration time.Duration
	now      func() time.Time
}

// NewWindow создает окно. При duration <= 0 берется DefaultCooldown.
func NewWindow(duration time.Duration) Window {
	if duration <= 0 {
		duration = DefaultCooldown
	}
	return Window{duration: duration, now: time.Now}
}

// NewWindowWithClock - вариант с инъекцией часов для тестов.
func NewWindowWithClock(duration time.Duration, now func() time.Time) Window {
	w := NewWindow(duration)
	w.now = now
	return w
}

// Duration возвращает длительность окна.
func (w Window) Duration() time.Duration {
	return w.duration
}

// Cutoff возвращает нижнюю границу окна на текущий момент.
func (w Window) Cutoff() time.Time {
	return w.now().Add(-w.duration)
}

// ShouldRecord - true, если совпадающих событий в окне нет
// и новое событие нужно записать. Ошибка lookup'а пробрасывается:
// решение о проглатывании принимает вызывающая сторона.
func (w Window) ShouldRecord(lookup LookupFunc) (bool, error) {
	seen, err := lookup(w.Cutoff())
	if err != nil {
		return false, err
	}
	return !seen, nil
}
