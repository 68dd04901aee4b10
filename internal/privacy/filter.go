package privacy

import (
	"strings"

	"jobboard_backend/internal/services/dto"
)

// Сентинелы редакции. Значения фиксированы - клиенты их парсят.
const (
	ContactRestricted = "[Contact Restricted]"
	CompanyHidden     = "[Company Name Hidden]"
	TitleHidden       = "[Job Title Hidden]"
	LocationHidden    = "[Location Hidden]"
)

// Apply применяет контактный гейт и анонимизацию к профилю.
// Шаги независимы и не short-circuit'ятся; для владельца профиль
// не фильтруется вообще. Функция идемпотентна: повторное применение
// к уже отфильтрованному профилю ничего не меняет.
//
// Видимость профиля (поиск/листинг) проверяется выше по стеку,
// до загрузки профиля; здесь она не участвует.
func Apply(s Settings, isOwner bool, p *dto.CandidateProfileResponse) {
	if isOwner || p == nil {
		return
	}

	applyContactGate(s, p)
	applyAnonymization(s, p)
}

// ApplyForDetailView - вариант для детального просмотра из поиска:
// дополнительно прячет рекомендации по reference_visibility.
func ApplyForDetailView(s Settings, isOwner bool, p *dto.CandidateProfileResponse) {
	if isOwner || p == nil {
		return
	}

	Apply(s, isOwner, p)
	if !s.ReferencesPublic {
		p.References = []dto.Reference{}
	}
}

func applyContactGate(s Settings, p *dto.CandidateProfileResponse) {
	if s.ContactShared {
		return
	}
	p.Email = ContactRestricted
	p.Phone = ContactRestricted
}

func applyAnonymization(s Settings, p *dto.CandidateProfileResponse) {
	switch s.Level {
	case LevelBasic:
		p.CurrentCompany = CompanyHidden
	case LevelAdvanced:
		p.CurrentCompany = CompanyHidden
		p.Location = truncateLocation(p.Location)
	case LevelMaximum:
		p.CurrentCompany = CompanyHidden
		p.CurrentTitle = TitleHidden
		p.Location = LocationHidden // перекрывает advanced-усечение
	}
}

// truncateLocation: "San Francisco, CA" -> "San Francisco Area".
// Уже усеченные и скрытые значения не трогаем, иначе повторное
// применение дописывало бы суффикс еще раз.
func truncateLocation(location string) string {
	if location == "" || location == LocationHidden {
		return location
	}
	if i := strings.Index(location, ","); i >= 0 {
		return strings.TrimSpace(location[:i]) + " Area"
	}
	if strings.HasSuffix(location, " Area") {
		return location
	}
	return location + " Area"
}
