package authz

import (
	"errors"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
)

// SubscriptionFinder - доступ к локальной таблице подписок.
type SubscriptionFinder interface {
	FindSubscriptionByUserID(userID string) (*models.Subscription, error)
}

// SubscriptionGate проверяет наличие "живой" подписки.
// Статус синхронизируется биллингом в локальную таблицу заранее;
// гейт не ходит к провайдеру во время проверки прав.
//
// Гейт независим от Evaluator: право на действие и оплаченный доступ -
// разные предусловия, и отказ по подписке должен быть различим
// (SUBSCRIPTION_REQUIRED, а не generic 403).
type SubscriptionGate struct {
	subscriptions SubscriptionFinder
}

func NewSubscriptionGate(subscriptions SubscriptionFinder) *SubscriptionGate {
	return &SubscriptionGate{subscriptions: subscriptions}
}

// HasGatedAccess - true, если у пользователя есть подписка
// в статусе active, trialing или past_due.
//
// Применяется к работодателю при публикации вакансий и просмотре
// полных профилей откликнувшихся. Участники команды не гейтятся
// индивидуально: подписка владельца покрывает компанию.
func (g *SubscriptionGate) HasGatedAccess(userID string) (bool, error) {
	sub, err := g.subscriptions.FindSubscriptionByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return sub.Status.GatesAccess(), nil
}
