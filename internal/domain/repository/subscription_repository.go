package repository

import "github.com/jhoicas/cmedia-api/internal/domain/entity"

// SubscriptionRepository define el puerto de persistencia para Subscription.
// Las lecturas devuelven el detalle con plan y tipo de servicio unidos para que
// el caso de uso derive los campos legacy desde los attributes del plan.
type SubscriptionRepository interface {
	Create(sub *entity.Subscription) (int64, error)
	GetByID(id int64) (*entity.SubscriptionDetail, error)
	ListByCustomer(customerID int64) ([]*entity.SubscriptionDetail, error)
	UpdateStatus(id int64, status entity.SubscriptionStatus) error
}
