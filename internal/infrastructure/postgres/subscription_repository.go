package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cmedia-api/internal/domain"
	"github.com/jhoicas/cmedia-api/internal/domain/entity"
	"github.com/jhoicas/cmedia-api/internal/domain/repository"
)

var _ repository.SubscriptionRepository = (*SubscriptionRepo)(nil)

// SubscriptionRepo implementación de SubscriptionRepository (usable con pool o tx).
type SubscriptionRepo struct {
	q Querier
}

// NewSubscriptionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSubscriptionRepository(q Querier) *SubscriptionRepo {
	return &SubscriptionRepo{q: q}
}

const subscriptionDetailColumns = `
	s.subscription_id, s.customer_id, s.plan_id, s.package_id, s.status,
	s.start_date, s.end_date, s.billing_cycle, s.site_location_id,
	s.created_at, s.updated_at,
	sp.name, sp.monthly_fee, sp.attributes, st.code, st.name`

// Create persiste una suscripción y devuelve el subscription_id generado.
// El caso de uso garantiza que PlanID llega resuelto: nunca se inserta sin plan.
func (r *SubscriptionRepo) Create(sub *entity.Subscription) (int64, error) {
	query := `
		INSERT INTO subscriptions (customer_id, plan_id, package_id, status, start_date,
			end_date, billing_cycle, site_location_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING subscription_id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		sub.CustomerID, sub.PlanID, sub.PackageID, sub.Status, sub.StartDate,
		sub.EndDate, sub.BillingCycle, sub.SiteLocationID, sub.CreatedAt, sub.UpdatedAt,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert subscription: %w", err)
	}
	return id, nil
}

// GetByID obtiene la suscripción con plan y tipo de servicio unidos. Devuelve nil, nil si no existe.
func (r *SubscriptionRepo) GetByID(id int64) (*entity.SubscriptionDetail, error) {
	query := `
		SELECT ` + subscriptionDetailColumns + `
		FROM subscriptions s
		LEFT JOIN service_plans sp ON sp.plan_id = s.plan_id
		LEFT JOIN service_types st ON st.service_type_id = sp.service_type_id
		WHERE s.subscription_id = $1`
	var d entity.SubscriptionDetail
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.CustomerID, &d.PlanID, &d.PackageID, &d.Status,
		&d.StartDate, &d.EndDate, &d.BillingCycle, &d.SiteLocationID,
		&d.CreatedAt, &d.UpdatedAt,
		&d.PlanName, &d.PlanFee, &d.PlanAttributes, &d.ServiceTypeCode, &d.ServiceTypeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subscription: %w", err)
	}
	return &d, nil
}

// ListByCustomer lista las suscripciones de un cliente, más recientes primero.
func (r *SubscriptionRepo) ListByCustomer(customerID int64) ([]*entity.SubscriptionDetail, error) {
	query := `
		SELECT ` + subscriptionDetailColumns + `
		FROM subscriptions s
		LEFT JOIN service_plans sp ON sp.plan_id = s.plan_id
		LEFT JOIN service_types st ON st.service_type_id = sp.service_type_id
		WHERE s.customer_id = $1
		ORDER BY s.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	defer rows.Close()

	var list []*entity.SubscriptionDetail
	for rows.Next() {
		var d entity.SubscriptionDetail
		if err := rows.Scan(
			&d.ID, &d.CustomerID, &d.PlanID, &d.PackageID, &d.Status,
			&d.StartDate, &d.EndDate, &d.BillingCycle, &d.SiteLocationID,
			&d.CreatedAt, &d.UpdatedAt,
			&d.PlanName, &d.PlanFee, &d.PlanAttributes, &d.ServiceTypeCode, &d.ServiceTypeName,
		); err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de una suscripción. Devuelve ErrNotFound si no existe.
func (r *SubscriptionRepo) UpdateStatus(id int64, status entity.SubscriptionStatus) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE subscriptions SET status = $2, updated_at = now() WHERE subscription_id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update subscription status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
