package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/retail-pos/internal/domain"
	"github.com/tu-usuario/retail-pos/internal/domain/entity"
	"github.com/tu-usuario/retail-pos/internal/domain/repository"
)

var _ repository.PaymentMethodRepository = (*PaymentMethodRepo)(nil)

// PaymentMethodRepo implementación sobre PostgreSQL (usable con pool o tx).
type PaymentMethodRepo struct {
	q Querier
}

// NewPaymentMethodRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentMethodRepository(q Querier) *PaymentMethodRepo {
	return &PaymentMethodRepo{q: q}
}

// Create persiste un método de pago.
func (r *PaymentMethodRepo) Create(method *entity.PaymentMethod) error {
	query := `
		INSERT INTO payment_methods (id, name, surcharge_percent, active, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		method.ID, method.Name, method.SurchargePercent, method.Active, method.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment method: %w", err)
	}
	return nil
}

// GetByID obtiene un método por ID. Devuelve nil, nil si no existe.
func (r *PaymentMethodRepo) GetByID(id string) (*entity.PaymentMethod, error) {
	query := `
		SELECT id, name, surcharge_percent, active, created_at
		FROM payment_methods WHERE id = $1`
	var m entity.PaymentMethod
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Name, &m.SurchargePercent, &m.Active, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment method: %w", err)
	}
	return &m, nil
}

// List lista todos los métodos por fecha de creación.
func (r *PaymentMethodRepo) List() ([]*entity.PaymentMethod, error) {
	return r.list(`
		SELECT id, name, surcharge_percent, active, created_at
		FROM payment_methods ORDER BY created_at`)
}

// ListActive lista los métodos ofrecidos en el checkout.
func (r *PaymentMethodRepo) ListActive() ([]*entity.PaymentMethod, error) {
	return r.list(`
		SELECT id, name, surcharge_percent, active, created_at
		FROM payment_methods WHERE active ORDER BY created_at`)
}

func (r *PaymentMethodRepo) list(query string) ([]*entity.PaymentMethod, error) {
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	defer rows.Close()
	var list []*entity.PaymentMethod
	for rows.Next() {
		var m entity.PaymentMethod
		if err := rows.Scan(&m.ID, &m.Name, &m.SurchargePercent, &m.Active, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payment method: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// SetActive fija el flag activo del método.
func (r *PaymentMethodRepo) SetActive(id string, active bool) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE payment_methods SET active = $2 WHERE id = $1`,
		id, active,
	)
	if err != nil {
		return fmt.Errorf("set payment method active: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
