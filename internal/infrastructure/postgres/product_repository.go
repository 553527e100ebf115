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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, sku, price, stock, category, min_stock, created_at`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, sku, price, stock, category, min_stock, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.SKU, product.Price,
		product.Stock, product.Category, product.MinStock, product.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil, nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.SKU, &p.Price, &p.Stock, &p.Category, &p.MinStock, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List lista todos los productos ordenados por nombre.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	return r.list(`SELECT ` + productColumns + ` FROM products ORDER BY name`)
}

// ListInStock lista productos con existencias (vista POS).
func (r *ProductRepo) ListInStock() ([]*entity.Product, error) {
	return r.list(`SELECT ` + productColumns + ` FROM products WHERE stock > 0 ORDER BY name`)
}

// ListLowStock lista productos en o bajo su umbral, más críticos primero.
func (r *ProductRepo) ListLowStock() ([]*entity.Product, error) {
	return r.list(`SELECT ` + productColumns + ` FROM products WHERE stock <= min_stock ORDER BY stock`)
}

func (r *ProductRepo) list(query string) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.SKU, &p.Price, &p.Stock, &p.Category, &p.MinStock, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// DecrementStock descuenta stock de forma condicional: la fila solo se
// afecta si stock >= qty, cerrando la carrera de dos ventas simultáneas
// sobre el mismo producto.
func (r *ProductRepo) DecrementStock(id string, qty int) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = stock - $2 WHERE id = $1 AND stock >= $2`,
		id, qty,
	)
	if err != nil {
		return false, fmt.Errorf("decrement stock: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// IncrementStock suma qty al stock (reposición de almacén).
func (r *ProductRepo) IncrementStock(id string, qty int) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = stock + $2 WHERE id = $1`,
		id, qty,
	)
	if err != nil {
		return fmt.Errorf("increment stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// Count devuelve el número de productos.
func (r *ProductRepo) Count() (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM products`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}
