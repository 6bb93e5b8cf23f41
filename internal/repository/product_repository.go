package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/chadm2c/xml-importer/internal/domain"
	"github.com/chadm2c/xml-importer/internal/logger"
)

const (
	// DefaultInsertChunkSize keeps each INSERT well below the PostgreSQL
	// limit of 65535 bind parameters.
	DefaultInsertChunkSize = 1000

	productColumnCount = 8
	uniqueViolation    = "23505"
	skuConstraint      = "products_sku_key"

	productColumns = `id, name, description, brand, storage_date, price::text, category, sku,
		quantity_in_stock, created_at, updated_at`
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// PostgresProductRepository implements ProductRepository using PostgreSQL.
type PostgresProductRepository struct {
	pool      *pgxpool.Pool
	chunkSize int
}

// NewPostgresProductRepository creates a new PostgresProductRepository.
// chunkSize bounds the rows per INSERT statement; values below 1 use the default.
func NewPostgresProductRepository(pool *pgxpool.Pool, chunkSize int) *PostgresProductRepository {
	if chunkSize < 1 || chunkSize > DefaultInsertChunkSize*8 {
		chunkSize = DefaultInsertChunkSize
	}
	return &PostgresProductRepository{pool: pool, chunkSize: chunkSize}
}

// InsertAll inserts products in chunks inside a single transaction.
func (r *PostgresProductRepository) InsertAll(ctx context.Context, products []domain.Product) ([]domain.Product, error) {
	if len(products) == 0 {
		return []domain.Product{}, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context cancelled: %w", err)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	inserted := make([]domain.Product, 0, len(products))
	for start := 0; start < len(products); start += r.chunkSize {
		end := min(start+r.chunkSize, len(products))
		chunk, err := r.insertChunk(ctx, tx, products[start:end])
		if err != nil {
			return nil, err
		}
		inserted = append(inserted, chunk...)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	logger.Default().Debug("Inserted products",
		slog.String("repository", "product"),
		slog.Int("count", len(inserted)))

	return inserted, nil
}

func (r *PostgresProductRepository) insertChunk(ctx context.Context, tx pgx.Tx, products []domain.Product) ([]domain.Product, error) {
	query, args := buildInsertQuery(products)

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	out := make([]domain.Product, 0, len(products))
	i := 0
	for rows.Next() {
		if i >= len(products) {
			return nil, fmt.Errorf("insert returned more rows than sent")
		}
		p := products[i]
		if err := rows.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inserted product: %w", err)
		}
		out = append(out, p)
		i++
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err)
	}
	if len(out) != len(products) {
		return nil, fmt.Errorf("insert returned %d rows, want %d", len(out), len(products))
	}

	return out, nil
}

func buildInsertQuery(products []domain.Product) (string, []interface{}) {
	values := make([]string, 0, len(products))
	args := make([]interface{}, 0, len(products)*productColumnCount)
	argNum := 1

	for _, p := range products {
		values = append(values, fmt.Sprintf("($%d, $%d, $%d, $%d::date, $%d::numeric, $%d, $%d, $%d)",
			argNum, argNum+1, argNum+2, argNum+3, argNum+4, argNum+5, argNum+6, argNum+7))
		args = append(args,
			p.Name,
			p.Description,
			p.Brand,
			p.StorageDate.Format(domain.DateLayout),
			p.Price.String(),
			p.Category,
			skuParam(p.SKU),
			p.QuantityInStock,
		)
		argNum += productColumnCount
	}

	query := fmt.Sprintf(`
INSERT INTO products (name, description, brand, storage_date, price, category, sku, quantity_in_stock)
VALUES %s
RETURNING id, created_at, updated_at
`, strings.Join(values, ", "))

	return query, args
}

// skuParam stores a blank SKU as NULL so it never takes part in the unique constraint.
func skuParam(sku *string) *string {
	if sku == nil || *sku == "" {
		return nil
	}
	return sku
}

// translateError maps storage errors onto domain errors.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == skuConstraint {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateSKU, pgErr.Detail)
	}
	return fmt.Errorf("insert products: %w", err)
}

// ExistsBySKU reports whether a product with the given SKU is stored.
func (r *PostgresProductRepository) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE sku = $1)`, sku).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check sku: %w", err)
	}
	return exists, nil
}

// FindByID returns the product with id, or nil when it does not exist.
func (r *PostgresProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)

	p, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// FindPage returns products newest first.
func (r *PostgresProductRepository) FindPage(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Product], error) {
	return r.page(ctx, "", nil, req)
}

// SearchPage returns products whose name, brand or description contain query.
func (r *PostgresProductRepository) SearchPage(ctx context.Context, query string, req domain.PageRequest) (domain.Page[domain.Product], error) {
	where := `WHERE name ILIKE $1 ESCAPE '\' OR brand ILIKE $1 ESCAPE '\' OR description ILIKE $1 ESCAPE '\'`
	pattern := "%" + likeEscaper.Replace(strings.TrimSpace(query)) + "%"
	return r.page(ctx, where, []interface{}{pattern}, req)
}

func (r *PostgresProductRepository) page(ctx context.Context, where string, args []interface{}, req domain.PageRequest) (domain.Page[domain.Product], error) {
	req = req.Normalize()

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products `+where, args...).Scan(&total); err != nil {
		return domain.Page[domain.Product]{}, fmt.Errorf("count products: %w", err)
	}

	n := len(args)
	query := fmt.Sprintf(`SELECT %s FROM products %s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		productColumns, where, n+1, n+2)
	rows, err := r.pool.Query(ctx, query, append(args, req.Size, req.Offset())...)
	if err != nil {
		return domain.Page[domain.Product]{}, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Product, 0, req.Size)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return domain.Page[domain.Product]{}, fmt.Errorf("scan product: %w", err)
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return domain.Page[domain.Product]{}, fmt.Errorf("read products: %w", err)
	}

	return domain.NewPage(items, req, total), nil
}

// StreamAll streams all products oldest first with O(1) memory.
func (r *PostgresProductRepository) StreamAll(ctx context.Context, callback func(domain.Product) error) error {
	rows, err := r.pool.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY created_at, id`)
	if err != nil {
		return fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return fmt.Errorf("scan product: %w", err)
		}

		if err := callback(p); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("callback error: %w", err)
		}
	}

	return rows.Err()
}

func scanProduct(row pgx.Row) (domain.Product, error) {
	var (
		p     domain.Product
		price string
	)
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Brand, &p.StorageDate, &price,
		&p.Category, &p.SKU, &p.QuantityInStock, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Product{}, err
	}

	p.Price, err = decimal.NewFromString(price)
	if err != nil {
		return domain.Product{}, fmt.Errorf("parse price %q: %w", price, err)
	}
	return p, nil
}
