package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/clickcy/clickbarber/internal/domain"
	"github.com/clickcy/clickbarber/pkg/dbmetrics"
	"github.com/clickcy/clickbarber/pkg/psqlbuilder"
)

// Repository репозиторий каталога услуг и товаров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateService создает новую услугу
func (r *Repository) CreateService(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("services").
		Columns("id", "name", "description", "price", "duration_minutes").
		Values(service.ID, service.Name, service.Description, service.Price, service.DurationMinutes).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateService - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateService - execute insert: %v", ErrExecQuery, err)
	}

	service.CreatedAt = createdAt.Time
	service.UpdatedAt = updatedAt.Time

	return service, nil
}

// GetServiceByID получает услугу по ID
func (r *Repository) GetServiceByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	services, err := r.GetServicesByIDs(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	if len(services) == 0 {
		return nil, ErrServiceNotFound
	}
	return services[0], nil
}

// GetServicesByIDs получает услуги по списку ID.
// Используется при создании записи и при сборке чека продажи.
func (r *Repository) GetServicesByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := serviceColumns().
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetServicesByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetServicesByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0, len(ids))
	for rows.Next() {
		var service domain.Service
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&service.ID,
			&service.Name,
			&service.Description,
			&service.Price,
			&service.DurationMinutes,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetServicesByIDs - scan service: %v", ErrScanRow, err)
		}

		service.CreatedAt = createdAt.Time
		service.UpdatedAt = updatedAt.Time
		services = append(services, &service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetServicesByIDs - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// ListServices получает все услуги каталога
func (r *Repository) ListServices(ctx context.Context) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := serviceColumns().OrderBy("name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		var service domain.Service
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&service.ID,
			&service.Name,
			&service.Description,
			&service.Price,
			&service.DurationMinutes,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListServices - scan service: %v", ErrScanRow, err)
		}

		service.CreatedAt = createdAt.Time
		service.UpdatedAt = updatedAt.Time
		services = append(services, &service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// CreateProduct создает новый товар
func (r *Repository) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("products").
		Columns("id", "name", "description", "price", "stock_quantity").
		Values(product.ID, product.Name, product.Description, product.Price, product.StockQuantity).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateProduct - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateProduct - execute insert: %v", ErrExecQuery, err)
	}

	product.CreatedAt = createdAt.Time
	product.UpdatedAt = updatedAt.Time

	return product, nil
}

// GetProductByID получает товар по ID
func (r *Repository) GetProductByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := productColumns().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetProductByID - build select query: %v", ErrBuildQuery, err)
	}

	var product domain.Product
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.StockQuantity,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetProductByID - scan product: %v", ErrScanRow, err)
	}

	product.CreatedAt = createdAt.Time
	product.UpdatedAt = updatedAt.Time

	return &product, nil
}

// ListProducts получает все товары каталога
func (r *Repository) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := productColumns().OrderBy("name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListProducts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListProducts - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		var product domain.Product
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Description,
			&product.Price,
			&product.StockQuantity,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListProducts - scan product: %v", ErrScanRow, err)
		}

		product.CreatedAt = createdAt.Time
		product.UpdatedAt = updatedAt.Time
		products = append(products, &product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListProducts - rows error: %v", ErrScanRow, err)
	}

	return products, nil
}

// DecrementStock списывает товар со склада.
// Условие stock_quantity >= quantity в WHERE не даёт уйти в минус при
// конкурентных продажах: ноль затронутых строк означает нехватку либо
// отсутствие товара.
func (r *Repository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("products").
		Set("stock_quantity", squirrel.Expr("stock_quantity - ?", quantity)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.GtOrEq{"stock_quantity": quantity}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DecrementStock - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DecrementStock - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DecrementStock - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrInsufficientStock
	}

	return nil
}

func serviceColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"name",
		"description",
		"price",
		"duration_minutes",
		"created_at",
		"updated_at",
	).From("services")
}

func productColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"name",
		"description",
		"price",
		"stock_quantity",
		"created_at",
		"updated_at",
	).From("products")
}
