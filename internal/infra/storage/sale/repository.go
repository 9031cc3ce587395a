package sale

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/clickcy/clickbarber/internal/domain"
	"github.com/clickcy/clickbarber/pkg/dbmetrics"
	"github.com/clickcy/clickbarber/pkg/psqlbuilder"
)

// Repository репозиторий для работы с продажами и комиссиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория продаж
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает продажу вместе со строками чека.
// Вызывается внутри транзакции из usecase оформления продажи вместе со
// списанием склада и начислением комиссии.
func (r *Repository) Create(ctx context.Context, s *domain.Sale) (*domain.Sale, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("sales").
		Columns(
			"id",
			"client_id",
			"professional_id",
			"appointment_id",
			"payment_method",
			"status",
			"subtotal",
			"discount_amount",
			"tip_amount",
			"total_amount",
		).
		Values(
			s.ID,
			s.ClientID,
			s.ProfessionalID,
			s.AppointmentID,
			s.PaymentMethod,
			s.Status,
			s.Subtotal,
			s.DiscountAmount,
			s.TipAmount,
			s.TotalAmount,
		).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	s.CreatedAt = createdAt.Time

	itemsBuilder := psqlbuilder.Insert("sale_items").
		Columns("id", "sale_id", "item_id", "item_type", "item_name", "price_at_sale", "quantity")
	for i := range s.Items {
		item := &s.Items[i]
		item.SaleID = s.ID
		itemsBuilder = itemsBuilder.Values(
			item.ID,
			item.SaleID,
			item.ItemID,
			item.ItemType,
			item.ItemName,
			item.PriceAtSale,
			item.Quantity,
		)
	}

	itemsQuery, itemsArgs, err := itemsBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build items query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, itemsQuery, itemsArgs...); err != nil {
		return nil, fmt.Errorf("%w: Create - insert items: %v", ErrExecQuery, err)
	}

	return s, nil
}

// CreateCommission начисляет комиссию профессионала с продажи
func (r *Repository) CreateCommission(ctx context.Context, c *domain.Commission) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("commissions").
		Columns("id", "sale_id", "professional_id", "amount").
		Values(c.ID, c.SaleID, c.ProfessionalID, c.Amount).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateCommission - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CreateCommission - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByID получает продажу со строками чека
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Sale, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := saleColumns().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Sale
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.ClientID,
		&s.ProfessionalID,
		&s.AppointmentID,
		&s.PaymentMethod,
		&s.Status,
		&s.Subtotal,
		&s.DiscountAmount,
		&s.TipAmount,
		&s.TotalAmount,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSaleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan sale: %v", ErrScanRow, err)
	}
	s.CreatedAt = createdAt.Time

	items, err := r.itemsForSale(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Items = items

	return &s, nil
}

// List получает продажи за период, новые первыми
func (r *Repository) List(ctx context.Context, filter domain.SalesFilter) ([]*domain.Sale, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := saleColumns().OrderBy("created_at DESC")

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"created_at": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"created_at": *filter.EndDate})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		var s domain.Sale
		var createdAt sql.NullTime

		err := rows.Scan(
			&s.ID,
			&s.ClientID,
			&s.ProfessionalID,
			&s.AppointmentID,
			&s.PaymentMethod,
			&s.Status,
			&s.Subtotal,
			&s.DiscountAmount,
			&s.TipAmount,
			&s.TotalAmount,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan sale: %v", ErrScanRow, err)
		}
		s.CreatedAt = createdAt.Time

		sales = append(sales, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return sales, nil
}

// DayRevenue считает выручку за календарный день по оплаченным продажам
func (r *Repository) DayRevenue(ctx context.Context, date time.Time) (float64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(total_amount), 0)").
		From("sales").
		Where(squirrel.Eq{"status": domain.SaleStatusPaid}).
		Where(squirrel.GtOrEq{"created_at": dayStart}).
		Where(squirrel.Lt{"created_at": dayEnd}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DayRevenue - build select query: %v", ErrBuildQuery, err)
	}

	var revenue float64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&revenue); err != nil {
		return 0, fmt.Errorf("%w: DayRevenue - scan revenue: %v", ErrScanRow, err)
	}

	return revenue, nil
}

func (r *Repository) itemsForSale(ctx context.Context, saleID uuid.UUID) ([]domain.SaleItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"sale_id",
		"item_id",
		"item_type",
		"item_name",
		"price_at_sale",
		"quantity",
	).
		From("sale_items").
		Where(squirrel.Eq{"sale_id": saleID}).
		OrderBy("item_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: itemsForSale - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: itemsForSale - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]domain.SaleItem, 0)
	for rows.Next() {
		var item domain.SaleItem
		err := rows.Scan(
			&item.ID,
			&item.SaleID,
			&item.ItemID,
			&item.ItemType,
			&item.ItemName,
			&item.PriceAtSale,
			&item.Quantity,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: itemsForSale - scan item: %v", ErrScanRow, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: itemsForSale - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}

func saleColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"client_id",
		"professional_id",
		"appointment_id",
		"payment_method",
		"status",
		"subtotal",
		"discount_amount",
		"tip_amount",
		"total_amount",
		"created_at",
	).From("sales")
}
