package professional

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/clickcy/clickbarber/internal/domain"
	"github.com/clickcy/clickbarber/pkg/dbmetrics"
	"github.com/clickcy/clickbarber/pkg/psqlbuilder"
)

// Repository репозиторий для работы с профессионалами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория профессионалов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового профессионала
func (r *Repository) Create(ctx context.Context, prof *domain.Professional) (*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("professionals").
		Columns("id", "name", "email", "phone", "specialties", "commission_percent", "is_active").
		Values(
			prof.ID,
			prof.Name,
			prof.Email,
			prof.Phone,
			pq.Array(prof.Specialties),
			prof.CommissionPercent,
			prof.IsActive,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	prof.CreatedAt = createdAt.Time
	prof.UpdatedAt = updatedAt.Time

	return prof, nil
}

// GetByID получает профессионала по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectColumns().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	prof, err := scanProfessional(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrProfessionalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan professional: %v", ErrScanRow, err)
	}

	return prof, nil
}

// List получает профессионалов; onlyActive скрывает уволенных.
// Порядок стабильный - колонки сетки агенды не должны скакать между запросами.
func (r *Repository) List(ctx context.Context, onlyActive bool) ([]*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectColumns().OrderBy("name ASC", "id ASC")
	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
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

	professionals := make([]*domain.Professional, 0)
	for rows.Next() {
		prof, err := scanProfessional(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan professional: %v", ErrScanRow, err)
		}
		professionals = append(professionals, prof)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return professionals, nil
}

// Deactivate помечает профессионала неактивным, его колонка уходит из сетки
func (r *Repository) Deactivate(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("professionals").
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Deactivate - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Deactivate - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Deactivate - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrProfessionalNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func selectColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"name",
		"email",
		"phone",
		"specialties",
		"commission_percent",
		"is_active",
		"created_at",
		"updated_at",
	).From("professionals")
}

func scanProfessional(row rowScanner) (*domain.Professional, error) {
	var prof domain.Professional
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&prof.ID,
		&prof.Name,
		&prof.Email,
		&prof.Phone,
		pq.Array(&prof.Specialties),
		&prof.CommissionPercent,
		&prof.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	prof.CreatedAt = createdAt.Time
	prof.UpdatedAt = updatedAt.Time

	return &prof, nil
}
