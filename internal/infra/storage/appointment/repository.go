package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/clickcy/clickbarber/internal/domain"
	"github.com/clickcy/clickbarber/pkg/dbmetrics"
	"github.com/clickcy/clickbarber/pkg/psqlbuilder"
)

// Repository репозиторий для работы с записями клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись вместе со строками выбранных услуг.
// Вызывается внутри serializable транзакции из usecase создания записи,
// чтобы проверка пересечений и вставка были атомарны.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment, serviceIDs []uuid.UUID) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"id",
			"client_id",
			"professional_id",
			"start_time",
			"end_time",
			"status",
			"notes",
		).
		Values(
			appt.ID,
			appt.ClientID,
			appt.ProfessionalID,
			appt.StartTime,
			appt.EndTime,
			appt.Status,
			appt.Notes,
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

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	// Строки услуг записи
	for _, serviceID := range serviceIDs {
		linkQuery, linkArgs, err := psqlbuilder.Insert("appointment_services").
			Columns("appointment_id", "service_id").
			Values(appt.ID, serviceID).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: Create - build service link query: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(ctx, linkQuery, linkArgs...); err != nil {
			return nil, fmt.Errorf("%w: Create - link service %s: %v", ErrExecQuery, serviceID, err)
		}
	}

	return appt, nil
}

// GetByID получает запись по ID вместе с именем клиента и услугами
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.richSelect().
		Where(squirrel.Eq{"a.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments, err := r.scanAppointments(rows)
	if err != nil {
		return nil, err
	}
	if len(appointments) == 0 {
		return nil, ErrAppointmentNotFound
	}

	return appointments[0], nil
}

// ListDay получает записи на день для сетки агенды, отсортированные по времени начала.
// Имя клиента, названия услуг и суммарная цена подтягиваются одним запросом,
// чтобы сетка не ходила в базу по разу на запись.
func (r *Repository) ListDay(ctx context.Context, filter domain.DayAgendaFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	dayStart, dayEnd := dayBounds(filter.Date)

	selectBuilder := r.richSelect().
		Where(squirrel.GtOrEq{"a.start_time": dayStart}).
		Where(squirrel.Lt{"a.start_time": dayEnd})

	if filter.ProfessionalID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.professional_id": *filter.ProfessionalID})
	}

	if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"a.status": inactiveStatusStrings()})
	}

	query, args, err := selectBuilder.OrderBy("a.start_time ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// GetDayForProfessional получает активные записи профессионала на день без
// денормализованных полей. Внутри транзакции строки блокируются через
// FOR UPDATE - на этом держится защита от двойного бронирования.
func (r *Repository) GetDayForProfessional(ctx context.Context, professionalID uuid.UUID, date time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	dayStart, dayEnd := dayBounds(date)

	selectBuilder := psqlbuilder.Select(
		"id",
		"client_id",
		"professional_id",
		"start_time",
		"end_time",
		"status",
	).
		From("appointments").
		Where(squirrel.Eq{"professional_id": professionalID}).
		Where(squirrel.GtOrEq{"start_time": dayStart}).
		Where(squirrel.Lt{"start_time": dayEnd}).
		Where(squirrel.NotEq{"status": inactiveStatusStrings()}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetDayForProfessional - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetDayForProfessional - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		var appt domain.Appointment
		err := rows.Scan(
			&appt.ID,
			&appt.ClientID,
			&appt.ProfessionalID,
			&appt.StartTime,
			&appt.EndTime,
			&appt.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetDayForProfessional - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetDayForProfessional - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// Cancel отменяет запись с указанием причины
func (r *Repository) Cancel(ctx context.Context, id uuid.UUID, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// DayStats считает количество записей и уникальных клиентов за день
func (r *Repository) DayStats(ctx context.Context, date time.Time) (appointments int, uniqueClients int, err error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	dayStart, dayEnd := dayBounds(date)

	query, args, err := psqlbuilder.Select(
		"COUNT(*)",
		"COUNT(DISTINCT client_id)",
	).
		From("appointments").
		Where(squirrel.GtOrEq{"start_time": dayStart}).
		Where(squirrel.Lt{"start_time": dayEnd}).
		Where(squirrel.NotEq{"status": inactiveStatusStrings()}).
		ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: DayStats - build select query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&appointments, &uniqueClients)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: DayStats - scan counts: %v", ErrScanRow, err)
	}

	return appointments, uniqueClients, nil
}

// richSelect строит выборку записи с именем клиента и агрегатами услуг
func (r *Repository) richSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"a.id",
		"a.client_id",
		"a.professional_id",
		"a.start_time",
		"a.end_time",
		"a.status",
		"a.notes",
		"a.cancellation_reason",
		"a.cancelled_at",
		"a.created_at",
		"a.updated_at",
		"c.name AS client_name",
		"COALESCE(ARRAY_AGG(s.name ORDER BY s.name) FILTER (WHERE s.id IS NOT NULL), '{}') AS service_names",
		"COALESCE(SUM(s.price), 0) AS total_price",
	).
		From("appointments a").
		Join("clients c ON c.id = a.client_id").
		LeftJoin("appointment_services aps ON aps.appointment_id = a.id").
		LeftJoin("services s ON s.id = aps.service_id").
		GroupBy("a.id", "c.name")
}

// scanAppointments сканирует результаты запроса в слайс записей
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var appt domain.Appointment
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&appt.ID,
			&appt.ClientID,
			&appt.ProfessionalID,
			&appt.StartTime,
			&appt.EndTime,
			&appt.Status,
			&appt.Notes,
			&appt.CancellationReason,
			&appt.CancelledAt,
			&createdAt,
			&updatedAt,
			&appt.ClientName,
			pq.Array(&appt.ServiceNames),
			&appt.TotalPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		appt.CreatedAt = createdAt.Time
		appt.UpdatedAt = updatedAt.Time

		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// dayBounds возвращает полуинтервал [00:00, 24:00) календарного дня
func dayBounds(date time.Time) (time.Time, time.Time) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return dayStart, dayStart.AddDate(0, 0, 1)
}

func inactiveStatusStrings() []string {
	statuses := make([]string, len(domain.InactiveStatuses))
	for i, s := range domain.InactiveStatuses {
		statuses[i] = string(s)
	}
	return statuses
}
