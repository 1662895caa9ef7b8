package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/lifecycle"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, order_code, customer_name, phone, address, pincode,
	lat, lng, slot_date, slot_time, status, assigned_driver_id, created_at, updated_at`

const assignClaimTTL = "10 minutes"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderModifyEntity entities.OrderModify) (int64, error) {
	orderModifyModel := FromDomainModify(&orderModifyEntity)
	query := `INSERT INTO orders (order_code, customer_name, phone, address, pincode, lat, lng, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		orderModifyModel.OrderCode,
		orderModifyModel.CustomerName,
		orderModifyModel.Phone,
		orderModifyModel.Address,
		orderModifyModel.Pincode,
		orderModifyModel.Lat,
		orderModifyModel.Lng,
		orderModifyModel.Status,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, lifecycle.ErrOrderConflict
		}
		return 0, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByCode(ctx context.Context, orderCode string) (*entities.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE order_code = $1`, orderColumns)

	orderModel, err := r.scanOne(r.querier.QueryRow(ctx, query, orderCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, lifecycle.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbycode error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE id = $1`, orderColumns)

	orderModel, err := r.scanOne(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, lifecycle.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	orderModifyModel := FromDomainModify(&orderModifyEntity)

	builder := qb.
		Update("orders")

	// опциональные поля
	if orderModifyModel.CustomerName != nil {
		builder = builder.Set("customer_name", orderModifyModel.CustomerName)
	}
	if orderModifyModel.Phone != nil {
		builder = builder.Set("phone", orderModifyModel.Phone)
	}
	if orderModifyModel.Address != nil {
		builder = builder.Set("address", orderModifyModel.Address)
	}
	if orderModifyModel.Pincode != nil {
		builder = builder.Set("pincode", orderModifyModel.Pincode)
	}
	if orderModifyModel.Lat != nil {
		builder = builder.Set("lat", orderModifyModel.Lat)
	}
	if orderModifyModel.Lng != nil {
		builder = builder.Set("lng", orderModifyModel.Lng)
	}
	if orderModifyModel.SlotDate != nil {
		builder = builder.Set("slot_date", orderModifyModel.SlotDate)
	}
	if orderModifyModel.SlotTime != nil {
		builder = builder.Set("slot_time", orderModifyModel.SlotTime)
	}
	if orderModifyModel.Status != nil {
		builder = builder.Set("status", orderModifyModel.Status)
		// любой переход статуса закрывает claim распределения
		builder = builder.Set("being_assigned", false)
	}
	if orderModifyModel.AssignedDriverID != nil {
		builder = builder.Set("assigned_driver_id", orderModifyModel.AssignedDriverID)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": orderModifyModel.ID}).
		Suffix(fmt.Sprintf("RETURNING %s", orderColumns))

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	orderModel, err := r.scanOne(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, lifecycle.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(orderModel), nil
}

// ClaimSlotSelected забирает пачку заказов в статусе Slot Selected под
// распределение. FOR UPDATE SKIP LOCKED + флаг being_assigned: два
// конкурентных прогона никогда не получат один и тот же заказ.
//
// Claim протухает через assignClaimTTL по updated_at: прогон, упавший между
// claim и release, не выводит заказ из оборота навсегда. TTL заведомо больше
// длительности одного batch'а.
func (r *Repository) ClaimSlotSelected(ctx context.Context, limit int) ([]entities.Order, error) {
	query := fmt.Sprintf(`
		UPDATE orders SET being_assigned = TRUE, updated_at = NOW()
		WHERE id IN (
			SELECT id FROM orders
			WHERE status = $1
				AND (NOT being_assigned OR updated_at < NOW() - INTERVAL '%s')
			ORDER BY id
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		)
		RETURNING %s`, assignClaimTTL, orderColumns)

	rows, err := r.querier.Query(ctx, query, entities.OrderSlotSelected.String(), limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository claim error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderModel OrderDB
		err := rows.Scan(
			&orderModel.ID,
			&orderModel.OrderCode,
			&orderModel.CustomerName,
			&orderModel.Phone,
			&orderModel.Address,
			&orderModel.Pincode,
			&orderModel.Lat,
			&orderModel.Lng,
			&orderModel.SlotDate,
			&orderModel.SlotTime,
			&orderModel.Status,
			&orderModel.AssignedDriverID,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository claim error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository claim error: %w", err)
	}

	return ToDomainList(orderModels), nil
}

func (r *Repository) ReleaseClaims(ctx context.Context, orderIDs []int64) error {
	if len(orderIDs) == 0 {
		return nil
	}

	query := `
		UPDATE orders SET being_assigned = FALSE, updated_at = NOW()
		WHERE id = ANY($1)`

	_, err := r.querier.Exec(ctx, query, orderIDs)
	if err != nil {
		return fmt.Errorf("unexpected order repository release claims error: %w", err)
	}

	return nil
}

func (r *Repository) scanOne(row pgx.Row) (*OrderDB, error) {
	var orderModel OrderDB
	err := row.Scan(
		&orderModel.ID,
		&orderModel.OrderCode,
		&orderModel.CustomerName,
		&orderModel.Phone,
		&orderModel.Address,
		&orderModel.Pincode,
		&orderModel.Lat,
		&orderModel.Lng,
		&orderModel.SlotDate,
		&orderModel.SlotTime,
		&orderModel.Status,
		&orderModel.AssignedDriverID,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &orderModel, nil
}
