package repository

import (
	"context"
	"errors"

	"hiko_buyforme/internal/domain/entities"
	"hiko_buyforme/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgUniqueViolation = "23505"

// RequestPostgresRepository persists BuyForMeRequest aggregates in Postgres.
//
// Table (see database/migrations):
//   - buy_for_me_requests(id PK, user_id, hotdeal_id, status, payload JSONB, created_at, updated_at)
//   - indexes on user_id, status and hotdeal_id
type RequestPostgresRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IBuyForMeRequestRepository = (*RequestPostgresRepository)(nil)

func NewRequestPostgresRepository(pool *pgxpool.Pool) *RequestPostgresRepository {
	return &RequestPostgresRepository{pool: pool}
}

func (r *RequestPostgresRepository) Create(ctx context.Context, req entities.BuyForMeRequest) (entities.BuyForMeRequest, error) {
	payload, err := marshalPayload(req)
	if err != nil {
		return entities.BuyForMeRequest{}, err
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO buy_for_me_requests (id, user_id, hotdeal_id, status, payload, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7)`,
		req.ID, req.UserID, req.HotdealID, string(req.Status), payload, req.CreatedAt, req.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return entities.BuyForMeRequest{}, ErrAlreadyExists
		}
		return entities.BuyForMeRequest{}, err
	}
	return req, nil
}

func (r *RequestPostgresRepository) GetByID(ctx context.Context, id string) (entities.BuyForMeRequest, error) {
	var payload []byte
	err := r.pool.QueryRow(ctx, `SELECT payload FROM buy_for_me_requests WHERE id = $1`, id).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.BuyForMeRequest{}, nil
	}
	if err != nil {
		return entities.BuyForMeRequest{}, err
	}
	return unmarshalPayload(payload)
}

// Update replaces the stored aggregate. A missing id yields the zero value.
func (r *RequestPostgresRepository) Update(ctx context.Context, req entities.BuyForMeRequest) (entities.BuyForMeRequest, error) {
	payload, err := marshalPayload(req)
	if err != nil {
		return entities.BuyForMeRequest{}, err
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE buy_for_me_requests
		SET user_id = $2, hotdeal_id = NULLIF($3, ''), status = $4, payload = $5, updated_at = $6
		WHERE id = $1`,
		req.ID, req.UserID, req.HotdealID, string(req.Status), payload, req.UpdatedAt,
	)
	if err != nil {
		return entities.BuyForMeRequest{}, err
	}
	if tag.RowsAffected() == 0 {
		return entities.BuyForMeRequest{}, nil
	}
	return req, nil
}

func (r *RequestPostgresRepository) ListByUserID(ctx context.Context, userID string) ([]entities.BuyForMeRequest, error) {
	return r.list(ctx, `SELECT payload FROM buy_for_me_requests WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

func (r *RequestPostgresRepository) ListByStatus(ctx context.Context, status entities.RequestStatus) ([]entities.BuyForMeRequest, error) {
	return r.list(ctx, `SELECT payload FROM buy_for_me_requests WHERE status = $1 ORDER BY created_at DESC`, string(status))
}

func (r *RequestPostgresRepository) ListByHotdealID(ctx context.Context, hotdealID string) ([]entities.BuyForMeRequest, error) {
	return r.list(ctx, `SELECT payload FROM buy_for_me_requests WHERE hotdeal_id = $1 ORDER BY created_at DESC`, hotdealID)
}

func (r *RequestPostgresRepository) CountByStatus(ctx context.Context) (map[entities.RequestStatus]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM buy_for_me_requests GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[entities.RequestStatus]int)
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		out[entities.RequestStatus(status)] = count
	}
	return out, rows.Err()
}

func (r *RequestPostgresRepository) list(ctx context.Context, query string, arg string) ([]entities.BuyForMeRequest, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	payloads, err := pgx.CollectRows(rows, pgx.RowTo[[]byte])
	if err != nil {
		return nil, err
	}

	out := make([]entities.BuyForMeRequest, 0, len(payloads))
	for _, p := range payloads {
		req, err := unmarshalPayload(p)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, nil
}
