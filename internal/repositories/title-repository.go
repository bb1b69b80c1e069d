package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"hr-reports/internal/entities"
	apperrors "hr-reports/pkg/errors"
)

const titleTable = "titles"

type TitleRepositoryInterface interface {
	BulkInsert(ctx context.Context, titles []entities.Title) (int64, error)
	ListByEmployee(ctx context.Context, empNo int64) ([]entities.Title, error)
	Count(ctx context.Context) (uint64, error)
}

type TitleRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewTitleRepository(storage *pgxpool.Pool, logger *zap.Logger) TitleRepositoryInterface {
	return &TitleRepository{storage: storage, logger: logger}
}

func (r *TitleRepository) BulkInsert(ctx context.Context, titles []entities.Title) (int64, error) {
	n, err := r.storage.CopyFrom(
		ctx,
		pgx.Identifier{titleTable},
		[]string{"emp_no", "title", "from_date", "to_date"},
		pgx.CopyFromSlice(len(titles), func(i int) ([]any, error) {
			t := titles[i]
			return []any{t.EmpNo, t.Title, t.FromDate, nullTimeArg(t.ToDate)}, nil
		}),
	)
	if err != nil {
		return 0, apperrors.Classify(err)
	}
	return n, nil
}

// ListByEmployee returns the employee's full title history, overlapping
// intervals included.
func (r *TitleRepository) ListByEmployee(ctx context.Context, empNo int64) ([]entities.Title, error) {
	query := `SELECT emp_no, title, from_date, to_date FROM titles WHERE emp_no = $1 ORDER BY from_date, title`
	rows, err := r.storage.Query(ctx, query, empNo)
	if err != nil {
		return nil, apperrors.Classify(err)
	}
	defer rows.Close()

	titles := make([]entities.Title, 0)
	for rows.Next() {
		var t entities.Title
		if err := rows.Scan(&t.EmpNo, &t.Title, &t.FromDate, &t.ToDate); err != nil {
			return nil, apperrors.Classify(err)
		}
		titles = append(titles, t)
	}
	return titles, rows.Err()
}

func (r *TitleRepository) Count(ctx context.Context) (uint64, error) {
	var total uint64
	if err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM titles`).Scan(&total); err != nil {
		return 0, apperrors.Classify(err)
	}
	return total, nil
}
