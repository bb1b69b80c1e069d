package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"hr-reports/internal/entities"
	apperrors "hr-reports/pkg/errors"
)

const salaryTable = "salaries"

type SalaryRepositoryInterface interface {
	BulkInsert(ctx context.Context, salaries []entities.Salary) (int64, error)
	ListByEmployee(ctx context.Context, empNo int64) ([]entities.Salary, error)
	Count(ctx context.Context) (uint64, error)
}

type SalaryRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewSalaryRepository(storage *pgxpool.Pool, logger *zap.Logger) SalaryRepositoryInterface {
	return &SalaryRepository{storage: storage, logger: logger}
}

func (r *SalaryRepository) BulkInsert(ctx context.Context, salaries []entities.Salary) (int64, error) {
	n, err := r.storage.CopyFrom(
		ctx,
		pgx.Identifier{salaryTable},
		[]string{"emp_no", "salary", "from_date", "to_date"},
		pgx.CopyFromSlice(len(salaries), func(i int) ([]any, error) {
			s := salaries[i]
			return []any{s.EmpNo, s.Salary, s.FromDate, nullTimeArg(s.ToDate)}, nil
		}),
	)
	if err != nil {
		return 0, apperrors.Classify(err)
	}
	return n, nil
}

func (r *SalaryRepository) ListByEmployee(ctx context.Context, empNo int64) ([]entities.Salary, error) {
	query := `SELECT emp_no, salary, from_date, to_date FROM salaries WHERE emp_no = $1 ORDER BY from_date`
	rows, err := r.storage.Query(ctx, query, empNo)
	if err != nil {
		return nil, apperrors.Classify(err)
	}
	defer rows.Close()

	salaries := make([]entities.Salary, 0)
	for rows.Next() {
		var s entities.Salary
		if err := rows.Scan(&s.EmpNo, &s.Salary, &s.FromDate, &s.ToDate); err != nil {
			return nil, apperrors.Classify(err)
		}
		salaries = append(salaries, s)
	}
	return salaries, rows.Err()
}

func (r *SalaryRepository) Count(ctx context.Context) (uint64, error) {
	var total uint64
	if err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM salaries`).Scan(&total); err != nil {
		return 0, apperrors.Classify(err)
	}
	return total, nil
}
