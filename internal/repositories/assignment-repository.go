package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"hr-reports/internal/entities"
	apperrors "hr-reports/pkg/errors"
)

const assignmentTable = "dept_emp"

type AssignmentRepositoryInterface interface {
	BulkInsert(ctx context.Context, assignments []entities.DeptAssignment) (int64, error)
	ListByDepartment(ctx context.Context, deptNo string) ([]entities.DeptAssignment, error)
	Count(ctx context.Context) (uint64, error)
}

type AssignmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewAssignmentRepository(storage *pgxpool.Pool, logger *zap.Logger) AssignmentRepositoryInterface {
	return &AssignmentRepository{storage: storage, logger: logger}
}

func (r *AssignmentRepository) BulkInsert(ctx context.Context, assignments []entities.DeptAssignment) (int64, error) {
	n, err := r.storage.CopyFrom(
		ctx,
		pgx.Identifier{assignmentTable},
		[]string{"emp_no", "dept_no", "from_date", "to_date"},
		pgx.CopyFromSlice(len(assignments), func(i int) ([]any, error) {
			a := assignments[i]
			return []any{a.EmpNo, a.DeptNo, a.FromDate, nullTimeArg(a.ToDate)}, nil
		}),
	)
	if err != nil {
		return 0, apperrors.Classify(err)
	}
	return n, nil
}

func (r *AssignmentRepository) ListByDepartment(ctx context.Context, deptNo string) ([]entities.DeptAssignment, error) {
	query := `SELECT emp_no, dept_no, from_date, to_date FROM dept_emp WHERE dept_no = $1 ORDER BY emp_no`
	rows, err := r.storage.Query(ctx, query, deptNo)
	if err != nil {
		return nil, apperrors.Classify(err)
	}
	defer rows.Close()

	assignments := make([]entities.DeptAssignment, 0)
	for rows.Next() {
		var a entities.DeptAssignment
		if err := rows.Scan(&a.EmpNo, &a.DeptNo, &a.FromDate, &a.ToDate); err != nil {
			return nil, apperrors.Classify(err)
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func (r *AssignmentRepository) Count(ctx context.Context) (uint64, error) {
	var total uint64
	if err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM dept_emp`).Scan(&total); err != nil {
		return 0, apperrors.Classify(err)
	}
	return total, nil
}
