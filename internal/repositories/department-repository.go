package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"hr-reports/internal/entities"
	apperrors "hr-reports/pkg/errors"
)

const departmentTable = "departments"

type DepartmentRepositoryInterface interface {
	BulkInsert(ctx context.Context, departments []entities.Department) (int64, error)
	GetDepartments(ctx context.Context) ([]entities.Department, error)
	FindDepartment(ctx context.Context, deptNo string) (*entities.Department, error)
	FindDepartmentByName(ctx context.Context, name string) (*entities.Department, error)
}

type DepartmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDepartmentRepository(storage *pgxpool.Pool, logger *zap.Logger) DepartmentRepositoryInterface {
	return &DepartmentRepository{storage: storage, logger: logger}
}

func scanDepartment(row pgx.Row) (*entities.Department, error) {
	var d entities.Department
	err := row.Scan(&d.DeptNo, &d.DeptName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning department: %w", apperrors.Classify(err))
	}
	return &d, nil
}

func (r *DepartmentRepository) BulkInsert(ctx context.Context, departments []entities.Department) (int64, error) {
	n, err := r.storage.CopyFrom(
		ctx,
		pgx.Identifier{departmentTable},
		[]string{"dept_no", "dept_name"},
		pgx.CopyFromSlice(len(departments), func(i int) ([]any, error) {
			d := departments[i]
			return []any{d.DeptNo, d.DeptName}, nil
		}),
	)
	if err != nil {
		return 0, apperrors.Classify(err)
	}
	return n, nil
}

// GetDepartments returns the full dictionary; the table is small by design.
func (r *DepartmentRepository) GetDepartments(ctx context.Context) ([]entities.Department, error) {
	query := `SELECT dept_no, dept_name FROM departments ORDER BY dept_no`
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, apperrors.Classify(err)
	}
	defer rows.Close()

	departments := make([]entities.Department, 0)
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, err
		}
		departments = append(departments, *d)
	}
	return departments, rows.Err()
}

func (r *DepartmentRepository) FindDepartment(ctx context.Context, deptNo string) (*entities.Department, error) {
	query := `SELECT dept_no, dept_name FROM departments WHERE dept_no = $1`
	return scanDepartment(r.storage.QueryRow(ctx, query, deptNo))
}

// FindDepartmentByName matches the exact, case-sensitive department name.
func (r *DepartmentRepository) FindDepartmentByName(ctx context.Context, name string) (*entities.Department, error) {
	query := `SELECT dept_no, dept_name FROM departments WHERE dept_name = $1`
	return scanDepartment(r.storage.QueryRow(ctx, query, name))
}
