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
	"hr-reports/pkg/types"
)

const employeeTable = "employees"

var employeeColumns = []string{"emp_no", "birth_date", "first_name", "last_name", "gender", "hire_date"}

type EmployeeRepositoryInterface interface {
	BulkInsert(ctx context.Context, employees []entities.Employee) (int64, error)
	GetEmployees(ctx context.Context, filter types.Filter) ([]entities.Employee, uint64, error)
	FindEmployee(ctx context.Context, empNo int64) (*entities.Employee, error)
}

type EmployeeRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEmployeeRepository(storage *pgxpool.Pool, logger *zap.Logger) EmployeeRepositoryInterface {
	return &EmployeeRepository{storage: storage, logger: logger}
}

func scanEmployee(row pgx.Row) (*entities.Employee, error) {
	var e entities.Employee
	err := row.Scan(&e.EmpNo, &e.BirthDate, &e.FirstName, &e.LastName, &e.Gender, &e.HireDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning employee: %w", apperrors.Classify(err))
	}
	return &e, nil
}

// BulkInsert loads the whole employees table in one COPY round trip.
func (r *EmployeeRepository) BulkInsert(ctx context.Context, employees []entities.Employee) (int64, error) {
	n, err := r.storage.CopyFrom(
		ctx,
		pgx.Identifier{employeeTable},
		employeeColumns,
		pgx.CopyFromSlice(len(employees), func(i int) ([]any, error) {
			e := employees[i]
			return []any{e.EmpNo, e.BirthDate, e.FirstName, e.LastName, e.Gender, e.HireDate}, nil
		}),
	)
	if err != nil {
		return 0, apperrors.Classify(err)
	}
	return n, nil
}

func (r *EmployeeRepository) GetEmployees(ctx context.Context, filter types.Filter) ([]entities.Employee, uint64, error) {
	whereClause := ""
	args := []any{}
	if filter.Search != "" {
		whereClause = "WHERE e.last_name ILIKE $1 OR e.first_name ILIKE $1"
		args = append(args, "%"+filter.Search+"%")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s e %s", employeeTable, whereClause)
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.Classify(err)
	}
	if total == 0 {
		return []entities.Employee{}, 0, nil
	}

	limitClause := ""
	if filter.WithPagination {
		argCounter := len(args) + 1
		limitClause = fmt.Sprintf("LIMIT $%d OFFSET $%d", argCounter, argCounter+1)
		args = append(args, filter.Limit, filter.Offset)
	}
	query := fmt.Sprintf(
		"SELECT e.emp_no, e.birth_date, e.first_name, e.last_name, e.gender, e.hire_date FROM %s e %s ORDER BY e.emp_no %s",
		employeeTable, whereClause, limitClause,
	)

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, apperrors.Classify(err)
	}
	defer rows.Close()

	employees := make([]entities.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, *e)
	}
	return employees, total, rows.Err()
}

func (r *EmployeeRepository) FindEmployee(ctx context.Context, empNo int64) (*entities.Employee, error) {
	query := `SELECT emp_no, birth_date, first_name, last_name, gender, hire_date FROM employees WHERE emp_no = $1`
	return scanEmployee(r.storage.QueryRow(ctx, query, empNo))
}
