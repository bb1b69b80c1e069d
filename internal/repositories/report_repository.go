package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"hr-reports/internal/entities"
	apperrors "hr-reports/pkg/errors"
)

type ReportRepositoryInterface interface {
	GetReport(ctx context.Context, filter entities.ReportFilter) ([]entities.ReportRow, uint64, error)
}

type reportRepository struct {
	db *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) ReportRepositoryInterface {
	return &reportRepository{db: db}
}

// reportBase builds the shared FROM/JOIN/WHERE part of both the COUNT and
// the page query. Inner joins only: an employee missing a title, salary or
// department assignment must not appear in the report.
func reportBase(filter entities.ReportFilter) sq.SelectBuilder {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	base := psql.Select().
		From("employees e").
		Join("titles t ON t.emp_no = e.emp_no").
		Join("dept_emp de ON de.emp_no = e.emp_no").
		Join("departments d ON d.dept_no = de.dept_no").
		Join("salaries s ON s.emp_no = e.emp_no")

	if filter.DepartmentName != nil {
		base = base.Where(sq.Eq{"d.dept_name": *filter.DepartmentName})
	}
	return base
}

// reportColumns is the column list of the denormalized result, in output order.
var reportColumns = []string{
	"e.emp_no", "e.first_name", "e.last_name",
	"t.title",
	"d.dept_no", "d.dept_name",
	"de.from_date",
	"s.salary",
}

func (r *reportRepository) GetReport(ctx context.Context, filter entities.ReportFilter) ([]entities.ReportRow, uint64, error) {
	base := reportBase(filter)

	countQuery, countArgs, err := base.Columns("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("building count query: %w", err)
	}
	var totalCount uint64
	if err = r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&totalCount); err != nil {
		return nil, 0, apperrors.Classify(err)
	}
	if totalCount == 0 {
		return []entities.ReportRow{}, 0, nil
	}

	// The join result carries no semantic ordering; emp_no plus tiebreakers
	// only keep pagination stable.
	mainBuilder := base.Columns(reportColumns...).
		OrderBy("e.emp_no", "t.title", "s.from_date")

	if filter.PerPage > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		mainBuilder = mainBuilder.Limit(uint64(filter.PerPage)).Offset(uint64((page - 1) * filter.PerPage))
	}

	sql, args, err := mainBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("building report query: %w", err)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, apperrors.Classify(err)
	}
	defer rows.Close()

	reportRows := make([]entities.ReportRow, 0)
	for rows.Next() {
		var row entities.ReportRow
		err := rows.Scan(
			&row.EmpNo, &row.FirstName, &row.LastName,
			&row.Title,
			&row.DeptNo, &row.DeptName,
			&row.FromDate,
			&row.Salary,
		)
		if err != nil {
			return nil, 0, apperrors.Classify(err)
		}
		reportRows = append(reportRows, row)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, apperrors.Classify(err)
	}

	return reportRows, totalCount, nil
}
