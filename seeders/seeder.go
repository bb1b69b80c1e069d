// Package seeders loads the five reporting tables from the CSV dumps
// produced by the source system.
package seeders

import (
	"context"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"hr-reports/internal/repositories"
)

// File names expected inside the CSV directory.
const (
	employeesCSV   = "employees.csv"
	departmentsCSV = "departments.csv"
	titlesCSV      = "titles.csv"
	salariesCSV    = "salaries.csv"
	deptEmpCSV     = "dept_emp.csv"
)

// LoadAll loads every table in FK dependency order: parents first, then the
// history tables referencing them.
func LoadAll(ctx context.Context, db *pgxpool.Pool, logger *zap.Logger, dir string) error {
	employeeRepo := repositories.NewEmployeeRepository(db, logger)
	departmentRepo := repositories.NewDepartmentRepository(db, logger)
	titleRepo := repositories.NewTitleRepository(db, logger)
	salaryRepo := repositories.NewSalaryRepository(db, logger)
	assignmentRepo := repositories.NewAssignmentRepository(db, logger)

	n, err := seedEmployees(ctx, employeeRepo, filepath.Join(dir, employeesCSV))
	if err != nil {
		return err
	}
	logger.Info("employees loaded", zap.Int64("rows", n))

	n, err = seedDepartments(ctx, departmentRepo, filepath.Join(dir, departmentsCSV))
	if err != nil {
		return err
	}
	logger.Info("departments loaded", zap.Int64("rows", n))

	n, err = seedTitles(ctx, titleRepo, filepath.Join(dir, titlesCSV))
	if err != nil {
		return err
	}
	logger.Info("titles loaded", zap.Int64("rows", n))

	n, err = seedSalaries(ctx, salaryRepo, filepath.Join(dir, salariesCSV))
	if err != nil {
		return err
	}
	logger.Info("salaries loaded", zap.Int64("rows", n))

	n, err = seedAssignments(ctx, assignmentRepo, filepath.Join(dir, deptEmpCSV))
	if err != nil {
		return err
	}
	logger.Info("department assignments loaded", zap.Int64("rows", n))

	return verifyHistoryTables(ctx, titleRepo, salaryRepo, assignmentRepo, logger)
}

// verifyHistoryTables reads the row totals back so a silently truncated COPY
// shows up in the load log.
func verifyHistoryTables(
	ctx context.Context,
	titleRepo repositories.TitleRepositoryInterface,
	salaryRepo repositories.SalaryRepositoryInterface,
	assignmentRepo repositories.AssignmentRepositoryInterface,
	logger *zap.Logger,
) error {
	titles, err := titleRepo.Count(ctx)
	if err != nil {
		return err
	}
	salaries, err := salaryRepo.Count(ctx)
	if err != nil {
		return err
	}
	assignments, err := assignmentRepo.Count(ctx)
	if err != nil {
		return err
	}

	logger.Info("history tables verified",
		zap.Uint64("titles", titles),
		zap.Uint64("salaries", salaries),
		zap.Uint64("dept_emp", assignments),
	)
	return nil
}
