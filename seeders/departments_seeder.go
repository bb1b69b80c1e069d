package seeders

import (
	"context"
	"fmt"

	"hr-reports/internal/entities"
	"hr-reports/internal/repositories"
)

// decodeDepartments maps CSV records in the layout dept_no,dept_name.
func decodeDepartments(records [][]string) ([]entities.Department, error) {
	departments := make([]entities.Department, 0, len(records))
	for i, rec := range records {
		if len(rec) != 2 {
			return nil, fmt.Errorf("departments row %d: expected 2 fields, got %d", i+2, len(rec))
		}
		departments = append(departments, entities.Department{
			DeptNo:   rec[0],
			DeptName: rec[1],
		})
	}
	return departments, nil
}

func seedDepartments(ctx context.Context, repo repositories.DepartmentRepositoryInterface, path string) (int64, error) {
	records, err := readCSVFile(path)
	if err != nil {
		return 0, err
	}
	departments, err := decodeDepartments(records)
	if err != nil {
		return 0, err
	}
	return repo.BulkInsert(ctx, departments)
}
