package seeders

import (
	"context"
	"fmt"

	"hr-reports/internal/entities"
	"hr-reports/internal/repositories"
)

// decodeEmployees maps CSV records in the layout
// emp_no,birth_date,first_name,last_name,gender,hire_date.
func decodeEmployees(records [][]string) ([]entities.Employee, error) {
	employees := make([]entities.Employee, 0, len(records))
	for i, rec := range records {
		if len(rec) != 6 {
			return nil, fmt.Errorf("employees row %d: expected 6 fields, got %d", i+2, len(rec))
		}
		empNo, err := parseEmpNo(rec[0])
		if err != nil {
			return nil, fmt.Errorf("employees row %d: %w", i+2, err)
		}
		birthDate, err := parseDate(rec[1])
		if err != nil {
			return nil, fmt.Errorf("employees row %d: %w", i+2, err)
		}
		hireDate, err := parseDate(rec[5])
		if err != nil {
			return nil, fmt.Errorf("employees row %d: %w", i+2, err)
		}
		employees = append(employees, entities.Employee{
			EmpNo:     empNo,
			BirthDate: birthDate,
			FirstName: rec[2],
			LastName:  rec[3],
			Gender:    rec[4],
			HireDate:  hireDate,
		})
	}
	return employees, nil
}

func seedEmployees(ctx context.Context, repo repositories.EmployeeRepositoryInterface, path string) (int64, error) {
	records, err := readCSVFile(path)
	if err != nil {
		return 0, err
	}
	employees, err := decodeEmployees(records)
	if err != nil {
		return 0, err
	}
	return repo.BulkInsert(ctx, employees)
}
