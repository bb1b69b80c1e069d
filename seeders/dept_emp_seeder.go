package seeders

import (
	"context"
	"fmt"

	"hr-reports/internal/entities"
	"hr-reports/internal/repositories"
)

// decodeAssignments maps CSV records in the layout
// emp_no,dept_no,from_date,to_date.
func decodeAssignments(records [][]string) ([]entities.DeptAssignment, error) {
	assignments := make([]entities.DeptAssignment, 0, len(records))
	for i, rec := range records {
		if len(rec) != 4 {
			return nil, fmt.Errorf("dept_emp row %d: expected 4 fields, got %d", i+2, len(rec))
		}
		empNo, err := parseEmpNo(rec[0])
		if err != nil {
			return nil, fmt.Errorf("dept_emp row %d: %w", i+2, err)
		}
		fromDate, err := parseDate(rec[2])
		if err != nil {
			return nil, fmt.Errorf("dept_emp row %d: %w", i+2, err)
		}
		toDate, err := parseNullDate(rec[3])
		if err != nil {
			return nil, fmt.Errorf("dept_emp row %d: %w", i+2, err)
		}
		assignments = append(assignments, entities.DeptAssignment{
			EmpNo:    empNo,
			DeptNo:   rec[1],
			FromDate: fromDate,
			ToDate:   toDate,
		})
	}
	return assignments, nil
}

func seedAssignments(ctx context.Context, repo repositories.AssignmentRepositoryInterface, path string) (int64, error) {
	records, err := readCSVFile(path)
	if err != nil {
		return 0, err
	}
	assignments, err := decodeAssignments(records)
	if err != nil {
		return 0, err
	}
	return repo.BulkInsert(ctx, assignments)
}
