package services

import (
	"context"

	"go.uber.org/zap"

	"hr-reports/internal/dto"
	"hr-reports/internal/entities"
	"hr-reports/internal/repositories"
	"hr-reports/pkg/types"
)

type EmployeeService struct {
	employeeRepository repositories.EmployeeRepositoryInterface
	titleRepository    repositories.TitleRepositoryInterface
	salaryRepository   repositories.SalaryRepositoryInterface
	logger             *zap.Logger
}

func NewEmployeeService(
	employeeRepository repositories.EmployeeRepositoryInterface,
	titleRepository repositories.TitleRepositoryInterface,
	salaryRepository repositories.SalaryRepositoryInterface,
	logger *zap.Logger,
) *EmployeeService {
	return &EmployeeService{
		employeeRepository: employeeRepository,
		titleRepository:    titleRepository,
		salaryRepository:   salaryRepository,
		logger:             logger,
	}
}

func mapEmployee(e entities.Employee) dto.EmployeeDTO {
	return dto.EmployeeDTO{
		EmpNo:     e.EmpNo,
		BirthDate: e.BirthDate.Format(reportDateFormat),
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Gender:    e.Gender,
		HireDate:  e.HireDate.Format(reportDateFormat),
	}
}

func (s *EmployeeService) GetEmployees(ctx context.Context, filter types.Filter) ([]dto.EmployeeDTO, uint64, error) {
	employees, total, err := s.employeeRepository.GetEmployees(ctx, filter)
	if err != nil {
		s.logger.Error("listing employees failed", zap.Error(err))
		return nil, 0, err
	}

	dtos := make([]dto.EmployeeDTO, len(employees))
	for i, e := range employees {
		dtos[i] = mapEmployee(e)
	}
	return dtos, total, nil
}

// FindEmployee returns one employee together with the full title and salary
// history.
func (s *EmployeeService) FindEmployee(ctx context.Context, empNo int64) (*dto.EmployeeDetailsDTO, error) {
	employee, err := s.employeeRepository.FindEmployee(ctx, empNo)
	if err != nil {
		return nil, err
	}
	titles, err := s.titleRepository.ListByEmployee(ctx, empNo)
	if err != nil {
		return nil, err
	}
	salaries, err := s.salaryRepository.ListByEmployee(ctx, empNo)
	if err != nil {
		return nil, err
	}

	details := &dto.EmployeeDetailsDTO{
		EmployeeDTO: mapEmployee(*employee),
		Titles:      make([]dto.TitleDTO, len(titles)),
		Salaries:    make([]dto.SalaryDTO, len(salaries)),
	}
	for i, t := range titles {
		details.Titles[i] = dto.TitleDTO{
			Title:    t.Title,
			FromDate: t.FromDate.Format(reportDateFormat),
			ToDate:   formatNullDate(t.ToDate),
		}
	}
	for i, sal := range salaries {
		details.Salaries[i] = dto.SalaryDTO{
			Salary:   sal.Salary,
			FromDate: sal.FromDate.Format(reportDateFormat),
			ToDate:   formatNullDate(sal.ToDate),
		}
	}
	return details, nil
}
