package services

import (
	"context"

	"go.uber.org/zap"

	"hr-reports/internal/dto"
	"hr-reports/internal/repositories"
)

type DepartmentService struct {
	departmentRepository repositories.DepartmentRepositoryInterface
	assignmentRepository repositories.AssignmentRepositoryInterface
	logger               *zap.Logger
}

func NewDepartmentService(
	departmentRepository repositories.DepartmentRepositoryInterface,
	assignmentRepository repositories.AssignmentRepositoryInterface,
	logger *zap.Logger,
) *DepartmentService {
	return &DepartmentService{
		departmentRepository: departmentRepository,
		assignmentRepository: assignmentRepository,
		logger:               logger,
	}
}

func (s *DepartmentService) GetDepartments(ctx context.Context) ([]dto.DepartmentDTO, error) {
	departments, err := s.departmentRepository.GetDepartments(ctx)
	if err != nil {
		s.logger.Error("listing departments failed", zap.Error(err))
		return nil, err
	}

	dtos := make([]dto.DepartmentDTO, len(departments))
	for i, d := range departments {
		dtos[i] = dto.DepartmentDTO{DeptNo: d.DeptNo, DeptName: d.DeptName}
	}
	return dtos, nil
}

// FindDepartment returns one department with its assignment headcount.
func (s *DepartmentService) FindDepartment(ctx context.Context, deptNo string) (*dto.DepartmentDetailsDTO, error) {
	department, err := s.departmentRepository.FindDepartment(ctx, deptNo)
	if err != nil {
		return nil, err
	}
	assignments, err := s.assignmentRepository.ListByDepartment(ctx, deptNo)
	if err != nil {
		return nil, err
	}
	return &dto.DepartmentDetailsDTO{
		DepartmentDTO: dto.DepartmentDTO{DeptNo: department.DeptNo, DeptName: department.DeptName},
		Headcount:     len(assignments),
	}, nil
}
