package employee

import (
	"context"

	"github.com/chulcheck/attendance-backend-go/internal/config"
	"github.com/chulcheck/attendance-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	wage config.WageConfig
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	wage config.WageConfig,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
		wage:               wage,
	}
}

// Resolve implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Resolve(ctx context.Context, name, phone string) (employee.Employee, error) {
	return s.EmployeeRepository.Upsert(ctx, employee.Employee{
		Name:       name,
		Phone:      phone,
		HourlyRate: s.wage.DefaultHourlyRate,
	})
}

// Search implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Search(ctx context.Context, req employee.SearchRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByNameAndPhone(ctx, req.Name, req.Phone)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(emp), nil
}

// SearchByName implements employee.EmployeeService.
func (s *EmployeeServiceImpl) SearchByName(ctx context.Context, req employee.SearchByNameRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetFirstByName(ctx, req.Name)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}

	return responses, nil
}
