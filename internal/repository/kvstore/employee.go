package kvstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	kv database.KV
}

func NewEmployeeRepository(kv database.KV) employee.EmployeeRepository {
	return &employeeRepositoryImpl{kv: kv}
}

// LoadAll implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) LoadAll(ctx context.Context) ([]employee.Employee, error) {
	data, found, err := r.kv.Get(ctx, EmployeesKey)
	if err != nil {
		return nil, err
	}
	if !found || len(data) == 0 {
		return []employee.Employee{}, nil
	}

	var employees []employee.Employee
	if err := json.Unmarshal(data, &employees); err != nil {
		return nil, fmt.Errorf("failed to decode employees: %w", err)
	}
	if employees == nil {
		employees = []employee.Employee{}
	}
	return employees, nil
}

// SaveAll implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SaveAll(ctx context.Context, employees []employee.Employee) error {
	if employees == nil {
		employees = []employee.Employee{}
	}
	data, err := json.Marshal(employees)
	if err != nil {
		return fmt.Errorf("failed to encode employees: %w", err)
	}
	return r.kv.Put(ctx, EmployeesKey, data)
}
