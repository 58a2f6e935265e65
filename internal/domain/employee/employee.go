// Package employee models staff records owned by the external HR system.
package employee

import "context"

// Employee is a read-only HR record.
type Employee struct {
	ID             string `json:"id"`
	EmployeeID     string `json:"employee_id"`
	Name           string `json:"employee_name"`
	Department     string `json:"employee_department"`
	Position       string `json:"employee_position"`
	Status         string `json:"employee_status"`
	Type           string `json:"employee_type"`
	Gender         string `json:"employee_gender"`
	BirthDate      string `json:"employee_birth_date"`
	OldID          string `json:"employee_old_id"`
	JoinDate       string `json:"employee_join_date"`
	LeftDate       string `json:"employee_left_date"`
	ContractType   string `json:"contract_type"`
	ContractID     string `json:"contract_id"`
	ContractBegin  string `json:"contract_begin"`
	ContractEnd    string `json:"contract_end"`
	MaternityType  string `json:"maternity_type"`
	MaternityBegin string `json:"maternity_begin"`
	MaternityEnd   string `json:"maternity_end"`
	Image          string `json:"employee_image"`
}

// Source fetches the full employee list from the HR system.
type Source interface {
	FetchEmployees(ctx context.Context) ([]Employee, error)
}

// Directory serves employee lists, possibly from a cache.
type Directory interface {
	List(ctx context.Context) ([]Employee, error)
	// Refresh reloads the list from the source, bypassing cached data.
	Refresh(ctx context.Context) error
}
