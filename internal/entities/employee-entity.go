package entities

import "time"

type Employee struct {
	EmpNo     int64     `json:"emp_no" db:"emp_no"`
	BirthDate time.Time `json:"birth_date" db:"birth_date"`
	FirstName string    `json:"first_name" db:"first_name"`
	LastName  string    `json:"last_name" db:"last_name"`
	Gender    string    `json:"gender" db:"gender"`
	HireDate  time.Time `json:"hire_date" db:"hire_date"`
}
