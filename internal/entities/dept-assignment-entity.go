package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// DeptAssignment links an employee to a department over a period of time.
type DeptAssignment struct {
	EmpNo    int64     `json:"emp_no" db:"emp_no"`
	DeptNo   string    `json:"dept_no" db:"dept_no"`
	FromDate time.Time `json:"from_date" db:"from_date"`
	ToDate   null.Time `json:"to_date" db:"to_date"`
}
