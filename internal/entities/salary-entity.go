package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Salary struct {
	EmpNo    int64     `json:"emp_no" db:"emp_no"`
	Salary   int64     `json:"salary" db:"salary"`
	FromDate time.Time `json:"from_date" db:"from_date"`
	ToDate   null.Time `json:"to_date" db:"to_date"`
}
