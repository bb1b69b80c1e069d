package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Title is one row of an employee's title history. ToDate is open for the
// current title.
type Title struct {
	EmpNo    int64     `json:"emp_no" db:"emp_no"`
	Title    string    `json:"title" db:"title"`
	FromDate time.Time `json:"from_date" db:"from_date"`
	ToDate   null.Time `json:"to_date" db:"to_date"`
}
