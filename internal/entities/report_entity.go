package entities

import "time"

// ReportFilter narrows and paginates the denormalized report.
// DepartmentName is a case-sensitive exact match applied after the joins;
// nil means unfiltered. PerPage == 0 disables pagination.
type ReportFilter struct {
	DepartmentName *string
	Page           int
	PerPage        int
}

// ReportRow is one row of the five-way join. An employee with several
// concurrent title or salary rows produces one row per combination; the
// expansion is intentional and never deduplicated.
type ReportRow struct {
	EmpNo     int64     `json:"emp_no" db:"emp_no"`
	FirstName string    `json:"first_name" db:"first_name"`
	LastName  string    `json:"last_name" db:"last_name"`
	Title     string    `json:"title" db:"title"`
	DeptNo    string    `json:"dept_no" db:"dept_no"`
	DeptName  string    `json:"dept_name" db:"dept_name"`
	FromDate  time.Time `json:"from_date" db:"from_date"`
	Salary    int64     `json:"salary" db:"salary"`
}
