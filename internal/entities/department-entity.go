package entities

type Department struct {
	DeptNo   string `json:"dept_no" db:"dept_no"`
	DeptName string `json:"dept_name" db:"dept_name"`
}
