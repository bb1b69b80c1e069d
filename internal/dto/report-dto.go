package dto

// ReportQueryDTO carries the validated report query parameters.
type ReportQueryDTO struct {
	Department string `query:"department" validate:"omitempty,max=40"`
	Format     string `query:"format" validate:"omitempty,oneof=json xlsx"`
	Page       int    `query:"page" validate:"omitempty,gt=0"`
	Limit      int    `query:"limit" validate:"omitempty,gt=0,lte=10000"`
}

type ReportRowDTO struct {
	EmpNo     int64  `json:"emp_no"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Title     string `json:"title"`
	DeptNo    string `json:"dept_no"`
	DeptName  string `json:"dept_name"`
	FromDate  string `json:"from_date"`
	Salary    int64  `json:"salary"`
}
