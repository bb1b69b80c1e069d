package dto

type DepartmentDTO struct {
	DeptNo   string `json:"dept_no"`
	DeptName string `json:"dept_name"`
}

// DepartmentDetailsDTO adds the number of assignment rows pointing at the
// department, historical ones included.
type DepartmentDetailsDTO struct {
	DepartmentDTO
	Headcount int `json:"headcount"`
}
