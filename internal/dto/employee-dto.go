package dto

type EmployeeDTO struct {
	EmpNo     int64  `json:"emp_no"`
	BirthDate string `json:"birth_date"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gender    string `json:"gender"`
	HireDate  string `json:"hire_date"`
}

type ShortEmployeeDTO struct {
	EmpNo     int64  `json:"emp_no"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type TitleDTO struct {
	Title    string `json:"title"`
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date,omitempty"`
}

type SalaryDTO struct {
	Salary   int64  `json:"salary"`
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date,omitempty"`
}

// EmployeeDetailsDTO is one employee with the full title and salary history.
type EmployeeDetailsDTO struct {
	EmployeeDTO
	Titles   []TitleDTO  `json:"titles"`
	Salaries []SalaryDTO `json:"salaries"`
}
