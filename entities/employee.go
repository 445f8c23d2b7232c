package entities

const (
	DesignationClerk      = "Clerk"
	DesignationManager    = "Manager"
	DesignationAccountant = "Accountant"
)

// Employee mirrors the employee service record.
type Employee struct {
	EmployeeID    int64   `json:"employeeId"`
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	Email         string  `json:"email"`
	ContactNumber string  `json:"contactNumber"`
	Designation   string  `json:"designation"`
	Salary        float64 `json:"salary"`
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// Designations lists every designation in display order.
var Designations = []string{DesignationClerk, DesignationManager, DesignationAccountant}
