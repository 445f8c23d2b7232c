package validation

import (
	"strconv"
	"strings"

	"bank-portal/entities"
)

const DefaultCustomerPassword = "temp123"

type LoginForm struct {
	Identifier string `form:"identifier" binding:"required"`
	Password   string `form:"password" binding:"required"`
	Role       string `form:"role"`
}

type RegisterForm struct {
	SSNID           string  `form:"ssnId" binding:"required,ssn"`
	CustomerName    string  `form:"customerName" binding:"required,max=50"`
	Email           string  `form:"email" binding:"required,email"`
	Password        string  `form:"password" binding:"required,min=6"`
	ConfirmPassword string  `form:"confirmPassword" binding:"required,eqfield=Password"`
	ContactNumber   string  `form:"contactNumber" binding:"required,phone"`
	InitialDeposit  float64 `form:"initialDeposit" binding:"required,gte=0.01"`
	AadharNumber    string  `form:"aadharNumber" binding:"required,aadhaar"`
	PanNumber       string  `form:"panNumber" binding:"required,pan"`
	AccountNumber   string  `form:"accountNumber" binding:"required,max=20"`
	AccountType     string  `form:"accountType" binding:"accounttype"`
	Address         string  `form:"address" binding:"required,max=100"`
}

func (f RegisterForm) Registration() entities.CustomerRegistration {
	return entities.CustomerRegistration{
		SSNID:          f.SSNID,
		CustomerName:   f.CustomerName,
		Email:          f.Email,
		Password:       f.Password,
		Username:       f.Email,
		ContactNumber:  f.ContactNumber,
		InitialDeposit: f.InitialDeposit,
		AadharNumber:   f.AadharNumber,
		PanNumber:      f.PanNumber,
		AccountNumber:  f.AccountNumber,
		AccountType:    accountTypeOrDefault(f.AccountType),
		Address:        f.Address,
	}
}

// ProfileForm is what a customer may change about themselves.
type ProfileForm struct {
	CustomerName  string `form:"customerName" binding:"required"`
	Email         string `form:"email" binding:"required,email"`
	ContactNumber string `form:"contactNumber" binding:"required,phone"`
	AadharNumber  string `form:"aadharNumber" binding:"aadhaar"`
	PanNumber     string `form:"panNumber" binding:"pan"`
	DateOfBirth   string `form:"dateOfBirth" binding:"isodate"`
	Gender        string `form:"gender" binding:"gender"`
	City          string `form:"city"`
	Address       string `form:"address"`
}

func ProfileFormFrom(c entities.Customer) ProfileForm {
	return ProfileForm{
		CustomerName:  c.CustomerName,
		Email:         c.Email,
		ContactNumber: c.ContactNumber,
		AadharNumber:  c.AadharNumber,
		PanNumber:     c.PanNumber,
		DateOfBirth:   DateInput(c.DateOfBirth),
		Gender:        genderOrDefault(c.Gender),
		City:          c.City,
		Address:       c.Address,
	}
}

// Apply copies the form onto c.
func (f ProfileForm) Apply(c *entities.Customer) {
	c.CustomerName = f.CustomerName
	c.Email = f.Email
	c.ContactNumber = f.ContactNumber
	c.AadharNumber = f.AadharNumber
	c.PanNumber = f.PanNumber
	c.DateOfBirth = f.DateOfBirth
	c.Gender = genderOrDefault(f.Gender)
	c.City = f.City
	c.Address = f.Address
}

type DepositForm struct {
	Amount float64 `form:"amount" binding:"required,gte=1"`
}

type WithdrawForm struct {
	Amount float64 `form:"amount" binding:"required,gte=1000"`
}

type TransferForm struct {
	DestinationAccount string  `form:"destinationAccount" binding:"required"`
	Amount             float64 `form:"amount" binding:"required,gte=1"`
}

type SearchForm struct {
	SSNID string `form:"ssnId" binding:"required,ssn"`
}

// DeskCustomerForm is the employee desk's "new customer" form, which also creates a login.
type DeskCustomerForm struct {
	SSNID          string  `form:"ssnId" binding:"required,ssn"`
	CustomerName   string  `form:"customerName" binding:"required,max=50"`
	Email          string  `form:"email" binding:"required,email"`
	Password       string  `form:"password" binding:"omitempty,min=6"`
	ContactNumber  string  `form:"contactNumber" binding:"required,phone"`
	InitialDeposit float64 `form:"initialDeposit" binding:"required,gte=0.01"`
	AadharNumber   string  `form:"aadharNumber" binding:"required,aadhaar"`
	PanNumber      string  `form:"panNumber" binding:"required,pan"`
	AccountNumber  string  `form:"accountNumber" binding:"required,max=20"`
	AccountType    string  `form:"accountType" binding:"accounttype"`
	Address        string  `form:"address" binding:"required,max=100"`
}

// NewDeskCustomerForm returns the blank form with its defaults filled in.
func NewDeskCustomerForm() DeskCustomerForm {
	return DeskCustomerForm{Password: DefaultCustomerPassword, AccountType: entities.AccountTypeSavings}
}

func (f DeskCustomerForm) Registration() entities.CustomerRegistration {
	password := f.Password
	if password == "" {
		password = DefaultCustomerPassword
	}
	return entities.CustomerRegistration{
		SSNID:          f.SSNID,
		CustomerName:   f.CustomerName,
		Email:          f.Email,
		Password:       password,
		Username:       f.Email,
		ContactNumber:  f.ContactNumber,
		InitialDeposit: f.InitialDeposit,
		AadharNumber:   f.AadharNumber,
		PanNumber:      f.PanNumber,
		AccountNumber:  f.AccountNumber,
		AccountType:    accountTypeOrDefault(f.AccountType),
		Address:        f.Address,
	}
}

type DeskCustomerEditForm struct {
	CustomerName  string `form:"customerName" binding:"required,max=50"`
	Email         string `form:"email" binding:"required,email"`
	ContactNumber string `form:"contactNumber" binding:"phone"`
	Address       string `form:"address" binding:"max=100"`
	City          string `form:"city" binding:"max=50"`
	AccountType   string `form:"accountType" binding:"accounttype"`
}

func DeskCustomerEditFormFrom(c entities.Customer) DeskCustomerEditForm {
	return DeskCustomerEditForm{
		CustomerName:  c.CustomerName,
		Email:         c.Email,
		ContactNumber: c.ContactNumber,
		Address:       c.Address,
		City:          c.City,
		AccountType:   accountTypeOrDefault(c.AccountType),
	}
}

func (f DeskCustomerEditForm) Apply(c *entities.Customer) {
	c.CustomerName = f.CustomerName
	c.Email = f.Email
	c.ContactNumber = f.ContactNumber
	c.Address = f.Address
	c.City = f.City
	c.AccountType = accountTypeOrDefault(f.AccountType)
}

// ManagerCustomerForm registers or edits a customer without creating a login.
type ManagerCustomerForm struct {
	SSNID          string  `form:"ssnId" binding:"required,ssn"`
	CustomerName   string  `form:"customerName" binding:"required,max=50"`
	Email          string  `form:"email" binding:"required,email"`
	Age            string  `form:"age" binding:"omitempty,numeric"`
	AccountNumber  string  `form:"accountNumber" binding:"required,max=20"`
	AadharNumber   string  `form:"aadharNumber" binding:"aadhaar"`
	PanNumber      string  `form:"panNumber" binding:"pan"`
	City           string  `form:"city" binding:"max=50"`
	Gender         string  `form:"gender" binding:"gender"`
	InitialDeposit float64 `form:"initialDeposit" binding:"required,gte=0.01"`
	AccountType    string  `form:"accountType" binding:"accounttype"`
	DateOfBirth    string  `form:"dateOfBirth" binding:"isodate"`
	Address        string  `form:"address" binding:"required,max=100"`
	ContactNumber  string  `form:"contactNumber" binding:"phone"`
}

func NewManagerCustomerForm() ManagerCustomerForm {
	return ManagerCustomerForm{Gender: entities.GenderMale, AccountType: entities.AccountTypeSavings}
}

func ManagerCustomerFormFrom(c entities.Customer) ManagerCustomerForm {
	f := ManagerCustomerForm{
		SSNID:          c.SSNID,
		CustomerName:   c.CustomerName,
		Email:          c.Email,
		AccountNumber:  c.AccountNumber,
		AadharNumber:   c.AadharNumber,
		PanNumber:      c.PanNumber,
		City:           c.City,
		Gender:         genderOrDefault(c.Gender),
		InitialDeposit: c.InitialDeposit,
		AccountType:    accountTypeOrDefault(c.AccountType),
		DateOfBirth:    DateInput(c.DateOfBirth),
		Address:        c.Address,
		ContactNumber:  c.ContactNumber,
	}
	if c.Age != nil {
		f.Age = strconv.Itoa(*c.Age)
	}
	return f
}

// Customer builds the record to send; balance is left to the caller.
func (f ManagerCustomerForm) Customer() entities.Customer {
	c := entities.Customer{
		SSNID:          f.SSNID,
		CustomerName:   f.CustomerName,
		Email:          f.Email,
		Address:        f.Address,
		ContactNumber:  f.ContactNumber,
		AadharNumber:   f.AadharNumber,
		PanNumber:      f.PanNumber,
		AccountNumber:  f.AccountNumber,
		InitialDeposit: f.InitialDeposit,
		DateOfBirth:    f.DateOfBirth,
		City:           f.City,
		Gender:         genderOrDefault(f.Gender),
		AccountType:    accountTypeOrDefault(f.AccountType),
	}
	if age, err := strconv.Atoi(f.Age); err == nil {
		c.Age = &age
	}
	return c
}

type EmployeeForm struct {
	EmployeeID    int64   `form:"employeeId"`
	FirstName     string  `form:"firstName" binding:"required,max=50"`
	LastName      string  `form:"lastName" binding:"required,max=50"`
	Email         string  `form:"email" binding:"required,email"`
	Designation   string  `form:"designation" binding:"required,designation"`
	Salary        float64 `form:"salary" binding:"gte=0"`
	ContactNumber string  `form:"contactNumber" binding:"phone"`
	Address       string  `form:"address" binding:"max=255"`
}

func NewEmployeeForm() EmployeeForm {
	return EmployeeForm{Designation: entities.DesignationClerk}
}

func EmployeeFormFrom(e entities.Employee) EmployeeForm {
	return EmployeeForm{
		EmployeeID:    e.EmployeeID,
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		Email:         e.Email,
		Designation:   e.Designation,
		Salary:        e.Salary,
		ContactNumber: e.ContactNumber,
	}
}

// Employee drops the address, which the employee service does not store.
func (f EmployeeForm) Employee() entities.Employee {
	return entities.Employee{
		EmployeeID:    f.EmployeeID,
		FirstName:     f.FirstName,
		LastName:      f.LastName,
		Email:         f.Email,
		ContactNumber: f.ContactNumber,
		Designation:   f.Designation,
		Salary:        f.Salary,
	}
}

type ClerkRaiseForm struct {
	Amount float64 `form:"amount" binding:"required,gt=0"`
}

type ManagerRaiseForm struct {
	Percentage float64 `form:"percentage" binding:"required,gt=0"`
}

// DateInput trims a date or timestamp to the YYYY-MM-DD form a date input expects.
func DateInput(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 10 {
		return s[:10]
	}
	return s
}

func accountTypeOrDefault(s string) string {
	if s == "" {
		return entities.AccountTypeSavings
	}
	return s
}

func genderOrDefault(s string) string {
	if s == "" {
		return entities.GenderMale
	}
	return s
}
