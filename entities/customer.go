package entities

const (
	AccountTypeCurrent = "Current"
	AccountTypeSavings = "Savings"

	GenderMale   = "M"
	GenderFemale = "F"
)

// Customer mirrors the customer service record.
type Customer struct {
	SSNID          string  `json:"ssnId"`
	CustomerName   string  `json:"customerName"`
	Email          string  `json:"email"`
	Address        string  `json:"address"`
	ContactNumber  string  `json:"contactNumber"`
	AadharNumber   string  `json:"aadharNumber"`
	PanNumber      string  `json:"panNumber"`
	AccountNumber  string  `json:"accountNumber"`
	InitialDeposit float64 `json:"initialDeposit"`
	Age            *int    `json:"age,omitempty"`
	DateOfBirth    string  `json:"dateOfBirth,omitempty"`
	City           string  `json:"city,omitempty"`
	Gender         string  `json:"gender,omitempty"`
	AccountType    string  `json:"accountType,omitempty"`
	Balance        float64 `json:"balance"`
}

// CustomerRegistration is what the public registration form collects.
type CustomerRegistration struct {
	SSNID          string  `json:"ssnId"`
	CustomerName   string  `json:"customerName"`
	Email          string  `json:"email"`
	Password       string  `json:"password"`
	Username       string  `json:"username,omitempty"`
	ContactNumber  string  `json:"contactNumber"`
	InitialDeposit float64 `json:"initialDeposit"`
	AadharNumber   string  `json:"aadharNumber"`
	PanNumber      string  `json:"panNumber"`
	AccountNumber  string  `json:"accountNumber"`
	AccountType    string  `json:"accountType"`
	Address        string  `json:"address"`
}

// Customer converts the registration into the record the customer service stores.
func (r CustomerRegistration) Customer() Customer {
	return Customer{
		SSNID:          r.SSNID,
		CustomerName:   r.CustomerName,
		Email:          r.Email,
		Address:        r.Address,
		ContactNumber:  r.ContactNumber,
		AadharNumber:   r.AadharNumber,
		PanNumber:      r.PanNumber,
		AccountNumber:  r.AccountNumber,
		InitialDeposit: r.InitialDeposit,
		AccountType:    r.AccountType,
		Balance:        r.InitialDeposit,
	}
}
