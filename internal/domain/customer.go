package domain

import "time"

type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "ACTIVE"
	CustomerStatusInactive CustomerStatus = "INACTIVE"
)

type Customer struct {
	ID             string         `json:"id"`
	CustomerID     string         `json:"customerId"`
	FirstName      string         `json:"firstName"`
	LastName       string         `json:"lastName"`
	Phone          string         `json:"phone"`
	AlternatePhone string         `json:"alternatePhone"`
	Email          string         `json:"email"`
	Address        string         `json:"address"`
	City           string         `json:"city"`
	State          string         `json:"state"`
	Pincode        string         `json:"pincode"`
	Status         CustomerStatus `json:"status"`
	BranchID       *string        `json:"branchId,omitempty"`
	BranchName     string         `json:"branchName,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	Loans          []Loan         `json:"-"`
	Ornaments      []Ornament     `json:"-"`
	Notes          []Note         `json:"-"`
}

func (c *Customer) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

type Note struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customerId"`
	UserID     string    `json:"userId"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
	Author     NoteUser  `json:"user"`
}

type NoteUser struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}
