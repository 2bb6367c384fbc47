package model

// HRUser is an employee in the HR store, with the reporting line needed to
// route approvals.
type HRUser struct {
	ID           string
	Name         string
	Email        string
	ManagerID    string
	ManagerName  string
	ManagerEmail string
}

// FAQ is a published knowledge article surfaced to the user.
type FAQ struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	URL      string `json:"url"`
}
