package model

// Scope carries the identity of the caller through use-case calls.
type Scope struct {
	SessionID string // per-conversation draft ownership
	UserID    string // record store username of the employee
	Username  string
}

// Environment names the deployment environment.
type Environment string

const (
	EnvironmentProduction  Environment = "production"
	EnvironmentDevelopment Environment = "development"
)
