package model

// Scope carries the per-request session identity through usecases.
type Scope struct {
	SessionID string
}
