package usecase

import "strings"

// Actor is the authenticated caller as supplied by the upstream identity
// collaborator. The core only checks relationships (owner, assigned
// freelancer, admin); authentication itself is out of scope.

const (
	RoleClient     = "client"
	RoleFreelancer = "freelancer"
	RoleAdmin      = "admin"
)

type Actor struct {
	ID   string
	Role string
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

func (a Actor) Valid() bool { return strings.TrimSpace(a.ID) != "" }
