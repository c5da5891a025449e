package domain

import "time"

// Role of an authenticated caller
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleAssociation Role = "user"
)

// Association is a tenant whose members share one login code
type Association struct {
	ID        int64
	Name      string
	CodeHash  string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Number of bookings, filled by listings only
	BookingCount int
}

// Requester describes who asks for an operation.
// Credential is the secret the caller presented for this request, if any.
type Requester struct {
	Role          Role
	AssociationID int64
	Credential    string
}

// IsAdmin returns true for the admin role
func (r Requester) IsAdmin() bool {
	return r.Role == RoleAdmin
}

// Owns returns true if the requester's association made the booking
func (r Requester) Owns(b *Booking) bool {
	return r.Role == RoleAssociation && r.AssociationID > 0 && r.AssociationID == b.AssociationID
}
