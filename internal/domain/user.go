package domain

// UserType discriminates the two user variants stored in one table
type UserType string

const (
	UserTypeCustomer      UserType = "C" // Customer account
	UserTypeAdministrator UserType = "A" // Back office administrator
)

// Valid reports whether t is one of the known variants
func (t UserType) Valid() bool {
	return t == UserTypeCustomer || t == UserTypeAdministrator
}

// Customer Model
type Customer struct {
	ID            int64  `json:"id"`             // Assigned by the store
	Login         string `json:"login"`          // Unique across all users
	PasswordHash  string `json:"-"`              // Hashed password, never serialized
	Email         string `json:"email"`          // Email address
	FirstName     string `json:"first_name"`     // First name
	LastName      string `json:"last_name"`      // Last name
	HomeNumber    string `json:"home_number"`    // Optional home number
	WorkNumber    string `json:"work_number"`    // Optional work number
	MobileNumber  string `json:"mobile_number"`  // Optional mobile number
	StreetAddress string `json:"street_address"` // Street address
	Suburb        string `json:"suburb"`         // Suburb
	City          string `json:"city"`           // City
	IsDisabled    bool   `json:"is_disabled"`    // Soft delete marker
}

// CustomerProfile holds every customer field an update may change.
// It has no password field.
type CustomerProfile struct {
	Login         string // Unique login
	Email         string // Email address
	FirstName     string // First name
	LastName      string // Last name
	HomeNumber    string // Optional home number
	WorkNumber    string // Optional work number
	MobileNumber  string // Optional mobile number
	StreetAddress string // Street address
	Suburb        string // Suburb
	City          string // City
}

// NewCustomer is a profile plus the pre-hashed password used on registration
type NewCustomer struct {
	CustomerProfile
	PasswordHash string // Hash computed by the caller
}

// Profile returns the updatable part of c
func (c Customer) Profile() CustomerProfile {
	return CustomerProfile{
		Login:         c.Login,
		Email:         c.Email,
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		HomeNumber:    c.HomeNumber,
		WorkNumber:    c.WorkNumber,
		MobileNumber:  c.MobileNumber,
		StreetAddress: c.StreetAddress,
		Suburb:        c.Suburb,
		City:          c.City,
	}
}

// HasContactNumber reports whether at least one of the three numbers is set
func (p CustomerProfile) HasContactNumber() bool {
	return p.HomeNumber != "" || p.WorkNumber != "" || p.MobileNumber != ""
}

// Administrator Model
type Administrator struct {
	ID           int64  `json:"id"`    // Assigned by the store
	Login        string `json:"login"` // Unique across all users
	PasswordHash string `json:"-"`     // Hashed password, never serialized
	Email        string `json:"email"` // Email address
}
