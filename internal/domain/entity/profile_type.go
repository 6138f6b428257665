// Package entity contains the core business objects of the project.
package entity

// ProfileType represents the kind of account a user registered as.
type ProfileType string

const (
	// ProfileTypeCustomer indicates an account that browses and orders offers.
	ProfileTypeCustomer ProfileType = "customer"
	// ProfileTypeBusiness indicates an account that publishes offers.
	ProfileTypeBusiness ProfileType = "business"
)

// String returns the string representation of the ProfileType.
func (t ProfileType) String() string {
	return string(t)
}

// IsValid checks if the ProfileType is a valid value.
func (t ProfileType) IsValid() bool {
	switch t {
	case ProfileTypeCustomer, ProfileTypeBusiness:
		return true
	default:
		return false
	}
}
