package models

// Admin is the account allowed to edit rosters.
//
// There is a single admin configured through the admin.* settings; its
// password is only ever held as a bcrypt hash.
type Admin struct {
	// Name is the login name (e.g., "coach"). It is used as the token subject.
	Name string

	// PasswordHash is the bcrypt hash of the admin password.
	PasswordHash string
}
