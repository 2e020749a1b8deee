// Package models contains the persisted entities of the server.
package models

// User is an account record. VerificationCode is present only while email
// confirmation is pending and is cleared the moment Verified becomes true.
// The created_at audit column stays in the schema but is never read by the
// application.
type User struct {
	ID               string
	Username         string
	Email            string
	PasswordHash     string
	VerificationCode string
	Verified         bool
}
