// Package models defines server-side data models persisted in the database.
package models

// User is a registered account. Identifier is unique per deployment and
// never changes once the record exists.
type User struct {
	Identifier     string
	Name           string
	PasswordDigest string
}
