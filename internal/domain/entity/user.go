// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the local credential record for one account. The canonical
// identity (email, friends, rank) lives in the remote user directory;
// this row only mirrors what the auth engine needs to check passwords
// and second factors.
type User struct {
	ID           int64     // Local primary key.
	DirectoryID  int64     // The account's id in the remote user directory.
	Username     string    // Unique login name, also the 2FA pending-record key.
	PasswordHash string    // Hex-encoded sha256(password + salt).
	Salt         string    // Per-user random salt mixed into the password hash.
	TotpSecret   *string   // Base32 TOTP secret; nil while no second factor is linked.
	CreatedAt    time.Time // Timestamp of when this credential row was created.
	UpdatedAt    time.Time // Timestamp of the last credential change.
}

// TwoFactorEnabled reports whether a second factor is linked to the account.
func (u *User) TwoFactorEnabled() bool {
	return u.TotpSecret != nil && *u.TotpSecret != ""
}

// BaseUserInfo is the minimal identity exposed to other services when they
// ask who owns a token.
type BaseUserInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
