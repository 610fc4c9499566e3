package entity

import "encoding/json"

// StagedRegistration is a not-yet-persisted user waiting in the ephemeral
// store for email confirmation. The zero value is deliberately unusable:
// construct it through NewStagedRegistration so a record without a salt can
// never reach the persistence step.
type StagedRegistration struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"password"`
	Salt         string `json:"salt"`
}

// NewStagedRegistration builds a registration payload ready for staging.
// The salt is a required argument, not an optional field filled in later.
func NewStagedRegistration(username, email, passwordHash, salt string) *StagedRegistration {
	return &StagedRegistration{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Salt:         salt,
	}
}

// Encode serializes the staged registration for the ephemeral store.
func (r *StagedRegistration) Encode() (string, error) {
	raw, err := json.Marshal(r)
	if err != nil {
		return "", err
	}

	return string(raw), nil
}

// DecodeStagedRegistration restores a staged registration from its stored form.
func DecodeStagedRegistration(raw string) (*StagedRegistration, error) {
	var reg StagedRegistration
	if err := json.Unmarshal([]byte(raw), &reg); err != nil {
		return nil, err
	}

	return &reg, nil
}

// User converts the confirmed registration into the credential row to
// persist, tagged with the id the user directory assigned.
func (r *StagedRegistration) User(directoryID int64) *User {
	return &User{
		DirectoryID:  directoryID,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		Salt:         r.Salt,
	}
}
