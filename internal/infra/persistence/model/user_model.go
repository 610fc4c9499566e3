package model

import "time"

// UserModel mirrors the 'users' table: local credential material plus the
// id the remote user directory assigned to the account.
type UserModel struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	DirectoryID  int64   `gorm:"column:directory_id;uniqueIndex;not null"`
	Username     string  `gorm:"type:varchar(16);unique;not null"`
	PasswordHash string  `gorm:"column:password;type:varchar(64);not null"`
	Salt         string  `gorm:"type:varchar(16);not null"`
	TotpSecret   *string `gorm:"column:totp_secret;type:varchar(64)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
