package model

import "time"

// SessionModel mirrors the 'sessions' table. The partial unique index lets
// the database enforce at-most-one active session per (user, user agent)
// pair; a violated insert tells racing callers to re-fetch instead.
type SessionModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	UserID       int64     `gorm:"column:user_id;not null;uniqueIndex:idx_sessions_user_agent_active,where:is_active"`
	UserAgent    string    `gorm:"column:useragent;type:varchar(255);not null;uniqueIndex:idx_sessions_user_agent_active,where:is_active"`
	AccessToken  string    `gorm:"column:jwt;type:text;not null;index"`
	RefreshToken string    `gorm:"column:refresh_token;type:text;not null;index"`
	IsActive     bool      `gorm:"column:is_active;not null;default:true"`
	LastActivity time.Time `gorm:"column:last_activity;not null"`
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}
