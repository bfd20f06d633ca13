package model

// User is a credential record. PasswordHash holds a bcrypt hash, never the plaintext.
type User struct {
	ID           int64  `json:"user_id" gorm:"column:user_id;primaryKey;autoIncrement"`
	Username     string `json:"username" gorm:"column:username;size:255;uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"column:password_hash;size:255;not null"`
}

// TableName pins the table name used by GORM.
func (User) TableName() string { return "users" }

// Credentials represents a validated signup or login payload.
type Credentials struct {
	Username string
	Password string
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}
