package model

import "time"

const UserTypeAdmin = "admin"

type User struct {
	ID           int64     `gorm:"column:user_id;primaryKey" json:"user_id"`
	FirstName    string    `gorm:"column:first_name" json:"first_name"`
	LastName     string    `gorm:"column:last_name" json:"last_name"`
	Email        string    `gorm:"column:email" json:"email"`
	PasswordHash string    `gorm:"column:password_hash" json:"-"`
	Mobile       string    `gorm:"column:mobile" json:"mobile"`
	UserType     string    `gorm:"column:user_type" json:"user_type"`
	ShopID       *int64    `gorm:"column:shop_id" json:"shop_id"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// Principal is the authenticated identity attached to a request.
type Principal struct {
	UserID   int64
	Email    string
	UserType string
	ShopID   *int64
}

func (p Principal) IsAdmin() bool {
	return p.UserType == UserTypeAdmin
}

// AdminLog records an admin action against another user.
type AdminLog struct {
	ID             int64     `gorm:"column:log_id;primaryKey" json:"log_id"`
	AdminID        int64     `gorm:"column:admin_id" json:"admin_id"`
	ActionType     string    `gorm:"column:action_type" json:"action_type"`
	ActionDetails  string    `gorm:"column:action_details" json:"action_details"`
	AffectedUserID int64     `gorm:"column:affected_user_id" json:"affected_user_id"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
}

func (AdminLog) TableName() string {
	return "admin_logs"
}
