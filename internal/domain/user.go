package domain

import "time"

// 角色层级：regular(0) < admin(1) < main(2)，main 全局唯一
const (
	RoleRegular = 0
	RoleAdmin   = 1
	RoleMain    = 2
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	IsAdmin   bool      `gorm:"not null;default:false" json:"is_admin"`
	UserType  int       `gorm:"not null;default:0" json:"user_type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	Create(u *User) error
	FindByID(id uint) (*User, error)
	FindByEmail(email string) (*User, error)
	FirstByType(userType int) (*User, error)
	List() ([]User, error)
	UpdateFields(id uint, fields map[string]any) error
	Delete(id uint) (bool, error)
}
