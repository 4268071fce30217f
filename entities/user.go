package entities

const (
	RoleAdmin = "admin"
	RoleUser  = "usuario"
)

type User struct {
	ID       uint    `gorm:"primaryKey;column:id" json:"id"`
	Username string  `gorm:"column:username;uniqueIndex" json:"username"`
	Password string  `gorm:"column:password" json:"-"`
	Role     string  `gorm:"column:role" json:"role"`
	Email    *string `gorm:"column:email" json:"email"`
}

func (User) TableName() string { return "usuarios" }

func (u *User) IsAdmin() bool { return u != nil && u.Role == RoleAdmin }
