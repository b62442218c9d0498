package model

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// swagger:model User
type User struct {
	UUIDBase
	Email             string   `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Username          string   `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Password          string   `gorm:"size:100;not null" json:"-"`
	Avatar            string   `gorm:"size:255" json:"avatar,omitempty"`
	Role              UserRole `gorm:"size:20;default:'user'" json:"role"`
	ContributionScore int      `gorm:"default:0" json:"contributionScore"`
	Disabled          bool     `gorm:"default:false" json:"disabled"`
}

func (User) TableName() string {
	return "users"
}
