package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents the centralized account table. Patients are users with
// the patient role.
type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoleID     int       `gorm:"not null;index" json:"role_id"`
	Email      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password   string    `gorm:"type:text;not null" json:"-"`
	FullName   string    `gorm:"type:varchar(255);not null" json:"full_name"`
	NationalID string    `gorm:"type:varchar(20);index" json:"national_id,omitempty"`
	Phone      string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	IsActive   *bool     `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role Role `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// Active reports whether the account may log in. A nil flag counts as active.
func (u *User) Active() bool {
	return u.IsActive == nil || *u.IsActive
}
