package models

import "time"

// Role values stored in users.role.
const (
	RoleLecturer = "dosen"
	RoleStudent  = "mahasiswa"
)

type User struct {
	ID           int       `gorm:"primaryKey;column:id" json:"id"`
	Username     string    `gorm:"column:username;size:50;unique" json:"username"`
	Password     string    `gorm:"column:password;size:255" json:"-"`
	Role         string    `gorm:"column:role;size:20" json:"role"`
	Name         string    `gorm:"column:name;size:100" json:"name"`
	NIM          *string   `gorm:"column:nim;size:20;unique" json:"nim"`
	Email        *string   `gorm:"column:email;size:100" json:"email,omitempty"`
	ProfilePhoto *string   `gorm:"column:profile_photo;size:255" json:"profile_photo"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string { return "users" }

func (u *User) IsLecturer() bool { return u.Role == RoleLecturer }

func (u *User) IsStudent() bool { return u.Role == RoleStudent }

// StudentPublic is the subset of student fields embedded in submission
// and logbook responses.
type StudentPublic struct {
	ID           int     `gorm:"primaryKey;column:id" json:"id"`
	Name         string  `gorm:"column:name" json:"name"`
	NIM          *string `gorm:"column:nim" json:"nim"`
	ProfilePhoto *string `gorm:"column:profile_photo" json:"profile_photo"`
}

func (StudentPublic) TableName() string { return "users" }
