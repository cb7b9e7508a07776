package models

import "time"

const RoleUser = "USER"

type User struct {
	ID        string    `json:"id" db:"user_id"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"`
	Role      string    `json:"role" db:"role"`
	Provider  string    `json:"provider,omitempty" db:"provider"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
