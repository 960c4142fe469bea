package entity

import "time"

type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

type User struct {
	Base
	FullName     string     `db:"full_name"`
	Email        string     `db:"email"`
	PasswordHash string     `db:"password"`
	Phone        string     `db:"phone"`
	Avatar       *string    `db:"avatar"`
	Gender       *string    `db:"gender"`
	Birthday     *time.Time `db:"birthday"`
	Role         UserRole   `db:"role"`
	Enabled      bool       `db:"enabled"`
}
