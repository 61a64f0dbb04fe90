package models

import "time"

type User struct {
	ID           int64     `json:"id" db:"id" bson:"id"`
	Username     string    `json:"username" db:"username" bson:"username"`
	Email        string    `json:"email" db:"email" bson:"email"`
	PasswordHash string    `json:"-" db:"password_hash" bson:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at" bson:"created_at"`
}
