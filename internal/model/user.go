package model

import "time"

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Surname      string    `json:"surname"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the subset of a user that is embedded in a session token.
type Identity struct {
	Email string
	ID    int64
}

// Claims are the decoded contents of a verified session token.
type Claims struct {
	Email     string    `json:"email"`
	ID        int64     `json:"id"`
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"`
}

type Profile struct {
	ID      int64  `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

func (u User) Identity() Identity {
	return Identity{Email: u.Email, ID: u.ID}
}

func (u User) Profile() Profile {
	return Profile{ID: u.ID, Email: u.Email, Name: u.Name, Surname: u.Surname}
}
