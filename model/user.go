package model

import "time"

/*

User is the root entity of the application. Every other entity references a
user either as its author or as one side of a social edge.

Id: primary key, uuid string
CreatedAt: time the account was created, shown to clients as dateJoined

Username: display handle, unique in practice. Lookups are case insensitive,
so "Alice" and "alice" resolve to the same account.
PasswordHash: bcrypt hash of the user's password. Plaintext is never stored.

*/

type User struct {
	Id           string `gorm:"primaryKey"`
	CreatedAt    time.Time
	FirstName    string
	LastName     string
	Email        string
	Username     string
	Bio          string
	PasswordHash string
}
