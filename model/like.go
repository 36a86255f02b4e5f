package model

import "time"

/*

Like is a directed edge from a user to a freet.

UserID: the user who liked the freet
FreetID: the freet being liked
CreatedAt: time the like was created (dateLiked)

The (user_id, freet_id) pair is unique, same pattern as Follow.

*/

type Like struct {
	Id        string `gorm:"primaryKey"`
	CreatedAt time.Time
	UserID    string `gorm:"uniqueIndex:idx_like_edge"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	FreetID   string `gorm:"uniqueIndex:idx_like_edge"`
	Freet     Freet  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
