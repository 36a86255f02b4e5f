package model

import "time"

/*

Subscribe is a directed edge from a user to a circle.

UserID: the subscriber
CircleID: the circle being subscribed to
CreatedAt: time the subscription was created (dateSubscribed)

The (user_id, circle_id) pair is unique, same pattern as Follow and Like.

*/

type Subscribe struct {
	Id        string `gorm:"primaryKey"`
	CreatedAt time.Time
	UserID    string `gorm:"uniqueIndex:idx_subscribe_edge"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CircleID  string `gorm:"uniqueIndex:idx_subscribe_edge"`
	Circle    Circle `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
