package model

import "time"

/*

Follow is a directed edge from one user to another.

UserID: the follower
FollowingID: the user being followed
CreatedAt: time the follow was created (dateFollowed)

The (user_id, following_id) pair is unique. The validation layer rejects
duplicates with a 403 before insert; the index closes the check-then-act race.

*/

type Follow struct {
	Id          string `gorm:"primaryKey"`
	CreatedAt   time.Time
	UserID      string `gorm:"uniqueIndex:idx_follow_edge"`
	User        User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	FollowingID string `gorm:"uniqueIndex:idx_follow_edge"`
	Following   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
