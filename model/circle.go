package model

import "time"

/*

Circle is a named, categorized grouping. Freets can be tagged with circles and
users can subscribe to them.

Id: primary key, uuid string
CreatedAt: time the circle was created (dateCreated)

Title: display name, unique across the whole system (enforced both by the
validation layer and by a unique index)
Category: free-form grouping label, e.g. a topic or a locality name
AuthorID:
Author: the user who created the circle, "belongs-to" relation

Only Bio is mutable after creation.

*/

type Circle struct {
	Id        string `gorm:"primaryKey"`
	CreatedAt time.Time
	Title     string `gorm:"uniqueIndex"`
	Bio       string
	Category  string
	AuthorID  string
	Author    User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
