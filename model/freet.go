package model

import "time"

/*

Freet is a short post authored by a user.

Id: primary key, uuid string
CreatedAt: time the freet was posted (dateCreated)
UpdatedAt: time the freet was last modified (dateModified); list endpoints
order by this field, newest first

AuthorID:
Author: the user who posted the freet, "belongs-to" relation
Circles: circles the freet is tagged with, "many-to-many" relation. The whole
list can be replaced when the freet is edited. Deleting a circle only removes
the tag, never the freet.

*/

type Freet struct {
	Id        string `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Content   string
	AuthorID  string
	Author    User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Circles   []*Circle `json:"circles" gorm:"many2many:freet_circles;"`
}
