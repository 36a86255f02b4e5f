package server

import (
	"fmt"
	"strings"
	"time"

	"github.com/fritterapp/fritter/model"
)

// Response types are the flat, client-facing projections of stored records.
// Reference fields are replaced with display-friendly values: a referenced
// user becomes its username, a referenced circle its title. Dates are
// rendered like "April 5th 2024, 3:00:00 pm".

type UserResponse struct {
	ID         string `json:"_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Username   string `json:"username"`
	Bio        string `json:"bio"`
	DateJoined string `json:"dateJoined"`
}

type FreetResponse struct {
	ID           string   `json:"_id"`
	Content      string   `json:"content"`
	Author       string   `json:"author"`
	Circles      []string `json:"circles"`
	DateCreated  string   `json:"dateCreated"`
	DateModified string   `json:"dateModified"`
}

type CircleResponse struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Bio         string `json:"bio"`
	Category    string `json:"category"`
	Author      string `json:"author"`
	DateCreated string `json:"dateCreated"`
}

type FollowResponse struct {
	ID           string `json:"_id"`
	User         string `json:"user"`
	Following    string `json:"following"`
	DateFollowed string `json:"dateFollowed"`
}

type LikeResponse struct {
	ID        string `json:"_id"`
	User      string `json:"user"`
	Freet     string `json:"freet"`
	DateLiked string `json:"dateLiked"`
}

type SubscribeResponse struct {
	ID             string `json:"_id"`
	User           string `json:"user"`
	Circle         string `json:"circle"`
	DateSubscribed string `json:"dateSubscribed"`
}

// FormatDate encodes a date as an unambiguous human readable string, e.g.
// "April 5th 2024, 3:00:00 pm".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%s %s %d, %s",
		t.Format("January"), ordinal(t.Day()), t.Year(),
		strings.ToLower(t.Format("3:04:05 PM")))
}

func ordinal(day int) string {
	suffix := "th"
	if day%100 < 11 || day%100 > 13 {
		switch day % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", day, suffix)
}

// ConstructUserResponse shapes a user for the client. The password hash never
// leaves the server.
func ConstructUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:         user.Id,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Email:      user.Email,
		Username:   user.Username,
		Bio:        user.Bio,
		DateJoined: FormatDate(user.CreatedAt),
	}
}

// ConstructFreetResponse shapes a populated freet: author collapses to its
// username, circles to their titles.
func ConstructFreetResponse(freet *model.Freet) FreetResponse {
	titles := []string{}
	for _, circle := range freet.Circles {
		titles = append(titles, circle.Title)
	}
	return FreetResponse{
		ID:           freet.Id,
		Content:      freet.Content,
		Author:       freet.Author.Username,
		Circles:      titles,
		DateCreated:  FormatDate(freet.CreatedAt),
		DateModified: FormatDate(freet.UpdatedAt),
	}
}

// ConstructCircleResponse shapes a populated circle.
func ConstructCircleResponse(circle *model.Circle) CircleResponse {
	return CircleResponse{
		ID:          circle.Id,
		Title:       circle.Title,
		Bio:         circle.Bio,
		Category:    circle.Category,
		Author:      circle.Author.Username,
		DateCreated: FormatDate(circle.CreatedAt),
	}
}

// ConstructFollowResponse shapes a populated follow: both sides collapse to
// usernames.
func ConstructFollowResponse(follow *model.Follow) FollowResponse {
	return FollowResponse{
		ID:           follow.Id,
		User:         follow.User.Username,
		Following:    follow.Following.Username,
		DateFollowed: FormatDate(follow.CreatedAt),
	}
}

// ConstructLikeResponse shapes a populated like: the user collapses to its
// username, the freet to its id.
func ConstructLikeResponse(like *model.Like) LikeResponse {
	return LikeResponse{
		ID:        like.Id,
		User:      like.User.Username,
		Freet:     like.Freet.Id,
		DateLiked: FormatDate(like.CreatedAt),
	}
}

// ConstructSubscribeResponse shapes a populated subscription: the user
// collapses to its username, the circle to its title.
func ConstructSubscribeResponse(subscribe *model.Subscribe) SubscribeResponse {
	return SubscribeResponse{
		ID:             subscribe.Id,
		User:           subscribe.User.Username,
		Circle:         subscribe.Circle.Title,
		DateSubscribed: FormatDate(subscribe.CreatedAt),
	}
}
