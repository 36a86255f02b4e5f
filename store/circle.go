package store

import (
	"time"

	"github.com/fritterapp/fritter/model"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// AddCircle creates a circle and returns it with its author populated. Title
// uniqueness is checked by the validation layer before this runs; the unique
// index on title closes the remaining race.
func (s *Store) AddCircle(title, bio, category, authorID string) (*model.Circle, error) {
	circle := model.Circle{
		Id:        uuid.New().String(),
		CreatedAt: time.Now(),
		Title:     title,
		Bio:       bio,
		Category:  category,
		AuthorID:  authorID,
	}
	if err := s.db.Create(&circle).Error; err != nil {
		return nil, errors.Wrap(err, "create circle")
	}
	return s.FindCircleByID(circle.Id)
}

// FindCircleByID returns the circle with its author populated, or nil if
// there is none.
func (s *Store) FindCircleByID(circleID string) (*model.Circle, error) {
	var circle model.Circle
	res := s.db.Preload("Author").Where("id = ?", circleID).First(&circle)
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &circle, nil
}

// FindCircleByTitle returns the circle with the given title, or nil if there
// is none.
func (s *Store) FindCircleByTitle(title string) (*model.Circle, error) {
	var circle model.Circle
	res := s.db.Preload("Author").Where("title = ?", title).First(&circle)
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &circle, nil
}

// FindAllCircles returns every circle, most recently created first.
func (s *Store) FindAllCircles() ([]model.Circle, error) {
	var circles []model.Circle
	if err := s.db.Preload("Author").Order("created_at DESC").Find(&circles).Error; err != nil {
		return nil, errors.Wrap(err, "find circles")
	}
	return circles, nil
}

// FindCirclesByUsername returns the circles created by the given user.
func (s *Store) FindCirclesByUsername(username string) ([]model.Circle, error) {
	author, err := s.FindUserByUsername(username)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, errors.New("author not found")
	}

	var circles []model.Circle
	if err := s.db.Preload("Author").Where("author_id = ?", author.Id).Order("created_at DESC").Find(&circles).Error; err != nil {
		return nil, errors.Wrap(err, "find circles by author")
	}
	return circles, nil
}

// FindCirclesByCategory returns the circles in the given category.
func (s *Store) FindCirclesByCategory(category string) ([]model.Circle, error) {
	var circles []model.Circle
	if err := s.db.Preload("Author").Where("category = ?", category).Order("created_at DESC").Find(&circles).Error; err != nil {
		return nil, errors.Wrap(err, "find circles by category")
	}
	return circles, nil
}

// UpdateCircleBio replaces the circle's bio, the only mutable field.
func (s *Store) UpdateCircleBio(circleID, bio string) (*model.Circle, error) {
	var circle model.Circle
	res := s.db.Where("id = ?", circleID).First(&circle)
	if res.RowsAffected == 0 {
		return nil, errors.New("circle not found")
	}

	circle.Bio = bio
	if err := s.db.Save(&circle).Error; err != nil {
		return nil, errors.Wrap(err, "update circle")
	}
	return s.FindCircleByID(circleID)
}

// DeleteCircle removes the circle and the subscriptions referencing it.
// Freets tagged with the circle merely lose the tag.
func (s *Store) DeleteCircle(circleID string) (bool, error) {
	if err := s.deleteSubscribesByCircle(circleID); err != nil {
		return false, err
	}
	if err := s.db.Exec("DELETE FROM freet_circles WHERE circle_id = ?", circleID).Error; err != nil {
		return false, errors.Wrap(err, "untag freets")
	}

	res := s.db.Where("id = ?", circleID).Delete(&model.Circle{})
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "delete circle")
	}
	return res.RowsAffected > 0, nil
}

// deleteCirclesByAuthor removes every circle by the author, cascading each
// one so subscriptions to those circles are removed as well.
func (s *Store) deleteCirclesByAuthor(authorID string) error {
	var circles []model.Circle
	if err := s.db.Where("author_id = ?", authorID).Find(&circles).Error; err != nil {
		return errors.Wrap(err, "find circles by author")
	}
	for _, circle := range circles {
		if _, err := s.DeleteCircle(circle.Id); err != nil {
			return err
		}
	}
	return nil
}
