package store

import (
	"time"

	"github.com/fritterapp/fritter/model"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// AddFreet creates a freet tagged with the given circles. Unknown circle ids
// are dropped silently; the validation layer is responsible for rejecting
// requests that reference circles that must exist.
func (s *Store) AddFreet(content, authorID string, circleIDs []string) (*model.Freet, error) {
	var circles []*model.Circle
	if len(circleIDs) > 0 {
		if err := s.db.Where("id IN ?", circleIDs).Find(&circles).Error; err != nil {
			return nil, errors.Wrap(err, "find circles")
		}
	}

	freet := model.Freet{
		Id:        uuid.New().String(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		Content:   content,
		AuthorID:  authorID,
		Circles:   circles,
	}
	if err := s.db.Create(&freet).Error; err != nil {
		return nil, errors.Wrap(err, "create freet")
	}
	return s.FindFreetByID(freet.Id)
}

// FindFreetByID returns the freet with its author and circles populated, or
// nil if there is none.
func (s *Store) FindFreetByID(freetID string) (*model.Freet, error) {
	var freet model.Freet
	res := s.db.Preload("Author").Preload("Circles").Where("id = ?", freetID).First(&freet)
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &freet, nil
}

// FindAllFreets returns every freet, most recently modified first.
func (s *Store) FindAllFreets() ([]model.Freet, error) {
	var freets []model.Freet
	if err := s.db.Preload("Author").Preload("Circles").Order("updated_at DESC").Find(&freets).Error; err != nil {
		return nil, errors.Wrap(err, "find freets")
	}
	return freets, nil
}

// FindFreetsByUsername returns the freets authored by the given user, most
// recently modified first. The username lookup is case insensitive.
func (s *Store) FindFreetsByUsername(username string) ([]model.Freet, error) {
	author, err := s.FindUserByUsername(username)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, errors.New("author not found")
	}

	var freets []model.Freet
	if err := s.db.Preload("Author").Preload("Circles").Where("author_id = ?", author.Id).Order("updated_at DESC").Find(&freets).Error; err != nil {
		return nil, errors.Wrap(err, "find freets by author")
	}
	return freets, nil
}

// UpdateFreetCircles replaces the freet's circle list wholesale.
func (s *Store) UpdateFreetCircles(freetID string, circleIDs []string) (*model.Freet, error) {
	var freet model.Freet
	res := s.db.Where("id = ?", freetID).First(&freet)
	if res.RowsAffected == 0 {
		return nil, errors.New("freet not found")
	}

	var circles []*model.Circle
	if len(circleIDs) > 0 {
		if err := s.db.Where("id IN ?", circleIDs).Find(&circles).Error; err != nil {
			return nil, errors.Wrap(err, "find circles")
		}
	}
	if err := s.db.Model(&freet).Association("Circles").Replace(circles); err != nil {
		return nil, errors.Wrap(err, "replace circles")
	}

	// Replacing an association does not touch the row itself, but a circle
	// change counts as a modification for list ordering.
	if err := s.db.Model(&freet).Update("updated_at", time.Now()).Error; err != nil {
		return nil, errors.Wrap(err, "touch freet")
	}
	return s.FindFreetByID(freetID)
}

// DeleteFreet removes the freet, the likes referencing it, and its circle
// tags. Circles themselves are untouched.
func (s *Store) DeleteFreet(freetID string) (bool, error) {
	if err := s.deleteLikesByFreet(freetID); err != nil {
		return false, err
	}

	res := s.db.Select("Circles").Delete(&model.Freet{Id: freetID})
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "delete freet")
	}
	return res.RowsAffected > 0, nil
}

// deleteFreetsByAuthor removes every freet by the author, cascading each one
// so no orphaned likes or circle tags remain.
func (s *Store) deleteFreetsByAuthor(authorID string) error {
	var freets []model.Freet
	if err := s.db.Where("author_id = ?", authorID).Find(&freets).Error; err != nil {
		return errors.Wrap(err, "find freets by author")
	}
	for _, freet := range freets {
		if _, err := s.DeleteFreet(freet.Id); err != nil {
			return err
		}
	}
	return nil
}
