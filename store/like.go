package store

import (
	"time"

	"github.com/fritterapp/fritter/model"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// AddLike creates a like edge from the user to the freet and returns it with
// both sides populated.
func (s *Store) AddLike(userID, freetID string) (*model.Like, error) {
	like := model.Like{
		Id:        uuid.New().String(),
		CreatedAt: time.Now(),
		UserID:    userID,
		FreetID:   freetID,
	}
	if err := s.db.Create(&like).Error; err != nil {
		return nil, errors.Wrap(err, "create like")
	}

	var populated model.Like
	if err := s.db.Preload("User").Preload("Freet").Where("id = ?", like.Id).First(&populated).Error; err != nil {
		return nil, errors.Wrap(err, "reload like")
	}
	return &populated, nil
}

// FindLike returns the like edge from the user to the freet, or nil if there
// is none.
func (s *Store) FindLike(userID, freetID string) (*model.Like, error) {
	var like model.Like
	res := s.db.Preload("User").Preload("Freet").
		Where("user_id = ? AND freet_id = ?", userID, freetID).First(&like)
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &like, nil
}

// FindLikesByFreet returns every like on the given freet.
func (s *Store) FindLikesByFreet(freetID string) ([]model.Like, error) {
	var likes []model.Like
	if err := s.db.Preload("User").Preload("Freet").Where("freet_id = ?", freetID).Find(&likes).Error; err != nil {
		return nil, errors.Wrap(err, "find likes by freet")
	}
	return likes, nil
}

// FindLikesByUsername returns every like created by the named user.
func (s *Store) FindLikesByUsername(username string) ([]model.Like, error) {
	user, err := s.FindUserByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	var likes []model.Like
	if err := s.db.Preload("User").Preload("Freet").Where("user_id = ?", user.Id).Find(&likes).Error; err != nil {
		return nil, errors.Wrap(err, "find likes by user")
	}
	return likes, nil
}

// DeleteLike removes the like edge from the user to the freet.
func (s *Store) DeleteLike(userID, freetID string) (bool, error) {
	res := s.db.Where("user_id = ? AND freet_id = ?", userID, freetID).Delete(&model.Like{})
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "delete like")
	}
	return res.RowsAffected > 0, nil
}

func (s *Store) deleteLikesByUser(userID string) error {
	res := s.db.Where("user_id = ?", userID).Delete(&model.Like{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete likes by user")
	}
	return nil
}

func (s *Store) deleteLikesByFreet(freetID string) error {
	res := s.db.Where("freet_id = ?", freetID).Delete(&model.Like{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete likes by freet")
	}
	return nil
}
