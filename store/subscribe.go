package store

import (
	"time"

	"github.com/fritterapp/fritter/model"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// AddSubscribe creates a subscription edge from the user to the circle and
// returns it with both sides populated.
func (s *Store) AddSubscribe(userID, circleID string) (*model.Subscribe, error) {
	subscribe := model.Subscribe{
		Id:        uuid.New().String(),
		CreatedAt: time.Now(),
		UserID:    userID,
		CircleID:  circleID,
	}
	if err := s.db.Create(&subscribe).Error; err != nil {
		return nil, errors.Wrap(err, "create subscribe")
	}

	var populated model.Subscribe
	if err := s.db.Preload("User").Preload("Circle").Where("id = ?", subscribe.Id).First(&populated).Error; err != nil {
		return nil, errors.Wrap(err, "reload subscribe")
	}
	return &populated, nil
}

// FindSubscribe returns the subscription edge from the user to the circle, or
// nil if there is none.
func (s *Store) FindSubscribe(userID, circleID string) (*model.Subscribe, error) {
	var subscribe model.Subscribe
	res := s.db.Preload("User").Preload("Circle").
		Where("user_id = ? AND circle_id = ?", userID, circleID).First(&subscribe)
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &subscribe, nil
}

// FindSubscriptionsByUsername returns every subscription the named user has.
func (s *Store) FindSubscriptionsByUsername(username string) ([]model.Subscribe, error) {
	user, err := s.FindUserByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	var subscribes []model.Subscribe
	if err := s.db.Preload("User").Preload("Circle").Where("user_id = ?", user.Id).Find(&subscribes).Error; err != nil {
		return nil, errors.Wrap(err, "find subscriptions")
	}
	return subscribes, nil
}

// FindSubscribersByCircle returns every subscription to the given circle.
func (s *Store) FindSubscribersByCircle(circleID string) ([]model.Subscribe, error) {
	var subscribes []model.Subscribe
	if err := s.db.Preload("User").Preload("Circle").Where("circle_id = ?", circleID).Find(&subscribes).Error; err != nil {
		return nil, errors.Wrap(err, "find subscribers")
	}
	return subscribes, nil
}

// DeleteSubscribe removes the subscription edge from the user to the circle.
func (s *Store) DeleteSubscribe(userID, circleID string) (bool, error) {
	res := s.db.Where("user_id = ? AND circle_id = ?", userID, circleID).Delete(&model.Subscribe{})
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "delete subscribe")
	}
	return res.RowsAffected > 0, nil
}

func (s *Store) deleteSubscribesByUser(userID string) error {
	res := s.db.Where("user_id = ?", userID).Delete(&model.Subscribe{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete subscribes by user")
	}
	return nil
}

func (s *Store) deleteSubscribesByCircle(circleID string) error {
	res := s.db.Where("circle_id = ?", circleID).Delete(&model.Subscribe{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete subscribes by circle")
	}
	return nil
}
