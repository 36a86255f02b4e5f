package store

import (
	"time"

	"github.com/fritterapp/fritter/model"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// AddFollow creates a follow edge from the user to the named account and
// returns it with both sides populated.
func (s *Store) AddFollow(userID, followingUsername string) (*model.Follow, error) {
	following, err := s.FindUserByUsername(followingUsername)
	if err != nil {
		return nil, err
	}
	if following == nil {
		return nil, errors.New("user to follow not found")
	}

	follow := model.Follow{
		Id:          uuid.New().String(),
		CreatedAt:   time.Now(),
		UserID:      userID,
		FollowingID: following.Id,
	}
	if err := s.db.Create(&follow).Error; err != nil {
		return nil, errors.Wrap(err, "create follow")
	}

	var populated model.Follow
	if err := s.db.Preload("User").Preload("Following").Where("id = ?", follow.Id).First(&populated).Error; err != nil {
		return nil, errors.Wrap(err, "reload follow")
	}
	return &populated, nil
}

// FindFollow returns the follow edge from the user to the named account, or
// nil if there is none.
func (s *Store) FindFollow(userID, followingUsername string) (*model.Follow, error) {
	following, err := s.FindUserByUsername(followingUsername)
	if err != nil || following == nil {
		return nil, err
	}

	var follow model.Follow
	res := s.db.Preload("User").Preload("Following").
		Where("user_id = ? AND following_id = ?", userID, following.Id).First(&follow)
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &follow, nil
}

// FindFollowingByUsername returns every follow created by the named user,
// i.e. the accounts they follow.
func (s *Store) FindFollowingByUsername(username string) ([]model.Follow, error) {
	user, err := s.FindUserByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	var follows []model.Follow
	if err := s.db.Preload("User").Preload("Following").Where("user_id = ?", user.Id).Find(&follows).Error; err != nil {
		return nil, errors.Wrap(err, "find following")
	}
	return follows, nil
}

// FindFollowersByUsername returns every follow pointing at the named user,
// i.e. their followers.
func (s *Store) FindFollowersByUsername(username string) ([]model.Follow, error) {
	user, err := s.FindUserByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	var follows []model.Follow
	if err := s.db.Preload("User").Preload("Following").Where("following_id = ?", user.Id).Find(&follows).Error; err != nil {
		return nil, errors.Wrap(err, "find followers")
	}
	return follows, nil
}

// DeleteFollow removes the follow edge from the user to the named account.
func (s *Store) DeleteFollow(userID, followingUsername string) (bool, error) {
	following, err := s.FindUserByUsername(followingUsername)
	if err != nil {
		return false, err
	}
	if following == nil {
		return false, nil
	}

	res := s.db.Where("user_id = ? AND following_id = ?", userID, following.Id).Delete(&model.Follow{})
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "delete follow")
	}
	return res.RowsAffected > 0, nil
}

// deleteFollowsByUser removes every follow edge touching the user, both the
// ones they created and the ones pointing at them.
func (s *Store) deleteFollowsByUser(userID string) error {
	res := s.db.Where("user_id = ? OR following_id = ?", userID, userID).Delete(&model.Follow{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete follows")
	}
	return nil
}
