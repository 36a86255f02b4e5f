package store

import (
	"time"

	"github.com/fritterapp/fritter/model"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// UserUpdate carries the fields of a sparse user update. Nil pointers leave
// the stored value untouched.
type UserUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
	Username  *string
	Bio       *string
	Password  *string
}

// AddUser creates a new account. The password is stored as a bcrypt hash,
// never in plaintext.
func (s *Store) AddUser(firstName, lastName, email, username, password string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	user := model.User{
		Id:           uuid.New().String(),
		CreatedAt:    time.Now(),
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, errors.Wrap(err, "create user")
	}
	return &user, nil
}

func (s *Store) FindAllUsers() ([]model.User, error) {
	var users []model.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, errors.Wrap(err, "find users")
	}
	return users, nil
}

// FindUserByID returns the user with the given id, or nil if there is none.
func (s *Store) FindUserByID(userID string) (*model.User, error) {
	var user model.User
	res := s.db.Where("id = ?", userID).First(&user)
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &user, nil
}

// FindUserByUsername looks a user up by username, case insensitively:
// "Alice", "alice" and "ALICE" all resolve to the same account.
func (s *Store) FindUserByUsername(username string) (*model.User, error) {
	var user model.User
	res := s.db.Where("lower(username) = lower(?)", username).First(&user)
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &user, nil
}

// FindUserByCredentials returns the user matching the username (case
// insensitive) and password, or nil when either is wrong. The two failure
// modes are indistinguishable on purpose.
func (s *Store) FindUserByCredentials(username, password string) (*model.User, error) {
	user, err := s.FindUserByUsername(username)
	if err != nil || user == nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil
	}
	return user, nil
}

// UpdateUser applies a sparse update to the user's profile fields. A password
// change is re-hashed before storage.
func (s *Store) UpdateUser(userID string, details UserUpdate) (*model.User, error) {
	var user model.User
	res := s.db.Where("id = ?", userID).First(&user)
	if res.RowsAffected == 0 {
		return nil, errors.New("user not found")
	}

	if details.FirstName != nil {
		user.FirstName = *details.FirstName
	}
	if details.LastName != nil {
		user.LastName = *details.LastName
	}
	if details.Email != nil {
		user.Email = *details.Email
	}
	if details.Username != nil {
		user.Username = *details.Username
	}
	if details.Bio != nil {
		user.Bio = *details.Bio
	}
	if details.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*details.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, errors.Wrap(err, "hash password")
		}
		user.PasswordHash = string(hash)
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, errors.Wrap(err, "update user")
	}
	return &user, nil
}

// DeleteUser removes the account and everything hanging off it: authored
// freets (with their likes), authored circles (with their subscriptions),
// follows on either side, and the likes and subscriptions the user created.
func (s *Store) DeleteUser(userID string) (bool, error) {
	if err := s.deleteFreetsByAuthor(userID); err != nil {
		return false, err
	}
	if err := s.deleteCirclesByAuthor(userID); err != nil {
		return false, err
	}
	if err := s.deleteLikesByUser(userID); err != nil {
		return false, err
	}
	if err := s.deleteFollowsByUser(userID); err != nil {
		return false, err
	}
	if err := s.deleteSubscribesByUser(userID); err != nil {
		return false, err
	}

	res := s.db.Where("id = ?", userID).Delete(&model.User{})
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "delete user")
	}
	return res.RowsAffected > 0, nil
}
