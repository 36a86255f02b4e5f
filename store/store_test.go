package store

import (
	"os"
	"testing"
	"time"

	"github.com/fritterapp/fritter/model"
	"github.com/fritterapp/fritter/utils"
	"github.com/fritterapp/fritter/utils/dotenv"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dotenv.LoadDotEnvsInTests()
	os.Exit(m.Run())
}

func setupStore(t *testing.T) *Store {
	t.Helper()
	db, _ := utils.CreateTempDB(t)
	return New(db)
}

func TestUsernameLookupIsCaseInsensitive(t *testing.T) {
	s := setupStore(t)

	alice, err := s.AddUser("Alice", "Smith", "alice@example.com", "Alice", "secret")
	require.NoError(t, err)

	for _, username := range []string{"Alice", "alice", "ALICE", "aLiCe"} {
		found, err := s.FindUserByUsername(username)
		require.NoError(t, err)
		require.NotNil(t, found, "lookup for %q", username)
		require.Equal(t, alice.Id, found.Id)
	}

	missing, err := s.FindUserByUsername("bob")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPasswordsAreHashed(t *testing.T) {
	s := setupStore(t)

	user, err := s.AddUser("Alice", "Smith", "alice@example.com", "alice", "secret")
	require.NoError(t, err)
	require.NotEqual(t, "secret", user.PasswordHash)

	found, err := s.FindUserByCredentials("ALICE", "secret")
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, user.Id, found.Id)

	found, err = s.FindUserByCredentials("alice", "wrong")
	require.NoError(t, err)
	require.Nil(t, found)
}

func TestUpdateUserIsSparse(t *testing.T) {
	s := setupStore(t)

	user, err := s.AddUser("Alice", "Smith", "alice@example.com", "alice", "secret")
	require.NoError(t, err)

	bio := "hello there"
	updated, err := s.UpdateUser(user.Id, UserUpdate{Bio: &bio})
	require.NoError(t, err)
	require.Equal(t, "hello there", updated.Bio)
	require.Equal(t, "alice", updated.Username)
	require.Equal(t, "alice@example.com", updated.Email)
	require.Equal(t, user.PasswordHash, updated.PasswordHash)
}

func TestAddCirclePopulatesAuthor(t *testing.T) {
	s := setupStore(t)

	alice, err := s.AddUser("Alice", "Smith", "alice@example.com", "alice", "secret")
	require.NoError(t, err)

	circle, err := s.AddCircle("Boston Foodies", "all about food", "Food", alice.Id)
	require.NoError(t, err)
	require.NotEmpty(t, circle.Id)
	require.Equal(t, "alice", circle.Author.Username)
	require.False(t, circle.CreatedAt.IsZero())

	byTitle, err := s.FindCircleByTitle("Boston Foodies")
	require.NoError(t, err)
	require.NotNil(t, byTitle)
	require.Equal(t, circle.Id, byTitle.Id)
}

func TestDuplicateCircleTitleRejectedByIndex(t *testing.T) {
	s := setupStore(t)

	alice, err := s.AddUser("Alice", "Smith", "alice@example.com", "alice", "secret")
	require.NoError(t, err)

	_, err = s.AddCircle("Boston Foodies", "", "Food", alice.Id)
	require.NoError(t, err)

	// The validation layer normally rejects this before the insert; the
	// unique index is the backstop for concurrent creations.
	_, err = s.AddCircle("Boston Foodies", "", "Food", alice.Id)
	require.Error(t, err)
}

func TestCirclesOrderedNewestFirst(t *testing.T) {
	s := setupStore(t)

	alice, err := s.AddUser("Alice", "Smith", "alice@example.com", "alice", "secret")
	require.NoError(t, err)

	_, err = s.AddCircle("First", "", "Misc", alice.Id)
	require.NoError(t, err)
	time.Sleep(20 * time.Millisecond)
	second, err := s.AddCircle("Second", "", "Misc", alice.Id)
	require.NoError(t, err)

	circles, err := s.FindAllCircles()
	require.NoError(t, err)
	require.Len(t, circles, 2)
	require.Equal(t, second.Id, circles[0].Id)
}

func TestFreetsOrderedByModification(t *testing.T) {
	s := setupStore(t)

	alice, err := s.AddUser("Alice", "Smith", "alice@example.com", "alice", "secret")
	require.NoError(t, err)

	first, err := s.AddFreet("first freet", alice.Id, nil)
	require.NoError(t, err)
	time.Sleep(20 * time.Millisecond)
	second, err := s.AddFreet("second freet", alice.Id, nil)
	require.NoError(t, err)

	freets, err := s.FindAllFreets()
	require.NoError(t, err)
	require.Len(t, freets, 2)
	require.Equal(t, second.Id, freets[0].Id)

	// Editing the older freet's circles counts as a modification and moves
	// it to the front.
	time.Sleep(20 * time.Millisecond)
	_, err = s.UpdateFreetCircles(first.Id, nil)
	require.NoError(t, err)

	freets, err = s.FindAllFreets()
	require.NoError(t, err)
	require.Equal(t, first.Id, freets[0].Id)
}

func TestUpdateFreetCirclesReplacesWholesale(t *testing.T) {
	s := setupStore(t)

	alice, err := s.AddUser("Alice", "Smith", "alice@example.com", "alice", "secret")
	require.NoError(t, err)
	food, err := s.AddCircle("Food", "", "Food", alice.Id)
	require.NoError(t, err)
	sports, err := s.AddCircle("Sports", "", "Sports", alice.Id)
	require.NoError(t, err)

	freet, err := s.AddFreet("tagged freet", alice.Id, []string{food.Id})
	require.NoError(t, err)
	require.Len(t, freet.Circles, 1)
	require.Equal(t, "Food", freet.Circles[0].Title)

	updated, err := s.UpdateFreetCircles(freet.Id, []string{sports.Id})
	require.NoError(t, err)
	require.Len(t, updated.Circles, 1)
	require.Equal(t, "Sports", updated.Circles[0].Title)
}

func TestFreetsByUsernameIsCaseInsensitive(t *testing.T) {
	s := setupStore(t)

	alice, err := s.AddUser("Alice", "Smith", "alice@example.com", "Alice", "secret")
	require.NoError(t, err)
	_, err = s.AddFreet("hello", alice.Id, nil)
	require.NoError(t, err)

	freets, err := s.FindFreetsByUsername("ALICE")
	require.NoError(t, err)
	require.Len(t, freets, 1)
	require.Equal(t, "Alice", freets[0].Author.Username)
}

func TestFollowLifecycle(t *testing.T) {
	s := setupStore(t)

	alice, err := s.AddUser("Alice", "Smith", "alice@example.com", "alice", "secret")
	require.NoError(t, err)
	_, err = s.AddUser("Bob", "Jones", "bob@example.com", "Bob", "secret")
	require.NoError(t, err)

	follow, err := s.AddFollow(alice.Id, "bob")
	require.NoError(t, err)
	require.Equal(t, "alice", follow.User.Username)
	require.Equal(t, "Bob", follow.Following.Username)

	found, err := s.FindFollow(alice.Id, "BOB")
	require.NoError(t, err)
	require.NotNil(t, found)

	following, err := s.FindFollowingByUsername("alice")
	require.NoError(t, err)
	require.Len(t, following, 1)

	followers, err := s.FindFollowersByUsername("bob")
	require.NoError(t, err)
	require.Len(t, followers, 1)

	ok, err := s.DeleteFollow(alice.Id, "bob")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = s.DeleteFollow(alice.Id, "bob")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestDeleteFreetCascadesLikes(t *testing.T) {
	s := setupStore(t)

	alice, err := s.AddUser("Alice", "Smith", "alice@example.com", "alice", "secret")
	require.NoError(t, err)
	bob, err := s.AddUser("Bob", "Jones", "bob@example.com", "bob", "secret")
	require.NoError(t, err)

	freet, err := s.AddFreet("like me", alice.Id, nil)
	require.NoError(t, err)
	_, err = s.AddLike(bob.Id, freet.Id)
	require.NoError(t, err)

	ok, err := s.DeleteFreet(freet.Id)
	require.NoError(t, err)
	require.True(t, ok)

	var likes int64
	require.NoError(t, s.db.Model(&model.Like{}).Count(&likes).Error)
	require.Zero(t, likes)
}

func TestDeleteCircleCascadesSubscribesAndUntagsFreets(t *testing.T) {
	s := setupStore(t)

	alice, err := s.AddUser("Alice", "Smith", "alice@example.com", "alice", "secret")
	require.NoError(t, err)
	bob, err := s.AddUser("Bob", "Jones", "bob@example.com", "bob", "secret")
	require.NoError(t, err)

	circle, err := s.AddCircle("Food", "", "Food", alice.Id)
	require.NoError(t, err)
	freet, err := s.AddFreet("tagged", bob.Id, []string{circle.Id})
	require.NoError(t, err)
	_, err = s.AddSubscribe(bob.Id, circle.Id)
	require.NoError(t, err)

	ok, err := s.DeleteCircle(circle.Id)
	require.NoError(t, err)
	require.True(t, ok)

	var subscribes int64
	require.NoError(t, s.db.Model(&model.Subscribe{}).Count(&subscribes).Error)
	require.Zero(t, subscribes)

	// The freet survives with the tag removed.
	survivor, err := s.FindFreetByID(freet.Id)
	require.NoError(t, err)
	require.NotNil(t, survivor)
	require.Empty(t, survivor.Circles)
}

func TestDeleteUserLeavesNoOrphans(t *testing.T) {
	s := setupStore(t)

	alice, err := s.AddUser("Alice", "Smith", "alice@example.com", "alice", "secret")
	require.NoError(t, err)
	bob, err := s.AddUser("Bob", "Jones", "bob@example.com", "bob", "secret")
	require.NoError(t, err)

	circleA, err := s.AddCircle("Alice Circle", "", "Misc", alice.Id)
	require.NoError(t, err)
	circleB, err := s.AddCircle("Bob Circle", "", "Misc", bob.Id)
	require.NoError(t, err)

	freetA, err := s.AddFreet("by alice", alice.Id, []string{circleB.Id})
	require.NoError(t, err)
	freetB, err := s.AddFreet("by bob", bob.Id, []string{circleA.Id})
	require.NoError(t, err)

	_, err = s.AddLike(bob.Id, freetA.Id)
	require.NoError(t, err)
	_, err = s.AddLike(alice.Id, freetB.Id)
	require.NoError(t, err)
	_, err = s.AddFollow(alice.Id, "bob")
	require.NoError(t, err)
	_, err = s.AddFollow(bob.Id, "alice")
	require.NoError(t, err)
	_, err = s.AddSubscribe(alice.Id, circleB.Id)
	require.NoError(t, err)
	_, err = s.AddSubscribe(bob.Id, circleA.Id)
	require.NoError(t, err)

	ok, err := s.DeleteUser(alice.Id)
	require.NoError(t, err)
	require.True(t, ok)

	// Alice's freets and circles are gone, Bob's survive.
	gone, err := s.FindFreetByID(freetA.Id)
	require.NoError(t, err)
	require.Nil(t, gone)
	kept, err := s.FindFreetByID(freetB.Id)
	require.NoError(t, err)
	require.NotNil(t, kept)
	require.Empty(t, kept.Circles)

	goneCircle, err := s.FindCircleByID(circleA.Id)
	require.NoError(t, err)
	require.Nil(t, goneCircle)
	keptCircle, err := s.FindCircleByID(circleB.Id)
	require.NoError(t, err)
	require.NotNil(t, keptCircle)

	// No edge touching Alice, her freets, or her circles survives.
	var likes, follows, subscribes int64
	require.NoError(t, s.db.Model(&model.Like{}).Count(&likes).Error)
	require.NoError(t, s.db.Model(&model.Follow{}).Count(&follows).Error)
	require.NoError(t, s.db.Model(&model.Subscribe{}).Count(&subscribes).Error)
	require.Zero(t, likes)
	require.Zero(t, follows)
	require.Zero(t, subscribes)
}
