package services

import (
	"testing"

	"github.com/saini-nikhil/MealMaster/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, svc *CommunityService, name string) *models.User {
	t.Helper()
	user := &models.User{Email: name + "@example.com", Password: "x", Name: name}
	require.NoError(t, svc.db.Create(user).Error)
	return user
}

func TestCreateAndListPosts(t *testing.T) {
	svc := NewCommunityServiceWithDB(newTestDB(t), nil)
	user := seedUser(t, svc, "Asha")

	_, err := svc.CreatePost(user, PostInput{Title: "Family Dal", Description: "comfort food"})
	require.NoError(t, err)

	posts, err := svc.ListPosts()
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Asha", posts[0].Author)

	_, err = svc.CreatePost(user, PostInput{Title: "   "})
	assert.Error(t, err, "blank title is rejected before any write")
}

func TestAddComment(t *testing.T) {
	svc := NewCommunityServiceWithDB(newTestDB(t), nil)
	author := seedUser(t, svc, "Asha")
	commenter := seedUser(t, svc, "Ben")

	post, err := svc.CreatePost(author, PostInput{Title: "Family Dal"})
	require.NoError(t, err)

	updated, err := svc.AddComment(commenter, post.ID, "Looks great!")
	require.NoError(t, err)
	require.Len(t, updated.Comments, 1)
	assert.Equal(t, "Ben", updated.Comments[0].Author)

	_, err = svc.AddComment(commenter, 9999, "ghost")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestSavePostOnlyCountsOnce(t *testing.T) {
	svc := NewCommunityServiceWithDB(newTestDB(t), nil)
	author := seedUser(t, svc, "Asha")
	saver := seedUser(t, svc, "Ben")

	post, err := svc.CreatePost(author, PostInput{Title: "Family Dal"})
	require.NoError(t, err)

	require.NoError(t, svc.SavePost(saver, post.ID))
	require.NoError(t, svc.SavePost(saver, post.ID)) // second save is a noop

	var got models.CommunityPost
	require.NoError(t, svc.db.First(&got, post.ID).Error)
	assert.Equal(t, 1, got.Saves)
	assert.Equal(t, []uint{post.ID}, []uint(saver.SavedPosts))
}
