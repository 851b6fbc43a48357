package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/wellness-companion/internal/model"
	"github.com/d60-Lab/wellness-companion/internal/repository"
)

func TestToggleValidation(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewInteractionService(repository.NewInteractionRepository(db))
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "", "post-1", model.InteractionBookmark)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = svc.Toggle(ctx, "user-1", "", model.InteractionBookmark)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = svc.Toggle(ctx, "user-1", "post-1", model.InteractionType("like"))
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestToggleMissingPostMapsToNotFound(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewInteractionService(repository.NewInteractionRepository(db))

	_, err := svc.Toggle(context.Background(), "user-1", "missing", model.InteractionRepost)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestToggleRoundTripThroughService(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewInteractionService(repository.NewInteractionRepository(db))
	ctx := context.Background()

	require.NoError(t, db.Create(&model.Post{
		ID: "post-1", AuthorID: "a", AuthorEmail: "a@example.com", Content: "c",
		BookmarkCount: 3,
	}).Error)

	res, err := svc.Toggle(ctx, "user-1", "post-1", model.InteractionBookmark)
	require.NoError(t, err)
	require.EqualValues(t, 4, res.NewCount)
	require.True(t, res.UserHasInteracted)

	res, err = svc.Toggle(ctx, "user-1", "post-1", model.InteractionBookmark)
	require.NoError(t, err)
	require.EqualValues(t, 3, res.NewCount)
	require.False(t, res.UserHasInteracted)
}

func TestListForUserRequiresUser(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewInteractionService(repository.NewInteractionRepository(db))

	_, err := svc.ListForUser(context.Background(), "", []string{"p1"})
	require.ErrorIs(t, err, ErrInvalidArgument)
}
