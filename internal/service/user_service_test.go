package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestUserService_RegisterAndMakeMentor(t *testing.T) {
	ctx := context.Background()
	s := NewUserService(newFakeUsers(), zaptest.NewLogger(t))

	user, err := s.RegisterUser(ctx, 1001, "ada", "Ada", "", "en")
	require.NoError(t, err)
	assert.False(t, user.IsMentor)

	again, err := s.RegisterUser(ctx, 1001, "ada_l", "Ada", "Lovelace", "en")
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
	assert.Equal(t, "ada_l", again.Username)

	mentor, err := s.MakeMentor(ctx, 1001)
	require.NoError(t, err)
	assert.True(t, mentor.IsMentor)

	found, err := s.FindByUsername(ctx, "@ADA_L")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.True(t, found.IsMentor)
}

func TestUserService_NotFound(t *testing.T) {
	ctx := context.Background()
	s := NewUserService(newFakeUsers(), zaptest.NewLogger(t))

	_, err := s.MakeMentor(ctx, 42)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = s.FindByUsername(ctx, "@nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = s.FindByUsername(ctx, " ")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
