package service

import (
	"context"
	"testing"

	"github.com/Freeeeeet/mentor_scheduler/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestProfileService_CreatesProfileOnFirstUpdate(t *testing.T) {
	repo := newFakeProfiles()
	s := NewProfileService(repo, zaptest.NewLogger(t))

	_, err := s.Get(context.Background(), 3)
	assert.ErrorIs(t, err, ErrProfileNotFound)

	profile, err := s.SetAvailableDays(context.Background(), 3, []string{"monday", "Wednesday", "MONDAY"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Monday", "Wednesday"}, profile.AvailableDays)
	assert.Equal(t, model.ModalityOnline, profile.Modality)
	assert.Equal(t, DefaultSessionDurationLabel, profile.SessionDurationLabel)

	stored, err := s.Get(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, profile.AvailableDays, stored.AvailableDays)
}

func TestProfileService_SetAvailableDays_UnknownName(t *testing.T) {
	repo := newFakeProfiles()
	s := NewProfileService(repo, zaptest.NewLogger(t))

	_, err := s.SetAvailableDays(context.Background(), 3, []string{"Monday", "Moonday"})
	assert.ErrorIs(t, err, ErrUnknownWeekday)
	assert.Zero(t, repo.upserts)
}

func TestProfileService_SetModality(t *testing.T) {
	repo := newFakeProfiles(&model.MentorProfile{UserID: 3, AvailableDays: []string{"Friday"}, Modality: model.ModalityOnline})
	s := NewProfileService(repo, zaptest.NewLogger(t))

	profile, err := s.SetModality(context.Background(), 3, "Hybrid")
	require.NoError(t, err)
	assert.Equal(t, model.ModalityHybrid, profile.Modality)
	assert.Equal(t, []string{"Friday"}, profile.AvailableDays)

	_, err = s.SetModality(context.Background(), 3, "telepathy")
	assert.Error(t, err)
}

func TestProfileService_SetSubjects(t *testing.T) {
	repo := newFakeProfiles()
	s := NewProfileService(repo, zaptest.NewLogger(t))

	profile, err := s.SetSubjects(context.Background(), 3, []string{" Algorithms ", "", "Calculus"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Algorithms", "Calculus"}, profile.Subjects)

	_, err = s.SetSubjects(context.Background(), 3, []string{" ", ""})
	assert.ErrorIs(t, err, ErrNoSubjects)
}
