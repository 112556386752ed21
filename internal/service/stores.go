package service

import (
	"context"

	"github.com/Freeeeeet/mentor_scheduler/internal/model"
	"github.com/Freeeeeet/mentor_scheduler/internal/submission"
)

// UserStore реализуется repository.UserRepository
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}

// ProfileStore реализуется repository.ProfileRepository
type ProfileStore interface {
	GetByUserID(ctx context.Context, userID int64) (*model.MentorProfile, error)
	Upsert(ctx context.Context, profile *model.MentorProfile) error
}

// Submitter реализуется submission.Client
type Submitter interface {
	Submit(ctx context.Context, origin model.Origin, parties submission.Parties, req model.BookingRequest) (*submission.Receipt, error)
}
