package service

import (
	"context"
	"strings"
	"sync"

	"github.com/Freeeeeet/mentor_scheduler/internal/model"
	"github.com/Freeeeeet/mentor_scheduler/internal/submission"
)

type fakeUsers struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*model.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: make(map[int64]*model.User)}
}

func (f *fakeUsers) Create(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	user.ID = f.nextID
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUsers) Update(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeUsers) GetByTelegramID(_ context.Context, telegramID int64) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.TelegramID == telegramID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) GetByUsername(_ context.Context, username string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if strings.EqualFold(u.Username, username) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeProfiles struct {
	profiles map[int64]*model.MentorProfile
	upserts  int
}

func newFakeProfiles(profiles ...*model.MentorProfile) *fakeProfiles {
	f := &fakeProfiles{profiles: make(map[int64]*model.MentorProfile)}
	for _, p := range profiles {
		f.profiles[p.UserID] = p
	}
	return f
}

func (f *fakeProfiles) GetByUserID(_ context.Context, userID int64) (*model.MentorProfile, error) {
	if p, ok := f.profiles[userID]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeProfiles) Upsert(_ context.Context, profile *model.MentorProfile) error {
	f.upserts++
	cp := *profile
	f.profiles[profile.UserID] = &cp
	return nil
}

type submitCall struct {
	origin  model.Origin
	parties submission.Parties
	req     model.BookingRequest
}

type fakeSubmitter struct {
	calls []submitCall
	err   error
}

func (f *fakeSubmitter) Submit(_ context.Context, origin model.Origin, parties submission.Parties, req model.BookingRequest) (*submission.Receipt, error) {
	f.calls = append(f.calls, submitCall{origin: origin, parties: parties, req: req})
	if f.err != nil {
		return nil, f.err
	}
	return &submission.Receipt{ID: "r-1", Status: "pending", IdempotencyKey: "k-1"}, nil
}
