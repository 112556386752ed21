package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Freeeeeet/mentor_scheduler/internal/model"
	"github.com/Freeeeeet/mentor_scheduler/internal/scheduling"
	"github.com/Freeeeeet/mentor_scheduler/internal/submission"
	"go.uber.org/zap"
)

// BookingService связывает профиль ментора, движок расписания и отправку запроса.
// Им пользуются оба сценария: запись ученика и предложение ментора.
type BookingService struct {
	profileRepo ProfileStore
	submitter   Submitter
	logger      *zap.Logger
	now         func() time.Time
}

func NewBookingService(profileRepo ProfileStore, submitter Submitter, logger *zap.Logger) *BookingService {
	return &BookingService{
		profileRepo: profileRepo,
		submitter:   submitter,
		logger:      logger,
		now:         time.Now,
	}
}

// Today текущая дата по локальным часам
func (s *BookingService) Today() time.Time {
	return s.now()
}

// Profile получает профиль ментора
func (s *BookingService) Profile(ctx context.Context, mentorID int64) (*model.MentorProfile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, mentorID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// Calendar строит сетку месяца для ментора
func (s *BookingService) Calendar(ctx context.Context, mentorID int64, cursor scheduling.MonthCursor, selected time.Time) (scheduling.Grid, *model.MentorProfile, error) {
	profile, err := s.Profile(ctx, mentorID)
	if err != nil {
		return scheduling.Grid{}, nil, err
	}

	grid := scheduling.GenerateGrid(cursor.Year, cursor.Month, profile.WeekdaySet(), selected, s.now())
	return grid, profile, nil
}

// Submit собирает запрос и передаёт его на отправку.
// Запрос создаётся заново при каждом вызове и не сохраняется.
func (s *BookingService) Submit(ctx context.Context, origin model.Origin, parties submission.Parties, in scheduling.BookingInput) (*submission.Receipt, error) {
	mentorID := parties.MentorID
	profile, err := s.Profile(ctx, mentorID)
	if err != nil {
		return nil, err
	}

	// Черновик мог пролежать до следующего дня, поэтому дата проверяется ещё раз
	if !in.Date.IsZero() && !scheduling.IsAvailable(in.Date, profile.WeekdaySet(), s.now()) {
		return nil, fmt.Errorf("%w: %s", ErrDateUnavailable, in.Date.Format(scheduling.DateLayout))
	}

	in.Modality = profile.Modality
	req, err := scheduling.BuildRequest(in)
	if err != nil {
		s.logger.Info("Booking request rejected by validation",
			zap.String("origin", string(origin)),
			zap.Int64("mentor_id", mentorID),
			zap.Error(err),
		)
		return nil, err
	}

	// Бот предлагает только фиксированные слоты, другое время могло прийти лишь из изменённого черновика
	if label := strings.TrimSpace(in.TimeLabel); !scheduling.IsKnownTimeSlot(label) {
		return nil, fmt.Errorf("%w: %q is not an offered time slot", scheduling.ErrInvalidFormat, label)
	}

	receipt, err := s.submitter.Submit(ctx, origin, parties, req)
	if err != nil {
		s.logger.Error("Failed to submit booking request",
			zap.String("origin", string(origin)),
			zap.Int64("mentor_id", mentorID),
			zap.String("date", req.Date),
			zap.String("time", req.Time),
			zap.Error(err),
		)
		return nil, fmt.Errorf("submit request: %w", err)
	}

	s.logger.Info("Booking request submitted",
		zap.String("origin", string(origin)),
		zap.Int64("mentor_id", mentorID),
		zap.Int64("learner_id", parties.LearnerID),
		zap.String("date", req.Date),
		zap.String("time", req.Time),
		zap.String("session_kind", string(req.SessionKind)),
		zap.String("receipt_id", receipt.ID),
		zap.String("idempotency_key", receipt.IdempotencyKey),
	)

	return receipt, nil
}
