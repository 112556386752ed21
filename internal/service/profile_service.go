package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Freeeeeet/mentor_scheduler/internal/model"
	"go.uber.org/zap"
)

// DefaultSessionDurationLabel подпись длительности для нового профиля
const DefaultSessionDurationLabel = "1 hour"

// ProfileService управляет входными данными расписания ментора
type ProfileService struct {
	profileRepo ProfileStore
	logger      *zap.Logger
}

func NewProfileService(profileRepo ProfileStore, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// Get возвращает профиль ментора или ErrProfileNotFound
func (s *ProfileService) Get(ctx context.Context, userID int64) (*model.MentorProfile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// SetAvailableDays сохраняет дни недели. В отличие от движка, неизвестные названия здесь отклоняются.
func (s *ProfileService) SetAvailableDays(ctx context.Context, userID int64, names []string) (*model.MentorProfile, error) {
	days := make([]string, 0, len(names))
	seen := make(map[string]bool)
	for _, name := range names {
		wd, ok := model.ParseWeekday(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownWeekday, strings.TrimSpace(name))
		}
		if !seen[wd.String()] {
			seen[wd.String()] = true
			days = append(days, wd.String())
		}
	}

	return s.update(ctx, userID, "available_days", func(p *model.MentorProfile) {
		p.AvailableDays = days
	})
}

// SetModality сохраняет формат занятий
func (s *ProfileService) SetModality(ctx context.Context, userID int64, raw string) (*model.MentorProfile, error) {
	modality, err := model.ParseModality(raw)
	if err != nil {
		return nil, err
	}

	return s.update(ctx, userID, "modality", func(p *model.MentorProfile) {
		p.Modality = modality
	})
}

// SetSubjects сохраняет список предметов
func (s *ProfileService) SetSubjects(ctx context.Context, userID int64, subjects []string) (*model.MentorProfile, error) {
	cleaned := make([]string, 0, len(subjects))
	for _, subject := range subjects {
		if subject = strings.TrimSpace(subject); subject != "" {
			cleaned = append(cleaned, subject)
		}
	}
	if len(cleaned) == 0 {
		return nil, ErrNoSubjects
	}

	return s.update(ctx, userID, "subjects", func(p *model.MentorProfile) {
		p.Subjects = cleaned
	})
}

func (s *ProfileService) update(ctx context.Context, userID int64, field string, apply func(*model.MentorProfile)) (*model.MentorProfile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	// Профиль создаётся при первом изменении
	if profile == nil {
		profile = &model.MentorProfile{
			UserID:               userID,
			Modality:             model.ModalityOnline,
			SessionDurationLabel: DefaultSessionDurationLabel,
		}
	}

	apply(profile)

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}

	s.logger.Info("Mentor profile updated",
		zap.Int64("user_id", userID),
		zap.String("field", field),
	)

	return profile, nil
}
