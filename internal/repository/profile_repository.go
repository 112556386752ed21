package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/mentor_scheduler/internal/model"
	"github.com/Freeeeeet/mentor_scheduler/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileRepository struct {
	*base.Repository
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{Repository: base.NewRepository(pool)}
}

// GetByUserID получает профиль ментора, nil если профиля ещё нет
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*model.MentorProfile, error) {
	query := `
		SELECT user_id, available_days, modality, subjects, session_duration_label, updated_at
		FROM mentor_profiles
		WHERE user_id = $1
	`

	var profile model.MentorProfile
	err := r.QueryRow(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.AvailableDays,
		&profile.Modality,
		&profile.Subjects,
		&profile.SessionDurationLabel,
		&profile.UpdatedAt,
	)

	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile by user id: %w", err)
	}

	return &profile, nil
}

// Upsert создаёт или полностью перезаписывает профиль
func (r *ProfileRepository) Upsert(ctx context.Context, profile *model.MentorProfile) error {
	query := `
		INSERT INTO mentor_profiles (user_id, available_days, modality, subjects, session_duration_label)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET available_days = EXCLUDED.available_days,
		    modality = EXCLUDED.modality,
		    subjects = EXCLUDED.subjects,
		    session_duration_label = EXCLUDED.session_duration_label,
		    updated_at = NOW()
		RETURNING updated_at
	`

	days := profile.AvailableDays
	if days == nil {
		days = []string{}
	}
	subjects := profile.Subjects
	if subjects == nil {
		subjects = []string{}
	}

	err := r.QueryRow(
		ctx, query,
		profile.UserID,
		days,
		string(profile.Modality),
		subjects,
		profile.SessionDurationLabel,
	).Scan(&profile.UpdatedAt)

	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}

	return nil
}
