package user

import (
	"context"
	"fmt"

	"gatherchat/internal/common"
	"gatherchat/internal/dbmysql"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

//go:generate mockgen -source=profile_repository.go -destination=mocks/mock_profile_repository.go -package=mocks

type ProfileRepository interface {
	ByID(ctx context.Context, id string) (*dbmysql.Profile, error)
	ByIDs(ctx context.Context, ids []string) ([]*dbmysql.Profile, error)
	// UsernamesByIDs maps profile id to username. Unknown ids are absent.
	UsernamesByIDs(ctx context.Context, ids []string) (map[string]string, error)
	Create(ctx context.Context, profile *dbmysql.Profile) error
	Update(ctx context.Context, id string, fields map[string]interface{}) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) ByID(ctx context.Context, id string) (*dbmysql.Profile, error) {
	var profile dbmysql.Profile
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&profile).Error; err != nil {
		if dbmysql.IsNotFound(err) {
			return nil, fmt.Errorf("profile %s: %w", id, common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

func (r *profileRepository) ByIDs(ctx context.Context, ids []string) ([]*dbmysql.Profile, error) {
	ids = lo.Uniq(ids)
	if len(ids) == 0 {
		return []*dbmysql.Profile{}, nil
	}

	var profiles []*dbmysql.Profile
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to get profiles: %w", err)
	}
	return profiles, nil
}

func (r *profileRepository) UsernamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	ids = lo.Uniq(ids)
	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	var profiles []dbmysql.Profile
	err := r.db.WithContext(ctx).
		Select("id", "username").
		Where("id IN ?", ids).
		Find(&profiles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get usernames: %w", err)
	}

	return lo.SliceToMap(profiles, func(p dbmysql.Profile) (string, string) {
		return p.ID, p.Username
	}), nil
}

func (r *profileRepository) Create(ctx context.Context, profile *dbmysql.Profile) error {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

func (r *profileRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Profile{}).
		Where("id = ?", id).
		Updates(fields).Error
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}
