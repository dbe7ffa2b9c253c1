package user

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"gatherchat/internal/common"
	"gatherchat/internal/config"
	"gatherchat/internal/dbmongo"
	"gatherchat/internal/dbmysql"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// sniffLen is how much of an upload is read to detect its type.
const sniffLen = 3072

type AvatarStore interface {
	Upload(ctx context.Context, filename, mimeType, ownerID string, content io.Reader) (*dbmongo.AvatarFile, error)
	Delete(ctx context.Context, fileID string) error
}

// ProfileUpdate holds the user-editable profile fields. Nil fields are left
// untouched.
type ProfileUpdate struct {
	Username       *string `json:"username" validate:"omitempty,max=50"`
	VRChatUsername *string `json:"vrchat_username" validate:"omitempty,max=100"`
	Bio            *string `json:"bio" validate:"omitempty,max=1000"`
}

func (u ProfileUpdate) fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if u.Username != nil {
		fields["username"] = strings.TrimSpace(*u.Username)
	}
	if u.VRChatUsername != nil {
		fields["vrchat_username"] = strings.TrimSpace(*u.VRChatUsername)
	}
	if u.Bio != nil {
		fields["bio"] = *u.Bio
	}
	return fields
}

type ProfileService interface {
	// HandleAuthCallback returns the caller's profile, creating it on first login.
	HandleAuthCallback(ctx context.Context, identity common.Identity) (*dbmysql.Profile, error)
	GetCurrentUser(ctx context.Context, userID string) (*dbmysql.Profile, error)
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*dbmysql.Profile, error)
	UpdateAvatar(ctx context.Context, userID, filename string, content io.Reader) (*dbmysql.Profile, error)
	UsernamesByIDs(ctx context.Context, ids []string) (map[string]string, error)
	ByIDs(ctx context.Context, ids []string) ([]*dbmysql.Profile, error)
}

type profileService struct {
	repo         ProfileRepository
	avatars      AvatarStore
	mediaBaseURL string
	log          *zap.Logger
}

func NewProfileService(repo ProfileRepository, avatars AvatarStore, cfg *config.Config, log *zap.Logger) ProfileService {
	base := cfg.Server.MediaBaseURL
	if base != "" && !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return &profileService{
		repo:         repo,
		avatars:      avatars,
		mediaBaseURL: base,
		log:          log,
	}
}

func (s *profileService) HandleAuthCallback(ctx context.Context, identity common.Identity) (*dbmysql.Profile, error) {
	if identity.UserID == "" {
		return nil, common.ErrNotAuthenticated
	}

	existing, err := s.repo.ByID(ctx, identity.UserID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	profile := &dbmysql.Profile{
		ID:             identity.UserID,
		Email:          identity.Email,
		VRChatUsername: "",
	}
	if err := s.repo.Create(ctx, profile); err != nil {
		return nil, err
	}

	s.log.Info("profile created", zap.String("user_id", profile.ID))
	return profile, nil
}

func (s *profileService) GetCurrentUser(ctx context.Context, userID string) (*dbmysql.Profile, error) {
	if userID == "" {
		return nil, common.ErrNotAuthenticated
	}
	return s.repo.ByID(ctx, userID)
}

func (s *profileService) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*dbmysql.Profile, error) {
	if userID == "" {
		return nil, common.ErrNotAuthenticated
	}
	if err := common.Validate(update); err != nil {
		return nil, err
	}

	if _, err := s.repo.ByID(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, userID, update.fields()); err != nil {
		return nil, err
	}
	return s.repo.ByID(ctx, userID)
}

func (s *profileService) UpdateAvatar(ctx context.Context, userID, filename string, content io.Reader) (*dbmysql.Profile, error) {
	if userID == "" {
		return nil, common.ErrNotAuthenticated
	}

	current, err := s.repo.ByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(content, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", common.ErrInvalidInput)
		}
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	head = head[:n]

	mtype := mimetype.Detect(head)
	if common.DetectFileType(mtype.String()) != common.MediaFileTypeImage {
		return nil, fmt.Errorf("%w: unsupported file type %s", common.ErrInvalidInput, mtype.String())
	}

	file, err := s.avatars.Upload(ctx, filename, mtype.String(), userID, io.MultiReader(bytes.NewReader(head), content))
	if err != nil {
		return nil, fmt.Errorf("failed to store avatar: %w", err)
	}

	if err := s.repo.Update(ctx, userID, map[string]interface{}{"avatar_url": s.mediaBaseURL + file.ID}); err != nil {
		if delErr := s.avatars.Delete(ctx, file.ID); delErr != nil {
			s.log.Warn("orphaned avatar", zap.String("file_id", file.ID), zap.Error(delErr))
		}
		return nil, err
	}

	if oldID, ok := s.storedFileID(current.AvatarURL); ok {
		if err := s.avatars.Delete(ctx, oldID); err != nil {
			s.log.Warn("failed to delete previous avatar",
				zap.String("user_id", userID),
				zap.String("file_id", oldID),
				zap.Error(err))
		}
	}

	return s.repo.ByID(ctx, userID)
}

// storedFileID extracts the GridFS id from an avatar url served by this service.
// External urls (e.g. from the auth provider) yield false.
func (s *profileService) storedFileID(avatarURL string) (string, bool) {
	if s.mediaBaseURL == "" || !strings.HasPrefix(avatarURL, s.mediaBaseURL) {
		return "", false
	}
	id := strings.TrimPrefix(avatarURL, s.mediaBaseURL)
	return id, id != ""
}

func (s *profileService) UsernamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	return s.repo.UsernamesByIDs(ctx, ids)
}

func (s *profileService) ByIDs(ctx context.Context, ids []string) ([]*dbmysql.Profile, error) {
	return s.repo.ByIDs(ctx, ids)
}
