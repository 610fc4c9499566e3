package postgres

import (
	"context"
	"time"

	"authd/internal/domain/entity"
	domainerrors "authd/internal/domain/errors"
	"authd/internal/domain/repository"
	"authd/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sessionRepository implements the repository.SessionRepository interface.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{
		db: db,
	}
}

// FindActive retrieves the active session for a (user, user agent) pair.
func (repo *sessionRepository) FindActive(ctx context.Context, userID int64, userAgent string) (*entity.Session, error) {
	var sessionM model.SessionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND useragent = ? AND is_active = ?", userID, userAgent, true).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find active session")
	}

	return toSessionDomain(&sessionM), nil
}

// FindByAccessToken retrieves a session by its current access token.
func (repo *sessionRepository) FindByAccessToken(ctx context.Context, accessToken string) (*entity.Session, error) {
	var sessionM model.SessionModel

	if err := repo.db.WithContext(ctx).
		Where("jwt = ?", accessToken).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session by access token")
	}

	return toSessionDomain(&sessionM), nil
}

// FindByRefreshToken retrieves a session by its refresh token.
func (repo *sessionRepository) FindByRefreshToken(ctx context.Context, refreshToken string) (*entity.Session, error) {
	var sessionM model.SessionModel

	if err := repo.db.WithContext(ctx).
		Where("refresh_token = ?", refreshToken).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session by refresh token")
	}

	return toSessionDomain(&sessionM), nil
}

// FindByUserID retrieves all sessions belonging to a user, newest first.
func (repo *sessionRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.Session, error) {
	var sessionModels []*model.SessionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("last_activity DESC").
		Find(&sessionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find sessions by user")
	}

	sessions := make([]*entity.Session, 0, len(sessionModels))
	for _, sessionM := range sessionModels {
		sessions = append(sessions, toSessionDomain(sessionM))
	}

	return sessions, nil
}

// Create persists a new session row with active=true. A unique violation on
// the partial (user, user agent) index maps to ErrDuplicateSession so racing
// callers can re-fetch the winner's row.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	sessionM := fromSessionDomain(session)
	sessionM.IsActive = true
	if sessionM.LastActivity.IsZero() {
		sessionM.LastActivity = time.Now()
	}

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSession
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	// Update the entity with generated values
	session.ID = sessionM.ID
	session.IsActive = sessionM.IsActive
	session.LastActivity = sessionM.LastActivity

	return nil
}

// UpdateAccessToken rotates the access token in place and bumps last activity.
func (repo *sessionRepository) UpdateAccessToken(ctx context.Context, id int64, accessToken string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"jwt":           accessToken,
			"last_activity": time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update access token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

// Deactivate logically ends a session by flipping its active flag.
func (repo *sessionRepository) Deactivate(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("id = ?", id).
		Update("is_active", false)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate session")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toSessionDomain converts a GORM SessionModel to a domain Session entity.
func toSessionDomain(data *model.SessionModel) *entity.Session {
	if data == nil {
		return nil
	}

	return &entity.Session{
		ID:           data.ID,
		UserID:       data.UserID,
		UserAgent:    data.UserAgent,
		AccessToken:  data.AccessToken,
		RefreshToken: data.RefreshToken,
		IsActive:     data.IsActive,
		LastActivity: data.LastActivity,
	}
}

// fromSessionDomain converts a domain Session entity to a GORM SessionModel.
func fromSessionDomain(data *entity.Session) *model.SessionModel {
	if data == nil {
		return nil
	}

	return &model.SessionModel{
		ID:           data.ID,
		UserID:       data.UserID,
		UserAgent:    data.UserAgent,
		AccessToken:  data.AccessToken,
		RefreshToken: data.RefreshToken,
		IsActive:     data.IsActive,
		LastActivity: data.LastActivity,
	}
}
