package postgres

import (
	"context"
	"strings"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a user by their unique ID, with the profile attached.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("Profile").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindByUsername retrieves a user by their username, with the profile attached.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("Profile").
		Where("username = ?", username).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return toUserDomain(&userM), nil
}

// ExistsByUsername reports whether any account already uses the username.
func (repo *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check username existence")
	}

	return count > 0, nil
}

// ExistsByEmail reports whether any account already uses the email.
func (repo *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check email existence")
	}

	return count > 0, nil
}

// ListByType retrieves all users whose profile matches the given type, newest first.
func (repo *userRepository) ListByType(ctx context.Context, profileType entity.ProfileType) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("Profile").
		Joins("JOIN user_profiles ON user_profiles.user_id = users.id").
		Where("user_profiles.type = ?", profileType.String()).
		Order("users.created_at DESC").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users by profile type")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// CountByType returns the number of profiles of the given type.
func (repo *userRepository) CountByType(ctx context.Context, profileType entity.ProfileType) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserProfileModel{}).
		Where("type = ?", profileType.String()).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count profiles by type")
	}

	return count, nil
}

// Create persists a new user together with its profile in a single insert chain.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return uniqueUserViolation(err)
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the entity with generated values
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt
	if user.Profile != nil && userM.Profile != nil {
		user.Profile.UserID = userM.ID
		user.Profile.CreatedAt = userM.Profile.CreatedAt
		user.Profile.UpdatedAt = userM.Profile.UpdatedAt
	}

	return nil
}

// Update modifies an existing user and its profile.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"username":   userM.Username,
			"first_name": userM.FirstName,
			"last_name":  userM.LastName,
			"email":      userM.Email,
			"password":   userM.Password,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return uniqueUserViolation(result.Error)
		}

		return errors.Wrap(result.Error, "failed to update user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	if user.Profile != nil {
		if err := repo.db.WithContext(ctx).
			Model(&model.UserProfileModel{}).
			Where("user_id = ?", user.ID).
			Updates(map[string]any{
				"bio":           user.Profile.Bio,
				"location":      user.Profile.Location,
				"tel":           user.Profile.Tel,
				"description":   user.Profile.Description,
				"working_hours": user.Profile.WorkingHours,
				"file":          user.Profile.File,
			}).Error; err != nil {
			return errors.Wrap(err, "failed to update user profile")
		}
	}

	return nil
}

// uniqueUserViolation resolves which unique column on users tripped, so the
// conflict names the right field even when the application-level pre-checks
// were raced past. Postgres includes the violated constraint name in the
// error message.
func uniqueUserViolation(err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "email") {
		return domainerrors.ErrEmailTaken
	}
	if strings.Contains(msg, "username") {
		return domainerrors.ErrUsernameTaken
	}

	return domainerrors.ErrConflict.WithDetails("account violates a unique constraint")
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:        data.ID,
		Username:  data.Username,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		Password:  data.Password,
		Profile:   toProfileDomain(data.Profile),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:        data.ID,
		Username:  data.Username,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		Password:  data.Password,
		Profile:   fromProfileDomain(data.Profile),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// toProfileDomain converts a GORM UserProfileModel to a domain UserProfile entity.
func toProfileDomain(data *model.UserProfileModel) *entity.UserProfile {
	if data == nil {
		return nil
	}

	return &entity.UserProfile{
		UserID:       data.UserID,
		Type:         entity.ProfileType(data.Type),
		Bio:          data.Bio,
		Location:     data.Location,
		Tel:          data.Tel,
		Description:  data.Description,
		WorkingHours: data.WorkingHours,
		File:         data.File,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromProfileDomain converts a domain UserProfile entity to a GORM UserProfileModel.
func fromProfileDomain(data *entity.UserProfile) *model.UserProfileModel {
	if data == nil {
		return nil
	}

	return &model.UserProfileModel{
		UserID:       data.UserID,
		Type:         data.Type.String(),
		Bio:          data.Bio,
		Location:     data.Location,
		Tel:          data.Tel,
		Description:  data.Description,
		WorkingHours: data.WorkingHours,
		File:         data.File,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
