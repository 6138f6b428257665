package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// Create persists a new review. The unique (business_user, reviewer) index
// closes the check/insert race, so the constraint error maps to the domain's
// duplicate error rather than a generic database failure.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateReview
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidRating
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	// Update the entity with generated values
	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// FindByID retrieves a single review.
func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by ID")
	}

	return toReviewDomain(&reviewM), nil
}

// FindByReviewerAndBusiness retrieves the review a reviewer left for a
// business user, if any.
func (repo *reviewRepository) FindByReviewerAndBusiness(ctx context.Context, reviewerID, businessUserID uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("reviewer_id = ? AND business_user_id = ?", reviewerID, businessUserID).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by reviewer and business")
	}

	return toReviewDomain(&reviewM), nil
}

// List retrieves reviews matching the query.
func (repo *reviewRepository) List(ctx context.Context, query repository.ReviewListQuery) ([]*entity.Review, error) {
	tx := repo.db.WithContext(ctx).Model(&model.ReviewModel{})

	if query.ReviewerID != nil {
		tx = tx.Where("reviewer_id = ?", *query.ReviewerID)
	}
	if query.BusinessUserID != nil {
		tx = tx.Where("business_user_id = ?", *query.BusinessUserID)
	}

	column := "updated_at"
	if query.SortField == repository.ReviewSortRating {
		column = "rating"
	}
	direction := " ASC"
	if query.SortDescending {
		direction = " DESC"
	}

	var reviewModels []*model.ReviewModel
	if err := tx.Order(column + direction).Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// Update persists changes to a review's rating and description.
func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", review.ID).
		Updates(map[string]any{
			"rating":      review.Rating,
			"description": review.Description,
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidRating
		}

		return errors.Wrap(result.Error, "failed to update review")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// Delete removes a review.
func (repo *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ReviewModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete review")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// Count returns the total number of reviews.
func (repo *reviewRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count reviews")
	}

	return count, nil
}

// AverageRating returns the mean rating across all reviews, 0 when none exist.
func (repo *reviewRepository) AverageRating(ctx context.Context) (float64, error) {
	var average *float64

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("AVG(rating)").
		Scan(&average).Error; err != nil {
		return 0, errors.Wrap(err, "failed to compute average rating")
	}

	if average == nil {
		return 0, nil
	}

	return *average, nil
}

// --- Mapper Functions ---

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:             data.ID,
		BusinessUserID: data.BusinessUserID,
		ReviewerID:     data.ReviewerID,
		Rating:         data.Rating,
		Description:    data.Description,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:             data.ID,
		BusinessUserID: data.BusinessUserID,
		ReviewerID:     data.ReviewerID,
		Rating:         data.Rating,
		Description:    data.Description,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
