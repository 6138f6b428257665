package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// offerRepository implements the repository.OfferRepository interface.
type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(db *gorm.DB) repository.OfferRepository {
	return &offerRepository{
		db: db,
	}
}

// Create persists a new offer together with its details in a single insert chain.
func (repo *offerRepository) Create(ctx context.Context, offer *entity.Offer) error {
	offerM := fromOfferDomain(offer)

	if err := repo.db.WithContext(ctx).Create(offerM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("detail values out of range")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create offer")
	}

	// Update the entity with generated values
	offer.ID = offerM.ID
	offer.CreatedAt = offerM.CreatedAt
	offer.UpdatedAt = offerM.UpdatedAt
	for i, detailM := range offerM.Details {
		offer.Details[i].ID = detailM.ID
		offer.Details[i].OfferID = offerM.ID
		offer.Details[i].CreatedAt = detailM.CreatedAt
		offer.Details[i].UpdatedAt = detailM.UpdatedAt
	}

	return nil
}

// FindByID retrieves an offer with its details and owner preloaded.
func (repo *offerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error) {
	var offerM model.OfferModel

	if err := repo.db.WithContext(ctx).
		Preload("Details").
		Preload("User.Profile").
		Where("id = ?", id).
		First(&offerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer by ID")
	}

	return toOfferDomain(&offerM), nil
}

// List retrieves a page of offers matching the query, plus the total match
// count before paging. Aggregate filters and sorts run against a grouped
// subquery over the offer's detail set.
func (repo *offerRepository) List(ctx context.Context, query repository.OfferListQuery) ([]*entity.Offer, int64, error) {
	base := repo.buildListQuery(ctx, query)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count offers")
	}

	listQuery := base.
		Preload("Details").
		Preload("User.Profile").
		Order(orderClause(query))

	if query.PageSize > 0 {
		page := query.Page
		if page < 1 {
			page = 1
		}
		listQuery = listQuery.Limit(query.PageSize).Offset((page - 1) * query.PageSize)
	}

	var offerModels []*model.OfferModel
	if err := listQuery.Find(&offerModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list offers")
	}

	offers := make([]*entity.Offer, 0, len(offerModels))
	for _, offerM := range offerModels {
		offers = append(offers, toOfferDomain(offerM))
	}

	return offers, total, nil
}

// buildListQuery assembles the filtered base query shared by Count and Find.
func (repo *offerRepository) buildListQuery(ctx context.Context, query repository.OfferListQuery) *gorm.DB {
	aggregates := repo.db.
		Model(&model.OfferDetailModel{}).
		Select("offer_id, MIN(price) AS min_price, MIN(delivery_time_in_days) AS min_delivery_time").
		Group("offer_id")

	tx := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Joins("JOIN (?) AS aggregates ON aggregates.offer_id = offers.id", aggregates)

	if query.MinPrice != nil {
		tx = tx.Where("aggregates.min_price >= ?", *query.MinPrice)
	}
	if query.MaxPrice != nil {
		tx = tx.Where("aggregates.min_price <= ?", *query.MaxPrice)
	}
	if query.MinDeliveryTime != nil {
		tx = tx.Where("aggregates.min_delivery_time >= ?", *query.MinDeliveryTime)
	}
	if query.MaxDeliveryTime != nil {
		tx = tx.Where("aggregates.min_delivery_time <= ?", *query.MaxDeliveryTime)
	}
	if query.CreatorID != nil {
		tx = tx.Where("offers.user_id = ?", *query.CreatorID)
	}
	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		tx = tx.Where("offers.title ILIKE ? OR offers.description ILIKE ?", pattern, pattern)
	}

	return tx
}

func orderClause(query repository.OfferListQuery) string {
	var column string
	switch query.SortField {
	case repository.OfferSortMinPrice:
		column = "aggregates.min_price"
	case repository.OfferSortMinDeliveryTime:
		column = "aggregates.min_delivery_time"
	default:
		column = "offers.updated_at"
	}

	if query.SortDescending {
		return column + " DESC"
	}

	return column + " ASC"
}

// Update persists changes to an offer's own fields and touches updated_at.
func (repo *offerRepository) Update(ctx context.Context, offer *entity.Offer) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Where("id = ?", offer.ID).
		Updates(map[string]any{
			"title":       offer.Title,
			"image":       offer.Image,
			"description": offer.Description,
			"offer_type":  offer.OfferType.String(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update offer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	return nil
}

// Delete hard-deletes an offer; detail rows cascade at the database level.
func (repo *offerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OfferModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete offer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	return nil
}

// Count returns the total number of offers.
func (repo *offerRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count offers")
	}

	return count, nil
}

// FindDetailByID retrieves a single detail tier.
func (repo *offerRepository) FindDetailByID(ctx context.Context, id uuid.UUID) (*entity.OfferDetail, error) {
	var detailM model.OfferDetailModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&detailM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferDetailNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer detail by ID")
	}

	return toOfferDetailDomain(&detailM), nil
}

// UpdateDetail persists changes to a single detail tier and touches the
// parent offer's updated_at so listings sorted by recency stay correct.
func (repo *offerRepository) UpdateDetail(ctx context.Context, detail *entity.OfferDetail) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OfferDetailModel{}).
		Where("id = ?", detail.ID).
		Updates(map[string]any{
			"title":                 detail.Title,
			"revisions":             detail.Revisions,
			"delivery_time_in_days": detail.DeliveryTimeInDays,
			"price":                 detail.Price,
			"features":              datatypes.NewJSONSlice(detail.Features),
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WithDetails("detail values out of range")
		}

		return errors.Wrap(result.Error, "failed to update offer detail")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOfferDetailNotFound
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Where("id = ?", detail.OfferID).
		Update("updated_at", gorm.Expr("NOW()")).Error; err != nil {
		return errors.Wrap(err, "failed to touch parent offer")
	}

	return nil
}

// DeleteDetail removes a single detail tier.
func (repo *offerRepository) DeleteDetail(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OfferDetailModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete offer detail")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOfferDetailNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOfferDomain converts a GORM OfferModel to a domain Offer entity.
func toOfferDomain(data *model.OfferModel) *entity.Offer {
	if data == nil {
		return nil
	}

	details := make([]*entity.OfferDetail, 0, len(data.Details))
	for _, detailM := range data.Details {
		details = append(details, toOfferDetailDomain(detailM))
	}

	return &entity.Offer{
		ID:          data.ID,
		UserID:      data.UserID,
		Title:       data.Title,
		Image:       data.Image,
		Description: data.Description,
		OfferType:   entity.OfferTier(data.OfferType),
		Details:     details,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		Owner:       toUserDomain(data.User),
	}
}

// fromOfferDomain converts a domain Offer entity to a GORM OfferModel.
func fromOfferDomain(data *entity.Offer) *model.OfferModel {
	if data == nil {
		return nil
	}

	details := make([]*model.OfferDetailModel, 0, len(data.Details))
	for _, detail := range data.Details {
		details = append(details, fromOfferDetailDomain(detail))
	}

	return &model.OfferModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Title:       data.Title,
		Image:       data.Image,
		Description: data.Description,
		OfferType:   data.OfferType.String(),
		Details:     details,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// toOfferDetailDomain converts a GORM OfferDetailModel to a domain OfferDetail entity.
func toOfferDetailDomain(data *model.OfferDetailModel) *entity.OfferDetail {
	if data == nil {
		return nil
	}

	return &entity.OfferDetail{
		ID:                 data.ID,
		OfferID:            data.OfferID,
		Title:              data.Title,
		Revisions:          data.Revisions,
		DeliveryTimeInDays: data.DeliveryTimeInDays,
		Price:              data.Price,
		Features:           data.Features,
		OfferType:          entity.OfferTier(data.OfferType),
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromOfferDetailDomain converts a domain OfferDetail entity to a GORM OfferDetailModel.
func fromOfferDetailDomain(data *entity.OfferDetail) *model.OfferDetailModel {
	if data == nil {
		return nil
	}

	return &model.OfferDetailModel{
		ID:                 data.ID,
		OfferID:            data.OfferID,
		Title:              data.Title,
		Revisions:          data.Revisions,
		DeliveryTimeInDays: data.DeliveryTimeInDays,
		Price:              data.Price,
		Features:           datatypes.NewJSONSlice(data.Features),
		OfferType:          data.OfferType.String(),
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
