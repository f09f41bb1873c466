package postgres

import (
	"context"

	"prwatch/internal/domain/entity"
	domainerrors "prwatch/internal/domain/errors"
	"prwatch/internal/domain/repository"
	"prwatch/internal/infra/persistence/model"

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

// Create persists a new pending review.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAddressNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrReviewCreationFailed.WrapMessage("rating out of range")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrReviewCreationFailed.WrapMessage("missing required review information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt

	return nil
}

// FindByID retrieves a review by its unique ID.
func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by id")
	}

	return toReviewDomain(&reviewM), nil
}

// Update modifies an existing review.
func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", review.ID).
		Updates(map[string]any{
			"title":   review.Title,
			"desc":    review.Desc,
			"rating":  review.Rating,
			"active":  review.Active,
			"user_id": review.UserID,
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrReviewCreationFailed.WrapMessage("rating out of range")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update review")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// FindActiveByAddress retrieves the confirmed reviews for an address, newest first.
func (repo *reviewRepository) FindActiveByAddress(ctx context.Context, addressID uuid.UUID) ([]*entity.Review, error) {
	var reviewMs []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("address_id = ? AND active = ?", addressID, true).
		Order("created_at DESC").
		Find(&reviewMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active reviews by address")
	}

	reviews := make([]*entity.Review, 0, len(reviewMs))
	for _, reviewM := range reviewMs {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// AverageRating returns the mean rating over the confirmed reviews of an
// address. An address with no confirmed reviews averages to 0.
func (repo *reviewRepository) AverageRating(ctx context.Context, addressID uuid.UUID) (float64, error) {
	var average float64

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("address_id = ? AND active = ?", addressID, true).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&average).Error; err != nil {
		return 0, errors.Wrap(err, "failed to average ratings by address")
	}

	return average, nil
}

// --- Mapper Functions ---

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:        data.ID,
		Title:     data.Title,
		Desc:      data.Desc,
		Rating:    data.Rating,
		Email:     data.Email,
		Active:    data.Active,
		AddressID: data.AddressID,
		UserID:    data.UserID,
		CreatedAt: data.CreatedAt,
	}
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:        data.ID,
		Title:     data.Title,
		Desc:      data.Desc,
		Rating:    data.Rating,
		Email:     data.Email,
		Active:    data.Active,
		AddressID: data.AddressID,
		UserID:    data.UserID,
	}
}
