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

// addressRepository implements the repository.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{
		db: db,
	}
}

// Create persists a new street address.
func (repo *addressRepository) Create(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAddressLookupNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAddressCreationFailed.WrapMessage("missing required address information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt

	return nil
}

// FindByID retrieves an address by its unique ID.
func (repo *addressRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by id")
	}

	return toAddressDomain(&addressM), nil
}

// FindMatch retrieves the oldest address matching the dedup tuple under the
// given lookup. Comparison is case-insensitive on all three line fields.
func (repo *addressRepository) FindMatch(ctx context.Context, lookupID uuid.UUID, numOrName, street1, street2 string) (*entity.Address, error) {
	var addressM model.AddressModel

	if err := repo.db.WithContext(ctx).
		Where("address_lookup_id = ? AND LOWER(num_or_name) = LOWER(?) AND LOWER(street_1) = LOWER(?) AND LOWER(street_2) = LOWER(?)",
			lookupID, numOrName, street1, street2).
		Order("created_at ASC").
		First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find matching address")
	}

	return toAddressDomain(&addressM), nil
}

// FindByLookup lists every address registered under a lookup, oldest first.
func (repo *addressRepository) FindByLookup(ctx context.Context, lookupID uuid.UUID) ([]*entity.Address, error) {
	var addressMs []*model.AddressModel

	if err := repo.db.WithContext(ctx).
		Where("address_lookup_id = ?", lookupID).
		Order("created_at ASC").
		Find(&addressMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list addresses by lookup")
	}

	addresses := make([]*entity.Address, 0, len(addressMs))
	for _, addressM := range addressMs {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses, nil
}

// --- Mapper Functions ---

func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:              data.ID,
		NumOrName:       data.NumOrName,
		Street1:         data.Street1,
		Street2:         data.Street2,
		AddressLookupID: data.AddressLookupID,
		CreatedAt:       data.CreatedAt,
	}
}

func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:              data.ID,
		NumOrName:       data.NumOrName,
		Street1:         data.Street1,
		Street2:         data.Street2,
		AddressLookupID: data.AddressLookupID,
	}
}
