// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"prwatch/internal/domain/entity"
	domainerrors "prwatch/internal/domain/errors"
	"prwatch/internal/domain/repository"
	"prwatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// addressLookupRepository implements the repository.AddressLookupRepository interface.
type addressLookupRepository struct {
	db *gorm.DB
}

// NewAddressLookupRepository is the constructor for addressLookupRepository.
func NewAddressLookupRepository(db *gorm.DB) repository.AddressLookupRepository {
	return &addressLookupRepository{
		db: db,
	}
}

// Create persists a new lookup record.
func (repo *addressLookupRepository) Create(ctx context.Context, lookup *entity.AddressLookup) error {
	lookupM := fromAddressLookupDomain(lookup)

	if err := repo.db.WithContext(ctx).Create(lookupM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAddressCreationFailed.WrapMessage("missing required lookup information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address lookup")
	}

	// Update the entity with generated values
	lookup.ID = lookupM.ID
	lookup.CreatedAt = lookupM.CreatedAt

	return nil
}

// FindByID retrieves a lookup by its unique ID.
func (repo *addressLookupRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AddressLookup, error) {
	var lookupM model.AddressLookupModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&lookupM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressLookupNotFound
		}

		return nil, errors.Wrap(err, "failed to find address lookup by id")
	}

	return toAddressLookupDomain(&lookupM), nil
}

// FindByPostcodeCountry retrieves the stored lookup for a postcode/country
// pair. The postcode comparison strips spaces and case so "sw1a1aa" matches a
// row stored as "SW1A 1AA".
func (repo *addressLookupRepository) FindByPostcodeCountry(ctx context.Context, postcode, countryCode string) (*entity.AddressLookup, error) {
	var lookupM model.AddressLookupModel

	normalizedPostcode := strings.ToUpper(strings.ReplaceAll(postcode, " ", ""))

	if err := repo.db.WithContext(ctx).
		Where("REPLACE(UPPER(postcode), ' ', '') = ? AND LOWER(country_code) = LOWER(?)",
			normalizedPostcode, countryCode).
		Order("created_at ASC").
		First(&lookupM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressLookupNotFound
		}

		return nil, errors.Wrap(err, "failed to find address lookup by postcode")
	}

	return toAddressLookupDomain(&lookupM), nil
}

// --- Mapper Functions ---

// toAddressLookupDomain converts a GORM AddressLookupModel to a domain entity.
func toAddressLookupDomain(data *model.AddressLookupModel) *entity.AddressLookup {
	if data == nil {
		return nil
	}

	return &entity.AddressLookup{
		ID:            data.ID,
		Postcode:      data.Postcode,
		CountryCode:   data.CountryCode,
		Suburb:        data.Suburb,
		City:          data.City,
		County:        data.County,
		StateDistrict: data.StateDistrict,
		State:         data.State,
		Country:       data.Country,
		DisplayName:   data.DisplayName,
		AddressClass:  data.AddressClass,
		Importance:    data.Importance,
		Lat:           data.Lat,
		Lon:           data.Lon,
		PlaceID:       data.PlaceID,
		CreatedAt:     data.CreatedAt,
	}
}

// fromAddressLookupDomain converts a domain entity to a GORM model for persistence.
func fromAddressLookupDomain(data *entity.AddressLookup) *model.AddressLookupModel {
	if data == nil {
		return nil
	}

	return &model.AddressLookupModel{
		ID:            data.ID,
		Postcode:      data.Postcode,
		CountryCode:   data.CountryCode,
		Suburb:        data.Suburb,
		City:          data.City,
		County:        data.County,
		StateDistrict: data.StateDistrict,
		State:         data.State,
		Country:       data.Country,
		DisplayName:   data.DisplayName,
		AddressClass:  data.AddressClass,
		Importance:    data.Importance,
		Lat:           data.Lat,
		Lon:           data.Lon,
		PlaceID:       data.PlaceID,
	}
}
