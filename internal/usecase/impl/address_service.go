// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"prwatch/internal/domain/entity"
	domainerrors "prwatch/internal/domain/errors"
	"prwatch/internal/domain/repository"
	"prwatch/internal/domain/service"
	"prwatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	txManager repository.TransactionManager
	geocoder  service.Geocoder
	logger    *slog.Logger
}

// AddressServiceParams holds dependencies for addressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Geocoder  service.Geocoder
	Logger    *slog.Logger
}

// NewAddressService is the constructor for addressService. It receives all dependencies as interfaces.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		txManager: params.TxManager,
		geocoder:  params.Geocoder,
		logger:    params.Logger,
	}
}

// ResolveLookup returns the stored lookup for the normalized (postcode,
// country) pair, or geocodes and stores a new one. The existence check runs
// before any provider call so repeated submissions at a known locality cost
// nothing externally.
func (srv *addressService) ResolveLookup(ctx context.Context, input *usecase.ResolveLookupInput) (*entity.AddressLookup, error) {
	postcode := strings.ToUpper(strings.TrimSpace(input.Postcode))
	countryCode := strings.ToLower(strings.TrimSpace(input.CountryCode))

	var lookup *entity.AddressLookup
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		lookupRepo := repoFactory.AddressLookupRepo()

		existing, err := lookupRepo.FindByPostcodeCountry(ctx, postcode, countryCode)
		if err == nil {
			srv.logger.Debug("Postcode lookup served from storage",
				slog.String("postcode", postcode), slog.String("countryCode", countryCode))
			lookup = existing

			return nil
		}
		if !errors.Is(err, repository.ErrAddressLookupNotFound) {
			return errors.Wrap(err, "failed to query stored lookups")
		}

		created, err := srv.geocodeLookup(ctx, postcode, countryCode)
		if err != nil {
			return err
		}
		if err := lookupRepo.Create(ctx, created); err != nil {
			return err
		}
		lookup = created

		return nil
	})
	if err != nil {
		return nil, err
	}

	return lookup, nil
}

// geocodeLookup queries the provider and normalizes its response into a new
// AddressLookup. Optional address components default to empty strings; a
// postcode or country code present in the response overrides the caller's.
func (srv *addressService) geocodeLookup(ctx context.Context, postcode, countryCode string) (*entity.AddressLookup, error) {
	result, err := srv.geocoder.Search(ctx, postcode, countryCode)
	if errors.Is(err, service.ErrNoGeocodeMatch) {
		srv.logger.Info("Geocoding provider found no match",
			slog.String("postcode", postcode), slog.String("countryCode", countryCode))

		return nil, domainerrors.NewPostcodeNotFoundError(postcode, countryCode)
	}
	if err != nil {
		return nil, errors.Wrap(err, "geocoding provider query failed")
	}

	lookup := &entity.AddressLookup{
		Postcode:     postcode,
		CountryCode:  countryCode,
		DisplayName:  result.DisplayName,
		AddressClass: result.Class,
		Importance:   result.Importance,
		Lat:          result.Lat,
		Lon:          result.Lon,
		PlaceID:      result.PlaceID,
	}
	if addr := result.Address; addr != nil {
		lookup.County = addr.County
		lookup.City = addr.City
		lookup.Country = addr.Country
		lookup.StateDistrict = addr.StateDistrict
		lookup.State = addr.State
		lookup.Suburb = addr.Suburb
		if addr.CountryCode != "" {
			lookup.CountryCode = strings.ToLower(addr.CountryCode)
		}
		if addr.Postcode != "" {
			lookup.Postcode = strings.ToUpper(addr.Postcode)
		}
	}

	return lookup, nil
}

// ResolveAddress deduplicates a street-address submission against the stored
// rows for the same lookup. Multiple stored matches collapse to the oldest;
// that is a normal outcome, not an error.
func (srv *addressService) ResolveAddress(ctx context.Context, input *usecase.ResolveAddressInput) (*entity.Address, error) {
	var address *entity.Address
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		lookupRepo := repoFactory.AddressLookupRepo()
		addressRepo := repoFactory.AddressRepo()

		if _, err := lookupRepo.FindByID(ctx, input.AddressLookupID); err != nil {
			if errors.Is(err, repository.ErrAddressLookupNotFound) {
				return domainerrors.ErrAddressLookupNotFound.WrapMessage("unknown address lookup")
			}

			return errors.Wrap(err, "failed to load lookup")
		}

		existing, err := addressRepo.FindMatch(ctx, input.AddressLookupID, input.NumOrName, input.Street1, input.Street2)
		if err == nil {
			address = existing

			return nil
		}
		if !errors.Is(err, repository.ErrAddressNotFound) {
			return errors.Wrap(err, "failed to query stored addresses")
		}

		created := &entity.Address{
			NumOrName:       input.NumOrName,
			Street1:         input.Street1,
			Street2:         input.Street2,
			AddressLookupID: input.AddressLookupID,
		}
		if err := addressRepo.Create(ctx, created); err != nil {
			return err
		}
		address = created

		return nil
	})
	if err != nil {
		return nil, err
	}

	return address, nil
}

// GetAddressDetail loads an address together with its locality record, its
// confirmed reviews and their average rating.
func (srv *addressService) GetAddressDetail(ctx context.Context, id uuid.UUID) (*usecase.AddressDetailOutput, error) {
	var detail *usecase.AddressDetailOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()
		lookupRepo := repoFactory.AddressLookupRepo()
		reviewRepo := repoFactory.ReviewRepo()

		address, err := addressRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return domainerrors.ErrAddressNotFound.WrapMessage("unknown address")
			}

			return errors.Wrap(err, "failed to load address")
		}

		lookup, err := lookupRepo.FindByID(ctx, address.AddressLookupID)
		if err != nil {
			return errors.Wrap(err, "failed to load lookup for address")
		}

		reviews, err := reviewRepo.FindActiveByAddress(ctx, address.ID)
		if err != nil {
			return errors.Wrap(err, "failed to load reviews for address")
		}

		average, err := reviewRepo.AverageRating(ctx, address.ID)
		if err != nil {
			return errors.Wrap(err, "failed to compute average rating")
		}

		detail = &usecase.AddressDetailOutput{
			Address:       address,
			Lookup:        lookup,
			Reviews:       reviews,
			AverageRating: average,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return detail, nil
}

// ListSimilarAddresses returns every stored address under one lookup, used to
// surface likely duplicates before a visitor submits a new address.
func (srv *addressService) ListSimilarAddresses(ctx context.Context, lookupID uuid.UUID) ([]*entity.Address, error) {
	var addresses []*entity.Address
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		addresses, err = repoFactory.AddressRepo().FindByLookup(ctx, lookupID)

		return err
	})
	if err != nil {
		return nil, err
	}

	return addresses, nil
}
