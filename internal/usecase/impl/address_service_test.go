package impl

import (
	"context"
	"testing"

	"prwatch/internal/domain/entity"
	domainerrors "prwatch/internal/domain/errors"
	"prwatch/internal/domain/repository"
	"prwatch/internal/domain/service"
	mockRepo "prwatch/internal/mocks/repository"
	mockSvc "prwatch/internal/mocks/service"
	"prwatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// addressServiceFixtures holds all test dependencies for address service tests.
type addressServiceFixtures struct {
	service   usecase.AddressUsecase
	txManager *mockRepo.MockTransactionManager
	geocoder  *mockSvc.MockGeocoder
}

func createTestAddressService(t *testing.T) addressServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	geocoder := mockSvc.NewMockGeocoder(t)

	service := NewAddressService(AddressServiceParams{
		TxManager: txManager,
		Geocoder:  geocoder,
		Logger:    newDiscardLogger(),
	})

	return addressServiceFixtures{
		service:   service,
		txManager: txManager,
		geocoder:  geocoder,
	}
}

func TestAddressService_ResolveLookup_StoredLocalitySkipsProvider(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	stored := &entity.AddressLookup{
		ID:          uuid.New(),
		Postcode:    "AB1 2CD",
		CountryCode: "gb",
		City:        "Aberdeen",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockLookupRepo := mockRepo.NewMockAddressLookupRepository(t)

			mockFactory.EXPECT().AddressLookupRepo().Return(mockLookupRepo)

			mockLookupRepo.EXPECT().
				FindByPostcodeCountry(ctx, "AB1 2CD", "gb").
				Return(stored, nil)

			return fn(mockFactory)
		})

	// Mixed-case, padded input normalizes onto the stored row. No geocoder
	// expectations are set: a provider call would fail the test.
	lookup, err := fx.service.ResolveLookup(ctx, &usecase.ResolveLookupInput{
		Postcode:    "  ab1 2cd ",
		CountryCode: "GB",
	})

	require.NoError(t, err)
	assert.Equal(t, stored, lookup)
}

func TestAddressService_ResolveLookup_GeocodesAndStoresNewLocality(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	generatedID := uuid.New()

	fx.geocoder.EXPECT().
		Search(ctx, "SW1A 1AA", "gb").
		Return(&service.GeocodeResult{
			PlaceID:     12345,
			Lat:         51.501,
			Lon:         -0.1416,
			DisplayName: "Westminster, London, England, United Kingdom",
			Class:       "place",
			Importance:  0.61,
			Address: &service.GeocodeAddress{
				City:        "London",
				State:       "England",
				Country:     "United Kingdom",
				CountryCode: "GB",
				Postcode:    "sw1a 1aa",
			},
		}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockLookupRepo := mockRepo.NewMockAddressLookupRepository(t)

			mockFactory.EXPECT().AddressLookupRepo().Return(mockLookupRepo)

			mockLookupRepo.EXPECT().
				FindByPostcodeCountry(ctx, "SW1A 1AA", "gb").
				Return(nil, repository.ErrAddressLookupNotFound)

			mockLookupRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.AddressLookup")).
				Run(func(ctx context.Context, lookup *entity.AddressLookup) {
					lookup.ID = generatedID
				}).
				Return(nil)

			return fn(mockFactory)
		})

	lookup, err := fx.service.ResolveLookup(ctx, &usecase.ResolveLookupInput{
		Postcode:    "sw1a 1aa",
		CountryCode: "GB",
	})

	require.NoError(t, err)
	assert.Equal(t, generatedID, lookup.ID)
	// The provider's own casing never leaks out.
	assert.Equal(t, "SW1A 1AA", lookup.Postcode)
	assert.Equal(t, "gb", lookup.CountryCode)
	assert.Equal(t, "London", lookup.City)
	assert.Equal(t, "England", lookup.State)
	assert.Equal(t, "United Kingdom", lookup.Country)
	assert.Equal(t, int64(12345), lookup.PlaceID)
	assert.InDelta(t, 51.501, lookup.Lat, 0.0001)
}

func TestAddressService_ResolveLookup_MissingBreakdownDefaultsEmpty(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()

	fx.geocoder.EXPECT().
		Search(ctx, "90210", "us").
		Return(&service.GeocodeResult{
			PlaceID:     99,
			Lat:         34.09,
			Lon:         -118.41,
			DisplayName: "Beverly Hills, California, United States",
			Address:     nil,
		}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockLookupRepo := mockRepo.NewMockAddressLookupRepository(t)

			mockFactory.EXPECT().AddressLookupRepo().Return(mockLookupRepo)

			mockLookupRepo.EXPECT().
				FindByPostcodeCountry(ctx, "90210", "us").
				Return(nil, repository.ErrAddressLookupNotFound)

			mockLookupRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.AddressLookup")).
				Return(nil)

			return fn(mockFactory)
		})

	lookup, err := fx.service.ResolveLookup(ctx, &usecase.ResolveLookupInput{
		Postcode:    "90210",
		CountryCode: "US",
	})

	require.NoError(t, err)
	assert.Empty(t, lookup.City)
	assert.Empty(t, lookup.County)
	assert.Empty(t, lookup.State)
	assert.Empty(t, lookup.Suburb)
	assert.Equal(t, "90210", lookup.Postcode)
	assert.Equal(t, "us", lookup.CountryCode)
}

func TestAddressService_ResolveLookup_ProviderNoMatch(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()

	fx.geocoder.EXPECT().
		Search(ctx, "ZZ9 9ZZ", "gb").
		Return(nil, service.ErrNoGeocodeMatch)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockLookupRepo := mockRepo.NewMockAddressLookupRepository(t)

			mockFactory.EXPECT().AddressLookupRepo().Return(mockLookupRepo)

			mockLookupRepo.EXPECT().
				FindByPostcodeCountry(ctx, "ZZ9 9ZZ", "gb").
				Return(nil, repository.ErrAddressLookupNotFound)

			return fn(mockFactory)
		})

	lookup, err := fx.service.ResolveLookup(ctx, &usecase.ResolveLookupInput{
		Postcode:    "zz9 9zz",
		CountryCode: "GB",
	})

	require.Error(t, err)
	assert.Nil(t, lookup)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "POSTCODE_NOT_FOUND", appErr.ErrorCode())
}

func TestAddressService_ResolveLookup_FindError(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockLookupRepo := mockRepo.NewMockAddressLookupRepository(t)

			mockFactory.EXPECT().AddressLookupRepo().Return(mockLookupRepo)

			mockLookupRepo.EXPECT().
				FindByPostcodeCountry(ctx, "AB1 2CD", "gb").
				Return(nil, errors.New("db error"))

			return fn(mockFactory)
		})

	lookup, err := fx.service.ResolveLookup(ctx, &usecase.ResolveLookupInput{
		Postcode:    "AB1 2CD",
		CountryCode: "gb",
	})

	assert.Error(t, err)
	assert.Nil(t, lookup)
	assert.Contains(t, err.Error(), "failed to query stored lookups")
}

func TestAddressService_ResolveAddress_ExistingMatchCollapses(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	lookupID := uuid.New()
	existing := &entity.Address{
		ID:              uuid.New(),
		NumOrName:       "10",
		Street1:         "Downing Street",
		AddressLookupID: lookupID,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockLookupRepo := mockRepo.NewMockAddressLookupRepository(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressLookupRepo().Return(mockLookupRepo)
			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)

			mockLookupRepo.EXPECT().
				FindByID(ctx, lookupID).
				Return(&entity.AddressLookup{ID: lookupID}, nil)

			mockAddressRepo.EXPECT().
				FindMatch(ctx, lookupID, "10", "Downing Street", "").
				Return(existing, nil)

			return fn(mockFactory)
		})

	address, err := fx.service.ResolveAddress(ctx, &usecase.ResolveAddressInput{
		NumOrName:       "10",
		Street1:         "Downing Street",
		AddressLookupID: lookupID,
	})

	require.NoError(t, err)
	assert.Equal(t, existing.ID, address.ID)
}

func TestAddressService_ResolveAddress_CreatesWhenNoMatch(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	lookupID := uuid.New()
	generatedID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockLookupRepo := mockRepo.NewMockAddressLookupRepository(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressLookupRepo().Return(mockLookupRepo)
			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)

			mockLookupRepo.EXPECT().
				FindByID(ctx, lookupID).
				Return(&entity.AddressLookup{ID: lookupID}, nil)

			mockAddressRepo.EXPECT().
				FindMatch(ctx, lookupID, "22b", "Baker Street", "").
				Return(nil, repository.ErrAddressNotFound)

			mockAddressRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Address")).
				Run(func(ctx context.Context, address *entity.Address) {
					address.ID = generatedID
				}).
				Return(nil)

			return fn(mockFactory)
		})

	address, err := fx.service.ResolveAddress(ctx, &usecase.ResolveAddressInput{
		NumOrName:       "22b",
		Street1:         "Baker Street",
		AddressLookupID: lookupID,
	})

	require.NoError(t, err)
	assert.Equal(t, generatedID, address.ID)
	assert.Equal(t, lookupID, address.AddressLookupID)
}

func TestAddressService_ResolveAddress_UnknownLookup(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	lookupID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockLookupRepo := mockRepo.NewMockAddressLookupRepository(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressLookupRepo().Return(mockLookupRepo)
			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)

			mockLookupRepo.EXPECT().
				FindByID(ctx, lookupID).
				Return(nil, repository.ErrAddressLookupNotFound)

			return fn(mockFactory)
		})

	address, err := fx.service.ResolveAddress(ctx, &usecase.ResolveAddressInput{
		NumOrName:       "1",
		Street1:         "Nowhere Lane",
		AddressLookupID: lookupID,
	})

	require.Error(t, err)
	assert.Nil(t, address)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ADDRESS_LOOKUP_NOT_FOUND", appErr.ErrorCode())
}

func TestAddressService_GetAddressDetail_Success(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	lookupID := uuid.New()
	addressID := uuid.New()

	address := &entity.Address{ID: addressID, NumOrName: "10", Street1: "Downing Street", AddressLookupID: lookupID}
	lookup := &entity.AddressLookup{ID: lookupID, Postcode: "SW1A 2AA", CountryCode: "gb"}
	reviews := []*entity.Review{
		{ID: uuid.New(), Rating: 5, Active: true, AddressID: addressID},
		{ID: uuid.New(), Rating: 4, Active: true, AddressID: addressID},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockLookupRepo := mockRepo.NewMockAddressLookupRepository(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)
			mockFactory.EXPECT().AddressLookupRepo().Return(mockLookupRepo)
			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)

			mockAddressRepo.EXPECT().FindByID(ctx, addressID).Return(address, nil)
			mockLookupRepo.EXPECT().FindByID(ctx, lookupID).Return(lookup, nil)
			mockReviewRepo.EXPECT().FindActiveByAddress(ctx, addressID).Return(reviews, nil)
			mockReviewRepo.EXPECT().AverageRating(ctx, addressID).Return(4.5, nil)

			return fn(mockFactory)
		})

	detail, err := fx.service.GetAddressDetail(ctx, addressID)

	require.NoError(t, err)
	assert.Equal(t, address, detail.Address)
	assert.Equal(t, lookup, detail.Lookup)
	assert.Len(t, detail.Reviews, 2)
	assert.InDelta(t, 4.5, detail.AverageRating, 0.0001)
}

func TestAddressService_ListSimilarAddresses(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	lookupID := uuid.New()
	stored := []*entity.Address{
		{ID: uuid.New(), NumOrName: "1", Street1: "High Street", AddressLookupID: lookupID},
		{ID: uuid.New(), NumOrName: "2", Street1: "High Street", AddressLookupID: lookupID},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)
			mockAddressRepo.EXPECT().FindByLookup(ctx, lookupID).Return(stored, nil)

			return fn(mockFactory)
		})

	addresses, err := fx.service.ListSimilarAddresses(ctx, lookupID)

	require.NoError(t, err)
	assert.Len(t, addresses, 2)
}
