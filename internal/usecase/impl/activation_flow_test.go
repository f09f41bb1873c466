package impl

import (
	"context"
	"strings"
	"sync"
	"testing"

	"prwatch/internal/domain/entity"
	domainerrors "prwatch/internal/domain/errors"
	"prwatch/internal/domain/repository"
	"prwatch/internal/domain/service"
	"prwatch/internal/infra/auth"
	mockSvc "prwatch/internal/mocks/service"
	"prwatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memoryStore is a transactional in-memory stand-in for the persistence layer,
// used to exercise the full submit-then-activate flow without a database. A
// transaction works on a deep copy of the store and merges back only on
// commit, which is what makes the rollback assertions meaningful.
type memoryStore struct {
	mu       sync.Mutex
	lookups  map[uuid.UUID]entity.AddressLookup
	addrs    map[uuid.UUID]entity.Address
	reviews  map[uuid.UUID]entity.Review
	users    map[uuid.UUID]entity.User

	// failReviewUpdate makes the next review update fail, simulating a write
	// fault between the two activation flips.
	failReviewUpdate bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		lookups: make(map[uuid.UUID]entity.AddressLookup),
		addrs:   make(map[uuid.UUID]entity.Address),
		reviews: make(map[uuid.UUID]entity.Review),
		users:   make(map[uuid.UUID]entity.User),
	}
}

func (s *memoryStore) snapshot() *memoryStore {
	clone := newMemoryStore()
	for k, v := range s.lookups {
		clone.lookups[k] = v
	}
	for k, v := range s.addrs {
		clone.addrs[k] = v
	}
	for k, v := range s.reviews {
		clone.reviews[k] = v
	}
	for k, v := range s.users {
		clone.users[k] = v
	}
	clone.failReviewUpdate = s.failReviewUpdate

	return clone
}

func (s *memoryStore) commit(tx *memoryStore) {
	s.lookups = tx.lookups
	s.addrs = tx.addrs
	s.reviews = tx.reviews
	s.users = tx.users
}

// Execute implements repository.TransactionManager over the in-memory store.
func (s *memoryStore) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := s.snapshot()
	if err := fn(&memoryFactory{store: tx}); err != nil {
		return err
	}
	s.commit(tx)

	return nil
}

type memoryFactory struct {
	store *memoryStore
}

func (f *memoryFactory) AddressLookupRepo() repository.AddressLookupRepository {
	return &memoryLookupRepo{store: f.store}
}

func (f *memoryFactory) AddressRepo() repository.AddressRepository {
	return &memoryAddressRepo{store: f.store}
}

func (f *memoryFactory) ReviewRepo() repository.ReviewRepository {
	return &memoryReviewRepo{store: f.store}
}

func (f *memoryFactory) UserRepo() repository.UserRepository {
	return &memoryUserRepo{store: f.store}
}

type memoryLookupRepo struct {
	store *memoryStore
}

func (r *memoryLookupRepo) Create(ctx context.Context, lookup *entity.AddressLookup) error {
	lookup.ID = uuid.New()
	r.store.lookups[lookup.ID] = *lookup

	return nil
}

func (r *memoryLookupRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.AddressLookup, error) {
	lookup, ok := r.store.lookups[id]
	if !ok {
		return nil, repository.ErrAddressLookupNotFound
	}

	return &lookup, nil
}

func (r *memoryLookupRepo) FindByPostcodeCountry(ctx context.Context, postcode, countryCode string) (*entity.AddressLookup, error) {
	want := strings.ReplaceAll(strings.ToUpper(postcode), " ", "")
	for _, lookup := range r.store.lookups {
		stored := strings.ReplaceAll(strings.ToUpper(lookup.Postcode), " ", "")
		if stored == want && strings.EqualFold(lookup.CountryCode, countryCode) {
			found := lookup

			return &found, nil
		}
	}

	return nil, repository.ErrAddressLookupNotFound
}

type memoryAddressRepo struct {
	store *memoryStore
}

func (r *memoryAddressRepo) Create(ctx context.Context, address *entity.Address) error {
	address.ID = uuid.New()
	r.store.addrs[address.ID] = *address

	return nil
}

func (r *memoryAddressRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	address, ok := r.store.addrs[id]
	if !ok {
		return nil, repository.ErrAddressNotFound
	}

	return &address, nil
}

func (r *memoryAddressRepo) FindMatch(ctx context.Context, lookupID uuid.UUID, numOrName, street1, street2 string) (*entity.Address, error) {
	for _, address := range r.store.addrs {
		if address.AddressLookupID == lookupID &&
			strings.EqualFold(address.NumOrName, numOrName) &&
			strings.EqualFold(address.Street1, street1) &&
			strings.EqualFold(address.Street2, street2) {
			found := address

			return &found, nil
		}
	}

	return nil, repository.ErrAddressNotFound
}

func (r *memoryAddressRepo) FindByLookup(ctx context.Context, lookupID uuid.UUID) ([]*entity.Address, error) {
	var out []*entity.Address
	for _, address := range r.store.addrs {
		if address.AddressLookupID == lookupID {
			found := address
			out = append(out, &found)
		}
	}

	return out, nil
}

type memoryReviewRepo struct {
	store *memoryStore
}

func (r *memoryReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	review.ID = uuid.New()
	r.store.reviews[review.ID] = *review

	return nil
}

func (r *memoryReviewRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	review, ok := r.store.reviews[id]
	if !ok {
		return nil, repository.ErrReviewNotFound
	}

	return &review, nil
}

func (r *memoryReviewRepo) Update(ctx context.Context, review *entity.Review) error {
	if r.store.failReviewUpdate {
		return errors.New("injected review write fault")
	}
	if _, ok := r.store.reviews[review.ID]; !ok {
		return repository.ErrReviewNotFound
	}
	r.store.reviews[review.ID] = *review

	return nil
}

func (r *memoryReviewRepo) FindActiveByAddress(ctx context.Context, addressID uuid.UUID) ([]*entity.Review, error) {
	var out []*entity.Review
	for _, review := range r.store.reviews {
		if review.AddressID == addressID && review.Active {
			found := review
			out = append(out, &found)
		}
	}

	return out, nil
}

func (r *memoryReviewRepo) AverageRating(ctx context.Context, addressID uuid.UUID) (float64, error) {
	var sum, count int
	for _, review := range r.store.reviews {
		if review.AddressID == addressID && review.Active {
			sum += review.Rating
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}

	return float64(sum) / float64(count), nil
}

type memoryUserRepo struct {
	store *memoryStore
}

func (r *memoryUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.store.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &user, nil
}

func (r *memoryUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.store.users {
		if user.Email == email {
			found := user

			return &found, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memoryUserRepo) Create(ctx context.Context, user *entity.User) error {
	user.ID = uuid.New()
	r.store.users[user.ID] = *user

	return nil
}

func (r *memoryUserRepo) Update(ctx context.Context, user *entity.User) error {
	if _, ok := r.store.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	r.store.users[user.ID] = *user

	return nil
}

// flowFixtures wires real token and address/review services over the
// in-memory store, with only the outermost integrations mocked.
type flowFixtures struct {
	store      *memoryStore
	addressSvc usecase.AddressUsecase
	reviewSvc  usecase.ReviewUsecase
	geocoder   *mockSvc.MockGeocoder
	mailSender *mockSvc.MockMailSender
}

func createFlowFixtures(t *testing.T) flowFixtures {
	store := newMemoryStore()
	geocoder := mockSvc.NewMockGeocoder(t)
	mailSender := mockSvc.NewMockMailSender(t)

	cfg := newTestConfig()
	cfg.SecretKey.Activation = "flow-test-secret"

	tokenService, err := auth.NewActivationTokenService(cfg)
	require.NoError(t, err)

	hasher := mockSvc.NewMockPasswordHasher(t)
	hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("hashed", nil).Maybe()

	addressSvc := NewAddressService(AddressServiceParams{
		TxManager: store,
		Geocoder:  geocoder,
		Logger:    newDiscardLogger(),
	})
	reviewSvc := NewReviewService(ReviewServiceParams{
		TxManager:    store,
		TokenService: tokenService,
		MailSender:   mailSender,
		Hasher:       hasher,
		Config:       cfg,
		Logger:       newDiscardLogger(),
	})

	return flowFixtures{
		store:      store,
		addressSvc: addressSvc,
		reviewSvc:  reviewSvc,
		geocoder:   geocoder,
		mailSender: mailSender,
	}
}

func TestActivationFlow_EndToEnd(t *testing.T) {
	fx := createFlowFixtures(t)
	ctx := context.Background()

	fx.geocoder.EXPECT().
		Search(ctx, "SW1A 1AA", "gb").
		Return(&service.GeocodeResult{
			PlaceID:     1,
			DisplayName: "Westminster, London",
			Address:     &service.GeocodeAddress{City: "London", CountryCode: "gb"},
		}, nil).
		Once()

	lookup, err := fx.addressSvc.ResolveLookup(ctx, &usecase.ResolveLookupInput{
		Postcode: "SW1A 1AA", CountryCode: "GB",
	})
	require.NoError(t, err)

	// Same postcode squashed or respaced resolves to the stored row without a
	// second provider call.
	again, err := fx.addressSvc.ResolveLookup(ctx, &usecase.ResolveLookupInput{
		Postcode: "sw1a1aa", CountryCode: "gb",
	})
	require.NoError(t, err)
	assert.Equal(t, lookup.ID, again.ID)

	address, err := fx.addressSvc.ResolveAddress(ctx, &usecase.ResolveAddressInput{
		NumOrName: "10", Street1: "Downing Street", AddressLookupID: lookup.ID,
	})
	require.NoError(t, err)

	fx.mailSender.EXPECT().
		SendActivationMail(ctx, mock.AnythingOfType("*service.ActivationMail")).
		Return(nil).
		Once()

	submitted, err := fx.reviewSvc.SubmitReview(ctx, &usecase.SubmitReviewInput{
		Title:     "Historic",
		Desc:      "Famous front door.",
		Rating:    5,
		Email:     "resident@example.com",
		AddressID: address.ID,
	})
	require.NoError(t, err)
	assert.True(t, submitted.EmailDispatched)
	assert.False(t, submitted.Review.Active)
	assert.False(t, submitted.User.Active)

	// Follow the link components exactly as mailed.
	parts := strings.Split(submitted.ActivationLink, "/")
	require.GreaterOrEqual(t, len(parts), 3)
	input := &usecase.ActivateReviewInput{
		UserIDB64:   parts[len(parts)-3],
		ReviewIDB64: parts[len(parts)-2],
		Token:       parts[len(parts)-1],
	}

	activated, err := fx.reviewSvc.ActivateReview(ctx, input)
	require.NoError(t, err)
	assert.True(t, activated.Review.Active)
	assert.True(t, activated.User.Active)
	require.NotNil(t, activated.Review.UserID)
	assert.Equal(t, activated.User.ID, *activated.Review.UserID)

	// The link is single-use, even inside the token's window.
	_, err = fx.reviewSvc.ActivateReview(ctx, input)
	require.Error(t, err)
	assert.Equal(t, domainerrors.ErrActivationFailed, err)

	// The confirmed review now feeds the address detail.
	detail, err := fx.addressSvc.GetAddressDetail(ctx, address.ID)
	require.NoError(t, err)
	assert.Len(t, detail.Reviews, 1)
	assert.InDelta(t, 5.0, detail.AverageRating, 0.0001)
}

func TestActivationFlow_ReviewWriteFaultRollsBackUser(t *testing.T) {
	fx := createFlowFixtures(t)
	ctx := context.Background()

	fx.geocoder.EXPECT().
		Search(ctx, "SW1A 1AA", "gb").
		Return(&service.GeocodeResult{PlaceID: 1, DisplayName: "Westminster"}, nil).
		Once()
	fx.mailSender.EXPECT().
		SendActivationMail(ctx, mock.AnythingOfType("*service.ActivationMail")).
		Return(nil).
		Once()

	lookup, err := fx.addressSvc.ResolveLookup(ctx, &usecase.ResolveLookupInput{
		Postcode: "SW1A 1AA", CountryCode: "GB",
	})
	require.NoError(t, err)
	address, err := fx.addressSvc.ResolveAddress(ctx, &usecase.ResolveAddressInput{
		NumOrName: "10", Street1: "Downing Street", AddressLookupID: lookup.ID,
	})
	require.NoError(t, err)

	submitted, err := fx.reviewSvc.SubmitReview(ctx, &usecase.SubmitReviewInput{
		Title:     "Historic",
		Desc:      "Famous front door.",
		Rating:    5,
		Email:     "resident@example.com",
		AddressID: address.ID,
	})
	require.NoError(t, err)

	parts := strings.Split(submitted.ActivationLink, "/")
	input := &usecase.ActivateReviewInput{
		UserIDB64:   parts[len(parts)-3],
		ReviewIDB64: parts[len(parts)-2],
		Token:       parts[len(parts)-1],
	}

	// Fault between the two flips: the user update succeeds inside the
	// transaction, the review update fails.
	fx.store.failReviewUpdate = true

	_, err = fx.reviewSvc.ActivateReview(ctx, input)
	require.Error(t, err)
	assert.Equal(t, domainerrors.ErrActivationFailed, err)

	// Neither row moved: the user flip rolled back with the review flip.
	storedUser := fx.store.users[submitted.User.ID]
	storedReview := fx.store.reviews[submitted.Review.ID]
	assert.False(t, storedUser.Active)
	assert.False(t, storedReview.Active)
	assert.Nil(t, storedReview.UserID)

	// The same link still works once the fault clears.
	fx.store.failReviewUpdate = false

	activated, err := fx.reviewSvc.ActivateReview(ctx, input)
	require.NoError(t, err)
	assert.True(t, activated.Review.Active)
	assert.True(t, activated.User.Active)
}
