package impl

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"

	"prwatch/config"
	"prwatch/internal/domain/entity"
	domainerrors "prwatch/internal/domain/errors"
	"prwatch/internal/domain/repository"
	"prwatch/internal/domain/service"
	"prwatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager    repository.TransactionManager
	tokenService service.ActivationTokenService
	mailSender   service.MailSender
	hasher       service.PasswordHasher
	baseURL      string
	logger       *slog.Logger
}

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	TokenService service.ActivationTokenService
	MailSender   service.MailSender
	Hasher       service.PasswordHasher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	baseURL := ""
	if params.Config != nil && params.Config.Activation != nil {
		baseURL = params.Config.Activation.BaseURL
	}

	return &reviewService{
		txManager:    params.TxManager,
		tokenService: params.TokenService,
		mailSender:   params.MailSender,
		hasher:       params.Hasher,
		baseURL:      baseURL,
		logger:       params.Logger,
	}
}

// SubmitReview stores a pending review plus a pending account for the
// submitter's email, then dispatches the activation link. Mail failure is a
// warning, never a rollback.
func (srv *reviewService) SubmitReview(ctx context.Context, input *usecase.SubmitReviewInput) (*usecase.SubmitReviewOutput, error) {
	if input.Rating < entity.MinRating || input.Rating > entity.MaxRating {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("rating must be between %d and %d", entity.MinRating, entity.MaxRating))
	}

	var (
		review *entity.Review
		user   *entity.User
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()
		reviewRepo := repoFactory.ReviewRepo()
		userRepo := repoFactory.UserRepo()

		if _, err := addressRepo.FindByID(ctx, input.AddressID); err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return domainerrors.ErrAddressNotFound.WrapMessage("review submitted for unknown address")
			}

			return errors.Wrap(err, "failed to load address for review")
		}

		account, err := srv.findOrCreateAccount(ctx, userRepo, input.Email)
		if err != nil {
			return err
		}

		pending := &entity.Review{
			Title:     input.Title,
			Desc:      input.Desc,
			Rating:    input.Rating,
			Email:     input.Email,
			Active:    false,
			AddressID: input.AddressID,
		}
		if err := reviewRepo.Create(ctx, pending); err != nil {
			return err
		}

		review = pending
		user = account

		return nil
	})
	if err != nil {
		return nil, err
	}

	link, err := srv.buildActivationLink(user.ID, review.ID)
	if err != nil {
		return nil, err
	}

	output := &usecase.SubmitReviewOutput{
		Review:          review,
		User:            user,
		ActivationLink:  link,
		EmailDispatched: true,
	}
	mail := &service.ActivationMail{To: input.Email, ActivationLink: link}
	if err := srv.mailSender.SendActivationMail(ctx, mail); err != nil {
		// The pending records stand; the caller is told the mail did not go out.
		srv.logger.Warn("Activation mail dispatch failed",
			slog.String("email", input.Email), slog.String("error", err.Error()))
		output.EmailDispatched = false
	}

	srv.logger.Info("Review submitted pending activation",
		slog.String("reviewID", review.ID.String()), slog.String("addressID", input.AddressID.String()))

	return output, nil
}

// findOrCreateAccount reuses the account registered for the email or creates
// a new inactive one. Auto-created accounts get a random, never-disclosed
// password; reused accounts are left untouched, active or not.
func (srv *reviewService) findOrCreateAccount(ctx context.Context, userRepo repository.UserRepository, email string) (*entity.User, error) {
	existing, err := userRepo.FindByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up account by email")
	}

	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, errors.Wrap(err, "failed to generate account secret")
	}
	hash, err := srv.hasher.Hash(base64.RawStdEncoding.EncodeToString(secret))
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash account secret")
	}

	account := &entity.User{
		Email:        email,
		PasswordHash: hash,
		Active:       false,
	}
	if err := userRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// buildActivationLink assembles the three link components: base64 user id,
// base64 review id, and the user-bound token. Each component is URL-safe and
// decodable on its own.
func (srv *reviewService) buildActivationLink(userID, reviewID uuid.UUID) (string, error) {
	token, err := srv.tokenService.Generate(userID)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate activation token")
	}

	return fmt.Sprintf("%s/activate/%s/%s/%s",
		srv.baseURL, encodeID(userID), encodeID(reviewID), token), nil
}

// ActivateReview flips the user and the review to active in one transaction.
// Every failure cause collapses into the same ActivationFailed outcome so the
// endpoint cannot be used to enumerate accounts or reviews.
func (srv *reviewService) ActivateReview(ctx context.Context, input *usecase.ActivateReviewInput) (*usecase.ActivationOutput, error) {
	userID, err := decodeID(input.UserIDB64)
	if err != nil {
		return nil, srv.failActivation("undecodable user id", err)
	}
	reviewID, err := decodeID(input.ReviewIDB64)
	if err != nil {
		return nil, srv.failActivation("undecodable review id", err)
	}

	var (
		review *entity.Review
		user   *entity.User
	)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		reviewRepo := repoFactory.ReviewRepo()

		account, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "activation user lookup")
		}
		pending, err := reviewRepo.FindByID(ctx, reviewID)
		if err != nil {
			return errors.Wrap(err, "activation review lookup")
		}

		// An already-active review means the link was consumed; the token's
		// own window being open does not matter.
		if pending.Active {
			return errors.New("activation link already consumed")
		}

		if err := srv.tokenService.Validate(input.Token, account.ID); err != nil {
			return errors.Wrap(err, "activation token rejected")
		}

		account.Active = true
		if err := userRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to activate user")
		}

		pending.Active = true
		pending.UserID = &account.ID
		if err := reviewRepo.Update(ctx, pending); err != nil {
			return errors.Wrap(err, "failed to activate review")
		}

		review = pending
		user = account

		return nil
	})
	if err != nil {
		return nil, srv.failActivation("activation transaction failed", err)
	}

	srv.logger.Info("Review activated",
		slog.String("reviewID", review.ID.String()), slog.String("userID", user.ID.String()))

	return &usecase.ActivationOutput{Review: review, User: user}, nil
}

// GetReview returns one review by id.
func (srv *reviewService) GetReview(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var review *entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ReviewRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return domainerrors.ErrReviewNotFound.WrapMessage("unknown review")
			}

			return errors.Wrap(err, "failed to load review")
		}
		review = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return review, nil
}

// failActivation records the real cause for operators and hands the caller
// the cause-blind outcome.
func (srv *reviewService) failActivation(reason string, err error) error {
	srv.logger.Warn("Activation rejected",
		slog.String("reason", reason), slog.String("error", err.Error()))

	return domainerrors.ErrActivationFailed
}

// encodeID renders a uuid as a URL-safe base64 component of the activation
// link.
func encodeID(id uuid.UUID) string {
	return base64.RawURLEncoding.EncodeToString([]byte(id.String()))
}

// decodeID reverses encodeID.
func decodeID(encoded string) (uuid.UUID, error) {
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "base64 decode")
	}
	id, err := uuid.Parse(string(raw))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "uuid parse")
	}

	return id, nil
}
