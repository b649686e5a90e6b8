package seed

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/alumniconnect/internal/app/models"
	"github.com/yigit/alumniconnect/internal/app/repositories"
	"github.com/yigit/alumniconnect/internal/pkg/apperrors"
	"github.com/yigit/alumniconnect/internal/pkg/auth"
)

// Options tunes how fixtures are written.
type Options struct {
	// BcryptCost is used for fixture passwords. Zero means auth.BcryptCost.
	BcryptCost int
	// Now anchors the relative chat message timestamps.
	Now time.Time
}

// CreateDefaultData loads the fixture data set into repos.
// Records that already exist are skipped, every other failure is collected and returned.
func CreateDefaultData(ctx context.Context, repos *repositories.Repositories, lgr zerolog.Logger, opts Options) error {
	if opts.BcryptCost == 0 {
		opts.BcryptCost = auth.BcryptCost
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now().UTC()
	}

	lgr.Info().Msg("Checking/Creating default fixture data...")
	var finalErr error

	// --- Users --- //
	for _, u := range users() {
		password := DefaultPassword
		if u.Role == models.RoleAdmin {
			password = AdminPassword
		}
		hash, err := auth.HashPasswordWithCost(password, opts.BcryptCost)
		if err != nil {
			lgr.Error().Err(err).Str("userID", u.ID).Msg("Error hashing fixture password")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		err = repos.UserRepository.Create(ctx, u, hash)
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) || errors.Is(err, apperrors.ErrConflict) {
			lgr.Debug().Str("email", u.Email).Msg("User already exists, skipping creation")
			continue
		}
		if err != nil {
			lgr.Error().Err(err).Str("email", u.Email).Msg("Error creating user")
			finalErr = errors.Join(finalErr, err)
		}
	}

	// --- Events, mentorship and donations --- //
	for _, e := range events() {
		finalErr = collect(lgr, finalErr, "event", e.ID, repos.EventRepository.Create(ctx, e))
	}
	for _, m := range mentorshipRequests() {
		finalErr = collect(lgr, finalErr, "mentorship", m.ID, repos.MentorshipRepository.Create(ctx, m))
	}
	for _, d := range donations() {
		finalErr = collect(lgr, finalErr, "donation", d.ID, repos.DonationRepository.Create(ctx, d))
	}

	// --- Catalog --- //
	catalog := repos.CatalogRepository
	for _, j := range jobs() {
		finalErr = collect(lgr, finalErr, "job", j.ID, catalog.AddJob(ctx, j))
	}
	for _, s := range stories() {
		finalErr = collect(lgr, finalErr, "story", s.ID, catalog.AddStory(ctx, s))
	}
	for _, b := range badges() {
		finalErr = collect(lgr, finalErr, "badge", b.ID, catalog.AddBadge(ctx, b))
	}
	for userID, earned := range awards {
		for badgeID, date := range earned {
			if err := catalog.Award(ctx, userID, badgeID, date); err != nil {
				lgr.Error().Err(err).Str("userID", userID).Str("badgeID", badgeID).Msg("Error awarding badge")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}
	catalog.SetProgress(ctx, AliceID, progress())

	// --- Conversations --- //
	created := make(map[string]bool)
	for _, c := range conversations() {
		err := repos.ConversationRepository.Create(ctx, c)
		created[c.ID] = err == nil
		finalErr = collect(lgr, finalErr, "conversation", c.ID, err)
	}
	for _, m := range messages(opts.Now) {
		if created[m.ConversationID] {
			if err := repos.ConversationRepository.Append(ctx, m); err != nil {
				lgr.Error().Err(err).Str("messageID", m.ID).Msg("Error appending message")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	lgr.Info().Int("users", repos.UserRepository.Count()).Msg("Default data check/creation finished.")
	return finalErr
}

func collect(lgr zerolog.Logger, finalErr error, kind, id string, err error) error {
	if err == nil {
		return finalErr
	}
	if errors.Is(err, apperrors.ErrConflict) {
		lgr.Debug().Str(kind, id).Msg("Fixture already exists, skipping creation")
		return finalErr
	}
	lgr.Error().Err(err).Str(kind, id).Msg("Error creating fixture")
	return errors.Join(finalErr, err)
}
