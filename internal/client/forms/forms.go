// Package forms runs the client-side forms: fields are validated locally, then submitted
// through the gateway, and the session is updated from the outcome.
package forms

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/alumniconnect/internal/app/gateway"
	"github.com/yigit/alumniconnect/internal/app/models"
	"github.com/yigit/alumniconnect/internal/client/session"
	"github.com/yigit/alumniconnect/internal/pkg/validation"
)

// ErrNotSignedIn is returned by forms that need a principal.
var ErrNotSignedIn = errors.New("not signed in")

// Outcome of a submitted form. Errors is set when the form never reached the gateway.
// The caller keeps its input either way.
type Outcome struct {
	OK      bool
	Message string
	Errors  validation.FieldErrors
}

func invalid(errs validation.FieldErrors) Outcome {
	return Outcome{Errors: errs, Message: errs.Err().Error()}
}

// RegistrationForm is what the registration screen collects.
type RegistrationForm struct {
	Draft           models.ProfileDraft
	Password        string
	ConfirmPassword string
}

type Forms struct {
	gw     *gateway.Gateway
	store  *session.Store
	logger zerolog.Logger
}

func New(gw *gateway.Gateway, store *session.Store, logger zerolog.Logger) *Forms {
	return &Forms{gw: gw, store: store, logger: logger}
}

// Login signs in and persists the session.
func (f *Forms) Login(ctx context.Context, email, password string) (Outcome, error) {
	email = strings.TrimSpace(email)
	if errs := validation.ValidateLogin(email, password); !errs.Valid() {
		return invalid(errs), nil
	}

	res, err := f.gw.Login(ctx, email, password)
	if err != nil {
		return Outcome{}, err
	}
	if !res.Success {
		return Outcome{Message: res.Message}, nil
	}
	if err := f.store.Login(ctx, res.Data.User, res.Data.Token); err != nil {
		return Outcome{}, err
	}
	return Outcome{OK: true, Message: res.Message}, nil
}

// Register creates the account and signs it in.
func (f *Forms) Register(ctx context.Context, form RegistrationForm) (Outcome, error) {
	form.Draft.Email = strings.TrimSpace(form.Draft.Email)
	if errs := validation.ValidateRegistration(form.Draft, form.Password, form.ConfirmPassword); !errs.Valid() {
		return invalid(errs), nil
	}

	res, err := f.gw.Register(ctx, form.Draft, form.Password)
	if err != nil {
		return Outcome{}, err
	}
	if !res.Success {
		return Outcome{Message: res.Message}, nil
	}
	if err := f.store.Login(ctx, res.Data.User, res.Data.Token); err != nil {
		return Outcome{}, err
	}
	return Outcome{OK: true, Message: res.Message}, nil
}

// Logout revokes the token and clears the session. The local session is cleared
// even when the gateway call fails.
func (f *Forms) Logout(ctx context.Context) (Outcome, error) {
	token := f.store.Token()
	defer f.store.Logout(ctx)

	if token == "" {
		return Outcome{OK: true, Message: "Logged out"}, nil
	}
	res, err := f.gw.Logout(ctx, token)
	if err != nil {
		f.logger.Warn().Err(err).Msg("Logout call failed, clearing local session")
		return Outcome{OK: true, Message: "Logged out"}, nil
	}
	return Outcome{OK: true, Message: res.Message}, nil
}

// UpdateProfile saves patch for the signed-in user and refreshes the session copy.
func (f *Forms) UpdateProfile(ctx context.Context, patch models.UserPatch) (Outcome, error) {
	me := f.store.User()
	if me == nil {
		return Outcome{}, ErrNotSignedIn
	}
	if errs := validation.ValidateProfile(patch); !errs.Valid() {
		return invalid(errs), nil
	}

	res, err := f.gw.UpdateProfile(ctx, me.ID, patch)
	if err != nil {
		return Outcome{}, err
	}
	if !res.Success {
		return Outcome{Message: res.Message}, nil
	}
	if err := f.store.Replace(ctx, res.Data); err != nil {
		return Outcome{}, err
	}
	return Outcome{OK: true, Message: res.Message}, nil
}

// RequestMentor submits a mentorship request from the signed-in student.
func (f *Forms) RequestMentor(ctx context.Context, draft models.MentorshipDraft) (Outcome, error) {
	me := f.store.User()
	if me == nil {
		return Outcome{}, ErrNotSignedIn
	}
	draft.StudentID = me.ID
	if errs := validation.ValidateMentorshipDraft(draft); !errs.Valid() {
		return invalid(errs), nil
	}

	res, err := f.gw.CreateMentorshipRequest(ctx, draft)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{OK: res.Success, Message: res.Message}, nil
}

// Donate submits a donation from the signed-in user.
func (f *Forms) Donate(ctx context.Context, draft models.DonationDraft) (Outcome, error) {
	me := f.store.User()
	if me == nil {
		return Outcome{}, ErrNotSignedIn
	}
	draft.DonorID = me.ID
	if errs := validation.ValidateDonationDraft(draft); !errs.Valid() {
		return invalid(errs), nil
	}

	res, err := f.gw.CreateDonation(ctx, draft)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{OK: res.Success, Message: res.Message}, nil
}
