package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/alumniconnect/internal/app/repositories"
	"github.com/yigit/alumniconnect/internal/pkg/auth"
)

// Services defined in this package:
// - AuthService: login, registration and token revocation
// - AlumniService: directory lookups and profile updates
// - EventService: event listing and seat registration
// - MentorshipService: mentorship requests and their status workflow
// - DonationService: gifts and recurring pledges
// - CatalogService: jobs, success stories, badges and progress
// - MessageService: conversations and chat messages

// Settings tunes service behavior.
type Settings struct {
	// StrictTransitions enforces the mentorship transition table.
	StrictTransitions bool
	// BcryptCost is used to hash new passwords. Zero means auth.BcryptCost.
	BcryptCost int
	// Now is the clock for synthesized timestamps. Nil means time.Now.
	Now func() time.Time
	// NewID synthesizes record ids. Nil means random UUIDs.
	NewID func() string
}

func (s Settings) withDefaults() Settings {
	if s.BcryptCost == 0 {
		s.BcryptCost = auth.BcryptCost
	}
	if s.Now == nil {
		s.Now = func() time.Time { return time.Now().UTC() }
	}
	if s.NewID == nil {
		s.NewID = uuid.NewString
	}
	return s
}

// Services holds all the service instances
type Services struct {
	Auth       *AuthService
	Alumni     AlumniService
	Event      EventService
	Mentorship MentorshipService
	Donation   DonationService
	Catalog    CatalogService
	Message    MessageService
}

// NewServices wires every service over repos.
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, settings Settings, logger zerolog.Logger) *Services {
	settings = settings.withDefaults()
	return &Services{
		Auth:       NewAuthService(repos.UserRepository, repos.TokenRepository, jwtService, settings, logger),
		Alumni:     NewAlumniService(repos.UserRepository, logger),
		Event:      NewEventService(repos.EventRepository, logger),
		Mentorship: NewMentorshipService(repos.MentorshipRepository, repos.UserRepository, settings, logger),
		Donation:   NewDonationService(repos.DonationRepository, repos.UserRepository, settings, logger),
		Catalog:    NewCatalogService(repos.CatalogRepository),
		Message:    NewMessageService(repos.ConversationRepository, settings, logger),
	}
}
