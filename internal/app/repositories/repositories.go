package repositories

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	EventRepository        *EventRepository
	MentorshipRepository   *MentorshipRepository
	DonationRepository     *DonationRepository
	CatalogRepository      *CatalogRepository
	ConversationRepository *ConversationRepository
	TokenRepository        *TokenRepository
}

// NewRepositories initializes all repositories with empty fixture stores
func NewRepositories() *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(),
		EventRepository:        NewEventRepository(),
		MentorshipRepository:   NewMentorshipRepository(),
		DonationRepository:     NewDonationRepository(),
		CatalogRepository:      NewCatalogRepository(),
		ConversationRepository: NewConversationRepository(),
		TokenRepository:        NewTokenRepository(),
	}
}
