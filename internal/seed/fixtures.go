package seed

import (
	"time"

	"github.com/yigit/alumniconnect/internal/app/models"
)

// Fixture account ids
const (
	AliceID   = "alumni-1"
	BobID     = "alumni-2"
	StudentID = "student-1"
	AdminID   = "admin-1"
)

// Fixture passwords. Every seeded alumni and student account uses DefaultPassword.
const (
	DefaultPassword = "Password123"
	AdminPassword   = "Admin123!"
)

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func users() []*models.User {
	return []*models.User{
		{
			ID:                  AliceID,
			Email:               "alice@example.com",
			FirstName:           "Alice",
			LastName:            "Johnson",
			Role:                models.RoleAlumni,
			GraduationYear:      models.Ptr(2018),
			Course:              "Computer Science",
			Company:             "Microsoft",
			Position:            "Senior Software Engineer",
			Location:            "Seattle, WA",
			Bio:                 "Passionate about AI and machine learning. Love mentoring students.",
			Skills:              []string{"JavaScript", "Python", "Machine Learning"},
			LinkedIn:            "alice-johnson",
			ProfilePicture:      "https://images.pexels.com/photos/733872/pexels-photo-733872.jpeg?auto=compress&cs=tinysrgb&w=400",
			MentorshipAvailable: models.Ptr(true),
			Achievements:        []string{"Led the Azure ML onboarding redesign"},
			CreatedAt:           ts("2023-01-15T08:00:00Z"),
		},
		{
			ID:                  BobID,
			Email:               "bob@example.com",
			FirstName:           "Bob",
			LastName:            "Smith",
			Role:                models.RoleAlumni,
			GraduationYear:      models.Ptr(2019),
			Course:              "Business Administration",
			Company:             "Goldman Sachs",
			Position:            "Investment Banker",
			Location:            "New York, NY",
			Bio:                 "Finance expert with 5+ years in investment banking.",
			Skills:              []string{"Finance", "Analysis", "Leadership"},
			LinkedIn:            "bob-smith",
			ProfilePicture:      "https://images.pexels.com/photos/927022/pexels-photo-927022.jpeg?auto=compress&cs=tinysrgb&w=400",
			MentorshipAvailable: models.Ptr(false),
			CreatedAt:           ts("2023-02-20T10:30:00Z"),
		},
		{
			ID:                  StudentID,
			Email:               "jane@example.com",
			FirstName:           "Jane",
			LastName:            "Smith",
			Role:                models.RoleStudent,
			CurrentYear:         models.Ptr(3),
			Course:              "Computer Science",
			MentorshipRequested: models.Ptr(true),
			CreatedAt:           ts("2024-09-01T09:00:00Z"),
		},
		{
			ID:        AdminID,
			Email:     "admin@example.com",
			FirstName: "John",
			LastName:  "Doe",
			Role:      models.RoleAdmin,
			CreatedAt: ts("2023-01-01T00:00:00Z"),
		},
	}
}

func events() []*models.Event {
	return []*models.Event{
		{
			ID:               "event-1",
			Title:            "Annual Alumni Networking Gala",
			Description:      "Join us for an evening of networking, dinner, and celebration of our alumni achievements.",
			Date:             "2025-03-15",
			Time:             "18:00",
			Location:         "Grand Ballroom, City Hotel",
			Type:             models.EventNetworking,
			MaxAttendees:     models.Ptr(200),
			CurrentAttendees: 87,
			RegisteredUsers:  []string{},
			ImageURL:         "https://images.pexels.com/photos/1181605/pexels-photo-1181605.jpeg?auto=compress&cs=tinysrgb&w=800",
			Organizer:        "Alumni Association",
			CreatedAt:        ts("2024-12-01T09:00:00Z"),
		},
		{
			ID:               "event-2",
			Title:            "Tech Career Workshop",
			Description:      "Learn about the latest trends in technology and career opportunities.",
			Date:             "2025-02-20",
			Time:             "14:00",
			Location:         "Online - Zoom",
			Type:             models.EventWorkshop,
			MaxAttendees:     models.Ptr(100),
			CurrentAttendees: 45,
			RegisteredUsers:  []string{},
			ImageURL:         "https://images.pexels.com/photos/3184292/pexels-photo-3184292.jpeg?auto=compress&cs=tinysrgb&w=800",
			Organizer:        "CS Alumni Chapter",
			CreatedAt:        ts("2024-11-15T14:30:00Z"),
		},
	}
}

func mentorshipRequests() []*models.MentorshipRequest {
	return []*models.MentorshipRequest{
		{
			ID:        "mentorship-1",
			StudentID: StudentID,
			MentorID:  AliceID,
			Status:    models.MentorshipPending,
			Subject:   "Career Guidance in Software Development",
			Message:   "I would love to get guidance on transitioning into a software development career.",
			Goals:     "Learn about industry expectations and skill development",
			Duration:  "3 months",
			CreatedAt: ts("2024-12-15T10:00:00Z"),
			UpdatedAt: ts("2024-12-15T10:00:00Z"),
		},
	}
}

func donations() []*models.Donation {
	return []*models.Donation{
		{
			ID:        "donation-1",
			DonorID:   AliceID,
			Amount:    models.AmountFromUnits(500),
			Purpose:   "Scholarship Fund",
			Status:    models.DonationCompleted,
			DonorName: "Alice Johnson",
			CreatedAt: ts("2024-12-10T15:30:00Z"),
		},
		{
			ID:          "donation-2",
			DonorID:     BobID,
			Amount:      models.AmountFromUnits(100),
			Purpose:     "General Fund",
			IsRecurring: true,
			Frequency:   models.FrequencyMonthly,
			Status:      models.DonationCompleted,
			IsAnonymous: true,
			CreatedAt:   ts("2024-12-05T09:15:00Z"),
		},
	}
}

func jobs() []*models.Job {
	return []*models.Job{
		{
			ID: "job-1", Title: "Senior Software Engineer", Company: "Google", Location: "Remote",
			Type: models.JobFullTime, Salary: "$120,000 - $150,000", Posted: "2 days ago",
			Description:  "We are looking for a skilled Senior Software Engineer to join our dynamic team. You will be responsible for developing high-quality software solutions and contributing to all phases of the development lifecycle.",
			Requirements: []string{"5+ years of software development experience", "Proficiency in Java or Python", "Experience with cloud platforms (AWS/GCP)", "Strong problem-solving skills"},
			Benefits:     []string{"Health insurance", "Flexible work hours", "Remote work options", "Professional development budget"},
			Logo:         "https://logo.clearbit.com/google.com", Featured: true,
		},
		{
			ID: "job-2", Title: "Marketing Intern", Company: "Microsoft", Location: "Redmond, WA",
			Type: models.JobInternship, Salary: "$25 - $30/hour", Posted: "1 week ago",
			Description:         "Join our marketing team as an intern and gain hands-on experience in digital marketing strategies, campaign management, and market analysis.",
			Requirements:        []string{"Currently pursuing Marketing degree", "Strong communication skills", "Basic knowledge of SEO/SEM", "Creative thinking"},
			Benefits:            []string{"Mentorship program", "Networking opportunities", "Potential full-time offer", "Flexible schedule"},
			Logo:                "https://logo.clearbit.com/microsoft.com",
			ApplicationDeadline: "2023-12-15",
		},
		{
			ID: "job-3", Title: "Product Manager", Company: "Amazon", Location: "Seattle, WA",
			Type: models.JobFullTime, Salary: "$130,000 - $160,000", Posted: "3 days ago",
			Description:  "Lead product development initiatives and work with cross-functional teams to deliver innovative solutions that meet customer needs.",
			Requirements: []string{"3+ years product management experience", "Strong analytical skills", "Experience with Agile methodologies", "Excellent communication skills"},
			Benefits:     []string{"Stock options", "Comprehensive benefits", "Career growth opportunities", "Relocation assistance"},
			Logo:         "https://logo.clearbit.com/amazon.com", Featured: true,
		},
		{
			ID: "job-4", Title: "Data Science Intern", Company: "Netflix", Location: "Los Gatos, CA",
			Type: models.JobInternship, Salary: "$35 - $45/hour", Posted: "5 days ago",
			Description:         "Work with our data science team to analyze user behavior and contribute to recommendation algorithms.",
			Requirements:        []string{"Pursuing degree in Data Science/Statistics", "Python/R programming skills", "Knowledge of machine learning", "Strong analytical thinking"},
			Benefits:            []string{"Hands-on experience with big data", "Mentorship from senior data scientists", "Free lunch and snacks", "Streaming subscription"},
			Logo:                "https://logo.clearbit.com/netflix.com",
			ApplicationDeadline: "2023-12-10",
		},
		{
			ID: "job-5", Title: "UX/UI Designer", Company: "Apple", Location: "Cupertino, CA",
			Type: models.JobFullTime, Salary: "$110,000 - $140,000", Posted: "1 day ago",
			Description:  "Create intuitive and beautiful user interfaces for our next-generation products and services.",
			Requirements: []string{"4+ years UX/UI design experience", "Proficiency in Figma/Sketch", "Strong portfolio", "Understanding of user-centered design"},
			Benefits:     []string{"Employee discount", "Creative work environment", "Health and wellness programs", "Design conference budget"},
			Logo:         "https://logo.clearbit.com/apple.com", Featured: true,
		},
		{
			ID: "job-6", Title: "Business Development Associate", Company: "Tesla", Location: "Palo Alto, CA",
			Type: models.JobFullTime, Salary: "$85,000 - $105,000", Posted: "4 days ago",
			Description:  "Identify new business opportunities and build relationships with potential partners in the sustainable energy sector.",
			Requirements: []string{"2+ years business development experience", "Strong negotiation skills", "Knowledge of renewable energy market", "Bachelor's degree in Business"},
			Benefits:     []string{"Stock options", "Vehicle discount", "Flexible work arrangements", "Travel opportunities"},
			Logo:         "https://logo.clearbit.com/tesla.com",
		},
	}
}

func stories() []*models.SuccessStory {
	return []*models.SuccessStory{
		{
			ID: "story-1", Name: "Sarah Johnson", GraduationYear: 2015, Degree: "Computer Science",
			CurrentPosition: "Senior Software Engineer", Company: "Google", Location: "San Francisco, CA",
			Story:         "After graduating in 2015, Sarah joined a startup where she developed her skills in machine learning. Her work on natural language processing caught the attention of Google recruiters, and she now leads a team developing innovative AI solutions.",
			Achievements:  []string{"Published 5 research papers", "Keynote speaker at AI Conference 2022", "Founded TechWomen initiative"},
			Tags:          []string{"Technology", "Leadership", "Women in Tech"},
			PublishedDate: "2023-09-15",
		},
		{
			ID: "story-2", Name: "Michael Chen", GraduationYear: 2010, Degree: "Business Administration",
			CurrentPosition: "CEO", Company: "GreenTech Innovations", Location: "New York, NY",
			Story:         "Michael started his career in finance but always had a passion for sustainability. In 2015, he founded GreenTech Innovations, which develops renewable energy solutions.",
			Achievements:  []string{"Forbes 30 Under 30", "Green Business Award 2021", "TEDx Speaker on Sustainability"},
			Tags:          []string{"Entrepreneurship", "Sustainability", "Finance"},
			PublishedDate: "2023-08-22",
		},
		{
			ID: "story-3", Name: "Priya Sharma", GraduationYear: 2018, Degree: "Medicine",
			CurrentPosition: "Medical Researcher", Company: "Mayo Clinic", Location: "Rochester, MN",
			Story:         "Dr. Sharma has been at the forefront of medical research, focusing on innovative treatments for rare diseases.",
			Achievements:  []string{"Young Researcher Award 2022", "Published in New England Journal of Medicine", "Research Grant Recipient"},
			Tags:          []string{"Healthcare", "Research", "Medicine"},
			PublishedDate: "2023-10-05",
		},
		{
			ID: "story-4", Name: "David Martinez", GraduationYear: 2012, Degree: "Electrical Engineering",
			CurrentPosition: "CTO", Company: "Space Innovations Inc.", Location: "Los Angeles, CA",
			Story:         "David combined his passion for engineering and space exploration to co-found Space Innovations Inc. The company specializes in satellite technology.",
			Achievements:  []string{"NASA Innovation Award", "Patent holder for satellite technology", "Featured in TechCrunch"},
			Tags:          []string{"Engineering", "Space Technology", "Innovation"},
			PublishedDate: "2023-07-30",
		},
		{
			ID: "story-5", Name: "Emily Watson", GraduationYear: 2016, Degree: "Journalism",
			CurrentPosition: "Senior Correspondent", Company: "CNN", Location: "Washington, D.C.",
			Story:         "Emily began her career as a local news reporter and quickly rose through the ranks with her investigative journalism.",
			Achievements:  []string{"Pulitzer Prize Finalist", "Emmy Award for Investigative Journalism", "Author of bestselling book"},
			Tags:          []string{"Journalism", "Media", "Writing"},
			PublishedDate: "2023-09-01",
		},
		{
			ID: "story-6", Name: "James Wilson", GraduationYear: 2008, Degree: "Architecture",
			CurrentPosition: "Principal Architect", Company: "Wilson & Associates", Location: "Chicago, IL",
			Story:         "James established his own architecture firm in 2015, focusing on sustainable design.",
			Achievements:  []string{"AIA Design Award", "Sustainable Architecture Prize", "Featured in Architectural Digest"},
			Tags:          []string{"Architecture", "Design", "Sustainability"},
			PublishedDate: "2023-08-10",
		},
	}
}

func badges() []*models.Badge {
	return []*models.Badge{
		{ID: "badge-1", Name: "First Event", Description: "Attended your first alumni event", Icon: "celebration", Category: models.BadgeEngagement},
		{ID: "badge-2", Name: "Networking Pro", Description: "Connected with 50+ alumni members", Icon: "handshake", Category: models.BadgeEngagement},
		{ID: "badge-3", Name: "Mentor", Description: "Mentored a current student", Icon: "brain", Category: models.BadgeContribution},
		{ID: "badge-4", Name: "Fundraiser", Description: "Donated to the annual scholarship fund", Icon: "gift", Category: models.BadgeContribution},
		{ID: "badge-5", Name: "Career Champion", Description: "Provided career opportunities to 5+ graduates", Icon: "briefcase", Category: models.BadgeAchievement},
		{ID: "badge-6", Name: "5 Year Milestone", Description: "Reached 5 years as an alumnus", Icon: "star", Category: models.BadgeMilestone},
		{ID: "badge-7", Name: "Event Organizer", Description: "Organized a successful alumni event", Icon: "clipboard", Category: models.BadgeEngagement},
		{ID: "badge-8", Name: "Social Ambassador", Description: "Shared 10+ posts about alumni activities", Icon: "phone", Category: models.BadgeEngagement},
	}
}

// awards lists the badges the fixture accounts already earned.
var awards = map[string]map[string]string{
	AliceID: {
		"badge-1": "2023-05-15",
		"badge-2": "2023-08-22",
		"badge-4": "2023-11-30",
		"badge-6": "2023-01-10",
		"badge-8": "2023-07-18",
	},
}

func progress() []models.Progress {
	return []models.Progress{
		{ID: "progress-1", Title: "Events Attended", Progress: 7, Target: 10, Unit: "events", BadgeReward: "badge-1"},
		{ID: "progress-2", Title: "Alumni Connected", Progress: 42, Target: 50, Unit: "connections", BadgeReward: "badge-2"},
		{ID: "progress-3", Title: "Mentorship Sessions", Progress: 0, Target: 1, Unit: "sessions", BadgeReward: "badge-3"},
		{ID: "progress-4", Title: "Donation Streak", Progress: 2, Target: 3, Unit: "years", BadgeReward: "badge-4"},
	}
}

func conversations() []*models.Conversation {
	return []*models.Conversation{
		{ID: "conversation-1", Type: models.ConversationDirect, Name: "Jane Smith", Participants: []string{AliceID, StudentID}},
		{ID: "conversation-2", Type: models.ConversationDirect, Name: "Bob Smith", Participants: []string{AliceID, BobID}},
		{ID: "conversation-3", Type: models.ConversationGroup, Name: "Alumni Committee", Participants: []string{AliceID, BobID, AdminID}},
	}
}

func messages(now time.Time) []models.Message {
	at := func(minutesAgo int) time.Time { return now.Add(-time.Duration(minutesAgo) * time.Minute) }
	return []models.Message{
		{ID: "message-1", ConversationID: "conversation-1", SenderID: StudentID, Text: "Hi there!", Type: models.MessageText, Read: true, Timestamp: at(10)},
		{ID: "message-2", ConversationID: "conversation-1", SenderID: AliceID, Text: "Hello Jane! How are you?", Type: models.MessageText, Read: true, Timestamp: at(9)},
		{ID: "message-3", ConversationID: "conversation-1", SenderID: StudentID, Text: "I'm doing great! Just finished the project we were working on.", Type: models.MessageText, Read: true, Timestamp: at(7)},
		{ID: "message-4", ConversationID: "conversation-2", SenderID: BobID, Text: "Are you coming to the gala?", Type: models.MessageText, Read: true, Timestamp: at(15)},
		{ID: "message-5", ConversationID: "conversation-3", SenderID: AdminID, Text: "Hello everyone!", Type: models.MessageText, Read: true, Timestamp: at(60)},
		{ID: "message-6", ConversationID: "conversation-3", SenderID: BobID, Text: "I have some suggestions for venues.", Type: models.MessageText, Read: true, Timestamp: at(48)},
		{ID: "message-7", ConversationID: "conversation-3", SenderID: AdminID, Text: "The next meeting is scheduled for Friday.", Type: models.MessageText, Read: false, Timestamp: at(45)},
	}
}
