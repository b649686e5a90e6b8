// Package chatbot answers help questions from a fixed keyword table.
package chatbot

import "strings"

// Topic names a canned answer.
type Topic string

const (
	TopicProfile    Topic = "profile"
	TopicEvents     Topic = "events"
	TopicNetworking Topic = "networking"
	TopicDonations  Topic = "donations"
	TopicMentorship Topic = "mentorship"
	TopicJobs       Topic = "jobs"
	TopicGreeting   Topic = "greeting"
	TopicDefault    Topic = "default"
)

type rule struct {
	keywords []string
	topic    Topic
}

// rules are checked in order. The first rule with a keyword in the input wins.
var rules = []rule{
	{[]string{"profile", "update"}, TopicProfile},
	{[]string{"event", "upcoming"}, TopicEvents},
	{[]string{"connect", "network"}, TopicNetworking},
	{[]string{"donation", "donate"}, TopicDonations},
	{[]string{"mentor", "guidance"}, TopicMentorship},
	{[]string{"job", "career"}, TopicJobs},
	{[]string{"hello", "hi", "hey"}, TopicGreeting},
}

var responses = map[Topic]string{
	TopicProfile:    "To update your profile, go to the Profile section from the main navigation. Click on the edit icon next to each field to make changes. You can update your contact information, work details, and privacy settings there.",
	TopicEvents:     "We have several events coming up! The Annual Alumni Meet is on December 15th, and there's a Career Networking Workshop next week. Check the Events section for details and registration. You can also suggest events you'd like to see organized.",
	TopicNetworking: "You can connect with other alumni through the Alumni Directory. Use filters to find alumni by industry, location, or batch year. You can also join our LinkedIn group or attend our networking events. Would you like me to show you how to use the directory?",
	TopicDonations:  "To make a donation, visit the Donations section. You can choose to support scholarships, infrastructure development, or specific departments. All donations are tax-deductible, and we appreciate your support in advancing our institution.",
	TopicMentorship: "The Mentorship program connects experienced alumni with current students. You can sign up as a mentor or mentee in the Mentorship section. The program includes career guidance, skill development, and networking opportunities.",
	TopicJobs:       "We have a dedicated Job Board where employers post opportunities specifically for our alumni community. You can also schedule a career counseling session through the portal. Would you like me to direct you to the Job Board?",
	TopicGreeting:   "Hello! How can I assist you with AlumniConnect today?",
	TopicDefault:    "I'm here to help with AlumniConnect. You can ask me about updating your profile, upcoming events, connecting with alumni, making donations, or the mentorship program. What would you like to know?",
}

// Welcome is the first message of a chat session.
const Welcome = "Hello! I'm your AlumniConnect assistant. How can I help you today?"

// QuickReply is a suggested question offered before the user types.
type QuickReply struct {
	Label   string `json:"label"`
	Payload string `json:"payload"`
}

// QuickReplies are the suggestions shown with the welcome message.
var QuickReplies = []QuickReply{
	{"Update Profile", "How do I update my profile?"},
	{"Upcoming Events", "What events are coming up?"},
	{"Networking", "How can I connect with other alumni?"},
	{"Donations", "How can I make a donation?"},
	{"Mentorship", "Tell me about the mentorship program"},
}

// Classify returns the topic of input. Keywords match anywhere in the lowercased text.
func Classify(input string) Topic {
	text := strings.ToLower(input)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(text, kw) {
				return r.topic
			}
		}
	}
	return TopicDefault
}

// Reply returns the canned answer for input.
func Reply(input string) string {
	return responses[Classify(input)]
}
