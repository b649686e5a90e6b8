package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		input string
		want  Topic
	}{
		{"How do I UPDATE my details?", TopicProfile},
		{"any upcoming events?", TopicEvents},
		{"I want to network", TopicNetworking},
		{"where can I donate", TopicDonations},
		{"find a mentor", TopicMentorship},
		{"career advice", TopicJobs},
		{"hey", TopicGreeting},
		{"what is the weather", TopicDefault},
		// profile is checked before event
		{"update the event", TopicProfile},
		// "donation" appears before "mentor" in the table
		{"mentor donation", TopicDonations},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.input))
		})
	}
}

func TestReply(t *testing.T) {
	assert.Equal(t, "Hello! How can I assist you with AlumniConnect today?", Reply("Hello"))
	for _, topic := range []Topic{TopicProfile, TopicEvents, TopicNetworking, TopicDonations, TopicMentorship, TopicJobs, TopicGreeting, TopicDefault} {
		assert.NotEmpty(t, responses[topic], topic)
	}
}

func TestQuickRepliesHitTheirTopic(t *testing.T) {
	want := []Topic{TopicProfile, TopicEvents, TopicNetworking, TopicDonations, TopicMentorship}
	for i, q := range QuickReplies {
		assert.Equal(t, want[i], Classify(q.Payload), q.Label)
	}
}
