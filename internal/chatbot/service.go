package chatbot

import (
	"context"
	"strings"

	"github.com/recircle-platform/recircle-backend/pkg/logger"
)

// rule maps trigger words to a canned reply. Rules are checked in
// order; the first one with a matching trigger wins.
type rule struct {
	triggers []string
	reply    string
}

var rules = []rule{
	{
		triggers: []string{"donate", "how to donate", "donation"},
		reply:    "To donate items, go to the Donation page and fill out the form with your item details. We'll help you categorize and schedule pickup.",
	},
	{
		triggers: []string{"claim", "how to claim", "claiming"},
		reply:    "Partners can claim items from the ItemMatch section on their dashboard. Items are recommended based on your location and needs.",
	},
	{
		triggers: []string{"badge", "challenge", "achievement"},
		reply:    "Complete challenges to earn badges! Try claiming 10 items this month for the 'Community Star' badge.",
	},
	{
		triggers: []string{"impact", "environmental", "sustainability"},
		reply:    "Every item donated helps reduce waste and CO2 emissions. Check your Impact Calculator to see your environmental contribution.",
	},
	{
		triggers: []string{"help", "support", "assistance"},
		reply:    "I can help you with donations, claims, badges, and impact tracking. Just ask me anything about ReCircle!",
	},
}

const fallbackReply = "I'm here to help with ReCircle questions! Try asking about donations, claims, badges, or environmental impact."

// Service answers assistant questions with rule-based replies.
type Service interface {
	Reply(ctx context.Context, message string) (string, error)
}

type service struct {
	logg *logger.Logger
}

func NewService(logg *logger.Logger) (Service, error) {
	return &service{logg: logg}, nil
}

func (s *service) Reply(ctx context.Context, message string) (string, error) {
	lowered := strings.ToLower(message)
	for _, r := range rules {
		for _, trigger := range r.triggers {
			if strings.Contains(lowered, trigger) {
				return r.reply, nil
			}
		}
	}
	return fallbackReply, nil
}
