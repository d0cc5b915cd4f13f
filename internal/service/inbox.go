package service

import (
	"context"
	"errors"

	"github.com/octobees/huntflow/api/internal/entity"
	"github.com/octobees/huntflow/api/internal/genai"
	"github.com/octobees/huntflow/api/internal/store"
)

// ErrThreadNotFound indicates the selected conversation does not exist.
var ErrThreadNotFound = errors.New("thread not found")

// SentimentClassifier tags inbound replies and drafts a matching response.
type SentimentClassifier interface {
	ClassifySentiment(ctx context.Context, replyText string) genai.Classification
}

// ThreadSelection is the state bound to the currently selected conversation.
type ThreadSelection struct {
	Lead           entity.Lead      `json:"lead"`
	Analyzed       bool             `json:"analyzed"`
	Sentiment      entity.Sentiment `json:"sentiment,omitempty"`
	SuggestedReply string           `json:"suggested_reply,omitempty"`
}

// InboxService drives the reply-sentiment workflow over active conversations.
type InboxService struct {
	classifier SentimentClassifier
	store      *store.Memory
}

// NewInboxService wires the inbox workflow.
func NewInboxService(classifier SentimentClassifier, st *store.Memory) *InboxService {
	return &InboxService{classifier: classifier, store: st}
}

// demoThreads seed the inbox when no real conversation exists yet.
func demoThreads() []entity.Lead {
	return []entity.Lead{
		{
			ID:               "demo-1",
			BusinessName:     "Apex Gym London",
			Industry:         "Fitness",
			Location:         "London",
			Website:          "apex.com",
			Email:            "mark@apex.com",
			ContactPerson:    "Mark Smith",
			Status:           entity.StatusReplied,
			WebsiteScore:     60,
			LastEmailContent: "Sounds interesting. What is your pricing structure for a full redesign?",
		},
		{
			ID:               "demo-2",
			BusinessName:     "Smile Dental",
			Industry:         "Health",
			Location:         "Manchester",
			Website:          "smile.co.uk",
			Email:            "sarah@smile.co.uk",
			ContactPerson:    "Sarah Jones",
			Status:           entity.StatusReplied,
			WebsiteScore:     85,
			LastEmailContent: "Please remove me from your list. We have an in-house team.",
		},
	}
}

// Threads lists active conversations: leads that were contacted or replied.
// When the session has none, the two seeded demo conversations are shown.
func (s *InboxService) Threads() []entity.Lead {
	var active []entity.Lead
	for _, l := range s.store.Leads() {
		if l.Status == entity.StatusReplied || l.Status == entity.StatusContacted {
			active = append(active, l)
		}
	}
	if len(active) == 0 {
		return demoThreads()
	}
	return active
}

// SelectThread binds the sentiment workflow to one conversation. A thread with
// no recorded inbound message yields a cleared selection with no
// classification. Exactly one classification runs per selection; the result is
// bound to the selected lead, and persisted on it when it lives in the store.
func (s *InboxService) SelectThread(ctx context.Context, leadID string) (ThreadSelection, error) {
	lead, err := s.findThread(leadID)
	if err != nil {
		return ThreadSelection{}, err
	}

	if lead.LastEmailContent == "" {
		return ThreadSelection{Lead: lead}, nil
	}

	result := s.classifier.ClassifySentiment(ctx, lead.LastEmailContent)

	// Demo threads are not part of the collection; ignore the miss.
	if updated, err := s.store.UpdateLead(leadID, func(l *entity.Lead) {
		l.Sentiment = result.Sentiment
	}); err == nil {
		lead = updated
	} else {
		lead.Sentiment = result.Sentiment
	}

	return ThreadSelection{
		Lead:           lead,
		Analyzed:       true,
		Sentiment:      result.Sentiment,
		SuggestedReply: result.SuggestedReply,
	}, nil
}

func (s *InboxService) findThread(leadID string) (entity.Lead, error) {
	if lead, err := s.store.Lead(leadID); err == nil {
		return lead, nil
	}
	for _, l := range demoThreads() {
		if l.ID == leadID {
			return l, nil
		}
	}
	return entity.Lead{}, ErrThreadNotFound
}
