package service

import (
	"context"
	"errors"
	"testing"

	"github.com/octobees/huntflow/api/internal/entity"
	"github.com/octobees/huntflow/api/internal/genai"
	"github.com/octobees/huntflow/api/internal/store"
)

type classifierStub struct {
	result genai.Classification
	calls  int
}

func (c *classifierStub) ClassifySentiment(ctx context.Context, replyText string) genai.Classification {
	c.calls++
	return c.result
}

func TestThreadsFiltersActiveConversations(t *testing.T) {
	st := store.NewMemory(entity.UserProfile{}, entity.CampaignStats{})
	st.PrependLeads([]entity.Lead{
		{ID: "a", Status: entity.StatusNew},
		{ID: "b", Status: entity.StatusReplied},
		{ID: "c", Status: entity.StatusContacted},
		{ID: "d", Status: entity.StatusBlacklisted},
	})

	svc := NewInboxService(&classifierStub{}, st)
	threads := svc.Threads()
	if len(threads) != 2 {
		t.Fatalf("expected 2 threads, got %d", len(threads))
	}
	for _, th := range threads {
		if th.Status != entity.StatusReplied && th.Status != entity.StatusContacted {
			t.Fatalf("unexpected thread status: %s", th.Status)
		}
	}
}

func TestThreadsFallBackToDemoConversations(t *testing.T) {
	st := store.NewMemory(entity.UserProfile{}, entity.CampaignStats{})
	svc := NewInboxService(&classifierStub{}, st)

	threads := svc.Threads()
	if len(threads) != 2 {
		t.Fatalf("expected the two demo threads, got %d", len(threads))
	}
	if threads[0].BusinessName != "Apex Gym London" || threads[1].BusinessName != "Smile Dental" {
		t.Fatalf("unexpected demo threads: %+v", threads)
	}
}

func TestSelectThreadClassifiesReply(t *testing.T) {
	st := store.NewMemory(entity.UserProfile{}, entity.CampaignStats{})
	st.PrependLeads([]entity.Lead{{
		ID:               "b",
		Status:           entity.StatusReplied,
		LastEmailContent: "Please remove me from your list. We have an in-house team.",
	}})

	classifier := &classifierStub{result: genai.Classification{
		Sentiment:      entity.SentimentNegative,
		SuggestedReply: "Understood, removing you now.",
	}}
	svc := NewInboxService(classifier, st)

	sel, err := svc.SelectThread(context.Background(), "b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sel.Analyzed || sel.Sentiment != entity.SentimentNegative {
		t.Fatalf("expected Negative classification, got %+v", sel)
	}
	if sel.SuggestedReply == "" {
		t.Fatalf("expected non-empty suggested reply")
	}
	if classifier.calls != 1 {
		t.Fatalf("expected exactly one classification, got %d", classifier.calls)
	}

	stored, _ := st.Lead("b")
	if stored.Sentiment != entity.SentimentNegative {
		t.Fatalf("sentiment not persisted on the lead")
	}
}

func TestSelectThreadWithoutInboundMessage(t *testing.T) {
	st := store.NewMemory(entity.UserProfile{}, entity.CampaignStats{})
	st.PrependLeads([]entity.Lead{{ID: "c", Status: entity.StatusContacted}})

	classifier := &classifierStub{}
	svc := NewInboxService(classifier, st)

	sel, err := svc.SelectThread(context.Background(), "c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel.Analyzed || sel.Sentiment != "" || sel.SuggestedReply != "" {
		t.Fatalf("expected cleared selection, got %+v", sel)
	}
	if classifier.calls != 0 {
		t.Fatalf("classification must not run without an inbound message")
	}
}

func TestSelectDemoThread(t *testing.T) {
	st := store.NewMemory(entity.UserProfile{}, entity.CampaignStats{})
	classifier := &classifierStub{result: genai.Classification{
		Sentiment:      entity.SentimentQuestion,
		SuggestedReply: "Our redesign packages start at...",
	}}
	svc := NewInboxService(classifier, st)

	sel, err := svc.SelectThread(context.Background(), "demo-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sel.Analyzed || sel.Lead.BusinessName != "Apex Gym London" {
		t.Fatalf("unexpected selection: %+v", sel)
	}
	if sel.Lead.Sentiment != entity.SentimentQuestion {
		t.Fatalf("sentiment should bind to the selected demo thread")
	}
}

func TestSelectThreadUnknownID(t *testing.T) {
	st := store.NewMemory(entity.UserProfile{}, entity.CampaignStats{})
	svc := NewInboxService(&classifierStub{}, st)

	if _, err := svc.SelectThread(context.Background(), "nope"); !errors.Is(err, ErrThreadNotFound) {
		t.Fatalf("expected ErrThreadNotFound, got %v", err)
	}
}
