package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/octobees/huntflow/api/internal/entity"
)

// Pitch is the personalized analysis/email pair generated for a lead.
type Pitch struct {
	Analysis   string `json:"analysis"`
	EmailDraft string `json:"email_draft"`
}

// Classification is the sentiment verdict for an inbound reply.
type Classification struct {
	Sentiment      entity.Sentiment `json:"sentiment"`
	SuggestedReply string           `json:"suggested_reply"`
}

var placeholderPattern = regexp.MustCompile(`(?i)\[(your name|my name|name)\]`)

const fallbackSuggestedReply = "Thank you for your reply. How would you like to proceed?"

// Enricher wraps the generative service for lead simulation, pitch writing and
// sentiment classification. The service is best-effort enrichment only: every
// operation degrades to a deterministic non-empty result instead of returning
// an error.
type Enricher struct {
	client *Client
	now    func() time.Time
}

// NewEnricher constructs an enricher over the given Gemini client.
func NewEnricher(client *Client) *Enricher {
	return &Enricher{client: client, now: time.Now}
}

// Configured reports whether the underlying service credential is present.
func (e *Enricher) Configured() bool {
	return e.client.Configured()
}

type simulatedLead struct {
	BusinessName  string `json:"businessName"`
	Industry      string `json:"industry"`
	Location      string `json:"location"`
	Website       string `json:"website"`
	Email         string `json:"email"`
	ContactPerson string `json:"contactPerson"`
	WebsiteScore  int    `json:"websiteScore"`
}

var simulateSchema = &Schema{
	Type: TypeArray,
	Items: &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"businessName":  {Type: TypeString},
			"industry":      {Type: TypeString},
			"location":      {Type: TypeString},
			"website":       {Type: TypeString},
			"email":         {Type: TypeString},
			"contactPerson": {Type: TypeString},
			"websiteScore":  {Type: TypeInteger},
		},
		Required: []string{"businessName", "industry", "location", "website", "email", "contactPerson", "websiteScore"},
	},
}

// SimulateLeads asks the model to invent five plausible leads for the query.
// It never fails: on any service or parse error it returns the single fixed
// fallback lead so a hunt always produces data.
func (e *Enricher) SimulateLeads(ctx context.Context, keyword, location string) []entity.Lead {
	prompt := fmt.Sprintf(`You are a lead generation simulator. Generate a list of 5 realistic business leads for the search query: %q in %q.
For each business, invent a realistic business name, a plausible website URL, a generic contact email (or plausible CEO email), a contact person name, and a "websiteScore" (random integer 30-90) representing how good their current website is.
The status should be "New".`, keyword, location)

	raw, err := e.client.GenerateJSON(ctx, prompt, simulateSchema)
	if err != nil {
		log.Printf("simulate leads failed, using fallback: %v", err)
		return []entity.Lead{e.fallbackLead(location)}
	}

	var items []simulatedLead
	if err := json.Unmarshal([]byte(raw), &items); err != nil || len(items) == 0 {
		log.Printf("simulate leads returned unusable payload, using fallback: %v", err)
		return []entity.Lead{e.fallbackLead(location)}
	}

	leads := make([]entity.Lead, 0, len(items))
	for _, item := range items {
		leads = append(leads, entity.Lead{
			ID:            uuid.NewString(),
			BusinessName:  item.BusinessName,
			Industry:      item.Industry,
			Location:      item.Location,
			Website:       item.Website,
			Email:         item.Email,
			ContactPerson: item.ContactPerson,
			Status:        entity.StatusNew,
			CreatedAt:     e.now(),
			WebsiteScore:  item.WebsiteScore,
		})
	}
	return leads
}

func (e *Enricher) fallbackLead(location string) entity.Lead {
	return entity.Lead{
		ID:            uuid.NewString(),
		BusinessName:  "Elite Fitness Center",
		Industry:      "Gym",
		Location:      location,
		Website:       "www.elitefitness-demo.com",
		Email:         "info@elitefitness-demo.com",
		ContactPerson: "John Doe",
		Status:        entity.StatusNew,
		CreatedAt:     e.now(),
		WebsiteScore:  45,
	}
}

var pitchSchema = &Schema{
	Type: TypeObject,
	Properties: map[string]*Schema{
		"analysis":   {Type: TypeString},
		"emailDraft": {Type: TypeString},
	},
	Required: []string{"analysis", "emailDraft"},
}

// GeneratePitch produces a two-sentence website analysis and a personalized
// cold email for the lead. The returned draft is always signed with the
// operator's own profile values: placeholder tokens the model may emit in spite
// of the instruction are substituted before the draft is returned, and the
// fallback draft carries the exact signature block itself.
func (e *Enricher) GeneratePitch(ctx context.Context, lead entity.Lead, serviceOffered string, profile entity.UserProfile) Pitch {
	prompt := fmt.Sprintf(`Act as an expert sales copywriter and technical analyst.

Target Business: %s (%s)
Website Score: %d/100
Contact Person: %s

My Profile:
Name: %s
Title: %s
Company: %s
Service Offered: %s

1. Analyze why a business with a website score of %d might need %s. (Keep it brief, 2 sentences).
2. Write a hyper-personalized cold email to %s. The tone should be professional but conversational.
   Mention a specific (invented but plausible) flaw in their current setup and how I can fix it.

IMPORTANT: Sign off the email with exactly:
"Best regards,
%s
%s | %s"

Return JSON.`,
		lead.BusinessName, lead.Industry,
		lead.WebsiteScore, lead.ContactPerson,
		profile.Name, profile.JobTitle, profile.CompanyName, serviceOffered,
		lead.WebsiteScore, serviceOffered, lead.ContactPerson,
		profile.Name, profile.JobTitle, profile.CompanyName)

	raw, err := e.client.GenerateJSON(ctx, prompt, pitchSchema)
	if err != nil {
		log.Printf("generate pitch failed, using fallback: %v", err)
		return fallbackPitch(lead, serviceOffered, profile)
	}

	var result struct {
		Analysis   string `json:"analysis"`
		EmailDraft string `json:"emailDraft"`
	}
	if err := json.Unmarshal([]byte(raw), &result); err != nil || result.EmailDraft == "" {
		log.Printf("generate pitch returned unusable payload, using fallback: %v", err)
		return fallbackPitch(lead, serviceOffered, profile)
	}

	return Pitch{
		Analysis:   result.Analysis,
		EmailDraft: placeholderPattern.ReplaceAllString(result.EmailDraft, profile.Name),
	}
}

func fallbackPitch(lead entity.Lead, serviceOffered string, profile entity.UserProfile) Pitch {
	draft := fmt.Sprintf("Hi %s,\n\nI noticed some issues with your website that might be hurting your conversions. As a specialist in %s, I'd love to help.\n\n%s",
		lead.ContactPerson, serviceOffered, signatureBlock(profile))
	return Pitch{
		Analysis:   "AI Service Unavailable.",
		EmailDraft: draft,
	}
}

func signatureBlock(profile entity.UserProfile) string {
	return fmt.Sprintf("Best regards,\n%s\n%s | %s", profile.Name, profile.JobTitle, profile.CompanyName)
}

var sentimentSchema = &Schema{
	Type: TypeObject,
	Properties: map[string]*Schema{
		"sentiment":      {Type: TypeString, Enum: []string{"Positive", "Negative", "Question"}},
		"suggestedReply": {Type: TypeString},
	},
	Required: []string{"sentiment", "suggestedReply"},
}

// ClassifySentiment tags an inbound reply as Positive, Negative or Question and
// drafts a short response to match. On any failure the verdict defaults to
// Question with a generic follow-up so the inbox never shows a blank state.
func (e *Enricher) ClassifySentiment(ctx context.Context, replyText string) Classification {
	prompt := fmt.Sprintf(`Analyze the following email reply from a potential client:
%q

1. Determine sentiment: "Positive", "Negative", or "Question".
2. Draft a short, appropriate response based on the sentiment.`, replyText)

	raw, err := e.client.GenerateJSON(ctx, prompt, sentimentSchema)
	if err != nil {
		log.Printf("classify sentiment failed, using fallback: %v", err)
		return Classification{Sentiment: entity.SentimentQuestion, SuggestedReply: fallbackSuggestedReply}
	}

	var result struct {
		Sentiment      string `json:"sentiment"`
		SuggestedReply string `json:"suggestedReply"`
	}
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		log.Printf("classify sentiment returned unusable payload, using fallback: %v", err)
		return Classification{Sentiment: entity.SentimentQuestion, SuggestedReply: fallbackSuggestedReply}
	}

	sentiment := entity.Sentiment(strings.TrimSpace(result.Sentiment))
	if !sentiment.IsValid() {
		sentiment = entity.SentimentQuestion
	}
	reply := result.SuggestedReply
	if reply == "" {
		reply = "Could not generate reply."
	}
	return Classification{Sentiment: sentiment, SuggestedReply: reply}
}
