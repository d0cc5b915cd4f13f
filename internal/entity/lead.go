package entity

import "time"

// Sentinel values used when discovery could not find the field.
const (
	WebsiteNotDetected = "No website detected"
	EmailNotFound      = "Not Found"
)

// LeadStatus represents where a lead sits in the outreach pipeline.
type LeadStatus string

const (
	StatusNew         LeadStatus = "New"
	StatusAnalyzing   LeadStatus = "Analyzing"
	StatusContacted   LeadStatus = "Contacted"
	StatusReplied     LeadStatus = "Replied"
	StatusConverted   LeadStatus = "Converted"
	StatusBlacklisted LeadStatus = "Blacklisted"
)

// IsValid reports whether the status is one of the known pipeline states.
func (s LeadStatus) IsValid() bool {
	switch s {
	case StatusNew, StatusAnalyzing, StatusContacted, StatusReplied, StatusConverted, StatusBlacklisted:
		return true
	default:
		return false
	}
}

// Sentiment classifies an inbound reply.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
	SentimentQuestion Sentiment = "Question"
)

// IsValid reports whether the sentiment is a known classification.
func (s Sentiment) IsValid() bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral, SentimentQuestion:
		return true
	default:
		return false
	}
}

// Lead represents one discovered business prospect.
type Lead struct {
	ID               string     `json:"id"`
	BusinessName     string     `json:"business_name"`
	Industry         string     `json:"industry"`
	Location         string     `json:"location"`
	Website          string     `json:"website"`
	Email            string     `json:"email"`
	ContactPerson    string     `json:"contact_person"`
	Status           LeadStatus `json:"status"`
	Sentiment        Sentiment  `json:"sentiment,omitempty"`
	AIAnalysis       string     `json:"ai_analysis,omitempty"`
	LastEmailContent string     `json:"last_email_content,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	WebsiteScore     int        `json:"website_score"`
}

// HasEmail reports whether a usable contact address was extracted.
func (l Lead) HasEmail() bool {
	return l.Email != "" && l.Email != EmailNotFound
}
