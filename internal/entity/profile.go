package entity

// UserProfile is the sender identity used to personalize generated emails.
type UserProfile struct {
	Name          string `json:"name"`
	JobTitle      string `json:"job_title"`
	CompanyName   string `json:"company_name"`
	PersonalEmail string `json:"personal_email"`
	BusinessEmail string `json:"business_email"`
	Phone         string `json:"phone"`
}

// CampaignStats aggregates read-only campaign counters.
type CampaignStats struct {
	TotalLeads  int `json:"total_leads"`
	EmailsSent  int `json:"emails_sent"`
	OpenRate    int `json:"open_rate"`
	ReplyRate   int `json:"reply_rate"`
	ActiveLeads int `json:"active_leads"`
}
