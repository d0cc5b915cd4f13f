package dto

// UpdateLeadStatusRequest moves a lead to a new pipeline state.
type UpdateLeadStatusRequest struct {
	Status string `json:"status"`
}

// PitchRequest carries the service offering used to personalize a pitch.
type PitchRequest struct {
	ServiceOffered string `json:"service_offered"`
}

// UpdateProfileRequest is the edited operator profile submitted on save.
type UpdateProfileRequest struct {
	Name          string `json:"name"`
	JobTitle      string `json:"job_title"`
	CompanyName   string `json:"company_name"`
	PersonalEmail string `json:"personal_email"`
	BusinessEmail string `json:"business_email"`
	Phone         string `json:"phone"`
}
