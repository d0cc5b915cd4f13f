package dto

// HuntRequest is the payload used to start a lead hunt.
type HuntRequest struct {
	Keyword  string `json:"keyword"`
	Location string `json:"location"`
}
