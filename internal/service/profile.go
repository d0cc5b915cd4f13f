package service

import (
	"errors"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/octobees/huntflow/api/internal/entity"
	"github.com/octobees/huntflow/api/internal/store"
)

// Profile validation errors.
var (
	ErrProfileNameRequired = errors.New("profile name is required")
	ErrInvalidEmail        = errors.New("invalid email address")
)

// ProfileService owns edits to the operator profile. Callers edit a scratch
// copy; Update commits it atomically, so saving identical values is a no-op.
type ProfileService struct {
	store         *store.Memory
	defaultRegion string
}

// NewProfileService wires profile editing with the given default phone region.
func NewProfileService(st *store.Memory, defaultRegion string) *ProfileService {
	if defaultRegion == "" {
		defaultRegion = "US"
	}
	return &ProfileService{store: st, defaultRegion: defaultRegion}
}

// Get returns the current profile.
func (s *ProfileService) Get() entity.UserProfile {
	return s.store.Profile()
}

// Update validates and commits the edited profile. Emails are normalized and
// shape-checked; the phone number is formatted to E.164 when it parses for the
// configured region and kept verbatim otherwise.
func (s *ProfileService) Update(p entity.UserProfile) (entity.UserProfile, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.JobTitle = strings.TrimSpace(p.JobTitle)
	p.CompanyName = strings.TrimSpace(p.CompanyName)
	p.Phone = strings.TrimSpace(p.Phone)

	if p.Name == "" {
		return entity.UserProfile{}, ErrProfileNameRequired
	}

	for _, field := range []*string{&p.PersonalEmail, &p.BusinessEmail} {
		if strings.TrimSpace(*field) == "" {
			*field = ""
			continue
		}
		normalized, ok := NormalizeEmail(*field)
		if !ok {
			return entity.UserProfile{}, ErrInvalidEmail
		}
		*field = normalized
	}

	if p.Phone != "" {
		if parsed, err := phonenumbers.Parse(p.Phone, s.defaultRegion); err == nil && phonenumbers.IsValidNumber(parsed) {
			p.Phone = phonenumbers.Format(parsed, phonenumbers.E164)
		}
	}

	s.store.SetProfile(p)
	return p, nil
}
