package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/octobees/huntflow/api/internal/config"
	"github.com/octobees/huntflow/api/internal/entity"
	"github.com/octobees/huntflow/api/internal/search"
	"github.com/octobees/huntflow/api/internal/store"
)

var (
	// ErrMissingQuery indicates keyword or location was empty.
	ErrMissingQuery = errors.New("keyword and location are required")
	// ErrHuntInProgress indicates a hunt is already running for this session.
	ErrHuntInProgress = errors.New("a hunt is already in progress")
)

// Hunt sources reported in the result.
const (
	SourceBackend    = "backend"
	SourceSimulation = "simulation"
)

// LeadSimulator fabricates leads when the real backend is unavailable.
type LeadSimulator interface {
	SimulateLeads(ctx context.Context, keyword, location string) []entity.Lead
}

// HuntResult reports the outcome of one acquisition run.
type HuntResult struct {
	Leads  []entity.Lead `json:"leads"`
	Source string        `json:"source"`
}

// HuntService orchestrates lead acquisition: real search first, AI simulation
// as the fallback data source, with a human-readable progress narrative.
type HuntService struct {
	searcher  search.Searcher
	simulator LeadSimulator
	store     *store.Memory
	mode      string
	narrate   bool

	mu      sync.Mutex
	hunting bool
}

// NewHuntService wires the acquisition workflow.
func NewHuntService(searcher search.Searcher, simulator LeadSimulator, st *store.Memory, mode string, narrate bool) *HuntService {
	return &HuntService{
		searcher:  searcher,
		simulator: simulator,
		store:     st,
		mode:      mode,
		narrate:   narrate,
	}
}

// Hunting reports whether an acquisition run is currently in flight.
func (s *HuntService) Hunting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hunting
}

// LogEntries returns the narrative of the current or most recent hunt.
func (s *HuntService) LogEntries() []entity.LogEntry {
	return s.store.LogEntries()
}

// Hunt runs one acquisition for the keyword/location pair. Overlapping
// invocations are rejected with ErrHuntInProgress; the collection always
// receives at least one lead on success.
func (s *HuntService) Hunt(ctx context.Context, keyword, location string) (HuntResult, error) {
	if keyword == "" || location == "" {
		return HuntResult{}, ErrMissingQuery
	}

	s.mu.Lock()
	if s.hunting {
		s.mu.Unlock()
		return HuntResult{}, ErrHuntInProgress
	}
	s.hunting = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.hunting = false
		s.mu.Unlock()
	}()

	s.store.ResetLog()
	s.log(">_ Starting HuntFlow v2.0...", entity.LogInfo)

	stopNarration := s.startNarration(keyword, location)
	defer stopNarration()

	var (
		leads  []entity.Lead
		source string
	)

	if s.mode == config.ModeReal {
		s.log("Establishing secure connection to scraping backend...", entity.LogProcess)

		found, err := s.searcher.Search(ctx, keyword, location)
		if err == nil {
			s.log(fmt.Sprintf("Backend responded successfully. Found %d raw leads.", len(found)), entity.LogSuccess)
			leads, source = found, SourceBackend
		} else {
			s.log(fmt.Sprintf("Backend connection failed: %v", err), entity.LogError)
			s.log("Falling back to AI Simulation Mode...", entity.LogWarning)
			leads, source = s.simulator.SimulateLeads(ctx, keyword, location), SourceSimulation
		}
	} else {
		s.log("Running in Simulation Mode (Mock Data)...", entity.LogInfo)
		leads, source = s.simulator.SimulateLeads(ctx, keyword, location), SourceSimulation
	}

	s.log(fmt.Sprintf("Analyzing website content for %d leads...", len(leads)), entity.LogProcess)
	for i := range leads {
		leads[i] = s.sanitizeContact(leads[i])
		if leads[i].HasEmail() {
			s.log(fmt.Sprintf("[%s] Email extracted: %s", leads[i].BusinessName, leads[i].Email), entity.LogSuccess)
		} else {
			s.log(fmt.Sprintf("[%s] Scraping contact page...", leads[i].BusinessName), entity.LogWarning)
		}
	}

	// Halt the decorative narration before the completion marker so a scanner
	// line cannot appear after the hunt reports itself done.
	stopNarration()

	s.log(fmt.Sprintf("Process Complete. %d verified leads added to database.", len(leads)), entity.LogSuccess)
	s.log("Ready for outreach.", entity.LogInfo)

	s.store.PrependLeads(leads)
	return HuntResult{Leads: leads, Source: source}, nil
}

// sanitizeContact normalizes the contact email, downgrading unusable addresses
// to the Not Found sentinel.
func (s *HuntService) sanitizeContact(lead entity.Lead) entity.Lead {
	if !lead.HasEmail() {
		lead.Email = entity.EmailNotFound
		return lead
	}
	if normalized, ok := NormalizeEmail(lead.Email); ok {
		lead.Email = normalized
	} else {
		lead.Email = entity.EmailNotFound
	}
	return lead
}

func (s *HuntService) log(message string, level entity.LogLevel) {
	s.store.AppendLog(entity.LogEntry{Message: message, Level: level, Timestamp: time.Now()})
}

// narrationScript is the decorative scanner storyline shown while a hunt runs.
// It carries no data and never gates the real acquisition path.
var narrationScript = []struct {
	message string
	level   entity.LogLevel
	delay   time.Duration
}{
	{"Connecting to Google Maps (Headless Chromium)...", entity.LogProcess, 600 * time.Millisecond},
	{"Bypassing bot detection algorithms...", entity.LogWarning, 700 * time.Millisecond},
	{"Connection Established. Latency: 42ms", entity.LogSuccess, 700 * time.Millisecond},
	{"Parsing DOM elements for business cards...", entity.LogProcess, 1300 * time.Millisecond},
	{"Scrolling viewport (Page 1/3)...", entity.LogInfo, 1000 * time.Millisecond},
	{"Extracting metadata (Name, URL, Coordinates)...", entity.LogProcess, 1500 * time.Millisecond},
	{"Filtering duplicates and irrelevant results...", entity.LogWarning, 2000 * time.Millisecond},
	{"Validating domains and SSL certificates...", entity.LogProcess, 1500 * time.Millisecond},
}

// startNarration launches the self-paced decorative log sequence and returns a
// stop function. The sequence halts as soon as the hunt completes so no
// narration line can trail the real result.
func (s *HuntService) startNarration(keyword, location string) func() {
	if !s.narrate {
		return func() {}
	}

	stop := make(chan struct{})
	done := make(chan struct{})
	var once sync.Once

	go func() {
		defer close(done)
		s.log(fmt.Sprintf("System Initialized. Target: %q in %q", keyword, location), entity.LogInfo)
		for _, step := range narrationScript {
			select {
			case <-stop:
				return
			case <-time.After(step.delay):
				s.log(step.message, step.level)
			}
		}
	}()

	return func() {
		once.Do(func() { close(stop) })
		<-done
	}
}
