package viewstate

import "sync"

// Stats are the display formatted result statistics.
type Stats struct {
	OriginalWords string `json:"originalWords"`
	SummaryWords  string `json:"summaryWords"`
	Ratio         string `json:"ratio"`
}

// Snapshot is a copy of everything currently on screen.
type Snapshot struct {
	Revision  uint64 `json:"revision"`
	Busy      bool   `json:"busy"`
	Text      string `json:"text"`
	IsError   bool   `json:"isError"`
	Stats     *Stats `json:"stats,omitempty"`
	Toast     string `json:"toast,omitempty"`
	Advisory  bool   `json:"advisory"`
	RevealSeq uint64 `json:"revealSeq"`
	Clipboard string `json:"clipboard,omitempty"`
}

// Store is an in-memory display surface shared by the front ends. Every
// mutation bumps Revision and wakes subscribers.
type Store struct {
	mu     sync.Mutex
	snap   Snapshot
	subs   map[int]chan struct{}
	nextID int
}

// NewStore builds an empty display.
func NewStore() *Store {
	return &Store{subs: make(map[int]chan struct{})}
}

// Snapshot returns a copy of the current display.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.snap
	if s.snap.Stats != nil {
		stats := *s.snap.Stats
		out.Stats = &stats
	}
	return out
}

// Subscribe returns a channel that receives a signal after each change. Signals
// coalesce; readers should take a fresh Snapshot on wake up.
func (s *Store) Subscribe() (<-chan struct{}, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	ch := make(chan struct{}, 1)
	s.subs[id] = ch
	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// ShowSummary displays a summary as plain text.
func (s *Store) ShowSummary(text string) {
	s.update(func(snap *Snapshot) {
		snap.Text = text
		snap.IsError = false
	})
}

// ShowStats displays the formatted result statistics.
func (s *Store) ShowStats(originalWords, summaryWords, ratio string) {
	s.update(func(snap *Snapshot) {
		snap.Stats = &Stats{OriginalWords: originalWords, SummaryWords: summaryWords, Ratio: ratio}
	})
}

// HideStats clears the statistics region.
func (s *Store) HideStats() {
	s.update(func(snap *Snapshot) { snap.Stats = nil })
}

// ShowError displays a failure message with error styling.
func (s *Store) ShowError(message string) {
	s.update(func(snap *Snapshot) {
		snap.Text = message
		snap.IsError = true
	})
}

// RevealResult asks front ends to bring the result into view.
func (s *Store) RevealResult() {
	s.update(func(snap *Snapshot) { snap.RevealSeq++ })
}

// SetBusy toggles the busy affordance of the submit control.
func (s *Store) SetBusy(busy bool) {
	s.update(func(snap *Snapshot) { snap.Busy = busy })
}

// ShowToast displays a transient notification.
func (s *Store) ShowToast(message string) {
	s.update(func(snap *Snapshot) { snap.Toast = message })
}

// HideToast dismisses the notification.
func (s *Store) HideToast() {
	s.update(func(snap *Snapshot) { snap.Toast = "" })
}

// SetAdvisory shows or hides the slow model banner.
func (s *Store) SetAdvisory(visible bool) {
	s.update(func(snap *Snapshot) { snap.Advisory = visible })
}

// SetClipboard records text handed to the page for copying.
func (s *Store) SetClipboard(text string) {
	s.update(func(snap *Snapshot) { snap.Clipboard = text })
}

func (s *Store) update(mutate func(*Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	mutate(&s.snap)
	s.snap.Revision++
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
