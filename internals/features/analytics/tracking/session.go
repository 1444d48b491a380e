// file: internals/features/analytics/tracking/session.go
package tracking

import (
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Quality string

const (
	QualityHigh   Quality = "high"
	QualityMedium Quality = "medium"
	QualityLow    Quality = "low"
)

// Session konteks engagement satu kunjungan. Dioper eksplisit ke Tracker,
// bukan state global. Di-lock karena callback debounce jalan di goroutine timer.
type Session struct {
	mu sync.Mutex

	id        uuid.UUID
	startedAt time.Time

	coursesViewed           map[string]struct{}
	scholarshipPanelsViewed int
	feeCopies               int
	externalLinkClicks      int
	maxScrollDepth          int
	scrollDepths            map[int]struct{}
	actions                 []string
}

func NewSession(now time.Time) *Session {
	s := &Session{}
	s.reset(now)
	return s
}

func (s *Session) reset(now time.Time) {
	s.id = uuid.New()
	s.startedAt = now
	s.coursesViewed = map[string]struct{}{}
	s.scholarshipPanelsViewed = 0
	s.feeCopies = 0
	s.externalLinkClicks = 0
	s.maxScrollDepth = 0
	s.scrollDepths = map[int]struct{}{}
	s.actions = nil
}

// Reset mulai sesi baru (id baru, counter nol).
func (s *Session) Reset(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset(now)
}

func (s *Session) ID() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

// Snapshot salinan read-only counter sesi.
type Snapshot struct {
	SessionID               string  `json:"session_id"`
	TimeOnPageSeconds       int     `json:"time_on_page_seconds"`
	CoursesViewed           int     `json:"courses_viewed"`
	ScholarshipPanelsViewed int     `json:"scholarship_panels_viewed"`
	FeeCopies               int     `json:"fee_copies"`
	ExternalLinkClicks      int     `json:"external_clicks"`
	MaxScrollDepth          int     `json:"max_scroll_depth"`
	TotalActions            int     `json:"total_actions"`
	LeadScore               int     `json:"lead_score"`
	Quality                 Quality `json:"session_quality"`
}

func (s *Session) Snapshot(now time.Time) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		SessionID:               s.id.String(),
		TimeOnPageSeconds:       s.timeOnPage(now),
		CoursesViewed:           len(s.coursesViewed),
		ScholarshipPanelsViewed: s.scholarshipPanelsViewed,
		FeeCopies:               s.feeCopies,
		ExternalLinkClicks:      s.externalLinkClicks,
		MaxScrollDepth:          s.maxScrollDepth,
		TotalActions:            len(s.actions),
		LeadScore:               s.leadScore(now),
		Quality:                 s.quality(),
	}
}

func (s *Session) LeadScore(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.leadScore(now)
}

func (s *Session) Quality() Quality {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quality()
}

func (s *Session) timeOnPage(now time.Time) int {
	return int(now.Sub(s.startedAt) / time.Second)
}

// leadScore maksimal 100.
func (s *Session) leadScore(now time.Time) int {
	score := len(s.coursesViewed) * 10
	score += s.scholarshipPanelsViewed * 5
	score += s.feeCopies * 15
	score += s.externalLinkClicks * 20
	score += s.maxScrollDepth / 10

	t := s.timeOnPage(now)
	if t > 120 {
		score += 10
	}
	if t > 300 {
		score += 15
	}
	return min(score, 100)
}

func (s *Session) quality() Quality {
	hasCourse := len(s.coursesViewed) > 0
	switch {
	case (hasCourse && s.feeCopies > 0) || s.externalLinkClicks > 0 || s.maxScrollDepth >= 75:
		return QualityHigh
	case hasCourse || s.maxScrollDepth >= 50 || len(s.actions) >= 3:
		return QualityMedium
	}
	return QualityLow
}

// ===== mutator (dipanggil Tracker) =====

func (s *Session) addCourse(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coursesViewed[id] = struct{}{}
	s.actions = append(s.actions, "course_selection")
	return len(s.coursesViewed)
}

func (s *Session) addScholarshipView() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scholarshipPanelsViewed++
	s.actions = append(s.actions, "scholarship_view")
	return s.scholarshipPanelsViewed
}

func (s *Session) addFeeCopy() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feeCopies++
	s.actions = append(s.actions, "fee_copy")
	return s.feeCopies
}

func (s *Session) addExternalClick() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.externalLinkClicks++
	s.actions = append(s.actions, "external_link")
	return s.externalLinkClicks
}

// addScrollDepth false kalau depth ini sudah pernah dicatat.
func (s *Session) addScrollDepth(depth int) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.scrollDepths[depth]; ok {
		return s.maxScrollDepth, false
	}
	s.scrollDepths[depth] = struct{}{}
	s.maxScrollDepth = max(s.maxScrollDepth, depth)
	s.actions = append(s.actions, "scroll_"+strconv.Itoa(depth))
	return s.maxScrollDepth, true
}

func (s *Session) externalClicks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.externalLinkClicks
}
