// file: internals/features/analytics/tracking/tracker.go
package tracking

import (
	"context"
	"log"
	"strings"
	"time"

	"studyfee_backend/internals/features/catalog/model"
	"studyfee_backend/internals/features/finance/estimates/service"
)

const defaultCurrency = "USD"

var (
	officialHosts = []string{"shardauniversity.org", "sharda.ac.in"}
	applyHosts    = []string{"global.sharda.ac.in"}
)

// Tracker pencatat interaksi. Gagal emit hanya di-log, tidak pernah
// menggagalkan alur pemanggil.
type Tracker struct {
	session *Session
	emitter Emitter
	now     func() time.Time
}

func NewTracker(session *Session, emitter Emitter) *Tracker {
	if emitter == nil {
		emitter = NopEmitter{}
	}
	return &Tracker{session: session, emitter: emitter, now: time.Now}
}

// WithClock untuk test.
func (t *Tracker) WithClock(now func() time.Time) *Tracker {
	t.now = now
	return t
}

func (t *Tracker) Session() *Session { return t.session }

func (t *Tracker) emit(ctx context.Context, name string, params map[string]any) {
	ev := Event{
		Name:      name,
		SessionID: t.session.ID().String(),
		Timestamp: t.now(),
		Params:    params,
	}
	if err := t.emitter.Emit(ctx, ev); err != nil {
		log.Printf("[WARN] ❌ Gagal kirim event %s: %v", name, err)
	}
}

func (t *Tracker) conversion(ctx context.Context, kind ConversionKind) {
	value := ConversionValue(kind)
	snap := t.session.Snapshot(t.now())

	t.emit(ctx, "conversion", map[string]any{
		"conversion_type": string(kind),
		"value":           value,
		"currency":        defaultCurrency,
		"lead_score":      snap.LeadScore,
		"session_quality": string(snap.Quality),
	})
	t.emit(ctx, "generate_lead", map[string]any{
		"currency":         defaultCurrency,
		"value":            value,
		"lead_type":        string(kind),
		"lead_score":       snap.LeadScore,
		"session_quality":  string(snap.Quality),
		"courses_viewed":   snap.CoursesViewed,
		"engagement_level": engagementLevel(snap.LeadScore),
	})
}

func (t *Tracker) CourseSelected(ctx context.Context, course model.Course, schoolName string) {
	count := t.session.addCourse(course.ID)
	category := CourseCategory(course.Title)

	t.emit(ctx, "course_selected", map[string]any{
		"event_category":       "Course Selection",
		"course_id":            course.ID,
		"course_title":         course.Title,
		"school":               schoolName,
		"course_category":      category,
		"courses_viewed_count": count,
	})
	t.conversion(ctx, ConversionCourseSelection)
}

func (t *Tracker) ScholarshipViewed(ctx context.Context, courseTitle string, scholarshipPercent int) {
	viewed := t.session.addScholarshipView()
	t.emit(ctx, "view_item", map[string]any{
		"item_name":                 courseTitle,
		"item_category":             "Course Fee Breakdown",
		"item_variant":              service.OptionLabel(float64(scholarshipPercent)),
		"scholarship_percentage":    scholarshipPercent,
		"scholarship_interest":      yesNo(scholarshipPercent > 0),
		"scholarship_panels_viewed": viewed,
	})
}

func (t *Tracker) FeeCopied(ctx context.Context, courseTitle string, scholarshipPercent int) {
	copies := t.session.addFeeCopy()
	label := service.OptionLabel(float64(scholarshipPercent))

	t.emit(ctx, "fee_breakdown_copied", map[string]any{
		"event_category":         "Copy Action",
		"event_label":            courseTitle + " - " + label,
		"course_title":           courseTitle,
		"scholarship_percentage": scholarshipPercent,
		"course_category":        CourseCategory(courseTitle),
		"fee_copies_count":       copies,
	})
	t.conversion(ctx, ConversionFeeCopy)
	t.emit(ctx, "share", map[string]any{
		"method":       "copy_to_clipboard",
		"content_type": "fee_breakdown",
		"course_title": courseTitle,
	})
}

func (t *Tracker) ExternalLink(ctx context.Context, linkURL, linkText string) {
	official := containsAny(linkURL, officialHosts)
	apply := containsAny(linkURL, applyHosts)
	if official {
		t.session.addExternalClick()
	}

	t.emit(ctx, "click", map[string]any{
		"event_category":        "External Link",
		"link_url":              linkURL,
		"link_text":             linkText,
		"is_official_site":      official,
		"is_apply_link":         apply,
		"external_clicks_count": t.session.externalClicks(),
	})

	if official {
		kind := ConversionExternalLink
		if apply {
			kind = ConversionApplyNow
		}
		t.conversion(ctx, kind)
	}
}

func (t *Tracker) SocialLink(ctx context.Context, platform, linkURL string) {
	t.emit(ctx, "social_link_clicked", map[string]any{
		"event_category":  "Social Media",
		"social_platform": platform,
		"link_url":        linkURL,
	})
	t.conversion(ctx, ConversionSocialClick)
}

// ScrollDepth tiap depth hanya dicatat sekali per sesi.
func (t *Tracker) ScrollDepth(ctx context.Context, depth int) {
	maxDepth, fresh := t.session.addScrollDepth(depth)
	if !fresh {
		return
	}
	level := "low"
	if depth >= 75 {
		level = "high"
	} else if depth >= 50 {
		level = "medium"
	}
	t.emit(ctx, "scroll", map[string]any{
		"event_category":   "Engagement",
		"scroll_depth":     depth,
		"max_scroll_depth": maxDepth,
		"engagement_level": level,
	})
}

// Search query <= 2 karakter diabaikan.
func (t *Tracker) Search(ctx context.Context, query string) {
	if trimmedLen(query) <= 2 {
		return
	}
	t.emit(ctx, "search", map[string]any{
		"search_term":     query,
		"search_length":   len(query),
		"course_category": CourseCategory(query),
	})
}

func (t *Tracker) ProgrammeSelected(ctx context.Context, programme model.ProgrammeLevel) {
	if programme == model.ProgrammeAll {
		return
	}
	t.emit(ctx, "programme_selected", map[string]any{
		"event_category": "Filter",
		"programme":      string(programme),
	})
}

func (t *Tracker) StreamSelected(ctx context.Context, stream string) {
	if stream == model.StreamAll {
		return
	}
	t.emit(ctx, "stream_selected", map[string]any{
		"event_category": "Filter",
		"stream":         stream,
	})
}

func (t *Tracker) CourseCleared(ctx context.Context) {
	t.emit(ctx, "course_cleared", map[string]any{
		"event_category": "Course Action",
		"event_label":    "Clear Course",
	})
}

// Exit kirim ringkasan sesi lalu mulai sesi baru.
func (t *Tracker) Exit(ctx context.Context) Snapshot {
	now := t.now()
	snap := t.session.Snapshot(now)

	t.emit(ctx, "session_summary", map[string]any{
		"event_category":            "Session",
		"session_duration":          snap.TimeOnPageSeconds,
		"lead_score":                snap.LeadScore,
		"session_quality":           string(snap.Quality),
		"courses_viewed_count":      snap.CoursesViewed,
		"scholarship_panels_viewed": snap.ScholarshipPanelsViewed,
		"fee_copies_count":          snap.FeeCopies,
		"external_clicks_count":     snap.ExternalLinkClicks,
		"max_scroll_depth":          snap.MaxScrollDepth,
		"total_actions":             snap.TotalActions,
		"has_conversion":            snap.LeadScore >= 25,
	})

	t.session.Reset(now)
	return snap
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// trimmedLen panjang query setelah trim spasi.
func trimmedLen(q string) int { return len(strings.TrimSpace(q)) }
