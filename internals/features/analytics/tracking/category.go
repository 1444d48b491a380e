// file: internals/features/analytics/tracking/category.go
package tracking

import (
	"net/url"
	"strings"
)

// CourseCategory kategori kasar dari judul/query untuk dimensi analytics.
func CourseCategory(title string) string {
	t := strings.ToLower(title)
	switch {
	case strings.Contains(t, "b.tech") || strings.Contains(t, "btech"):
		return "Engineering"
	case strings.Contains(t, "mbbs") || strings.Contains(t, "medical"):
		return "Medical"
	case strings.Contains(t, "nursing"):
		return "Nursing"
	case strings.Contains(t, "bba") || strings.Contains(t, "mba") || strings.Contains(t, "business"):
		return "Business"
	case strings.Contains(t, "b.sc") || strings.Contains(t, "bsc"):
		return "Science"
	case strings.Contains(t, "pharmacy") || strings.Contains(t, "pharm"):
		return "Pharmacy"
	case strings.Contains(t, "law") || strings.Contains(t, "llb"):
		return "Law"
	}
	return "Other"
}

type trafficRule struct {
	hosts  []string
	source string
	medium string
}

var trafficRules = []trafficRule{
	{[]string{"facebook.com", "fb.com"}, "facebook", "social"},
	{[]string{"instagram.com"}, "instagram", "social"},
	{[]string{"youtube.com", "youtu.be"}, "youtube", "social"},
	{[]string{"tiktok.com"}, "tiktok", "social"},
	{[]string{"linkedin.com"}, "linkedin", "social"},
	{[]string{"twitter.com", "x.com"}, "twitter", "social"},
	{[]string{"whatsapp.com"}, "whatsapp", "messaging"},
	{[]string{"google.com", "google."}, "google", "organic"},
	{[]string{"bing.com"}, "bing", "organic"},
	{[]string{"sharda.ac.in", "shardauniversity.org"}, "sharda_official", "referral"},
}

// TrafficSource source/medium dari referrer; utm_source (kalau ada) menang.
func TrafficSource(referrer, utmSource, utmMedium string) (source, medium string) {
	source, medium = "direct", "none"

	if referrer != "" {
		u, err := url.Parse(referrer)
		if err != nil || u.Hostname() == "" {
			source, medium = "unknown", "referral"
		} else {
			host := u.Hostname()
			source, medium = host, "referral"
			for _, r := range trafficRules {
				if containsAny(host, r.hosts) {
					source, medium = r.source, r.medium
					break
				}
			}
		}
	}

	if utmSource != "" {
		source = utmSource
		if utmMedium != "" {
			medium = utmMedium
		}
	}
	return source, medium
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// ===== Conversion =====

type ConversionKind string

const (
	ConversionCourseSelection ConversionKind = "course_selection"
	ConversionFeeCopy         ConversionKind = "fee_copy"
	ConversionExternalLink    ConversionKind = "external_link"
	ConversionSocialClick     ConversionKind = "social_click"
	ConversionContact         ConversionKind = "contact"
	ConversionApplyNow        ConversionKind = "apply_now"
)

// ConversionValue bobot default per jenis konversi.
func ConversionValue(kind ConversionKind) int {
	switch kind {
	case ConversionApplyNow:
		return 100
	case ConversionExternalLink:
		return 75
	case ConversionFeeCopy:
		return 50
	case ConversionCourseSelection:
		return 25
	case ConversionSocialClick:
		return 15
	}
	return 10
}

func engagementLevel(score int) string {
	switch {
	case score >= 50:
		return "high"
	case score >= 25:
		return "medium"
	}
	return "low"
}
