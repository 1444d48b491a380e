// file: internals/features/finance/estimates/service/summary.go
package service

import (
	"fmt"
	"strings"

	catalogModel "studyfee_backend/internals/features/catalog/model"
)

const (
	admissionFeeIncludes = "Including Provisional Admission Fee, Visa letter/Bonafide Letter Charges, " +
		"1st year Examination Fee, 1st year Registration Fee, 1st year Medical Insurance Charges, " +
		"1st year Medical Check up Charges, AIU certification /equivalence assistance only, " +
		"FRRO/Police verification/Visa Extension Assistance only"
	otherFeesIncludes = "Registration Fee, Examination Fee, Medical Insurance Renewal Charges, FRRO/Visa Extension Assistance"
)

// GenerateSummaryText teks ringkasan siap share (format WhatsApp: *bold*).
// Tanpa side effect; tulis ke clipboard urusan pemanggil.
// Kalau persen 0, baris "Scholarship (" dan "Net Tuition:" tidak pernah muncul.
func GenerateSummaryText(course catalogModel.Course, scholarshipPercent float64, fees catalogModel.MandatoryFees) string {
	bd := ComputeBreakdown(course, scholarshipPercent, fees)
	withScholarship := scholarshipPercent > 0
	pct := formatPercent(scholarshipPercent)

	var b strings.Builder

	// ===== Header =====
	fmt.Fprintf(&b, "*Estimate for: %s*\n", course.Title)
	fmt.Fprintf(&b, "*Duration:* %s\n", durationLabel(course.DurationYears))
	fmt.Fprintf(&b, "*Option:* %s\n\n", OptionLabel(scholarshipPercent))

	// ===== Per tahun =====
	for _, y := range bd.Years {
		fmt.Fprintf(&b, "*Year %d*\n", y.Year)
		fmt.Fprintf(&b, "Tuition Fee: %s\n", FormatCurrency(y.BaseTuition))
		if withScholarship {
			fmt.Fprintf(&b, "Scholarship (%s%%): –%s\n", pct, FormatCurrency(y.ScholarshipAmount))
			fmt.Fprintf(&b, "Net Tuition: %s\n", FormatCurrency(y.NetTuition))
		}
		if y.Year == 1 {
			fmt.Fprintf(&b, "Admission Fee: %s (%s)\n", FormatCurrency(y.MandatoryFee), admissionFeeIncludes)
		} else {
			fmt.Fprintf(&b, "Other Fees: %s (%s)\n", FormatCurrency(y.MandatoryFee), otherFeesIncludes)
		}
		fmt.Fprintf(&b, "✅ *Total Year %d = %s*\n\n", y.Year, FormatCurrency(y.TotalWithScholarship))
	}

	// ===== Grand total =====
	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "*GRAND TOTAL (All %d Years)*\n", course.DurationYears)
	fmt.Fprintf(&b, "*Total Fees: %s*\n", FormatCurrency(bd.GrandTotalWithScholarship))
	if withScholarship {
		fmt.Fprintf(&b, "\n*Savings with %s%% Scholarship: %s*\n", pct, FormatCurrency(bd.Savings()))
		fmt.Fprintf(&b, "Without scholarship: %s\n", FormatCurrency(bd.GrandTotalWithoutScholarship))
	}

	return b.String()
}

func durationLabel(years int) string {
	if years == 1 {
		return "1 year"
	}
	return fmt.Sprintf("%d years", years)
}
