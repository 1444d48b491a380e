// file: internals/features/finance/estimates/service/breakdown.go
package service

import (
	"slices"
	"strconv"

	catalogModel "studyfee_backend/internals/features/catalog/model"
	"studyfee_backend/internals/features/finance/estimates/model"
)

// ComputeBreakdown hitung rincian per tahun + grand total.
// Persen di luar tabel course tetap dihitung linear, tidak ditolak.
// Precondition: len(course.Years) == course.DurationYears (dicek saat load).
func ComputeBreakdown(course catalogModel.Course, scholarshipPercent float64, fees catalogModel.MandatoryFees) model.FeeBreakdown {
	out := model.FeeBreakdown{
		CourseID:              course.ID,
		ScholarshipPercentage: scholarshipPercent,
		Years:                 make([]model.YearlyFeeBreakdown, 0, len(course.Years)),
	}

	for i, tuition := range course.Years {
		year := i + 1
		mandatory := fees.ForYear(year)
		scholarship := tuition * scholarshipPercent / 100
		net := tuition - scholarship

		y := model.YearlyFeeBreakdown{
			Year:                    year,
			BaseTuition:             tuition,
			ScholarshipPercentage:   scholarshipPercent,
			ScholarshipAmount:       scholarship,
			NetTuition:              net,
			MandatoryFee:            mandatory,
			TotalWithScholarship:    net + mandatory,
			TotalWithoutScholarship: tuition + mandatory,
		}
		out.GrandTotalWithScholarship += y.TotalWithScholarship
		out.GrandTotalWithoutScholarship += y.TotalWithoutScholarship
		out.Years = append(out.Years, y)
	}
	return out
}

// ScholarshipOptions {0} + scholarship course, unik, urut turun (50, 20, 0).
func ScholarshipOptions(course catalogModel.Course) []int {
	opts := []int{0}
	for _, s := range course.Scholarships {
		if !slices.Contains(opts, s) {
			opts = append(opts, s)
		}
	}
	slices.SortFunc(opts, func(a, b int) int { return b - a })
	return opts
}

// OptionLabel "No Scholarship" atau "50% Scholarship".
func OptionLabel(scholarshipPercent float64) string {
	if scholarshipPercent > 0 {
		return formatPercent(scholarshipPercent) + "% Scholarship"
	}
	return "No Scholarship"
}

func formatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
