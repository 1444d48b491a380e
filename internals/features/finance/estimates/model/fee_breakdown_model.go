// file: internals/features/finance/estimates/model/fee_breakdown_model.go
package model

// YearlyFeeBreakdown rincian satu tahun. Nilai float mentah, pembulatan
// hanya saat ditampilkan.
type YearlyFeeBreakdown struct {
	Year                    int     `json:"year"`
	BaseTuition             float64 `json:"base_tuition"`
	ScholarshipPercentage   float64 `json:"scholarship_percentage"`
	ScholarshipAmount       float64 `json:"scholarship_amount"`
	NetTuition              float64 `json:"net_tuition"`
	MandatoryFee            float64 `json:"mandatory_fee"`
	TotalWithScholarship    float64 `json:"total_with_scholarship"`
	TotalWithoutScholarship float64 `json:"total_without_scholarship"`
}

// FeeBreakdown hasil hitung per (course, persen scholarship). Transient.
type FeeBreakdown struct {
	CourseID                     string               `json:"course_id"`
	ScholarshipPercentage        float64              `json:"scholarship_percentage"`
	Years                        []YearlyFeeBreakdown `json:"years"`
	GrandTotalWithScholarship    float64              `json:"grand_total_with_scholarship"`
	GrandTotalWithoutScholarship float64              `json:"grand_total_without_scholarship"`
}

func (b FeeBreakdown) Savings() float64 {
	return b.GrandTotalWithoutScholarship - b.GrandTotalWithScholarship
}
