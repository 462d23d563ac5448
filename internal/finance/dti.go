package finance

// DTIBand is a debt-to-income bucket label
type DTIBand string

// Debt-to-income bands, lowest first
const (
	DTIUnder36 DTIBand = "<36%"
	DTI36To43  DTIBand = "36–43%"
	DTI43To50  DTIBand = "43–50%"
	DTIOver50  DTIBand = "≥50%"
	DTIUnknown DTIBand = ""
)

var dtiThresholds = []struct {
	limit float64
	band  DTIBand
}{
	{0.36, DTIUnder36},
	{0.43, DTI36To43},
	{0.50, DTI43To50},
}

// DTIBands lists every known band in ascending order
func DTIBands() []DTIBand {
	return []DTIBand{DTIUnder36, DTI36To43, DTI43To50, DTIOver50}
}

// DTIRatio is outstanding debt over annual income, 0 without income
func DTIRatio(annualIncome, totalDebt float64) float64 {
	if annualIncome <= 0 {
		return 0
	}
	return totalDebt / annualIncome
}

// BucketDTI places a ratio in its band. Each threshold belongs to the band
// above it.
func BucketDTI(ratio float64) DTIBand {
	for _, t := range dtiThresholds {
		if ratio < t.limit {
			return t.band
		}
	}
	return DTIOver50
}

// ParseDTIBand accepts band labels as the client renders them, including
// plain hyphens and ">=" in place of the typographic forms.
func ParseDTIBand(s string) DTIBand {
	switch s {
	case "<36%":
		return DTIUnder36
	case "36–43%", "36-43%":
		return DTI36To43
	case "43–50%", "43-50%":
		return DTI43To50
	case "≥50%", ">=50%", ">50%":
		return DTIOver50
	}
	return DTIUnknown
}
