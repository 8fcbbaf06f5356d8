package severity

// Band groups scores into the three tiers shown to patients.
type Band string

const (
	BandMild     Band = "mild"
	BandModerate Band = "moderate"
	BandSevere   Band = "severe"
)

var descriptions = [MaxScore + 1]string{
	1: "Very mild: genetic changes are typically less disruptive. Symptoms may appear later in life and progress slowly.",
	2: "Mild: mutations are slightly more impactful, with symptoms like diabetes possibly appearing somewhat earlier.",
	3: "Moderate: both mutations affect key areas of the protein, which may lead to earlier or more noticeable symptoms.",
	4: "Moderate to significant: one mutation is more severe, though the other is milder. Symptoms may begin in mid-childhood.",
	5: "Severe: at least one major mutation affects a critical part of the protein, often leading to early symptom onset.",
	6: "Very severe: both mutations are highly disruptive. Symptoms such as diabetes and vision problems typically begin very early in life.",
}

// Describe returns the patient-facing description of a score.
func Describe(score int) (string, bool) {
	if score < MinScore || score > MaxScore {
		return "", false
	}
	return descriptions[score], true
}

// BandOf returns the tier of a score. Out-of-range scores have no band.
func BandOf(score int) Band {
	switch {
	case score < MinScore || score > MaxScore:
		return ""
	case score <= 2:
		return BandMild
	case score <= 4:
		return BandModerate
	default:
		return BandSevere
	}
}
