package domain

import "github.com/andresuchdata/eoq-calculator/internal/inventory"

var safetyMessages = map[bool]string{
	true:  "EOQ aman terhadap umur simpan.",
	false: "Peringatan: EOQ lebih besar dari D × umur simpan!",
}

var bandLabels = map[inventory.Band]string{
	inventory.BandCritical: "Kritis",
	inventory.BandCaution:  "Waspada",
	inventory.BandSafe:     "Aman",
}

// SafetyMessage returns the message shown for a safety verdict.
func SafetyMessage(safe bool) string {
	return safetyMessages[safe]
}

// BandLabel returns a human-readable label for a risk band.
func BandLabel(band inventory.Band) string {
	if label, ok := bandLabels[band]; ok {
		return label
	}

	return string(band)
}
