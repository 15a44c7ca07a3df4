package service

import (
	"math/rand/v2"

	"github.com/MKhiriev/go-gpu-missions/models"
)

// usableOffer keeps offers unless both deprecation flags are set.
func usableOffer(o models.Offer) bool {
	return !o.IsDeprecated || !o.IsDeprecatedSuperNode
}

// selectOffer drops unusable offers and draws one at random, preferring the
// quick-start subset when it is not empty.
func selectOffer(offers []models.Offer, picker Picker) (models.Offer, bool) {
	survivors := make([]models.Offer, 0, len(offers))
	quickStart := make([]models.Offer, 0, len(offers))
	for _, o := range offers {
		if !usableOffer(o) {
			continue
		}
		survivors = append(survivors, o)
		if o.QuickStart {
			quickStart = append(quickStart, o)
		}
	}

	pool := survivors
	if len(quickStart) > 0 {
		pool = quickStart
	}
	if len(pool) == 0 {
		return models.Offer{}, false
	}

	return pool[picker.IntN(len(pool))], true
}

// globalPicker draws from the math/rand/v2 global source.
type globalPicker struct{}

func (globalPicker) IntN(n int) int {
	return rand.IntN(n)
}
