package assign

import (
	"time"

	"github.com/kaiyomaru/fieldassign/core/model"
)

// EligibleWorkers filters the registry down to workers available on the given
// date. Unavailable workers are excluded from the candidate pool entirely,
// they are not merely penalized.
func EligibleWorkers(workers []model.Worker, date time.Time) []model.Worker {
	var res []model.Worker
	for _, w := range workers {
		if w.AvailableOn(date) {
			res = append(res, w)
		}
	}
	return res
}
