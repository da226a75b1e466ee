package assign

import (
	"strings"

	"github.com/kaiyomaru/fieldassign/core/model"
)

// Resolve maps a schedule entry's display name to a registry definition.
// Exact match wins; otherwise the first registry entry whose name contains
// the display name (or vice versa) is taken, in registry order. The
// first-match tie-break is kept for compatibility with existing rosters even
// though it is order-dependent rather than similarity-ranked. When nothing
// matches, an unregistered default is synthesized.
//
// The returned OriginalName is the display name as scheduled, since it keys
// the day's results.
func Resolve(name string, registry []model.Task) model.ResolvedTask {
	clean := strings.TrimSpace(name)

	for _, t := range registry {
		if t.Name == clean {
			return model.ResolvedTask{Task: t, OriginalName: name}
		}
	}

	for _, t := range registry {
		n := strings.TrimSpace(t.Name)
		if strings.Contains(clean, n) || strings.Contains(n, clean) {
			return model.ResolvedTask{Task: t, OriginalName: name}
		}
	}

	return model.ResolvedTask{
		Task:         model.UnregisteredTask(clean),
		OriginalName: name,
		Unregistered: true,
	}
}
