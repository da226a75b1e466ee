package mqtt

import (
	"encoding/json"
	"fmt"

	"github.com/kaiyomaru/fieldassign/core/assign"
	corelogger "github.com/kaiyomaru/fieldassign/core/logger"
)

// Notifier publishes each optimized day to {prefix}/assignments/{date} so
// field tablets can pick up their crew lists without polling the API.
type Notifier struct {
	pub    Publisher
	prefix string
	log    corelogger.Logger
}

// NewNotifier wraps a publisher with the configured topic prefix.
func NewNotifier(pub Publisher, prefix string, log corelogger.Logger) *Notifier {
	return &Notifier{pub: pub, prefix: prefix, log: log}
}

type dayMessage struct {
	RunID string           `json:"run_id"`
	Day   assign.DayResult `json:"day"`
}

// NotifyRun publishes every successfully optimized day of the run. Failed
// days are not published; a publish error stops the fan-out.
func (n *Notifier) NotifyRun(res assign.ScheduleResult) error {
	for _, date := range res.Dates() {
		day, ok := res.Days[date]
		if !ok {
			continue
		}
		payload, err := json.Marshal(dayMessage{RunID: res.RunID, Day: day})
		if err != nil {
			return fmt.Errorf("marshal day %s: %w", date, err)
		}
		topic := fmt.Sprintf("%s/assignments/%s", n.prefix, date)
		if err := n.pub.Publish(topic, payload); err != nil {
			return fmt.Errorf("publish %s: %w", topic, err)
		}
		if n.log != nil {
			n.log.Debugf("published %s", topic)
		}
	}
	return nil
}

// Close releases the underlying publisher.
func (n *Notifier) Close() { n.pub.Close() }
