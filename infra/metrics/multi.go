package metrics

import coremetrics "github.com/kaiyomaru/fieldassign/core/metrics"

// MultiSink fans day records out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordDayResults forwards the records to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordDayResults(recs []coremetrics.DayRecord) error {
	for _, s := range m.Sinks {
		if err := s.RecordDayResults(recs); err != nil {
			return err
		}
	}
	return nil
}
