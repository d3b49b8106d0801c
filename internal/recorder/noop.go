package recorder

// NoopRecorder discards all records. Used when no database is configured.
type NoopRecorder struct{}

func (NoopRecorder) RecordPlan(*PlanRecord) error { return nil }
func (NoopRecorder) Close() error                 { return nil }
