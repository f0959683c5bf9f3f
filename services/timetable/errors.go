package timetable

import "fmt"

// ConfigurationError reports input data the scheduler cannot work with
// (unparsable hours, unparsable assessment durations, an empty topic list).
// It reflects a bad course context and is never retried.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error (%s): %s", e.Field, e.Reason)
}

// CapacityError reports topic content that cannot fit into the timetable
// before the last day's assessment reservation boundary. The shortfall lets
// the caller decide between adding a day and cutting topics; the scheduler
// never silently truncates content.
type CapacityError struct {
	ShortfallMinutes int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("course content exceeds available instructional time by %d minutes", e.ShortfallMinutes)
}
