package timetable

import (
	"fmt"
	"sort"

	"courseware/models"
)

// Build runs the barrier algorithm over a course input and returns the full
// multi-day schedule. It is a pure function: no I/O, no shared state, safe to
// call concurrently for independent courses.
func Build(in Input) (*models.Schedule, error) {
	r, err := resolve(in)
	if err != nil {
		return nil, err
	}

	assessmentTotal := 0
	for _, a := range r.assessments {
		assessmentTotal += a.minutes
	}
	boundary := reservationBoundary(assessmentTotal)
	if boundary < afternoonBreakEnd {
		return nil, &ConfigurationError{
			Field:  "assessment_methods",
			Reason: fmt.Sprintf("%d assessment minutes do not fit in the last day's afternoon", assessmentTotal),
		}
	}

	perDay, err := walk(r, freeIntervals(r.numDays, boundary))
	if err != nil {
		return nil, err
	}

	days := make([]models.Day, 0, r.numDays)
	for d := 1; d <= r.numDays; d++ {
		isFirst := d == 1
		isLast := d == r.numDays

		sessions := fixedSessions(isFirst, isLast)
		sessions = append(sessions, perDay[d]...)
		if isLast {
			sessions = append(sessions, assessmentSessions(boundary, r.assessments)...)
		}
		sort.Slice(sessions, func(i, j int) bool { return sessions[i].Start < sessions[j].Start })
		sessions = mergeBreaks(sessions)

		if err := checkDay(d, sessions); err != nil {
			return nil, err
		}
		days = append(days, models.Day{Index: d, IsLast: isLast, Sessions: sessions})
	}

	return &models.Schedule{Days: days}, nil
}

// walk places topic content against the stitched free intervals. Per step it
// looks at the gap left before the next barrier: a topic that fits is placed
// whole; one that does not fit is split at the barrier, unless the gap is
// below the minimum session length, in which case the gap becomes a Break and
// the topic starts fresh after the barrier. Residual time once all topics are
// placed is filled with Breaks so every day sums to the full window.
func walk(r *resolved, ivs []interval) ([][]models.Session, error) {
	perDay := make([][]models.Session, r.numDays+1)

	ti := 0
	remaining := r.perTopic[0]
	split := false

	for _, iv := range ivs {
		cur := iv.start
		for ti < len(r.topics) && cur < iv.end {
			gap := iv.end - cur
			switch {
			case remaining <= gap:
				// The rest of the topic fits before the barrier.
				perDay[iv.day] = append(perDay[iv.day], topicSession(cur, cur+remaining, ti, r.topics[ti], split))
				cur += remaining
				ti++
				split = false
				if ti < len(r.topics) {
					remaining = r.perTopic[ti]
				}
			case gap < minSessionMinutes:
				// Sliver before the barrier: too small to teach in. The
				// topic's full remaining duration is retried after the
				// barrier, so its next session keeps the plain label.
				perDay[iv.day] = append(perDay[iv.day], breakSession(cur, iv.end))
				cur = iv.end
			default:
				perDay[iv.day] = append(perDay[iv.day], topicSession(cur, iv.end, ti, r.topics[ti], split))
				remaining -= gap
				split = true
				cur = iv.end
			}
		}
		if ti >= len(r.topics) && cur < iv.end {
			perDay[iv.day] = append(perDay[iv.day], breakSession(cur, iv.end))
		}
	}

	if ti < len(r.topics) {
		shortfall := remaining
		for i := ti + 1; i < len(r.perTopic); i++ {
			shortfall += r.perTopic[i]
		}
		return nil, &CapacityError{ShortfallMinutes: shortfall}
	}
	return perDay, nil
}

func topicSession(start, end, index int, t models.Topic, contd bool) models.Session {
	title := fmt.Sprintf("T%d: %s", index+1, t.Title)
	if contd {
		title += " (Cont'd)"
	}
	return models.Session{
		Start:        start,
		End:          end,
		Title:        title,
		BulletPoints: t.BulletPoints,
		Method:       t.Method,
		Resources:    t.Resources,
		Kind:         models.SessionTopic,
		TopicIndex:   index + 1,
	}
}

func breakSession(start, end int) models.Session {
	return models.Session{
		Start:     start,
		End:       end,
		Title:     "Break",
		Method:    "N/A",
		Resources: "N/A",
		Kind:      models.SessionBreak,
	}
}

// mergeBreaks collapses directly adjacent Break sessions into one.
func mergeBreaks(sessions []models.Session) []models.Session {
	merged := sessions[:0]
	for _, s := range sessions {
		if len(merged) > 0 {
			last := &merged[len(merged)-1]
			if last.Kind == models.SessionBreak && s.Kind == models.SessionBreak && last.End == s.Start {
				last.End = s.End
				continue
			}
		}
		merged = append(merged, s)
	}
	return merged
}

// checkDay enforces the schedule invariants: contiguous non-overlapping
// sessions covering the window exactly. A violation here is a scheduler bug,
// not bad input, and must never reach the caller as a degraded schedule.
func checkDay(day int, sessions []models.Session) error {
	if len(sessions) == 0 {
		return fmt.Errorf("timetable: day %d has no sessions", day)
	}
	cur := 0
	for _, s := range sessions {
		if s.Start != cur {
			return fmt.Errorf("timetable: day %d has a gap at minute %d", day, cur)
		}
		if s.End <= s.Start {
			return fmt.Errorf("timetable: day %d has an empty session at minute %d", day, s.Start)
		}
		cur = s.End
	}
	if cur != dayEndMinute {
		return fmt.Errorf("timetable: day %d ends at minute %d, want %d", day, cur, dayEndMinute)
	}
	return nil
}
