package timetable

import "courseware/models"

// The daily window runs 0930hrs to 1830hrs: minute 0 through 540 relative to
// the window start. Every day carries the same mandatory blocks; only the
// opening and closing vary with the day's position in the course.
const (
	dayEndMinute      = 540
	closingStart      = 520
	afternoonBreakEnd = 340

	// minSessionMinutes is the shortest slice worth teaching in; anything
	// smaller before a barrier becomes a Break instead of a topic fragment.
	minSessionMinutes = 15

	// assessmentAttendanceMinutes precedes the assessment sessions on the
	// last day.
	assessmentAttendanceMinutes = 10
)

// fixedBlock is a mandatory institutional block within a single day.
type fixedBlock struct {
	start     int
	end       int
	title     string
	resources string
}

// fixedBlocks returns the mandatory block table for a day. A single-day
// course is both first and last: it gets the first-day opening and the
// last-day closing.
func fixedBlocks(isFirst, isLast bool) []fixedBlock {
	opening := fixedBlock{0, 10, "Digital Attendance (AM)", "TV, Wi-Fi"}
	if isFirst {
		opening = fixedBlock{0, 15, "Digital Attendance and Introduction", "TV, Wi-Fi"}
	}
	closing := fixedBlock{closingStart, dayEndMinute, "Recap All Contents and Close", "TV"}
	if isLast {
		closing = fixedBlock{closingStart, dayEndMinute, "Course Feedback and TRAQOM Survey", "TV"}
	}
	return []fixedBlock{
		opening,
		{80, 90, "Morning Break", "N/A"},
		{150, 195, "Lunch Break", "N/A"},
		{240, 250, "Digital Attendance (PM)", "TV, Wi-Fi"},
		{330, 340, "Afternoon Break", "N/A"},
		closing,
	}
}

// interval is one day's stretch of free time between barriers, addressed on
// the stitched multi-day virtual timeline.
type interval struct {
	day   int // 1-based
	start int
	end   int
}

// reservationBoundary is the last-day minute offset at which topic and break
// placement must stop so the assessment attendance and every assessment
// session fit exactly before the closing block.
func reservationBoundary(assessmentMinutes int) int {
	return closingStart - assessmentAttendanceMinutes - assessmentMinutes
}

// freeIntervals computes the complement of the fixed blocks for every day,
// concatenated in course order. On the last day intervals are clipped at the
// reservation boundary.
func freeIntervals(numDays, boundary int) []interval {
	var ivs []interval
	for day := 1; day <= numDays; day++ {
		isFirst := day == 1
		isLast := day == numDays
		blocks := fixedBlocks(isFirst, isLast)

		cur := 0
		for _, b := range blocks {
			if b.start > cur {
				ivs = append(ivs, interval{day: day, start: cur, end: b.start})
			}
			cur = b.end
		}
		if cur < dayEndMinute {
			ivs = append(ivs, interval{day: day, start: cur, end: dayEndMinute})
		}

		if isLast {
			clipped := ivs[:0]
			for _, iv := range ivs {
				if iv.day == day {
					if iv.start >= boundary {
						continue
					}
					if iv.end > boundary {
						iv.end = boundary
					}
				}
				clipped = append(clipped, iv)
			}
			ivs = clipped
		}
	}
	return ivs
}

// fixedSessions materializes the mandatory blocks as sessions.
func fixedSessions(isFirst, isLast bool) []models.Session {
	blocks := fixedBlocks(isFirst, isLast)
	sessions := make([]models.Session, 0, len(blocks))
	for _, b := range blocks {
		sessions = append(sessions, models.Session{
			Start:     b.start,
			End:       b.end,
			Title:     b.title,
			Method:    "N/A",
			Resources: b.resources,
			Kind:      models.SessionFixed,
		})
	}
	return sessions
}
