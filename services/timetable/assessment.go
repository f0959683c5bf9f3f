package timetable

import (
	"fmt"

	"courseware/models"
)

// assessmentSessions materializes the last day's reserved window: the
// assessment attendance marker followed by one session per method, in source
// order, filling exactly up to the closing block.
func assessmentSessions(boundary int, assessments []assessment) []models.Session {
	sessions := make([]models.Session, 0, len(assessments)+1)
	cur := boundary

	sessions = append(sessions, models.Session{
		Start:     cur,
		End:       cur + assessmentAttendanceMinutes,
		Title:     "Digital Attendance (Assessment)",
		Method:    "N/A",
		Resources: "TV, Wi-Fi",
		Kind:      models.SessionFixed,
	})
	cur += assessmentAttendanceMinutes

	for _, a := range assessments {
		if a.minutes == 0 {
			continue
		}
		sessions = append(sessions, models.Session{
			Start:     cur,
			End:       cur + a.minutes,
			Title:     fmt.Sprintf("Final Assessment: %s", a.code),
			Method:    "Assessment",
			Resources: "N/A",
			Kind:      models.SessionAssessment,
		})
		cur += a.minutes
	}
	return sessions
}
