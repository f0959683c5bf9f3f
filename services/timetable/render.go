package timetable

import (
	"fmt"

	"courseware/models"
)

// windowStartMinute is 0930hrs expressed as minutes from midnight.
const windowStartMinute = 9*60 + 30

func formatClock(offset int) string {
	abs := windowStartMinute + offset
	return fmt.Sprintf("%02d%02d", abs/60, abs%60)
}

func formatTimeRange(start, end int) string {
	return fmt.Sprintf("%shrs - %shrs (%d mins)", formatClock(start), formatClock(end), end-start)
}

// Render converts a schedule into the wire form consumed by the document
// renderer, with clock times and the template's field names.
func Render(s *models.Schedule) []models.LessonPlanDay {
	days := make([]models.LessonPlanDay, 0, len(s.Days))
	for _, day := range s.Days {
		rendered := models.LessonPlanDay{
			Day:      fmt.Sprintf("Day %d", day.Index),
			Sessions: make([]models.LessonPlanSession, 0, len(day.Sessions)),
		}
		for _, sess := range day.Sessions {
			bullets := sess.BulletPoints
			if bullets == nil {
				bullets = []string{}
			}
			rendered.Sessions = append(rendered.Sessions, models.LessonPlanSession{
				Time:                 formatTimeRange(sess.Start, sess.End),
				InstructionTitle:     sess.Title,
				BulletPoints:         bullets,
				InstructionalMethods: sess.Method,
				Resources:            sess.Resources,
			})
		}
		days = append(days, rendered)
	}
	return days
}
