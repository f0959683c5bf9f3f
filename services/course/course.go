package course

import (
	"errors"
	"regexp"
	"strings"

	"courseware/models"
)

// defaultTopicResources is the resource hint attached to topic sessions when
// the course proposal does not carry one.
const defaultTopicResources = "Slide page #"

var topicNumberPrefix = regexp.MustCompile(`^T\s*\d+\s*[:.\-]\s*`)

// Validate performs the handler-level sanity checks on a posted course
// context. Scheduling-level problems (unparsable durations, zero topics after
// flattening) are the scheduler's to report.
func Validate(c models.CourseContext) error {
	if strings.TrimSpace(c.CourseTitle) == "" {
		return errors.New("course context is missing Course_Title")
	}
	if len(c.LearningUnits) == 0 && len(c.Topics) == 0 {
		return errors.New("course context has neither Learning_Units nor topics")
	}
	return nil
}

// HoursText picks the hours field the scheduler should trust. The CP
// interpreter populates Total_Training_Hours; older contexts only carry
// Total_Course_Duration_Hours.
func HoursText(c models.CourseContext) string {
	if strings.TrimSpace(c.TotalTrainingHours) != "" {
		return c.TotalTrainingHours
	}
	return c.TotalCourseDurationHours
}

// FlattenTopics concatenates every learning unit's topics in source order
// into the flat list the scheduler numbers T1..Tn. Existing "T1:" style
// prefixes are stripped so renumbering never stacks. Each topic inherits its
// learning unit's instructional-method string as opaque passthrough.
func FlattenTopics(c models.CourseContext) []models.Topic {
	var out []models.Topic
	for _, lu := range c.LearningUnits {
		method := MethodString(lu.InstructionalMethods)
		for _, t := range lu.Topics {
			out = append(out, models.Topic{
				Title:        cleanTitle(topicTitle(t)),
				BulletPoints: topicBullets(t),
				Method:       method,
				Resources:    defaultTopicResources,
			})
		}
	}
	if len(out) > 0 {
		return out
	}
	for _, t := range c.Topics {
		out = append(out, models.Topic{
			Title:        cleanTitle(topicTitle(t)),
			BulletPoints: topicBullets(t),
			Method:       MethodString(nil),
			Resources:    defaultTopicResources,
		})
	}
	return out
}

// Assessments normalizes either assessment shape into the scheduler input
// form, preserving source order.
func Assessments(c models.CourseContext) []models.AssessmentMethod {
	if len(c.AssessmentDetails) == 0 {
		return c.AssessmentMethods
	}
	out := make([]models.AssessmentMethod, 0, len(c.AssessmentDetails))
	for _, d := range c.AssessmentDetails {
		code := d.Abbreviation
		if code == "" {
			code = d.Method
		}
		out = append(out, models.AssessmentMethod{Code: code, Delivery: d.TotalDeliveryHours})
	}
	return out
}

func topicTitle(t models.CourseTopic) string {
	if t.Title != "" {
		return t.Title
	}
	return t.FlatTitle
}

func topicBullets(t models.CourseTopic) []string {
	if len(t.BulletPoints) > 0 {
		return t.BulletPoints
	}
	return t.FlatBulletPoints
}

func cleanTitle(title string) string {
	stripped := strings.TrimSpace(topicNumberPrefix.ReplaceAllString(title, ""))
	if stripped == "" {
		return strings.TrimSpace(title)
	}
	return stripped
}
