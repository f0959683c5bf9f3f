package timetable

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"courseware/models"
)

// Input is everything the scheduler consumes for one course: the raw hours
// string from the course proposal, the flattened ordered topic list, and the
// assessment methods with their delivery durations as text.
type Input struct {
	Hours       string
	Topics      []models.Topic
	Assessments []models.AssessmentMethod
}

// assessment is an Input assessment with its delivery duration parsed.
type assessment struct {
	code    string
	minutes int
}

// resolved carries the derived quantities the barrier walk needs.
type resolved struct {
	hours       int
	numDays     int
	perTopic    []int // minutes allocated per topic; remainder folded into the last
	topics      []models.Topic
	assessments []assessment
}

const defaultCourseHours = 16

var (
	digitRun        = regexp.MustCompile(`\d+`)
	durationPattern = regexp.MustCompile(`(?i)^\s*(\d+(?:\.\d+)?)\s*(hrs?|hours?|mins?|minutes?)\.?\s*$`)
)

// parseHours extracts the leading integer from strings like "16 hrs".
// Anything unparsable, and an explicit zero, fall back to the default.
func parseHours(s string) int {
	m := digitRun.FindString(s)
	if m == "" {
		return defaultCourseHours
	}
	n, err := strconv.Atoi(m)
	if err != nil || n == 0 {
		return defaultCourseHours
	}
	return n
}

// parseDeliveryMinutes parses assessment durations such as "1 hr", "30 mins"
// or "1.5 hrs" into whole minutes.
func parseDeliveryMinutes(s string) (int, error) {
	m := durationPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("unrecognized duration %q", s)
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("unrecognized duration %q", s)
	}
	if strings.HasPrefix(strings.ToLower(m[2]), "h") {
		return int(math.Round(v * 60)), nil
	}
	return int(math.Round(v)), nil
}

// resolve derives day count and the per-topic minute allocation from the raw
// input, and parses every assessment duration up front so placement never
// deals with text.
func resolve(in Input) (*resolved, error) {
	if len(in.Topics) == 0 {
		return nil, &ConfigurationError{Field: "topics", Reason: "no topics to schedule"}
	}

	hours := parseHours(in.Hours)
	numDays := hours / 8
	if numDays < 1 {
		numDays = 1
	}

	totalMinutes := hours * 60
	per := totalMinutes / len(in.Topics)
	if per == 0 {
		return nil, &ConfigurationError{
			Field:  "topics",
			Reason: fmt.Sprintf("%d topics cannot share %d instructional minutes", len(in.Topics), totalMinutes),
		}
	}

	perTopic := make([]int, len(in.Topics))
	for i := range perTopic {
		perTopic[i] = per
	}
	// Integer division must not lose minutes: the remainder goes to the
	// final topic.
	perTopic[len(perTopic)-1] += totalMinutes % len(in.Topics)

	assessments := make([]assessment, 0, len(in.Assessments))
	for _, am := range in.Assessments {
		mins, err := parseDeliveryMinutes(am.Delivery)
		if err != nil {
			return nil, &ConfigurationError{
				Field:  "assessment_methods",
				Reason: fmt.Sprintf("method %q: %v", am.Code, err),
			}
		}
		assessments = append(assessments, assessment{code: am.Code, minutes: mins})
	}

	return &resolved{
		hours:       hours,
		numDays:     numDays,
		perTopic:    perTopic,
		topics:      in.Topics,
		assessments: assessments,
	}, nil
}
