package models

import "time"

// SessionKind tags how a session was produced.
type SessionKind string

const (
	SessionFixed      SessionKind = "fixed"
	SessionTopic      SessionKind = "topic"
	SessionBreak      SessionKind = "break"
	SessionAssessment SessionKind = "assessment"
)

// Session is one contiguous block on a day's timetable. Start and End are
// minutes from the daily window start (0930hrs).
type Session struct {
	Start        int         `json:"start"`
	End          int         `json:"end"`
	Title        string      `json:"title"`
	BulletPoints []string    `json:"bulletPoints,omitempty"`
	Method       string      `json:"method"`
	Resources    string      `json:"resources"`
	Kind         SessionKind `json:"kind"`
	TopicIndex   int         `json:"topicIndex,omitempty"` // 1-based for topic sessions
}

// Duration returns the session length in minutes.
func (s Session) Duration() int {
	return s.End - s.Start
}

// Day holds the ordered, contiguous session list for one course day.
type Day struct {
	Index    int       `json:"index"` // 1-based
	IsLast   bool      `json:"isLast"`
	Sessions []Session `json:"sessions"`
}

// Schedule is the sole scheduler output. It is built once and never mutated.
type Schedule struct {
	Days []Day `json:"days"`
}

// LessonPlanSession is the rendered wire form of a Session, consumed by the
// external document-rendering collaborator. Field names follow the template
// contract and are not idiomatic on purpose.
type LessonPlanSession struct {
	Time                 string   `bson:"time" json:"Time"`
	InstructionTitle     string   `bson:"instructionTitle" json:"instruction_title"`
	BulletPoints         []string `bson:"bulletPoints" json:"bullet_points"`
	InstructionalMethods string   `bson:"instructionalMethods" json:"Instructional_Methods"`
	Resources            string   `bson:"resources" json:"Resources"`
}

// LessonPlanDay is one rendered day.
type LessonPlanDay struct {
	Day      string              `bson:"day" json:"Day"`
	Sessions []LessonPlanSession `bson:"sessions" json:"Sessions"`
}

// LessonPlan is the persisted, rendered timetable for a course.
type LessonPlan struct {
	ID          string          `bson:"id" json:"id"`
	CourseID    string          `bson:"courseId" json:"courseId,omitempty"`
	CourseTitle string          `bson:"courseTitle" json:"courseTitle,omitempty"`
	Days        []LessonPlanDay `bson:"lessonPlan" json:"lesson_plan"`
	CreatedAt   time.Time       `bson:"createdAt" json:"createdAt"`
}
