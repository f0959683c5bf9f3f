package models

import "time"

// CourseContext is the interpreted course proposal consumed by the scheduler.
// It accepts both the full Learning-Unit shape produced by the CP interpreter
// and a pre-flattened topic list; the course service normalizes either form.
type CourseContext struct {
	ID                       string                   `bson:"id" json:"id,omitempty"`
	CourseTitle              string                   `bson:"courseTitle" json:"Course_Title"`
	TGSRefNo                 string                   `bson:"tgsRefNo,omitempty" json:"TGS_Ref_No,omitempty"`
	TotalTrainingHours       string                   `bson:"totalTrainingHours,omitempty" json:"Total_Training_Hours,omitempty"`
	TotalCourseDurationHours string                   `bson:"totalCourseDurationHours,omitempty" json:"Total_Course_Duration_Hours,omitempty"`
	LearningUnits            []LearningUnit           `bson:"learningUnits,omitempty" json:"Learning_Units,omitempty"`
	Topics                   []CourseTopic            `bson:"topics,omitempty" json:"topics,omitempty"`
	AssessmentDetails        []AssessmentMethodDetail `bson:"assessmentDetails,omitempty" json:"Assessment_Methods_Details,omitempty"`
	AssessmentMethods        []AssessmentMethod       `bson:"assessmentMethods,omitempty" json:"assessment_methods,omitempty"`
	CreatedAt                time.Time                `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt                time.Time                `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// LearningUnit groups topics under one learning outcome.
type LearningUnit struct {
	Title                string        `bson:"title" json:"LU_Title"`
	Topics               []CourseTopic `bson:"topics" json:"Topics"`
	InstructionalMethods []string      `bson:"instructionalMethods,omitempty" json:"Instructional_Methods,omitempty"`
}

// CourseTopic is a topic as it appears in the course proposal. Both the
// CP-interpreter field names and the flat scheduler input names are accepted.
type CourseTopic struct {
	Title        string   `bson:"title" json:"Topic_Title,omitempty"`
	BulletPoints []string `bson:"bulletPoints,omitempty" json:"Bullet_Points,omitempty"`

	FlatTitle        string   `bson:"-" json:"title,omitempty"`
	FlatBulletPoints []string `bson:"-" json:"bullet_points,omitempty"`
}

// AssessmentMethodDetail is the rich assessment record from the CP interpreter.
type AssessmentMethodDetail struct {
	Method             string `bson:"method" json:"Assessment_Method"`
	Abbreviation       string `bson:"abbreviation" json:"Method_Abbreviation"`
	TotalDeliveryHours string `bson:"totalDeliveryHours" json:"Total_Delivery_Hours"`
}

// AssessmentMethod is the flat scheduler input form: a method code plus a
// delivery duration, either as text ("1 hr", "30 mins") or raw minutes.
type AssessmentMethod struct {
	Code     string `bson:"code" json:"code"`
	Delivery string `bson:"delivery" json:"delivery_minutes_or_text"`
}

// Topic is one schedulable unit of instructional content after flattening.
// Method and Resources are caller-supplied passthrough; the scheduler never
// interprets them.
type Topic struct {
	Title        string   `json:"title"`
	BulletPoints []string `json:"bullet_points"`
	Method       string   `json:"method,omitempty"`
	Resources    string   `json:"resources,omitempty"`
}
