package timetable

import (
	"fmt"
	"testing"

	"courseware/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTopics(n int) []models.Topic {
	topics := make([]models.Topic, n)
	for i := range topics {
		topics[i] = models.Topic{
			Title:        fmt.Sprintf("Topic %d", i+1),
			BulletPoints: []string{"point"},
			Method:       "Lecture",
			Resources:    "Slide page #",
		}
	}
	return topics
}

// requireContiguous asserts a day's sessions tile the window exactly.
func requireContiguous(t *testing.T, day models.Day) {
	t.Helper()
	require.NotEmpty(t, day.Sessions)
	cur := 0
	for _, s := range day.Sessions {
		require.Equal(t, cur, s.Start, "day %d session %q", day.Index, s.Title)
		require.Greater(t, s.End, s.Start, "day %d session %q", day.Index, s.Title)
		cur = s.End
	}
	require.Equal(t, dayEndMinute, cur, "day %d must end at the window close", day.Index)
}

func TestBuildSingleDayExactFit(t *testing.T) {
	in := Input{Hours: "7 hrs", Topics: makeTopics(2)}
	s, err := Build(in)
	require.NoError(t, err)
	require.Len(t, s.Days, 1)

	day := s.Days[0]
	assert.True(t, day.IsLast)
	requireContiguous(t, day)

	titles := make([]string, 0, len(day.Sessions))
	for _, sess := range day.Sessions {
		titles = append(titles, sess.Title)
	}
	assert.Equal(t, []string{
		"Digital Attendance and Introduction",
		"T1: Topic 1",
		"Morning Break",
		"T1: Topic 1 (Cont'd)",
		"Lunch Break",
		"T1: Topic 1 (Cont'd)",
		"Digital Attendance (PM)",
		"T1: Topic 1 (Cont'd)",
		"T2: Topic 2",
		"Afternoon Break",
		"T2: Topic 2 (Cont'd)",
		"Digital Attendance (Assessment)",
		"Course Feedback and TRAQOM Survey",
	}, titles)

	// Conservation: each topic's fragments sum to its allocation.
	perTopic := map[int]int{}
	for _, sess := range day.Sessions {
		if sess.Kind == models.SessionTopic {
			perTopic[sess.TopicIndex] += sess.Duration()
			assert.GreaterOrEqual(t, sess.Duration(), minSessionMinutes, "session %q", sess.Title)
		}
	}
	assert.Equal(t, map[int]int{1: 210, 2: 210}, perTopic)
}

func TestBuildCapacityOverflow(t *testing.T) {
	in := Input{
		Hours:  "10 hrs",
		Topics: makeTopics(1),
		Assessments: []models.AssessmentMethod{
			{Code: "WA", Delivery: "1 hr"},
		},
	}
	_, err := Build(in)
	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	// 600 topic minutes against 360 free minutes on a one-day course.
	assert.Equal(t, 240, capErr.ShortfallMinutes)
}

func TestBuildAssessmentsOverrunAfternoon(t *testing.T) {
	in := Input{
		Hours:  "7 hrs",
		Topics: makeTopics(2),
		Assessments: []models.AssessmentMethod{
			{Code: "PP", Delivery: "4 hrs"},
		},
	}
	_, err := Build(in)
	var confErr *ConfigurationError
	require.ErrorAs(t, err, &confErr)
	assert.Equal(t, "assessment_methods", confErr.Field)
}

func TestBuildLastDayAssessmentTail(t *testing.T) {
	in := Input{
		Hours:  "5 hrs",
		Topics: makeTopics(2),
		Assessments: []models.AssessmentMethod{
			{Code: "WA", Delivery: "30 mins"},
			{Code: "PP", Delivery: "1 hr"},
		},
	}
	s, err := Build(in)
	require.NoError(t, err)
	require.Len(t, s.Days, 1)

	day := s.Days[0]
	requireContiguous(t, day)

	n := len(day.Sessions)
	require.GreaterOrEqual(t, n, 5)

	// Free time left before the reservation boundary is filled with a Break.
	gapFill := day.Sessions[n-5]
	assert.Equal(t, "Break", gapFill.Title)
	assert.Equal(t, 420, gapFill.End)

	attendance := day.Sessions[n-4]
	assert.Equal(t, "Digital Attendance (Assessment)", attendance.Title)
	assert.Equal(t, 420, attendance.Start)
	assert.Equal(t, 430, attendance.End)

	wa := day.Sessions[n-3]
	assert.Equal(t, "Final Assessment: WA", wa.Title)
	assert.Equal(t, models.SessionAssessment, wa.Kind)
	assert.Equal(t, 30, wa.Duration())

	pp := day.Sessions[n-2]
	assert.Equal(t, "Final Assessment: PP", pp.Title)
	assert.Equal(t, 60, pp.Duration())
	assert.Equal(t, closingStart, pp.End)

	assert.Equal(t, "Course Feedback and TRAQOM Survey", day.Sessions[n-1].Title)
}

func TestWalkSliverBecomesBreak(t *testing.T) {
	r := &resolved{
		numDays:  1,
		perTopic: []int{90, 85},
		topics:   makeTopics(2),
	}
	ivs := []interval{{1, 0, 100}, {1, 110, 200}}

	perDay, err := walk(r, ivs)
	require.NoError(t, err)

	sessions := perDay[1]
	require.Len(t, sessions, 4)

	assert.Equal(t, "T1: Topic 1", sessions[0].Title)
	assert.Equal(t, 90, sessions[0].Duration())

	// The 10-minute sliver before the barrier is not worth teaching in.
	assert.Equal(t, "Break", sessions[1].Title)
	assert.Equal(t, models.SessionBreak, sessions[1].Kind)

	// T2 restarts after the barrier with its full allocation and no
	// continuation marker.
	assert.Equal(t, "T2: Topic 2", sessions[2].Title)
	assert.Equal(t, 85, sessions[2].Duration())

	assert.Equal(t, "Break", sessions[3].Title)
	assert.Equal(t, 200, sessions[3].End)
}

func TestWalkSplitsAcrossDays(t *testing.T) {
	r := &resolved{
		numDays:  2,
		perTopic: []int{120},
		topics:   makeTopics(1),
	}
	ivs := []interval{{1, 0, 60}, {2, 0, 100}}

	perDay, err := walk(r, ivs)
	require.NoError(t, err)

	require.Len(t, perDay[1], 1)
	assert.Equal(t, "T1: Topic 1", perDay[1][0].Title)
	assert.Equal(t, 60, perDay[1][0].Duration())

	require.Len(t, perDay[2], 2)
	assert.Equal(t, "T1: Topic 1 (Cont'd)", perDay[2][0].Title)
	assert.Equal(t, 60, perDay[2][0].Duration())
	assert.Equal(t, "Break", perDay[2][1].Title)
	assert.Equal(t, 100, perDay[2][1].End)
}

func TestWalkReportsShortfall(t *testing.T) {
	r := &resolved{
		numDays:  1,
		perTopic: []int{100, 50},
		topics:   makeTopics(2),
	}
	ivs := []interval{{1, 0, 80}}

	_, err := walk(r, ivs)
	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	// 20 minutes of T1 left over plus all 50 of T2.
	assert.Equal(t, 70, capErr.ShortfallMinutes)
}

func TestMergeBreaks(t *testing.T) {
	sessions := []models.Session{
		{Start: 0, End: 10, Title: "Break", Kind: models.SessionBreak},
		{Start: 10, End: 20, Title: "Break", Kind: models.SessionBreak},
		{Start: 20, End: 30, Title: "T1: X", Kind: models.SessionTopic},
	}
	merged := mergeBreaks(sessions)
	require.Len(t, merged, 2)
	assert.Equal(t, 0, merged[0].Start)
	assert.Equal(t, 20, merged[0].End)
	assert.Equal(t, "T1: X", merged[1].Title)
}

func TestCheckDayRejectsGaps(t *testing.T) {
	sessions := []models.Session{
		{Start: 0, End: 10, Title: "A"},
		{Start: 20, End: dayEndMinute, Title: "B"},
	}
	err := checkDay(1, sessions)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gap")
}
