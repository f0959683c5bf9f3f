package timetable

import (
	"testing"

	"courseware/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHours(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"16 hrs", 16},
		{"8hrs", 8},
		{"24", 24},
		{"7 hours", 7},
		{"", 16},
		{"0 hrs", 16},
		{"no digits here", 16},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, parseHours(tc.in), "input %q", tc.in)
	}
}

func TestParseDeliveryMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"1 hr", 60},
		{"2 hours", 120},
		{"1.5 hrs", 90},
		{"30 mins", 30},
		{"45 minutes", 45},
		{"90 min", 90},
		{"  1 hr  ", 60},
	}
	for _, tc := range cases {
		got, err := parseDeliveryMinutes(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}

	for _, bad := range []string{"", "soon", "1 fortnight", "hrs 2"} {
		_, err := parseDeliveryMinutes(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestResolveRemainderGoesToLastTopic(t *testing.T) {
	in := Input{Hours: "16 hrs", Topics: makeTopics(7)}
	r, err := resolve(in)
	require.NoError(t, err)

	// 960 / 7 = 137 remainder 1.
	assert.Equal(t, 2, r.numDays)
	require.Len(t, r.perTopic, 7)
	for i := 0; i < 6; i++ {
		assert.Equal(t, 137, r.perTopic[i])
	}
	assert.Equal(t, 138, r.perTopic[6])

	total := 0
	for _, m := range r.perTopic {
		total += m
	}
	assert.Equal(t, 960, total)
}

func TestResolveNoTopics(t *testing.T) {
	_, err := resolve(Input{Hours: "16 hrs"})
	var confErr *ConfigurationError
	require.ErrorAs(t, err, &confErr)
	assert.Equal(t, "topics", confErr.Field)
}

func TestResolveMoreTopicsThanMinutes(t *testing.T) {
	_, err := resolve(Input{Hours: "1 hr", Topics: makeTopics(61)})
	var confErr *ConfigurationError
	require.ErrorAs(t, err, &confErr)
	assert.Equal(t, "topics", confErr.Field)
}

func TestResolveBadAssessmentDuration(t *testing.T) {
	in := Input{
		Hours:  "16 hrs",
		Topics: makeTopics(4),
		Assessments: []models.AssessmentMethod{
			{Code: "WA", Delivery: "whenever"},
		},
	}
	_, err := resolve(in)
	var confErr *ConfigurationError
	require.ErrorAs(t, err, &confErr)
	assert.Equal(t, "assessment_methods", confErr.Field)
	assert.Contains(t, confErr.Reason, "WA")
}
