package course

import (
	"sort"
	"strings"

	"courseware/models"
)

// Known naming drift in extracted course proposals: these get corrected
// before any grouping.
var methodCorrections = map[string]string{
	"Classroom":  "Lecture",
	"Practical":  "Practice",
	"Discussion": "Group Discussion",
}

// validMethodPairs are the approved instructional-method combinations. Case
// Study and Role Play stand alone.
var validMethodPairs = [][]string{
	{"Lecture", "Didactic Questioning"},
	{"Lecture", "Peer Sharing"},
	{"Lecture", "Group Discussion"},
	{"Demonstration", "Practice"},
	{"Demonstration", "Group Discussion"},
	{"Case Study"},
	{"Role Play"},
}

func correctMethods(methods []string) []string {
	corrected := make([]string, 0, len(methods))
	for _, m := range methods {
		if fixed, ok := methodCorrections[m]; ok {
			corrected = append(corrected, fixed)
		} else {
			corrected = append(corrected, m)
		}
	}
	return corrected
}

// pairMethods groups a learning unit's corrected methods into the valid
// combinations. When none of the approved pairs match, it falls back to
// custom pairings so no extracted method is dropped.
func pairMethods(corrected []string) []string {
	present := make(map[string]bool, len(corrected))
	for _, m := range corrected {
		present[m] = true
	}

	var pairs []string
	for _, pair := range validMethodPairs {
		all := true
		for _, m := range pair {
			if !present[m] {
				all = false
				break
			}
		}
		if all {
			pairs = append(pairs, strings.Join(pair, ", "))
		}
	}
	if len(pairs) > 0 || len(corrected) == 0 {
		return pairs
	}

	switch len(corrected) {
	case 1:
		return []string{corrected[0]}
	case 2:
		return []string{strings.Join(corrected, ", ")}
	default:
		return []string{
			strings.Join(corrected[:2], ", "),
			strings.Join(corrected[len(corrected)-2:], ", "),
		}
	}
}

// MethodString renders a learning unit's corrected methods as the
// Instructional_Methods passthrough for its topic sessions.
func MethodString(methods []string) string {
	corrected := correctMethods(methods)
	if len(corrected) == 0 {
		return "Lecture"
	}
	return strings.Join(corrected, ", ")
}

// ExtractUniqueInstructionalMethods collects the unique instructional-method
// combinations across all learning units, sorted for stable output.
func ExtractUniqueInstructionalMethods(c models.CourseContext) []string {
	seen := make(map[string]bool)
	for _, lu := range c.LearningUnits {
		for _, p := range pairMethods(correctMethods(lu.InstructionalMethods)) {
			seen[p] = true
		}
	}
	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
