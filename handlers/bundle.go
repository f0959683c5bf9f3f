package handlers

// HandlerBundle aggregates the handler groups the router needs.
type HandlerBundle struct {
	Timetable *TimetableHandler
	Course    *CourseHandler
	Admin     *AdminHandler
}
