package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Auth Routes - account lifecycle
	RouteAuthRegister   = "/auth/register"
	RouteAuthLogin      = "/auth/login"
	RouteAuthLogout     = "/auth/logout"
	RouteForgotPassword = "/auth/forgot-password"
	RouteAuthAccount    = "/auth/account"

	// Task Routes
	RouteTasks      = "/tasks"
	RouteTaskByID   = "/tasks/{id}"
	RouteTaskDone   = "/tasks/{id}/done"
	RouteTasksWatch = "/tasks/watch"

	// Quote Route
	RouteQuote = "/quote"
)
