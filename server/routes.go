package server

import "net/http"

func (s *Server) initRoutes() {
	// Account lifecycle
	s.RegisterRouteHandler("POST "+RouteAuthRegister, ChainMiddleware(s.RegisterHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAuthLogin, ChainMiddleware(s.LoginHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteForgotPassword, ChainMiddleware(s.ForgotPasswordHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAuthLogout, ChainMiddleware(s.LogoutHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("DELETE "+RouteAuthAccount, ChainMiddleware(s.DeleteAccountHandler(), s.authAPIMiddleware()...))

	// Task routes (require a valid session token)
	s.RegisterRouteHandler("GET "+RouteTasksWatch, ChainMiddleware(s.WatchTasksHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteTasks, ChainMiddleware(s.ListTasksHandler(), s.authAPIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteTasks, ChainMiddleware(s.CreateTaskHandler(), s.authAPIMiddleware()...))
	s.RegisterRouteHandler("PUT "+RouteTaskByID, ChainMiddleware(s.UpdateTaskHandler(), s.authAPIMiddleware()...))
	s.RegisterRouteHandler("PUT "+RouteTaskDone, ChainMiddleware(s.TaskDoneHandler(), s.authAPIMiddleware()...))
	s.RegisterRouteHandler("DELETE "+RouteTaskByID, ChainMiddleware(s.DeleteTaskHandler(), s.authAPIMiddleware()...))

	// Quote
	s.RegisterRouteHandler("GET "+RouteQuote, ChainMiddleware(s.QuoteHandler(), s.APIMiddleware()...))
}

func (s *Server) authAPIMiddleware() []func(http.HandlerFunc) http.HandlerFunc {
	return append(s.APIMiddleware(), s.RequireAuth())
}
