package server

import (
	"net/http"
)

type createTaskRequest struct {
	Text string `json:"text"`
}

type updateTaskRequest struct {
	Text string `json:"text"`
}

type taskDoneRequest struct {
	Done bool `json:"done"`
}

// ListTasksHandler returns a one-shot snapshot of the user's tasks.
func (s *Server) ListTasksHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := s.tasks.List(userID(r))
		if err != nil {
			s.writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// CreateTaskHandler inserts a new task. Whitespace-only text is a no-op
// answered with 204, mirroring the silent client-side skip.
func (s *Server) CreateTaskHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createTaskRequest
		if err := decodeJSON(r, &req); err != nil {
			s.writeError(w, err)
			return
		}

		task, err := s.tasks.Create(userID(r), req.Text)
		if err != nil {
			s.writeError(w, err)
			return
		}
		if task == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, http.StatusCreated, task)
	}
}

// UpdateTaskHandler rewrites the text of a task.
func (s *Server) UpdateTaskHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateTaskRequest
		if err := decodeJSON(r, &req); err != nil {
			s.writeError(w, err)
			return
		}

		if err := s.tasks.UpdateText(r.PathValue("id"), req.Text); err != nil {
			s.writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// TaskDoneHandler flips the completion flag of a task.
func (s *Server) TaskDoneHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req taskDoneRequest
		if err := decodeJSON(r, &req); err != nil {
			s.writeError(w, err)
			return
		}

		if err := s.tasks.SetDone(r.PathValue("id"), req.Done); err != nil {
			s.writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// DeleteTaskHandler removes a task.
func (s *Server) DeleteTaskHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.tasks.Delete(r.PathValue("id")); err != nil {
			s.writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
