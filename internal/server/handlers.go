package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/apivault/apivault/models"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

type authResponse struct {
	AccessToken string      `json:"access_token"`
	User        models.User `json:"user"`
}

type createdResponse struct {
	CloudID string `json:"cloud_id"`
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "invalid json was passed", http.StatusBadRequest)
		return
	}
	if creds.Email == "" || creds.Password == "" {
		http.Error(w, "email and password are required", http.StatusBadRequest)
		return
	}

	user, err := s.auth.register(creds.Email, creds.Password, creds.Name)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailAlreadyExists):
			s.logger.Err(err).Str("email", creds.Email).Msg("registration conflict")
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			s.logger.Err(err).Msg("unexpected error during registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	s.writeSession(w, user)
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "invalid json was passed", http.StatusBadRequest)
		return
	}

	user, err := s.auth.login(creds.Email, creds.Password)
	if err != nil {
		s.logger.Err(err).Str("email", creds.Email).Msg("login rejected")
		http.Error(w, ErrInvalidCredentials.Error(), http.StatusUnauthorized)
		return
	}

	s.writeSession(w, user)
}

func (s *Server) writeSession(w http.ResponseWriter, user models.User) {
	token, err := s.auth.mintToken(user)
	if err != nil {
		s.logger.Err(err).Msg("token creation failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, authResponse{AccessToken: token, User: user})
}

// handleCreate builds the POST handler for one entity type.
func handleCreate[T any](s *Server, store *memStore[T], updatedAt func(*T) *time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item T
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			http.Error(w, "invalid json was passed", http.StatusBadRequest)
			return
		}

		touch(updatedAt(&item))
		cloudID := store.create(accountID(r), item)
		writeJSON(w, http.StatusCreated, createdResponse{CloudID: cloudID})
	}
}

// handleUpdate builds the PUT handler for one entity type.
func handleUpdate[T any](s *Server, store *memStore[T], updatedAt func(*T) *time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item T
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			http.Error(w, "invalid json was passed", http.StatusBadRequest)
			return
		}

		touch(updatedAt(&item))
		err := store.update(accountID(r), chi.URLParam(r, "cloudID"), item)
		switch {
		case errors.Is(err, ErrRecordNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, ErrStaleVersion):
			http.Error(w, err.Error(), http.StatusConflict)
		case err != nil:
			s.logger.Err(err).Msg("unexpected error during update")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusOK)
		}
	}
}

// handleDelete builds the DELETE handler for one entity type.
func handleDelete[T any](s *Server, store *memStore[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := store.delete(accountID(r), chi.URLParam(r, "cloudID"))
		switch {
		case errors.Is(err, ErrRecordNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case err != nil:
			s.logger.Err(err).Msg("unexpected error during delete")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	}
}

// handleList builds the GET handler for one entity type.
func handleList[T any](s *Server, store *memStore[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, store.list(accountID(r)))
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
