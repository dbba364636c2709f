package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"recipebox/internal/infrastructure/auth"
	"recipebox/internal/models"
	service "recipebox/internal/services"
	pkgerrors "recipebox/pkg/errors"
)

type Handler struct {
	service service.RecipeBoxService
}

func NewHandler(s service.RecipeBoxService) *Handler {
	return &Handler{service: s}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func (h *Handler) writeError(w http.ResponseWriter, status int, err error) {
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}

// unauthorized responds 401 with an empty body. No detail leaks about why.
func (h *Handler) unauthorized(w http.ResponseWriter) {
	w.WriteHeader(http.StatusUnauthorized)
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

func (h *Handler) RegisterPublicRoutes(r *mux.Router) {
	r.HandleFunc("/signup", h.Signup).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")
}

func (h *Handler) RegisterProtectedRoutes(r *mux.Router) {
	r.HandleFunc("/check_session", h.CheckSession).Methods("GET")
	r.HandleFunc("/logout", h.Logout).Methods("DELETE")
	r.HandleFunc("/recipes", h.ListRecipes).Methods("GET")
	r.HandleFunc("/recipes", h.CreateRecipe).Methods("POST")
	r.HandleFunc("/me", h.DeleteAccount).Methods("DELETE")
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string  `json:"username"`
		Password string  `json:"password"`
		Bio      *string `json:"bio"`
		ImageURL *string `json:"image_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	if req.Username == "" || req.Password == "" {
		h.writeError(w, http.StatusUnprocessableEntity, errors.New("username and password required"))
		return
	}

	user, token, err := h.service.Signup(r.Context(), service.SignupInput{
		Username: req.Username,
		Password: req.Password,
		Bio:      req.Bio,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, pkgerrors.ErrUsernameExists) || errors.Is(err, pkgerrors.ErrValidation) {
			h.writeError(w, http.StatusUnprocessableEntity, err)
		} else {
			h.writeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	h.setSessionCookie(w, token)
	h.writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	user, token, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrInvalidCredentials) {
			h.unauthorized(w)
		} else {
			h.writeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	h.setSessionCookie(w, token)
	h.writeJSON(w, http.StatusOK, user)
}

func (h *Handler) CheckSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.unauthorized(w)
		return
	}

	user, err := h.service.CurrentUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrUserNotFound) {
			// The user behind this session is gone; treat as anonymous.
			h.unauthorized(w)
		} else {
			h.writeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	h.writeJSON(w, http.StatusOK, user)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(auth.CookieName)
	if err != nil {
		h.unauthorized(w)
		return
	}

	if err := h.service.Logout(r.Context(), cookie.Value); err != nil {
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}

	h.clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.unauthorized(w)
		return
	}

	recipes, err := h.service.ListRecipes(r.Context(), userID)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if recipes == nil {
		recipes = []models.Recipe{}
	}

	h.writeJSON(w, http.StatusOK, recipes)
}

func (h *Handler) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.unauthorized(w)
		return
	}

	var req struct {
		Title             string `json:"title"`
		Instructions      string `json:"instructions"`
		MinutesToComplete *int   `json:"minutes_to_complete"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	recipe, err := h.service.CreateRecipe(r.Context(), userID, service.RecipeInput{
		Title:             req.Title,
		Instructions:      req.Instructions,
		MinutesToComplete: req.MinutesToComplete,
	})
	if err != nil {
		if errors.Is(err, pkgerrors.ErrValidation) {
			h.writeError(w, http.StatusUnprocessableEntity, err)
		} else {
			h.writeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	h.writeJSON(w, http.StatusCreated, recipe)
}

func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.unauthorized(w)
		return
	}

	cookie, err := r.Cookie(auth.CookieName)
	if err != nil {
		h.unauthorized(w)
		return
	}

	if err := h.service.DeleteAccount(r.Context(), userID, cookie.Value); err != nil {
		if errors.Is(err, pkgerrors.ErrUserNotFound) {
			h.unauthorized(w)
		} else {
			h.writeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	h.clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}
