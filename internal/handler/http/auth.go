package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/utils"
	"github.com/MKhiriev/go-job-tracker/models"
)

type authResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := decodeJSON(r, &user); err != nil {
		writeError(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("id", registeredUser.UserID).Msg("user registered")
	h.writeToken(w, token, registeredUser, "user registered", http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := decodeJSON(r, &user); err != nil {
		writeError(w, r, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		if statusFromError(err) == http.StatusUnauthorized {
			log.Warn().Err(err).Str("login", user.Login).Msg("login rejected")
			utils.WriteError(w, "invalid login/password", http.StatusUnauthorized)
			return
		}
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")
	h.writeToken(w, token, foundUser, "login successful", http.StatusOK)
}

func (h *Handler) writeToken(w http.ResponseWriter, token models.Token, user models.User, message string, status int) {
	user.Password = ""
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteSuccess(w, authResponse{Token: token.SignedString, User: user}, message, status)
}
