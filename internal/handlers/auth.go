// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/pquerna/otp/totp"
	qrcode "github.com/skip2/go-qrcode"

	"siteforge/internal/middleware"
	"siteforge/internal/session"
	"siteforge/internal/store"
)

// Auth groups all authentication-related HTTP handlers.
type Auth struct {
	sessions *session.Store
	users    *store.UserStore
}

// NewAuth creates a new Auth handler group.
func NewAuth(sessions *session.Store, users *store.UserStore) *Auth {
	return &Auth{sessions: sessions, users: users}
}

// Login verifies credentials and opens a session. The session starts
// with 2FA incomplete; the response tells the client whether the user
// still needs to enroll or just verify.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := a.users.FindByEmail(req.Email)
	if err != nil {
		slog.Error("login lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	// Identical response for unknown email and wrong password.
	if user == nil || !a.users.CheckPassword(user, req.Password) {
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	_, err = a.sessions.Create(r.Context(), w, &session.Data{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		TwoFADone:   false,
	})
	if err != nil {
		slog.Error("session create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"two_fa_required": true,
		"two_fa_setup":    user.Needs2FASetup(),
	})
}

// Logout destroys the current session.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.sessions.Destroy(r.Context(), w, r); err != nil {
		slog.Error("session destroy failed", "error", err)
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// TwoFASetup generates a TOTP secret for the logged-in user and returns
// the otpauth URL plus a QR code PNG for authenticator enrollment.
func (a *Auth) TwoFASetup(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "SiteForge",
		AccountName: sess.Email,
	})
	if err != nil {
		slog.Error("totp generate failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if err := a.users.SetTOTPSecret(sess.UserID, key.Secret()); err != nil {
		slog.Error("save totp secret failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	png, err := qrcode.Encode(key.URL(), qrcode.Medium, 256)
	if err != nil {
		slog.Error("qr encode failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"secret":      key.Secret(),
		"otpauth_url": key.URL(),
		"qr_png":      base64.StdEncoding.EncodeToString(png),
	})
}

// TwoFAVerify validates a TOTP code, completing enrollment on first
// verification and marking the session as fully authenticated.
func (a *Auth) TwoFAVerify(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var req struct {
		Code string `json:"code"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := a.users.FindByID(sess.UserID)
	if err != nil || user == nil {
		slog.Error("2fa user lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if user.TOTPSecret == nil {
		writeError(w, http.StatusConflict, "two-factor setup not started")
		return
	}

	if !totp.Validate(req.Code, *user.TOTPSecret) {
		writeError(w, http.StatusUnauthorized, "invalid verification code")
		return
	}

	if user.Needs2FASetup() {
		if err := a.users.EnableTOTP(user.ID); err != nil {
			slog.Error("enable totp failed", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
	}

	sess.TwoFADone = true
	if err := a.sessions.Update(r.Context(), r, sess); err != nil {
		slog.Error("session update failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user_id":      user.ID,
		"email":        user.Email,
		"display_name": user.DisplayName,
	})
}

// Me returns the current session's identity.
func (a *Auth) Me(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"user_id":      sess.UserID,
		"email":        sess.Email,
		"display_name": sess.DisplayName,
		"two_fa_done":  sess.TwoFADone,
	})
}
