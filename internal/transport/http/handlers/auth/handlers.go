package authhandler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"laborpay/internal/domain/auth"
	"laborpay/internal/transport/http/api"
	"laborpay/internal/transport/http/middleware"
)

type Handler struct {
	store    *auth.Store
	secret   string
	tokenTTL time.Duration
}

func NewHandler(db *pgxpool.Pool, secret string, tokenTTL time.Duration) *Handler {
	return &Handler{store: auth.NewStore(db), secret: secret, tokenTTL: tokenTTL}
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload loginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid login payload", requestID)
		return
	}

	email := strings.TrimSpace(strings.ToLower(payload.Email))
	if email == "" || payload.Password == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "email and password are required", requestID)
		return
	}

	user, err := h.store.FindUserByEmail(r.Context(), email)
	if err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password", requestID)
		return
	}
	if err := auth.CheckPassword(user.PasswordHash, payload.Password); err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password", requestID)
		return
	}

	token, err := auth.GenerateToken(h.secret, auth.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}, h.tokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_failed", "failed to issue token", requestID)
		return
	}

	api.Success(w, map[string]any{
		"token": token,
		"user":  map[string]string{"id": user.ID, "email": user.Email, "role": user.Role},
	}, requestID)
}
