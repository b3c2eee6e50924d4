package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lingvoapp/lingvo-api/auth"
	"github.com/lingvoapp/lingvo-api/cache"
	"github.com/lingvoapp/lingvo-api/ent"
	entuser "github.com/lingvoapp/lingvo-api/ent/user"
	"github.com/lingvoapp/lingvo-api/telegram"
)

// AuthHandler implements the OTP login flow. Users register through the
// Telegram bot first; login only issues codes to known phone numbers.
type AuthHandler struct {
	db     *ent.Client
	tokens *auth.Tokens
	otp    *auth.OTP
	tg     *telegram.Client
	inv    *cache.Invalidator
}

func NewAuthHandler(db *ent.Client, tokens *auth.Tokens, otp *auth.OTP, tg *telegram.Client, inv *cache.Invalidator) *AuthHandler {
	return &AuthHandler{db: db, tokens: tokens, otp: otp, tg: tg, inv: inv}
}

type sendCodeRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
}

// SendCode issues a fresh one-time code for a registered phone number and
// delivers it over Telegram.
func (h *AuthHandler) SendCode(c *gin.Context) {
	var req sendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	phone := telegram.NormalizePhone(req.PhoneNumber)

	user, err := h.db.User.Query().Where(entuser.PhoneNumber(phone)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found. Please register via Telegram bot first."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	code, err := h.otp.Issue(ctx, phone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := h.tg.SendMessage(ctx, user.TelegramID, telegram.CodeMessage(code)); err != nil {
		slog.Error("failed to deliver login code", "phone", phone, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send verification code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Verification code sent"})
}

type loginRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	Code        string `json:"code" binding:"required"`
}

// Login verifies the one-time code and returns a token pair. The code is
// consumed on success, so a second login needs a new code.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	phone := telegram.NormalizePhone(req.PhoneNumber)

	if !h.otp.Verify(ctx, phone, req.Code) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired verification code"})
		return
	}

	user, err := h.db.User.Query().Where(entuser.PhoneNumber(phone)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Refresh the profile from Telegram on every login, best effort.
	if h.tg.Enabled() {
		upd := user.Update()
		dirty := false

		if chat, err := h.tg.GetChat(ctx, user.TelegramID); err == nil {
			if name := telegram.SanitizeName(chat.FirstName); name != "" && name != user.FirstName {
				upd.SetFirstName(name)
				dirty = true
			}
			if last := telegram.SanitizeName(chat.LastName); last != user.LastName {
				upd.SetLastName(last)
				dirty = true
			}
		}
		if url, err := h.tg.ProfilePhotoURL(ctx, user.TelegramID); err == nil && url != "" {
			if user.AvatarURL == nil || *user.AvatarURL != url {
				upd.SetAvatarURL(url)
				dirty = true
			}
		}

		if dirty {
			if updated, err := upd.Save(ctx); err == nil {
				user = updated
				h.inv.User(ctx)
			}
		}
	}

	access, refresh, err := h.tokens.IssuePair(user.ID, user.PhoneNumber)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token":  access,
		"refresh_token": refresh,
		"token_type":    "bearer",
		"user":          newUserView(user),
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Refresh exchanges a valid refresh token for a new token pair.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	userID, err := h.tokens.Verify(req.RefreshToken, auth.TokenRefresh)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}

	user, err := h.db.User.Get(ctx, userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}

	access, refresh, err := h.tokens.IssuePair(user.ID, user.PhoneNumber)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token":  access,
		"refresh_token": refresh,
		"token_type":    "bearer",
	})
}
