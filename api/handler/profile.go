package handler

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"

	"github.com/lingvoapp/lingvo-api/cache"
	"github.com/lingvoapp/lingvo-api/ent"
	"github.com/lingvoapp/lingvo-api/telegram"
)

const maxPhotoSize = 1 << 20 // 1 MiB

var allowedPhotoTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/heic": ".heic",
	"image/heif": ".heif",
}

// ProfileHandler serves the authenticated user's own profile.
type ProfileHandler struct {
	db          *ent.Client
	tg          *telegram.Client
	inv         *cache.Invalidator
	storagePath string
}

func NewProfileHandler(db *ent.Client, tg *telegram.Client, inv *cache.Invalidator, storagePath string) *ProfileHandler {
	return &ProfileHandler{db: db, tg: tg, inv: inv, storagePath: storagePath}
}

func (h *ProfileHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, newUserView(currentUser(c)))
}

type updateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	user := currentUser(c)

	upd := user.Update()
	if req.FirstName != nil {
		name := telegram.SanitizeName(*req.FirstName)
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "first_name must not be empty"})
			return
		}
		upd.SetFirstName(name)
	}
	if req.LastName != nil {
		upd.SetLastName(telegram.SanitizeName(*req.LastName))
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.inv.User(ctx)
	c.JSON(http.StatusOK, newUserView(updated))
}

// RefreshAvatar re-fetches the user's current Telegram profile photo.
func (h *ProfileHandler) RefreshAvatar(c *gin.Context) {
	ctx := c.Request.Context()
	user := currentUser(c)

	if !h.tg.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Telegram is not configured"})
		return
	}

	url, err := h.tg.ProfilePhotoURL(ctx, user.TelegramID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if url == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "No Telegram profile photo found"})
		return
	}

	updated, err := user.Update().SetAvatarURL(url).Save(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.inv.User(ctx)
	c.JSON(http.StatusOK, newUserView(updated))
}

// UploadPhoto stores a custom profile photo on local disk and points the
// avatar URL at the static file route. Limited to 1 MiB and to the image
// types the mobile clients produce.
func (h *ProfileHandler) UploadPhoto(c *gin.Context) {
	ctx := c.Request.Context()
	user := currentUser(c)

	file, header, err := c.Request.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return
	}
	defer file.Close()

	if header.Size > maxPhotoSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Photo must be 1MB or smaller"})
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxPhotoSize+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(data) > maxPhotoSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Photo must be 1MB or smaller"})
		return
	}

	mtype := mimetype.Detect(data)
	ext, ok := allowedPhotoTypes[mtype.String()]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported image type"})
		return
	}

	// One file per user, named by the phone digits, so re-uploads replace.
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, user.PhoneNumber)
	filename := digits + ext

	dir := filepath.Join(h.storagePath, "user_photos")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0o644); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	avatarURL := "/storage/user_photos/" + filename
	updated, err := user.Update().SetAvatarURL(avatarURL).Save(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.inv.User(ctx)
	c.JSON(http.StatusOK, newUserView(updated))
}
