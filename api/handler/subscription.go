package handler

import (
	"context"
	"math"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lingvoapp/lingvo-api/cache"
	"github.com/lingvoapp/lingvo-api/ent"
	entsub "github.com/lingvoapp/lingvo-api/ent/subscription"
)

var versionPattern = regexp.MustCompile(`^\d+(\.\d+)*$`)

// CompareVersions compares dotted numeric versions. A leading "v" is
// ignored; missing segments count as zero, so "1.2" equals "1.2.0".
// Returns -1, 0 or 1.
func CompareVersions(a, b string) int {
	parse := func(v string) []int {
		v = strings.TrimPrefix(strings.TrimSpace(v), "v")
		parts := strings.Split(v, ".")
		nums := make([]int, len(parts))
		for i, p := range parts {
			n, err := strconv.Atoi(p)
			if err != nil {
				n = 0
			}
			nums[i] = n
		}
		return nums
	}

	av, bv := parse(a), parse(b)
	for i := 0; i < len(av) || i < len(bv); i++ {
		var x, y int
		if i < len(av) {
			x = av[i]
		}
		if i < len(bv) {
			y = bv[i]
		}
		if x != y {
			if x < y {
				return -1
			}
			return 1
		}
	}
	return 0
}

// SubscriptionHandler covers the premium status check for users and the
// full subscription management surface for admins.
type SubscriptionHandler struct {
	db    *ent.Client
	store cache.Store
	inv   *cache.Invalidator
}

func NewSubscriptionHandler(db *ent.Client, store cache.Store, inv *cache.Invalidator) *SubscriptionHandler {
	return &SubscriptionHandler{db: db, store: store, inv: inv}
}

type premiumStatus struct {
	IsPremium     bool       `json:"is_premium"`
	IsMock        bool       `json:"is_mock"`
	DaysRemaining int        `json:"days_remaining"`
	EndDate       *time.Time `json:"end_date"`
}

// Check reports whether the caller has premium access. Clients at or above
// the required app version get a short-lived mock grant while payments are
// rolled out; older clients get the real subscription lookup, cached per
// user.
func (h *SubscriptionHandler) Check(c *gin.Context) {
	ctx := c.Request.Context()
	user := currentUser(c)

	profile, err := h.businessProfile(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	appVersion := c.Query("app_version")
	if appVersion != "" && CompareVersions(appVersion, profile.RequiredAppVersion) >= 0 {
		end := time.Now().UTC().Add(24 * time.Hour)
		c.JSON(http.StatusOK, premiumStatus{
			IsPremium:     true,
			IsMock:        true,
			DaysRemaining: 1,
			EndDate:       &end,
		})
		return
	}

	status, err := cache.GetOrCompute(ctx, h.store, cache.KeySubscriptionByUser(user.ID), cache.TTLSubscription, func(ctx context.Context) (premiumStatus, error) {
		now := time.Now().UTC()
		sub, err := h.db.Subscription.Query().
			Where(
				entsub.UserID(user.ID),
				entsub.IsActive(true),
				entsub.EndDateGT(now),
			).
			Order(ent.Desc(entsub.FieldEndDate)).
			First(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return premiumStatus{}, nil
			}
			return premiumStatus{}, err
		}
		days := int(math.Ceil(sub.EndDate.Sub(now).Hours() / 24))
		return premiumStatus{
			IsPremium:     true,
			DaysRemaining: days,
			EndDate:       &sub.EndDate,
		}, nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, status)
}

type createSubscriptionRequest struct {
	UserID    uuid.UUID `json:"user_id" binding:"required"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
	Amount    float64   `json:"amount" binding:"required"`
	Currency  string    `json:"currency"`
	Notes     string    `json:"notes"`
}

func (h *SubscriptionHandler) Create(c *gin.Context) {
	var req createSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.EndDate.After(req.StartDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be after start_date"})
		return
	}
	if req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be positive"})
		return
	}

	ctx := c.Request.Context()
	admin := currentUser(c)

	if _, err := h.db.User.Get(ctx, req.UserID); err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	create := h.db.Subscription.Create().
		SetUserID(req.UserID).
		SetStartDate(req.StartDate).
		SetEndDate(req.EndDate).
		SetAmount(req.Amount).
		SetNotes(req.Notes).
		SetCreatedByAdminID(admin.ID)
	if req.Currency != "" {
		create.SetCurrency(req.Currency)
	}

	sub, err := create.Save(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.inv.Subscription(ctx, req.UserID)
	c.JSON(http.StatusCreated, newSubscriptionView(sub))
}

type updateSubscriptionRequest struct {
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Amount    *float64   `json:"amount"`
	Currency  *string    `json:"currency"`
	Notes     *string    `json:"notes"`
	IsActive  *bool      `json:"is_active"`
}

func (h *SubscriptionHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req updateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Amount != nil && *req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be positive"})
		return
	}

	ctx := c.Request.Context()
	sub, err := h.db.Subscription.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	start, end := sub.StartDate, sub.EndDate
	if req.StartDate != nil {
		start = *req.StartDate
	}
	if req.EndDate != nil {
		end = *req.EndDate
	}
	if !end.After(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be after start_date"})
		return
	}

	upd := sub.Update()
	if req.StartDate != nil {
		upd.SetStartDate(*req.StartDate)
	}
	if req.EndDate != nil {
		upd.SetEndDate(*req.EndDate)
	}
	if req.Amount != nil {
		upd.SetAmount(*req.Amount)
	}
	if req.Currency != nil {
		upd.SetCurrency(*req.Currency)
	}
	if req.Notes != nil {
		upd.SetNotes(*req.Notes)
	}
	if req.IsActive != nil {
		upd.SetIsActive(*req.IsActive)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.inv.Subscription(ctx, updated.UserID)
	c.JSON(http.StatusOK, newSubscriptionView(updated))
}

// Deactivate marks a subscription inactive. Rows are never deleted so the
// financial history stays complete.
func (h *SubscriptionHandler) Deactivate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	sub, err := h.db.Subscription.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if _, err := sub.Update().SetIsActive(false).Save(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.inv.Subscription(ctx, sub.UserID)
	c.JSON(http.StatusOK, gin.H{"message": "Subscription deactivated"})
}

// List returns every subscription for the admin panel, cached globally.
func (h *SubscriptionHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	subs, err := cache.GetOrCompute(ctx, h.store, cache.KeyAdminSubs, cache.TTLAdminSubs, func(ctx context.Context) ([]SubscriptionView, error) {
		rows, err := h.db.Subscription.Query().
			Order(ent.Desc(entsub.FieldCreatedAt)).
			All(ctx)
		if err != nil {
			return nil, err
		}
		views := make([]SubscriptionView, 0, len(rows))
		for _, s := range rows {
			views = append(views, newSubscriptionView(s))
		}
		return views, nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, subs)
}

// Stats aggregates revenue over the active subscriptions.
func (h *SubscriptionHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()
	now := time.Now().UTC()

	subs, err := h.db.Subscription.Query().
		Where(entsub.IsActive(true)).
		All(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var total, monthly, yearly float64
	active := 0
	revenueByMonth := make(map[string]float64)

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	yearStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	horizon := monthStart.AddDate(0, -11, 0)

	for _, s := range subs {
		total += s.Amount
		if !s.CreatedAt.Before(monthStart) {
			monthly += s.Amount
		}
		if !s.CreatedAt.Before(yearStart) {
			yearly += s.Amount
		}
		if s.EndDate.After(now) {
			active++
		}
		if !s.CreatedAt.Before(horizon) {
			revenueByMonth[s.CreatedAt.Format("2006-01")] += s.Amount
		}
	}

	avg := 0.0
	if len(subs) > 0 {
		avg = math.Round(total/float64(len(subs))*100) / 100
	}

	// Twelve calendar months ending with the current one, zero-filled.
	months := make([]gin.H, 0, 12)
	for i := 11; i >= 0; i-- {
		m := monthStart.AddDate(0, -i, 0)
		key := m.Format("2006-01")
		months = append(months, gin.H{"month": key, "revenue": revenueByMonth[key]})
	}

	c.JSON(http.StatusOK, gin.H{
		"total_revenue":        total,
		"monthly_revenue":      monthly,
		"yearly_revenue":       yearly,
		"active_subscriptions": active,
		"average_amount":       avg,
		"revenue_by_month":     months,
	})
}

func (h *SubscriptionHandler) businessProfile(ctx context.Context) (*ent.BusinessProfile, error) {
	profile, err := h.db.BusinessProfile.Query().First(ctx)
	if err == nil {
		return profile, nil
	}
	if !ent.IsNotFound(err) {
		return nil, err
	}
	return h.db.BusinessProfile.Create().Save(ctx)
}

// GetBusinessProfile returns the singleton app settings row, creating it
// with defaults on first access.
func (h *SubscriptionHandler) GetBusinessProfile(c *gin.Context) {
	profile, err := h.businessProfile(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":                   profile.ID,
		"required_app_version": profile.RequiredAppVersion,
		"company_name":         profile.CompanyName,
		"updated_at":           profile.UpdatedAt,
	})
}

type updateBusinessProfileRequest struct {
	RequiredAppVersion *string `json:"required_app_version"`
	CompanyName        *string `json:"company_name"`
}

func (h *SubscriptionHandler) UpdateBusinessProfile(c *gin.Context) {
	var req updateBusinessProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.RequiredAppVersion != nil && !versionPattern.MatchString(*req.RequiredAppVersion) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "required_app_version must be a dotted numeric version"})
		return
	}

	ctx := c.Request.Context()
	profile, err := h.businessProfile(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	upd := profile.Update()
	if req.RequiredAppVersion != nil {
		upd.SetRequiredAppVersion(*req.RequiredAppVersion)
	}
	if req.CompanyName != nil {
		upd.SetCompanyName(*req.CompanyName)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":                   updated.ID,
		"required_app_version": updated.RequiredAppVersion,
		"company_name":         updated.CompanyName,
		"updated_at":           updated.UpdatedAt,
	})
}
