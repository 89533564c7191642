package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/halcyonworks/siteapi/internal/api/dto/common"
	"github.com/halcyonworks/siteapi/internal/api/dto/v1/contact"
	"github.com/halcyonworks/siteapi/internal/api/validation"
	"github.com/halcyonworks/siteapi/internal/ratelimit"
	"github.com/halcyonworks/siteapi/internal/service"
	"github.com/halcyonworks/siteapi/internal/utils"

	"github.com/gin-gonic/gin"
)

// ContactHandler runs the contact submission pipeline:
// rate limit (normal) -> validate -> abuse heuristic -> rate limit (strict,
// suspicious only) -> concurrent dual email dispatch.
type ContactHandler struct {
	emailService  *service.EmailService
	spamService   *service.SpamService
	normalLimiter *ratelimit.Limiter
	strictLimiter *ratelimit.Limiter
	development   bool
}

// NewContactHandler creates a contact handler. Limiters are injected so
// tests can run against fresh, isolated instances.
func NewContactHandler(
	emailService *service.EmailService,
	spamService *service.SpamService,
	normalLimiter *ratelimit.Limiter,
	strictLimiter *ratelimit.Limiter,
	development bool,
) *ContactHandler {
	return &ContactHandler{
		emailService:  emailService,
		spamService:   spamService,
		normalLimiter: normalLimiter,
		strictLimiter: strictLimiter,
		development:   development,
	}
}

// Submit handles POST on the contact endpoint.
func (h *ContactHandler) Submit(c *gin.Context) {
	key := utils.GetRealIP(c)

	res := h.normalLimiter.Check(key)
	setRateLimitHeaders(c, res)
	if !res.Allowed {
		respondThrottled(c, res)
		return
	}

	var req contact.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.ValidationErrorResponse{
			Error:   common.ErrBadRequest,
			Message: "Request body must be valid JSON",
		})
		return
	}

	sub, fieldErrors := validation.ValidateSubmission(req)
	if fieldErrors != nil {
		c.JSON(http.StatusBadRequest, common.ValidationErrorResponse{
			Error:   common.ErrValidation,
			Message: "Please correct the highlighted fields and try again",
			Fields:  fieldErrors,
		})
		return
	}

	// Suspicious submissions are not rejected; they burn budget under the
	// strict policy and proceed only while it has room.
	if h.spamService.IsSuspicious(sub) {
		strictRes := h.strictLimiter.Check(key)
		if !strictRes.Allowed {
			setRateLimitHeaders(c, strictRes)
			respondThrottled(c, strictRes)
			return
		}
	}

	result := h.emailService.SendContactEmails(c.Request.Context(), sub)
	details := common.SubmitDetails{
		NotificationSent: result.Notification.Sent,
		ConfirmationSent: result.Confirmation.Sent,
	}

	if result.Success {
		c.JSON(http.StatusOK, common.SubmitResponse{
			Success: true,
			Message: "Thanks for reaching out! We'll get back to you within one business day.",
			Details: details,
		})
		return
	}

	// In development, a missing or failing provider never blocks the user.
	if h.development {
		for _, e := range result.Errors {
			utils.LogError(errors.New(e), "contact email dispatch failed")
		}
		c.JSON(http.StatusOK, common.SubmitResponse{
			Success: true,
			Message: "Submission accepted. Email delivery is not configured in this environment.",
			Details: details,
		})
		return
	}

	utils.HandleServerError(c, errors.New(strings.Join(result.Errors, "; ")),
		common.ErrEmailDelivery,
		"We couldn't deliver your message right now. Please email us directly and we'll follow up.")
}

// Status handles GET: the caller's advisory rate-limit budget plus the
// static form configuration.
func (h *ContactHandler) Status(c *gin.Context) {
	res := h.normalLimiter.Status(utils.GetRealIP(c))

	c.JSON(http.StatusOK, contact.StatusResponse{
		Success: true,
		RateLimit: contact.RateLimitStatus{
			Limit:     res.Limit,
			Remaining: res.Remaining,
			Reset:     res.Reset,
		},
		Form: contact.FormConfig{
			Fields:       contact.FormFields,
			ServiceTypes: contact.ServiceTypes,
			WindowMs:     h.normalLimiter.Interval().Milliseconds(),
		},
	})
}

// MethodNotAllowed answers PUT/DELETE/PATCH with the supported method list.
func (h *ContactHandler) MethodNotAllowed(c *gin.Context) {
	c.Header("Allow", "POST, GET, OPTIONS")
	c.JSON(http.StatusMethodNotAllowed, common.ValidationErrorResponse{
		Error:   common.ErrMethodNotAllowed,
		Message: "Use POST to submit the form, GET for status, or OPTIONS for preflight",
	})
}

func setRateLimitHeaders(c *gin.Context, res ratelimit.Result) {
	c.Header("X-RateLimit-Limit", strconv.Itoa(res.Limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(res.Reset, 10))
}

func respondThrottled(c *gin.Context, res ratelimit.Result) {
	c.Header("Retry-After", strconv.Itoa(res.RetryAfter))
	c.JSON(http.StatusTooManyRequests, common.RateLimitErrorResponse{
		Error:      common.ErrTooManyRequests,
		Message:    "Too many submissions from your address. Please try again later.",
		RetryAfter: res.RetryAfter,
	})
}
