package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/teofils1/supply-chain/model"
	"github.com/teofils1/supply-chain/service/audit"
	"github.com/teofils1/supply-chain/service/notify"
)

// Sweeper triggers one escalation sweep on demand.
type Sweeper interface {
	Sweep(ctx context.Context) (int, error)
}

// Handler exposes the pipeline over HTTP JSON.
type Handler struct {
	logger *zap.Logger

	auditService  audit.IService
	notifyService notify.IService
	sweeper       Sweeper
}

// NewHandler ...
func NewHandler(
	logger *zap.Logger,
	auditService audit.IService,
	notifyService notify.IService,
	sweeper Sweeper,
) *Handler {
	return &Handler{
		logger: logger,

		auditService:  auditService,
		notifyService: notifyService,
		sweeper:       sweeper,
	}
}

// Register mounts all routes on the engine.
func (h *Handler) Register(router gin.IRouter) {
	router.POST("/events", h.recordEvent)
	router.GET("/events/:id/integrity", h.verifyEventIntegrity)
	router.POST("/events/:id/anchor", h.anchorEvent)
	router.GET("/events/:id/anchor/verify", h.verifyAnchoredEvent)

	router.POST("/rules", h.createRule)
	router.PUT("/rules/:id", h.updateRule)
	router.POST("/rules/:id/toggle", h.toggleRule)
	router.DELETE("/rules/:id", h.deleteRule)

	router.POST("/notifications/:id/ack", h.acknowledgeNotification)
	router.POST("/escalations/sweep", h.runEscalationSweep)
}

type recordEventRequest struct {
	EventType   string                 `json:"event_type"`
	EntityType  string                 `json:"entity_type"`
	EntityID    uint64                 `json:"entity_id"`
	Description string                 `json:"description"`
	Severity    string                 `json:"severity"`
	Location    string                 `json:"location"`
	Metadata    map[string]interface{} `json:"metadata"`
	ActorID     *uint64                `json:"actor_id"`
}

func (h *Handler) recordEvent(c *gin.Context) {
	ctx := c.Request.Context()

	var req recordEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := h.auditService.RecordEvent(ctx, audit.RecordEventInput{
		EventType:   model.EventType(req.EventType),
		EntityType:  model.EntityType(req.EntityType),
		EntityID:    req.EntityID,
		Description: req.Description,
		Severity:    model.Severity(req.Severity),
		Location:    req.Location,
		Metadata:    model.JSONMap(req.Metadata),
		ActorID:     req.ActorID,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":               output.ID,
		"integrity_hash":   output.IntegrityHash,
		"anchoring_status": string(output.AnchoringStatus),
	})
}

func (h *Handler) verifyEventIntegrity(c *gin.Context) {
	eventID, ok := pathID(c)
	if !ok {
		return
	}

	report, err := h.auditService.VerifyIntegrity(c.Request.Context(), eventID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stored_hash":   report.StoredHash,
		"computed_hash": report.ComputedHash,
		"verified":      report.Verified,
	})
}

func (h *Handler) anchorEvent(c *gin.Context) {
	eventID, ok := pathID(c)
	if !ok {
		return
	}

	result, err := h.auditService.AnchorEvent(c.Request.Context(), eventID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tx_ref":    result.TxRef,
		"block_ref": result.BlockRef,
	})
}

func (h *Handler) verifyAnchoredEvent(c *gin.Context) {
	eventID, ok := pathID(c)
	if !ok {
		return
	}

	verification, err := h.auditService.VerifyAnchoredEvent(c.Request.Context(), eventID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"verified":           verification.Verified,
		"integrity_verified": verification.IntegrityVerified,
		"tx_ref":             verification.TxRef,
		"block_ref":          verification.BlockRef,
		"stored_hash":        verification.StoredHash,
		"computed_hash":      verification.ComputedHash,
	})
}

type ruleRequest struct {
	OwnerID        uint64   `json:"owner_id"`
	Name           string   `json:"name"`
	EventTypes     []string `json:"event_types"`
	SeverityLevels []string `json:"severity_levels"`
	Channels       []string `json:"channels"`
	Enabled        *bool    `json:"enabled"`
}

func (r ruleRequest) toInput() notify.RuleInput {
	enabled := true
	if r.Enabled != nil {
		enabled = *r.Enabled
	}
	return notify.RuleInput{
		OwnerID:        r.OwnerID,
		Name:           r.Name,
		EventTypes:     r.EventTypes,
		SeverityLevels: r.SeverityLevels,
		Channels:       r.Channels,
		Enabled:        enabled,
	}
}

func (h *Handler) createRule(c *gin.Context) {
	var req ruleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.notifyService.CreateRule(c.Request.Context(), req.toInput())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) updateRule(c *gin.Context) {
	ruleID, ok := pathID(c)
	if !ok {
		return
	}

	var req ruleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.notifyService.UpdateRule(c.Request.Context(), ruleID, req.toInput()); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": ruleID})
}

type toggleRuleRequest struct {
	OwnerID uint64 `json:"owner_id"`
	Enabled bool   `json:"enabled"`
}

func (h *Handler) toggleRule(c *gin.Context) {
	ruleID, ok := pathID(c)
	if !ok {
		return
	}

	var req toggleRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.notifyService.ToggleRule(c.Request.Context(), ruleID, req.OwnerID, req.Enabled)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": ruleID, "enabled": req.Enabled})
}

func (h *Handler) deleteRule(c *gin.Context) {
	ruleID, ok := pathID(c)
	if !ok {
		return
	}

	ownerID, err := strconv.ParseUint(c.Query("owner_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid owner_id"})
		return
	}

	if err := h.notifyService.DeleteRule(c.Request.Context(), ruleID, ownerID); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type acknowledgeRequest struct {
	RecipientID uint64 `json:"recipient_id"`
}

func (h *Handler) acknowledgeNotification(c *gin.Context) {
	logID, ok := pathID(c)
	if !ok {
		return
	}

	var req acknowledgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.notifyService.AcknowledgeNotification(c.Request.Context(), logID, req.RecipientID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": logID, "status": "acknowledged"})
}

func (h *Handler) runEscalationSweep(c *gin.Context) {
	count, err := h.sweeper.Sweep(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"escalated": count})
}

func pathID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case audit.IsValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, audit.ErrEventNotFound),
		errors.Is(err, notify.ErrRuleNotFound),
		errors.Is(err, notify.ErrNotificationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, audit.ErrNotAnchored),
		errors.Is(err, notify.ErrAlreadyAcknowledged),
		errors.Is(err, notify.ErrNotificationNotSent):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	case errors.Is(err, audit.ErrAnchoringUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})

	default:
		h.logger.Error("internal error handling request",
			zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
