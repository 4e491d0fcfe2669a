package rest

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-fragment/internal/api/shared/dto"
	"github.com/feral-file/ff-fragment/internal/api/shared/executor"
	"github.com/feral-file/ff-fragment/internal/config"
	"github.com/feral-file/ff-fragment/internal/domain"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
type Handler interface {
	// GetStats returns the reconciled supply snapshot
	// GET /api/v1/stats (honours If-None-Match)
	GetStats(c *gin.Context)

	// GetOwned returns the units held by the connected account
	// GET /api/v1/owned
	GetOwned(c *gin.Context)

	// GetTokenURI returns the metadata URI of a unit
	// GET /api/v1/tokens/:id/uri
	GetTokenURI(c *gin.Context)

	// GetSession returns the wallet and network state
	// GET /api/v1/session
	GetSession(c *gin.Context)

	// SetNetwork sets or clears the network override
	// PUT /api/v1/session/network
	SetNetwork(c *gin.Context)

	// GetOperations returns every operation slot
	// GET /api/v1/operations
	GetOperations(c *gin.Context)

	// Mint starts an issuance
	// POST /api/v1/mint
	Mint(c *gin.Context)

	// Burn starts a retirement; the confirmation prompt appears under /prompts
	// POST /api/v1/burn
	Burn(c *gin.Context)

	// Withdraw starts a surplus withdrawal (requires authentication)
	// POST /api/v1/withdraw
	Withdraw(c *gin.Context)

	// GetPrompts returns pending confirmation prompts
	// GET /api/v1/prompts
	GetPrompts(c *gin.Context)

	// DecidePrompt answers a prompt
	// POST /api/v1/prompts/:id/decision
	DecidePrompt(c *gin.Context)

	// GetNotifications returns the notification feed
	// GET /api/v1/notifications?after=<id>
	GetNotifications(c *gin.Context)

	// GetHeroMedia returns the resolved collection media
	// GET /api/v1/media/hero
	GetHeroMedia(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

func (h *handler) GetStats(c *gin.Context) {
	resp, tag, err := h.executor.GetStats(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get stats")
		return
	}

	c.Header("ETag", tag)
	c.Header("Cache-Control", "no-cache")
	if match := c.GetHeader("If-None-Match"); match != "" && match == tag {
		c.Status(http.StatusNotModified)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetOwned(c *gin.Context) {
	resp, err := h.executor.GetOwned(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get owned tokens")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetTokenURI(c *gin.Context) {
	id, err := domain.ParseTokenID(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "Invalid token id", err.Error())
		return
	}

	resp, err := h.executor.GetTokenURI(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get token URI")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, h.executor.GetSession(c.Request.Context()))
}

func (h *handler) SetNetwork(c *gin.Context) {
	var req dto.NetworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	network, err := req.Validate()
	if err != nil {
		respondError(c, err, "Invalid network")
		return
	}

	c.JSON(http.StatusOK, h.executor.SetNetwork(c.Request.Context(), network))
}

func (h *handler) GetOperations(c *gin.Context) {
	c.JSON(http.StatusOK, h.executor.GetOperations())
}

func (h *handler) Mint(c *gin.Context) {
	var req dto.MintRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid mint request")
		return
	}

	tx, err := h.executor.Mint(c.Request.Context(), req.MetadataRef)
	if err != nil {
		respondError(c, err, "Failed to start mint")
		return
	}

	c.JSON(http.StatusAccepted, tx)
}

func (h *handler) Burn(c *gin.Context) {
	var req dto.BurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	id, err := req.Validate()
	if err != nil {
		respondError(c, err, "Invalid burn request")
		return
	}

	tx, err := h.executor.Burn(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to start burn")
		return
	}

	c.JSON(http.StatusAccepted, tx)
}

func (h *handler) Withdraw(c *gin.Context) {
	var req dto.WithdrawRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	amount, err := req.Validate()
	if err != nil {
		respondError(c, err, "Invalid withdraw request")
		return
	}

	tx, err := h.executor.Withdraw(c.Request.Context(), amount)
	if err != nil {
		respondError(c, err, "Failed to start withdraw")
		return
	}

	c.JSON(http.StatusAccepted, tx)
}

func (h *handler) GetPrompts(c *gin.Context) {
	c.JSON(http.StatusOK, h.executor.GetPrompts())
}

func (h *handler) DecidePrompt(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Prompt id is required")
		return
	}

	var req dto.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid decision")
		return
	}

	if err := h.executor.DecidePrompt(id, *req.Confirm); err != nil {
		respondError(c, err, "Failed to record decision")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handler) GetNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, h.executor.GetNotifications(c.Query("after")))
}

func (h *handler) GetHeroMedia(c *gin.Context) {
	c.JSON(http.StatusOK, h.executor.GetHeroMedia(c.Request.Context()))
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": config.SERVICE_NAME,
	})
}

// bindOptionalJSON binds a body that may be empty, responding on malformed input
func bindOptionalJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return false
	}
	return true
}
