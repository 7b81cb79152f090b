package recon

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"ledger-reconciler/core/logger"
	"ledger-reconciler/feature/history"
)

// Handler handles HTTP requests for reconciliation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the reconciliation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/reconcile")
	group.Post("/", h.HandleRun)
	group.Get("/runs", h.HandleListRuns)
}

// RunRequest names the input objects for a remote reconciliation run.
type RunRequest struct {
	// DetailPrefix is the bucket prefix holding detail CSV objects.
	DetailPrefix string `json:"detail_prefix"`
	// AggregatorObject is the consolidated-ledger CSV object.
	AggregatorObject string `json:"aggregator_object"`
}

// HandleRun reconciles detail objects against the aggregator export.
// @Summary Run Reconciliation
// @Description Reconciles detail CSV objects under a bucket prefix against a consolidated-ledger object.
// @Tags reconcile
// @Accept json
// @Produce json
// @Param request body RunRequest true "Input objects"
// @Success 200 {object} RunResult "Run result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reconcile [post]
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req RunRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if req.DetailPrefix == "" || req.AggregatorObject == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "detail_prefix and aggregator_object are required",
		})
	}

	result, err := h.service.RunRemote(c.Context(), req.DetailPrefix, req.AggregatorObject)
	if err != nil {
		l.Error("Reconciliation run failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(result)
}

// HandleListRuns lists recent reconciliation runs.
// @Summary List Runs
// @Description Lists recent reconciliation runs, newest first.
// @Tags reconcile
// @Produce json
// @Param limit query int false "Maximum number of runs (default 50)"
// @Success 200 {array} history.Run "Runs"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reconcile/runs [get]
func (h *Handler) HandleListRuns(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	runs, err := h.service.ListRuns(c.Context(), c.QueryInt("limit"))
	if err != nil {
		l.Error("Failed to list runs", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if runs == nil {
		runs = []history.Run{}
	}

	return c.JSON(runs)
}
