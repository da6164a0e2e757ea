// Package http exposes the dispatch pipeline over HTTP for callers that hold
// the records in memory. Each request is one self-contained run; the server
// keeps no state between requests.
package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/scan"
	"dispatch/internal/core/domain/model/zone"
)

// Server coordinates between HTTP handlers and the pipeline's command
// handlers.
type Server struct {
	normalizeHandler commands.NormalizeOrdersCommandHandler
	planHandler      commands.PlanAssignmentsCommandHandler
	reconcileHandler commands.ReconcileCommandHandler
}

// NewServer creates an HTTP server with the required command handlers.
func NewServer(
	normalizeHandler commands.NormalizeOrdersCommandHandler,
	planHandler commands.PlanAssignmentsCommandHandler,
	reconcileHandler commands.ReconcileCommandHandler,
) *Server {
	return &Server{
		normalizeHandler: normalizeHandler,
		planHandler:      planHandler,
		reconcileHandler: reconcileHandler,
	}
}

// RegisterRoutes attaches the API routes to an echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.POST("/api/v1/runs", s.CreateRun)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateRun handles POST /api/v1/runs - executes one pipeline run over the
// posted inputs and returns all three artifacts.
func (s *Server) CreateRun(ctx echo.Context) error {
	var req runRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	couriers := make([]*courier.Courier, 0, len(req.Couriers))
	for _, dto := range req.Couriers {
		c, err := dto.toDomain()
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, errorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid courier data: " + err.Error(),
			})
		}
		couriers = append(couriers, c)
	}

	aliases := make([]zone.Alias, 0, len(req.Zones))
	for _, dto := range req.Zones {
		aliases = append(aliases, dto.toDomain())
	}

	scans := make([]scan.Record, 0, len(req.Scans))
	for _, dto := range req.Scans {
		scans = append(scans, dto.toDomain())
	}

	rawOrders := req.Orders
	if rawOrders == nil {
		rawOrders = []map[string]any{}
	}

	normalizeCmd, err := commands.NewNormalizeOrdersCommand(rawOrders, zone.NewMap(aliases))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}
	clean, err := s.normalizeHandler.Handle(ctx.Request().Context(), normalizeCmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to normalize orders",
		})
	}

	planCmd, err := commands.NewPlanAssignmentsCommand(clean.Orders, couriers)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid roster data: " + err.Error(),
		})
	}
	assignmentPlan, err := s.planHandler.Handle(ctx.Request().Context(), planCmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to plan assignments",
		})
	}

	reconcileCmd, err := commands.NewReconcileCommand(assignmentPlan.Assignments, clean.Orders, scans, couriers)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to reconcile deliveries",
		})
	}
	report, err := s.reconcileHandler.Handle(ctx.Request().Context(), reconcileCmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to reconcile deliveries",
		})
	}

	return ctx.JSON(http.StatusOK, runResponse{
		RunID:          uuid.NewString(),
		CleanOrders:    cleanOrdersFromDomain(clean.Orders, clean.Warnings),
		Plan:           planFromDomain(assignmentPlan),
		Reconciliation: reconciliationFromDomain(report),
	})
}
