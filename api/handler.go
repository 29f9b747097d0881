// Package api exposes the scheduling engine over HTTP. One endpoint runs a
// single algorithm and returns the full schedule result; another runs every
// algorithm over the same workload and returns the comparison summary.
package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/youpesh/schedsim/config"
	"github.com/youpesh/schedsim/sim"
	"github.com/youpesh/schedsim/sim/workload"
)

// ScheduleRequest is the JSON body for schedule and compare calls.
type ScheduleRequest struct {
	Processes []sim.Process `json:"processes"`
	Quantum   int64         `json:"quantum,omitempty"`
}

// ComparisonEntry is one algorithm's summary in a compare response.
type ComparisonEntry struct {
	Algorithm string             `json:"algorithm"`
	Quantum   int64              `json:"quantum,omitempty"`
	Averages  sim.MetricAverages `json:"averages"`
}

// Handler serves the scheduling endpoints.
type Handler struct {
	cfg *config.ServerConfig
}

// NewHandler creates a Handler with the given server configuration.
func NewHandler(cfg *config.ServerConfig) *Handler {
	return &Handler{cfg: cfg}
}

// Register attaches the API routes under /api/v1.
func (h *Handler) Register(app *fiber.App) {
	v1 := app.Group("/api/v1")
	v1.Get("/algorithms", h.Algorithms)
	v1.Post("/schedule/:algorithm", h.Schedule)
	v1.Post("/compare", h.Compare)
}

// Algorithms returns the supported algorithm identifiers.
func (h *Handler) Algorithms(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"algorithms": sim.Identifiers()})
}

// Schedule runs one algorithm over the posted workload and returns the full
// schedule result. Malformed bodies and workloads are 400s; configuration
// errors (unknown algorithm, bad quantum) are 422s.
func (h *Handler) Schedule(ctx *fiber.Ctx) error {
	req, err := h.parseRequest(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := sim.RunByName(ctx.Params("algorithm"), req.Processes, req.Quantum)
	if err != nil {
		logrus.Warnf("schedule request rejected: %v", err)
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(result)
}

// Compare runs every algorithm over the posted workload and returns the
// average waiting/turnaround/response per algorithm. The configured default
// quantum applies to rr and mlfq when the request omits one.
func (h *Handler) Compare(ctx *fiber.Ctx) error {
	req, err := h.parseRequest(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	quantum := req.Quantum
	if quantum <= 0 {
		quantum = h.cfg.DefaultQuantum
	}

	entries := make([]ComparisonEntry, 0, len(sim.Identifiers()))
	for _, name := range sim.Identifiers() {
		algo, err := sim.ParseAlgorithm(name)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		q := int64(0)
		if algo.UsesQuantum() {
			q = quantum
		}
		result, err := sim.Run(algo, req.Processes, q)
		if err != nil {
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		}
		entries = append(entries, ComparisonEntry{
			Algorithm: result.Algorithm,
			Quantum:   result.Quantum,
			Averages:  sim.Summarize(result.Processes),
		})
	}
	return ctx.JSON(fiber.Map{"comparison": entries})
}

func (h *Handler) parseRequest(ctx *fiber.Ctx) (*ScheduleRequest, error) {
	var req ScheduleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return nil, errors.New("invalid request format")
	}
	if len(req.Processes) == 0 {
		return nil, errors.New("workload must contain at least one process")
	}
	if err := workload.Validate(req.Processes); err != nil {
		return nil, err
	}
	return &req, nil
}
