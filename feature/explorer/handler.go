package explorer

import (
	"errors"
	"fmt"

	"genie-graph/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for graph exploration.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the explorer routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/convert", h.HandleConvert)

	group := app.Group("/graph")
	group.Get("/", h.HandleStatus)
	group.Get("/check", h.HandleCheck)
	group.Get("/snapshot", h.HandleSnapshot)
	group.Post("/snapshot", h.HandleUploadSnapshot)
	group.Get("/snapshots", h.HandleListSnapshots)
	group.Get("/lines", h.HandleUnitLines)
	group.Get("/lines/:id", h.HandleUnitLine)
	group.Get("/buildings", h.HandleBuildingLines)
	group.Get("/buildings/:id", h.HandleBuildingLine)
	group.Get("/techs", h.HandleTechGroups)
	group.Get("/techs/:id", h.HandleTechGroup)
	group.Get("/civs", h.HandleCivGroups)
	group.Get("/civs/:id", h.HandleCivGroup)
	group.Get("/terrains", h.HandleTerrains)
}

// respondError maps service errors to responses. A not-built graph is a
// client-visible state, not a server fault, so it is not logged as one.
func (h *Handler) respondError(c *fiber.Ctx, msg string, err error) error {
	if errors.Is(err, ErrNotBuilt) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// HandleConvert rebuilds the graph from the configured source.
// @Summary Rebuild Graph
// @Description Load the dump from the configured source and run the conversion pipeline. Concurrent requests share a single run.
// @Tags graph
// @Accept json
// @Produce json
// @Success 200 {object} convert.Report "Run Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /convert [post]
func (h *Handler) HandleConvert(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Conversion requested", zap.String("source", h.service.src.Name()))

	report, err := h.service.Rebuild(c.Context())
	if err != nil {
		return h.respondError(c, "Conversion failed", err)
	}
	return c.JSON(report)
}

// HandleStatus reports whether a graph is loaded and what it contains.
// @Summary Graph Status
// @Description Report the run id, source and group counts of the currently served graph.
// @Tags graph
// @Accept json
// @Produce json
// @Success 200 {object} models.GraphStatus "Graph Status"
// @Router /graph [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	return c.JSON(h.service.Status())
}

// HandleCheck validates the served graph.
// @Summary Check Graph
// @Description Run the structure, partition, link and determinism checks against the served graph.
// @Tags graph
// @Accept json
// @Produce json
// @Success 200 {object} check.Report "Check Report"
// @Failure 503 {object} map[string]string "Graph Not Built"
// @Router /graph/check [get]
func (h *Handler) HandleCheck(c *fiber.Ctx) error {
	report, err := h.service.Check()
	if err != nil {
		return h.respondError(c, "Graph check failed", err)
	}
	return c.JSON(report)
}

// HandleSnapshot returns the full serialized graph.
// @Summary Get Snapshot
// @Description Return the stable document form of the served graph, every section sorted.
// @Tags graph
// @Accept json
// @Produce json
// @Success 200 {object} graph.Snapshot "Snapshot"
// @Failure 503 {object} map[string]string "Graph Not Built"
// @Router /graph/snapshot [get]
func (h *Handler) HandleSnapshot(c *fiber.Ctx) error {
	snap, err := h.service.Snapshot()
	if err != nil {
		return h.respondError(c, "Snapshot build failed", err)
	}
	return c.JSON(snap)
}

// HandleUploadSnapshot writes the served graph to object storage.
// @Summary Upload Snapshot
// @Description Write the served graph to the snapshot bucket under a per-run key.
// @Tags graph
// @Accept json
// @Produce json
// @Success 200 {object} models.SnapshotUpload "Uploaded Snapshot"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Failure 503 {object} map[string]string "Graph Not Built"
// @Router /graph/snapshot [post]
func (h *Handler) HandleUploadSnapshot(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	upload, err := h.service.UploadSnapshot(c.Context())
	if err != nil {
		return h.respondError(c, "Snapshot upload failed", err)
	}

	l.Info("Snapshot uploaded",
		zap.String("object", upload.Object),
		zap.Int64("bytes", upload.Bytes),
	)
	return c.JSON(upload)
}

// HandleListSnapshots lists the snapshots stored in the bucket.
// @Summary List Snapshots
// @Description List the snapshot objects stored under the configured prefix.
// @Tags graph
// @Accept json
// @Produce json
// @Success 200 {array} models.SnapshotInfo "Stored Snapshots"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /graph/snapshots [get]
func (h *Handler) HandleListSnapshots(c *fiber.Ctx) error {
	infos, err := h.service.ListSnapshots(c.Context())
	if err != nil {
		return h.respondError(c, "Snapshot listing failed", err)
	}
	return c.JSON(infos)
}

// HandleUnitLines lists every unit line.
// @Summary List Unit Lines
// @Description List every unit line of the served graph, the villager group included.
// @Tags graph
// @Accept json
// @Produce json
// @Success 200 {array} models.LineSummary "Unit Lines"
// @Failure 503 {object} map[string]string "Graph Not Built"
// @Router /graph/lines [get]
func (h *Handler) HandleUnitLines(c *fiber.Ctx) error {
	lines, err := h.service.UnitLines()
	if err != nil {
		return h.respondError(c, "Unit line listing failed", err)
	}
	return c.JSON(lines)
}

// HandleUnitLine returns one unit line with its links resolved.
// @Summary Get Unit Line
// @Description Get one unit line by its line id, links in both directions included.
// @Tags graph
// @Accept json
// @Produce json
// @Param id path int true "Line ID"
// @Success 200 {object} models.LineDetail "Unit Line"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 503 {object} map[string]string "Graph Not Built"
// @Router /graph/lines/{id} [get]
func (h *Handler) HandleUnitLine(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid line id"})
	}

	line, err := h.service.UnitLine(id)
	if err != nil {
		return h.respondError(c, "Unit line lookup failed", err)
	}
	if line == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": fmt.Sprintf("unit line %d not found", id),
		})
	}
	return c.JSON(line)
}

// HandleBuildingLines lists every building line.
// @Summary List Building Lines
// @Description List every building line of the served graph.
// @Tags graph
// @Accept json
// @Produce json
// @Success 200 {array} models.LineSummary "Building Lines"
// @Failure 503 {object} map[string]string "Graph Not Built"
// @Router /graph/buildings [get]
func (h *Handler) HandleBuildingLines(c *fiber.Ctx) error {
	lines, err := h.service.BuildingLines()
	if err != nil {
		return h.respondError(c, "Building line listing failed", err)
	}
	return c.JSON(lines)
}

// HandleBuildingLine returns one building line with its links resolved.
// @Summary Get Building Line
// @Description Get one building line by its line id, links in both directions included.
// @Tags graph
// @Accept json
// @Produce json
// @Param id path int true "Line ID"
// @Success 200 {object} models.LineDetail "Building Line"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 503 {object} map[string]string "Graph Not Built"
// @Router /graph/buildings/{id} [get]
func (h *Handler) HandleBuildingLine(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid line id"})
	}

	line, err := h.service.BuildingLine(id)
	if err != nil {
		return h.respondError(c, "Building line lookup failed", err)
	}
	if line == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": fmt.Sprintf("building line %d not found", id),
		})
	}
	return c.JSON(line)
}

// HandleTechGroups lists every tech group.
// @Summary List Tech Groups
// @Description List every classified tech group of the served graph.
// @Tags graph
// @Accept json
// @Produce json
// @Success 200 {array} models.TechSummary "Tech Groups"
// @Failure 503 {object} map[string]string "Graph Not Built"
// @Router /graph/techs [get]
func (h *Handler) HandleTechGroups(c *fiber.Ctx) error {
	techs, err := h.service.TechGroups()
	if err != nil {
		return h.respondError(c, "Tech group listing failed", err)
	}
	return c.JSON(techs)
}

// HandleTechGroup returns one tech group.
// @Summary Get Tech Group
// @Description Get one tech group by its tech id.
// @Tags graph
// @Accept json
// @Produce json
// @Param id path int true "Tech ID"
// @Success 200 {object} models.TechDetail "Tech Group"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 503 {object} map[string]string "Graph Not Built"
// @Router /graph/techs/{id} [get]
func (h *Handler) HandleTechGroup(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid tech id"})
	}

	tech, err := h.service.TechGroup(id)
	if err != nil {
		return h.respondError(c, "Tech group lookup failed", err)
	}
	if tech == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": fmt.Sprintf("tech group %d not found", id),
		})
	}
	return c.JSON(tech)
}

// HandleCivGroups lists every civ group.
// @Summary List Civ Groups
// @Description List every civ group of the served graph.
// @Tags graph
// @Accept json
// @Produce json
// @Success 200 {array} models.CivSummary "Civ Groups"
// @Failure 503 {object} map[string]string "Graph Not Built"
// @Router /graph/civs [get]
func (h *Handler) HandleCivGroups(c *fiber.Ctx) error {
	civs, err := h.service.CivGroups()
	if err != nil {
		return h.respondError(c, "Civ group listing failed", err)
	}
	return c.JSON(civs)
}

// HandleCivGroup returns one civ group.
// @Summary Get Civ Group
// @Description Get one civ group by its civ index, uniques and bonuses included.
// @Tags graph
// @Accept json
// @Produce json
// @Param id path int true "Civ ID"
// @Success 200 {object} models.CivDetail "Civ Group"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 503 {object} map[string]string "Graph Not Built"
// @Router /graph/civs/{id} [get]
func (h *Handler) HandleCivGroup(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid civ id"})
	}

	civ, err := h.service.CivGroup(id)
	if err != nil {
		return h.respondError(c, "Civ group lookup failed", err)
	}
	if civ == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": fmt.Sprintf("civ group %d not found", id),
		})
	}
	return c.JSON(civ)
}

// HandleTerrains lists every terrain group.
// @Summary List Terrains
// @Description List every terrain group of the served graph.
// @Tags graph
// @Accept json
// @Produce json
// @Success 200 {array} graph.TerrainSnapshot "Terrain Groups"
// @Failure 503 {object} map[string]string "Graph Not Built"
// @Router /graph/terrains [get]
func (h *Handler) HandleTerrains(c *fiber.Ctx) error {
	terrains, err := h.service.Terrains()
	if err != nil {
		return h.respondError(c, "Terrain listing failed", err)
	}
	return c.JSON(terrains)
}
