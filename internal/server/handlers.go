package server

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/kamusis/skillscan/internal/extract"
)

// ExtractRequest is the body of POST /api/v1/skills/extract.
type ExtractRequest struct {
	Text string `json:"text"`
}

// MatchRequest is the body of POST /api/v1/skills/match.
type MatchRequest struct {
	JobSkills       []string `json:"job_skills"`
	ApplicantSkills []string `json:"applicant_skills"`
}

// MatchResponse reports an applicant's coverage of a job's skills. Score is
// formatted with two decimals.
type MatchResponse struct {
	Score   string   `json:"score"`
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
}

// CatalogResponse lists the recognized skills by category.
type CatalogResponse struct {
	Count      int                 `json:"count"`
	Categories map[string][]string `json:"categories"`
}

type handlers struct {
	extractor *extract.Extractor
	version   string
}

func (h *handlers) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "version": h.version})
}

func (h *handlers) catalog(c *fiber.Ctx) error {
	cat := h.extractor.Catalog()
	resp := CatalogResponse{
		Count:      cat.Len(),
		Categories: make(map[string][]string),
	}
	for _, name := range cat.Categories() {
		resp.Categories[name] = cat.Category(name)
	}
	return c.JSON(resp)
}

func (h *handlers) extract(c *fiber.Ctx) error {
	var req ExtractRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if req.Text == "" {
		return jsonError(c, fiber.StatusBadRequest, "text is required for skill extraction")
	}
	return c.JSON(h.extractor.Extract(req.Text))
}

func (h *handlers) match(c *fiber.Ctx) error {
	var req MatchRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	res := extract.ScoreMatch(req.JobSkills, req.ApplicantSkills)
	return c.JSON(MatchResponse{
		Score:   strconv.FormatFloat(res.Score, 'f', 2, 64),
		Matched: res.Matched,
		Missing: res.Missing,
	})
}
