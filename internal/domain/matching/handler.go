package matching

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// birthDateLayout is the single calendar format the API accepts; the
// upload pipeline normalizes register dates to it before calling here.
const birthDateLayout = "2006-01-02"

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/matches", h.FindMatches)
}

type matchCandidate struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	BirthDate    string    `json:"birth_date"`
	GuardianName string    `json:"guardian_name,omitempty"`
	NIK          string    `json:"nik,omitempty"`
}

type matchRequest struct {
	Name         string           `json:"name"`
	BirthDate    string           `json:"birth_date"`
	GuardianName string           `json:"guardian_name,omitempty"`
	NIK          string           `json:"nik,omitempty"`
	Candidates   []matchCandidate `json:"candidates"`
}

func (h *Handler) FindMatches(c echo.Context) error {
	var req matchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	dob, err := time.Parse(birthDateLayout, req.BirthDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "birth_date must be YYYY-MM-DD")
	}

	q := Query{
		Name:         req.Name,
		BirthDate:    dob,
		GuardianName: req.GuardianName,
		NIK:          req.NIK,
	}

	candidates := make([]Candidate, 0, len(req.Candidates))
	for _, rc := range req.Candidates {
		cdob, err := time.Parse(birthDateLayout, rc.BirthDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "candidate birth_date must be YYYY-MM-DD")
		}
		candidates = append(candidates, Candidate{
			ID:           rc.ID,
			Name:         rc.Name,
			BirthDate:    cdob,
			GuardianName: rc.GuardianName,
			NIK:          rc.NIK,
		})
	}

	matches := h.svc.FindMatches(q, candidates)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"matches": matches,
	})
}
