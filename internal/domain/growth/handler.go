package growth

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/growth/assessments", h.CreateAssessment)
	api.GET("/growth/reference/:indicator", h.GetReference)
}

type assessmentRequest struct {
	Sex               string   `json:"sex"`
	AgeDays           int      `json:"age_days"`
	WeightKG          *float64 `json:"weight_kg,omitempty"`
	HeightCM          *float64 `json:"height_cm,omitempty"`
	HeightMeasurement string   `json:"height_measurement,omitempty"`
	Edema             bool     `json:"edema"`
	PreviousWeightKG  *float64 `json:"previous_weight_kg,omitempty"`
	PreviousVerdict   string   `json:"previous_verdict,omitempty"`
}

func (h *Handler) CreateAssessment(c echo.Context) error {
	var req assessmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sex, err := ParseSex(req.Sex)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.AgeDays < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "age_days must not be negative")
	}

	mode := HeightMode(req.HeightMeasurement)
	switch mode {
	case "", HeightModeRecumbent, HeightModeStanding:
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "height_measurement must be recumbent or standing")
	}

	verdict := Verdict(req.PreviousVerdict)
	switch verdict {
	case "", VerdictRising, VerdictNotRising, VerdictNotWeighed:
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "invalid previous_verdict")
	}

	m := Measurement{
		Sex:              sex,
		AgeDays:          req.AgeDays,
		WeightKG:         req.WeightKG,
		HeightCM:         req.HeightCM,
		HeightMode:       mode,
		Edema:            req.Edema,
		PreviousWeightKG: req.PreviousWeightKG,
		PreviousVerdict:  verdict,
	}
	return c.JSON(http.StatusOK, h.svc.Assess(m))
}

func (h *Handler) GetReference(c echo.Context) error {
	ind, err := ParseIndicator(c.Param("indicator"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	sex, err := ParseSex(c.QueryParam("sex"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"sex":       sex,
		"indicator": ind,
		"rows":      Reference(sex, ind),
	})
}
