package triage

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/swasthya/triage/internal/domain/hospital"
	"github.com/swasthya/triage/internal/platform/geo"
	"github.com/swasthya/triage/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/triage", h.Triage)
	api.GET("/triage", h.TriageUsage)
	api.GET("/triage/history", h.History)
}

type triageRequest struct {
	Symptoms     string          `json:"symptoms"`
	Language     string          `json:"language"`
	AyushmanCard bool            `json:"ayushman_card"`
	Location     *geo.Coordinate `json:"location"`
	UserPhone    string          `json:"user_phone"`
}

type triageResponse struct {
	Success          bool                      `json:"success"`
	SessionID        string                    `json:"session_id"`
	Severity         Severity                  `json:"severity"`
	Advice           string                    `json:"advice"`
	Reasoning        string                    `json:"reasoning"`
	Hospitals        []hospital.RankedHospital `json:"hospitals"`
	AyushmanEligible bool                      `json:"ayushman_eligible"`
	Timestamp        time.Time                 `json:"timestamp"`
}

// Triage handles the main triage request.
func (h *Handler) Triage(c echo.Context) error {
	var req triageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	out, err := h.svc.Triage(c.Request().Context(), req.Symptoms, req.Language, UserData{
		Phone:        req.UserPhone,
		Location:     req.Location,
		AyushmanCard: req.AyushmanCard,
	})
	if err != nil {
		if errors.Is(err, ErrEmptySymptoms) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	hospitals := out.Hospitals
	if hospitals == nil {
		hospitals = []hospital.RankedHospital{}
	}
	return c.JSON(http.StatusOK, triageResponse{
		Success:          true,
		SessionID:        out.SessionID,
		Severity:         out.Result.Severity,
		Advice:           out.Result.Advice,
		Reasoning:        out.Result.Reasoning,
		Hospitals:        hospitals,
		AyushmanEligible: req.AyushmanCard,
		Timestamp:        time.Now().UTC(),
	})
}

// TriageUsage documents the expected request shape for GET callers.
func (h *Handler) TriageUsage(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Send POST request with symptoms data",
		"example_request": map[string]interface{}{
			"symptoms":      "fever and headache for 2 days",
			"language":      "en",
			"ayushman_card": true,
			"location":      map[string]float64{"lat": 28.6139, "lng": 77.2090},
		},
	})
}

// History lists recorded triage sessions, newest first.
func (h *Handler) History(c echo.Context) error {
	pg := pagination.FromContext(c)
	sessions, total, err := h.svc.History(c.Request().Context(), c.QueryParam("phone"), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(sessions, total, pg.Limit, pg.Offset))
}
