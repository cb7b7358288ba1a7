package notification

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
	api.POST("/send-sms", h.SendSMS)
	api.POST("/send-bulk-sms", h.SendBulkSMS)
}

type smsRequest struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

type bulkSMSRequest struct {
	PhoneNumbers []string `json:"phone_numbers"`
	Message      string   `json:"message"`
}

func (h *Handler) SendSMS(c echo.Context) error {
	var req smsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	receipt, err := h.svc.Send(c.Request().Context(), req.To, req.Message)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, receipt)
}

func (h *Handler) SendBulkSMS(c echo.Context) error {
	var req bulkSMSRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	receipts, sent, err := h.svc.SendBulk(c.Request().Context(), req.PhoneNumbers, req.Message)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":    true,
		"results":    receipts,
		"total_sent": sent,
	})
}
