package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"store-console/internal/service"
	mdw "store-console/internal/transport/http/middleware"
	resp "store-console/internal/transport/http/response"
)

type EventHandler struct {
	svc *service.EventService
	log *zap.Logger
}

func NewEventHandler(svc *service.EventService, log *zap.Logger) *EventHandler {
	return &EventHandler{svc: svc, log: log}
}

func eventQueryFrom(c *gin.Context) service.EventQuery {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	return service.EventQuery{
		Limit:  limit,
		Offset: offset,
		Email:  c.Query("email"),
		Event:  c.Query("event"),
		From:   c.Query("from"),
		To:     c.Query("to"),
	}
}

func (h *EventHandler) List(c *gin.Context) {
	actor := actorFrom(mdw.ClaimsFrom(c))
	events, err := h.svc.Query(actor, eventQueryFrom(c))
	if err != nil {
		h.failEvent(c, "list events failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "events": events})
}

func (h *EventHandler) Export(c *gin.Context) {
	actor := actorFrom(mdw.ClaimsFrom(c))
	csvText, err := h.svc.ExportCSV(actor, eventQueryFrom(c))
	if err != nil {
		h.failEvent(c, "export events failed", err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="events.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(csvText))
}

func (h *EventHandler) failEvent(c *gin.Context, what string, err error) {
	var fe *service.ForbiddenError
	var ve *service.ValidationError
	switch {
	case errors.As(err, &fe):
		resp.Err(c, http.StatusForbidden, fe.Reason)
	case errors.As(err, &ve):
		resp.Err(c, http.StatusBadRequest, ve.Message)
	default:
		h.log.Error(what, zap.Error(err))
		resp.Err(c, http.StatusInternalServerError, "Server error")
	}
}
