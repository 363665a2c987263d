package order

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"lanchonete/internal/pricing"
)

type Handler struct {
	service *Service
}

type AdminHandler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func NewAdminHandler(service *Service) *AdminHandler {
	return &AdminHandler{service: service}
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
	case errors.Is(err, ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
	}
}

// --------------------------------------------------
// Checkout
// --------------------------------------------------

type createRequest struct {
	ItemIDs       []string         `json:"item_ids"`
	CustomerName  string           `json:"customer_name"`
	Address       string           `json:"address"`
	Contact       string           `json:"contact"`
	PaymentMethod pricing.Method   `json:"payment_method"`
	ChangeAmount  *decimal.Decimal `json:"change_amount"`
}

func (h *Handler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	o, err := h.service.Create(c.Request.Context(), req.ItemIDs, CustomerInfo{
		Name:          req.CustomerName,
		Address:       req.Address,
		Contact:       req.Contact,
		PaymentMethod: req.PaymentMethod,
		ChangeAmount:  req.ChangeAmount,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, o)
}

type quoteRequest struct {
	ItemIDs       []string       `json:"item_ids"`
	PaymentMethod pricing.Method `json:"payment_method"`
}

func (h *Handler) Quote(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	quote, err := h.service.Quote(c.Request.Context(), req.ItemIDs, req.PaymentMethod)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

func (h *Handler) Get(c *gin.Context) {
	o, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order":        o,
		"status_label": o.Status.Label(),
	})
}

// Stream is the customer's live view of one order: the current state is sent
// first, then every status change, until the client disconnects.
func (h *Handler) Stream(c *gin.Context) {
	id := c.Param("id")

	o, sub, err := h.service.WatchOne(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	defer sub.Close()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.SSEvent("order", o)
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-sub.Events():
			if !ok {
				return false
			}
			if ev.Order.ID != id {
				return true
			}
			c.SSEvent("order", ev.Order)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// --------------------------------------------------
// Admin
// --------------------------------------------------

func (h *AdminHandler) List(c *gin.Context) {
	orders, err := h.service.ListForAdmin(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// Stream is the admin's live order list: a full snapshot first, then deltas.
// Reconnecting re-delivers the full current set.
func (h *AdminHandler) Stream(c *gin.Context) {
	orders, sub, err := h.service.WatchAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	defer sub.Close()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.SSEvent("snapshot", orders)
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-sub.Events():
			if !ok {
				return false
			}
			c.SSEvent("order", ev.Order)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

type setStatusRequest struct {
	Status Status `json:"status"`
}

func (h *AdminHandler) SetStatus(c *gin.Context) {
	var req setStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	o, err := h.service.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order":        o,
		"status_label": o.Status.Label(),
	})
}
