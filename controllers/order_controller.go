package controllers

import (
	"github.com/OmarZED/Delivery-System/pkg/resp"
	"github.com/OmarZED/Delivery-System/services"
	"github.com/OmarZED/Delivery-System/utils"
	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// POST /api/order
func (h *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.CreateOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.Create(uid, &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /api/order/user
func (h *OrderController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	orders, err := h.Svc.ListForUser(uid)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /api/order/:orderId
func (h *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	orderID, ok := paramUint(c, "orderId")
	if !ok {
		resp.BadRequest(c, "invalid order id")
		return
	}

	order, err := h.Svc.Detail(uid, orderID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

// PUT /api/order/:orderId/delivered
func (h *OrderController) ConfirmDelivery(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	orderID, ok := paramUint(c, "orderId")
	if !ok {
		resp.BadRequest(c, "invalid order id")
		return
	}

	if err := h.Svc.ConfirmDelivery(uid, orderID); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"status": "Delivered"})
}
