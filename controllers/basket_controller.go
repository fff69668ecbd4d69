package controllers

import (
	"strconv"

	"github.com/OmarZED/Delivery-System/pkg/resp"
	"github.com/OmarZED/Delivery-System/services"
	"github.com/OmarZED/Delivery-System/utils"
	"github.com/gin-gonic/gin"
)

type BasketController struct{ Svc *services.BasketService }

func NewBasketController(s *services.BasketService) *BasketController { return &BasketController{Svc: s} }

// GET /api/basket
func (h *BasketController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	basket, err := h.Svc.Get(uid)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, basket)
}

// POST /api/basket/dish/:dishId?amount=N
func (h *BasketController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	dishID, ok := paramUint(c, "dishId")
	if !ok {
		resp.BadRequest(c, "invalid dish id")
		return
	}
	amount, err := strconv.Atoi(c.DefaultQuery("amount", "1"))
	if err != nil {
		resp.BadRequest(c, "invalid amount")
		return
	}

	basket, err := h.Svc.AddItem(uid, dishID, amount)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, basket)
}

// DELETE /api/basket/dish/:dishId?increase=bool
//
// The legacy wire shape is kept, but the flag fans out to two unambiguous
// operations: increase=true decrements by one, anything else removes the
// line entirely.
func (h *BasketController) Remove(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	dishID, ok := paramUint(c, "dishId")
	if !ok {
		resp.BadRequest(c, "invalid dish id")
		return
	}

	decrement, _ := strconv.ParseBool(c.DefaultQuery("increase", "false"))

	var err error
	if decrement {
		err = h.Svc.DecrementItem(uid, dishID)
	} else {
		err = h.Svc.RemoveItem(uid, dishID)
	}
	if err != nil {
		fail(c, err)
		return
	}

	basket, err := h.Svc.Get(uid)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, basket)
}

// DELETE /api/basket
func (h *BasketController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	existed, err := h.Svc.Clear(uid)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": existed})
}
