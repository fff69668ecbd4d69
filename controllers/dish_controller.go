package controllers

import (
	"strconv"
	"strings"

	"github.com/OmarZED/Delivery-System/entity"
	"github.com/OmarZED/Delivery-System/pkg/resp"
	"github.com/OmarZED/Delivery-System/repository"
	"github.com/OmarZED/Delivery-System/services"
	"github.com/OmarZED/Delivery-System/utils"
	"github.com/gin-gonic/gin"
)

type DishController struct {
	Svc       *services.DishService
	RatingSvc *services.RatingService
}

func NewDishController(s *services.DishService, rs *services.RatingService) *DishController {
	return &DishController{Svc: s, RatingSvc: rs}
}

// GET /api/dish?categories=&vegetarian=&sortBy=&page=
func (h *DishController) List(c *gin.Context) {
	var f repository.DishFilter

	// categories arrive either repeated or comma-separated
	for _, raw := range c.QueryArray("categories") {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				f.Categories = append(f.Categories, entity.Category(part))
			}
		}
	}
	if v := c.Query("vegetarian"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			resp.BadRequest(c, "invalid vegetarian flag")
			return
		}
		f.Vegetarian = &b
	}
	f.SortBy = entity.DishSorting(c.Query("sortBy"))
	if page := c.DefaultQuery("page", "1"); page != "" {
		n, err := strconv.Atoi(page)
		if err != nil || n < 1 {
			resp.BadRequest(c, "invalid page")
			return
		}
		f.Page = n
	}

	dishes, err := h.Svc.List(f)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, dishes)
}

// GET /api/dish/:id
func (h *DishController) Get(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid dish id")
		return
	}

	dish, err := h.Svc.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, dish)
}

// GET /api/dish/:id/rating/check
func (h *DishController) CanRate(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	dishID, ok := paramUint(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid dish id")
		return
	}

	canRate, err := h.RatingSvc.CanRate(uid, dishID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"canRate": canRate})
}

// POST /api/dish/:id/rating/:score
func (h *DishController) Rate(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	dishID, ok := paramUint(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid dish id")
		return
	}
	score, err := strconv.Atoi(c.Param("score"))
	if err != nil {
		resp.BadRequest(c, "invalid score")
		return
	}

	rating, err := h.RatingSvc.Rate(uid, dishID, score)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rating)
}

// GET /api/dish/:id/rating
func (h *DishController) Rating(c *gin.Context) {
	dishID, ok := paramUint(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid dish id")
		return
	}

	agg, err := h.RatingSvc.DishRating(dishID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, agg)
}
