package controllers

import (
	"net/http"

	"github.com/OmarZED/Delivery-System/pkg/resp"
	"github.com/OmarZED/Delivery-System/services"
	"github.com/OmarZED/Delivery-System/utils"
	"github.com/gin-gonic/gin"
)

type UserController struct{ Svc *services.AuthService }

func NewUserController(s *services.AuthService) *UserController { return &UserController{Svc: s} }

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /api/user/register
func (h *UserController) Register(c *gin.Context) {
	var req services.RegisterIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := h.Svc.Register(&req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{
		"id": user.ID, "email": user.Email, "name": user.Name,
	})
}

// POST /api/user/login
func (h *UserController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := h.Svc.Login(req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"user":  gin.H{"id": user.ID, "email": user.Email, "name": user.Name},
	})
}

// POST /api/user/logout
func (h *UserController) Logout(c *gin.Context) {
	jti := utils.CurrentTokenID(c)
	exp := utils.CurrentTokenExpiry(c)

	if err := h.Svc.Logout(jti, exp); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "logged out"})
}

// GET /api/user/profile
func (h *UserController) Profile(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	user, err := h.Svc.Profile(uid)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, user)
}

// PUT /api/user/profile
func (h *UserController) UpdateProfile(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.UpdateProfileIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := h.Svc.UpdateProfile(uid, &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, user)
}
