package controllers

import (
	"errors"

	"github.com/OmarZED/Delivery-System/pkg/resp"
	"github.com/OmarZED/Delivery-System/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// fail maps service sentinels onto HTTP statuses. Anything unmapped is a
// store or programming failure: logged with request context, surfaced as a
// generic 500 without internals.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidArgument),
		errors.Is(err, services.ErrWeakPassword):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrNotEligible):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrDishNotFound),
		errors.Is(err, services.ErrBasketNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrUserNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrEmailTaken):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrBasketEmpty):
		resp.PreconditionFailed(c, err.Error())
	default:
		logrus.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.FullPath(),
		}).WithError(err).Error("request failed")
		resp.ServerError(c)
	}
}
