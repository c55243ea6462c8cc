package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Sazzad-Saju/circle-funds-flow/core/notification"
)

type (
	notificationApi struct {
		svc *notification.Service
	}

	MarkReadResponse struct {
		Changed     int `json:"changed"`
		UnreadCount int `json:"unread_count"`
	}
)

func registerNotificationAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *notification.Service) {
	api := notificationApi{svc: svc}

	ng := g.Group("/notifications", jwt)
	ng.GET("", api.query)
	ng.POST("/read-all", api.markAllRead)
	ng.POST("/:id/read", api.markRead)
}

// Handlers

func (api *notificationApi) query(ctx echo.Context) error {
	feed, err := api.svc.Feed()
	if err != nil {
		return errors.Wrap(err, "listing notifications")
	}
	return ctx.JSON(http.StatusOK, feed)
}

func (api *notificationApi) markRead(ctx echo.Context) error {
	changed, err := api.svc.MarkRead(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "marking notification read")
	}
	var res MarkReadResponse
	if changed {
		res.Changed = 1
	}
	if res.UnreadCount, err = api.svc.UnreadCount(); err != nil {
		return errors.Wrap(err, "counting unread notifications")
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *notificationApi) markAllRead(ctx echo.Context) error {
	n, err := api.svc.MarkAllRead()
	if err != nil {
		return errors.Wrap(err, "marking all notifications read")
	}
	res := MarkReadResponse{Changed: n}
	if res.UnreadCount, err = api.svc.UnreadCount(); err != nil {
		return errors.Wrap(err, "counting unread notifications")
	}
	return ctx.JSON(http.StatusOK, res)
}
