package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Sazzad-Saju/circle-funds-flow/core"
	"github.com/Sazzad-Saju/circle-funds-flow/core/message"
)

type (
	messageApi struct {
		auth *authenticator
		svc  *message.Service
	}

	MessageResponse struct {
		Message *message.Message `json:"message"`
		Outcome core.Outcome     `json:"outcome"`
	}
)

func registerMessageAPI(g *echo.Group, jwt echo.MiddlewareFunc, auth *authenticator, svc *message.Service) {
	api := messageApi{auth: auth, svc: svc}

	mg := g.Group("/messages", jwt)
	mg.GET("", api.query)
	mg.POST("", api.send)
}

// Handlers

func (api *messageApi) query(ctx echo.Context) error {
	msgs, err := api.svc.List()
	if err != nil {
		return errors.Wrap(err, "listing messages")
	}
	return ctx.JSON(http.StatusOK, msgs)
}

func (api *messageApi) send(ctx echo.Context) error {
	usr, err := api.auth.getContextUser(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	var data message.NewMessage
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewMessage")
	}

	msg, out, err := api.svc.Send(ctx.Request().Context(), usr.Name, usr.Email, data)
	if err != nil {
		return errors.Wrap(err, "sending message")
	}
	res := MessageResponse{Outcome: out}
	if out.Status != core.OutcomeSkipped {
		res.Message = &msg
		return ctx.JSON(http.StatusCreated, res)
	}
	return ctx.JSON(http.StatusOK, res)
}
