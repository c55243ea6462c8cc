package echoapi

import (
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Sazzad-Saju/circle-funds-flow/core"
	"github.com/Sazzad-Saju/circle-funds-flow/core/event"
)

type (
	eventApi struct {
		auth       *authenticator
		svc        *event.Service
		validate   *validator.Validate
		translator ut.Translator
	}

	EventResponse struct {
		Event  event.Event  `json:"event"`
		Notice *core.Notice `json:"notice"`
	}
)

func registerEventAPI(
	g *echo.Group,
	jwt echo.MiddlewareFunc,
	auth *authenticator,
	svc *event.Service,
	validate *validator.Validate,
	translator ut.Translator,
) {
	api := eventApi{auth: auth, svc: svc, validate: validate, translator: translator}

	eg := g.Group("/events", jwt)
	eg.GET("", api.query)
	eg.POST("", api.create)
	eg.POST("/:id/vote", api.vote)
}

// Handlers

func (api *eventApi) query(ctx echo.Context) error {
	usr, err := api.auth.getContextUser(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}
	events, err := api.svc.List(usr.ID)
	if err != nil {
		return errors.Wrap(err, "listing events")
	}
	return ctx.JSON(http.StatusOK, events)
}

func (api *eventApi) create(ctx echo.Context) error {
	usr, err := api.auth.getContextUser(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	var data event.NewEvent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewEvent")
	}
	if err := data.Validate(api.validate, api.translator); err != nil {
		return err
	}

	ev, notice, err := api.svc.Create(usr.Name, data)
	if err != nil {
		return errors.Wrap(err, "creating event")
	}
	return ctx.JSON(http.StatusCreated, EventResponse{Event: ev, Notice: notice})
}

func (api *eventApi) vote(ctx echo.Context) error {
	usr, err := api.auth.getContextUser(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}
	res, err := api.svc.Vote(usr.ID, ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "voting")
	}
	return ctx.JSON(http.StatusOK, res)
}
