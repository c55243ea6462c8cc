package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Sazzad-Saju/circle-funds-flow/core"
	"github.com/Sazzad-Saju/circle-funds-flow/core/fund"
)

type (
	fundApi struct {
		auth *authenticator
		svc  *fund.Service
	}

	PaymentResponse struct {
		Receipt fund.Receipt     `json:"receipt"`
		Outcome core.Outcome     `json:"outcome"`
		Form    fund.PaymentForm `json:"form"`
	}
)

func registerFundAPI(g *echo.Group, jwt echo.MiddlewareFunc, auth *authenticator, svc *fund.Service) {
	api := fundApi{auth: auth, svc: svc}

	fg := g.Group("/fund", jwt)
	fg.GET("/summary", api.summary)
	fg.GET("/payments", api.payments)
	fg.POST("/payments", api.pay)
	fg.POST("/payments/:month/contributions", api.addContribution)
	fg.GET("/leaderboard", api.leaderboard)
	fg.GET("/growth", api.growth)
	fg.GET("/breakdown", api.breakdown)
}

// Handlers

func (api *fundApi) summary(ctx echo.Context) error {
	sum, err := api.svc.Summary()
	if err != nil {
		return errors.Wrap(err, "getting fund summary")
	}
	return ctx.JSON(http.StatusOK, sum)
}

func (api *fundApi) payments(ctx echo.Context) error {
	rows, err := api.svc.MonthlyPayments()
	if err != nil {
		return errors.Wrap(err, "listing monthly payments")
	}
	return ctx.JSON(http.StatusOK, rows)
}

func (api *fundApi) pay(ctx echo.Context) error {
	usr, err := api.auth.getContextUser(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	var form fund.PaymentForm
	if err := ctx.Bind(&form); err != nil {
		return errors.Wrap(err, "binding to PaymentForm")
	}

	rcpt, out, err := api.svc.SimulatePayment(ctx.Request().Context(), usr.Name, &form)
	if err != nil {
		if errors.Cause(err) == fund.ErrMonthNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "simulating payment")
	}
	return ctx.JSON(http.StatusOK, PaymentResponse{Receipt: rcpt, Outcome: out, Form: form})
}

// addContribution expects the month as its display label, url-escaped (eg: "Aug%202024").
func (api *fundApi) addContribution(ctx echo.Context) error {
	var data fund.NewContribution
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewContribution")
	}

	notice, err := api.svc.AddContribution(ctx.Param("month"), data)
	if err != nil {
		if errors.Cause(err) == fund.ErrMonthNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "adding contribution")
	}
	return ctx.JSON(http.StatusOK, NoticeResponse{Notice: notice})
}

func (api *fundApi) leaderboard(ctx echo.Context) error {
	rows, err := api.svc.Leaderboard()
	if err != nil {
		return errors.Wrap(err, "ranking contributors")
	}
	return ctx.JSON(http.StatusOK, rows)
}

func (api *fundApi) growth(ctx echo.Context) error {
	pts, err := api.svc.Growth()
	if err != nil {
		return errors.Wrap(err, "getting fund growth")
	}
	return ctx.JSON(http.StatusOK, pts)
}

func (api *fundApi) breakdown(ctx echo.Context) error {
	shares, err := api.svc.Breakdown()
	if err != nil {
		return errors.Wrap(err, "getting contribution breakdown")
	}
	return ctx.JSON(http.StatusOK, shares)
}
