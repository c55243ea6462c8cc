package echoapi

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Sazzad-Saju/circle-funds-flow/core"
	"github.com/Sazzad-Saju/circle-funds-flow/core/user"
)

type (
	userApi struct {
		auth     *authenticator
		svc      *user.Service
		validate *validator.Validate
	}

	LoginResponse struct {
		Token   string       `json:"token"`
		User    user.User    `json:"user"`
		Outcome core.Outcome `json:"outcome"`
	}

	ProfileResponse struct {
		User    user.User    `json:"user"`
		Outcome core.Outcome `json:"outcome"`
	}

	NoticeResponse struct {
		Notice *core.Notice `json:"notice"`
	}
)

func registerUserAPI(g *echo.Group, jwt echo.MiddlewareFunc, auth *authenticator, svc *user.Service, validate *validator.Validate) {
	api := userApi{auth: auth, svc: svc, validate: validate}

	// un-authed endpoints
	g.POST("/auth/login", api.login)

	// authed endpoints
	g.POST("/auth/logout", api.logout, jwt)
	g.GET("/me", api.retrieve, jwt)
	g.PUT("/me", api.update, jwt)
}

// Handlers

func (api *userApi) login(ctx echo.Context) error {
	var data user.Credentials
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Credentials")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	usr, out, err := api.svc.Login(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "logging in")
	}
	token, err := IssueToken(usr, api.auth.conf)
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	return ctx.JSON(http.StatusOK, LoginResponse{Token: token, User: usr, Outcome: out})
}

func (api *userApi) logout(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}
	notice, err := api.svc.Logout(claims.Id, time.Unix(claims.ExpiresAt, 0))
	if err != nil {
		return errors.Wrap(err, "logging out")
	}
	return ctx.JSON(http.StatusOK, NoticeResponse{Notice: notice})
}

func (api *userApi) retrieve(ctx echo.Context) error {
	usr, err := api.auth.getContextUser(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}
	return ctx.JSON(http.StatusOK, usr)
}

// update accepts JSON, or a multipart form whose optional "avatar" file replaces the avatar.
func (api *userApi) update(ctx echo.Context) error {
	usr, err := api.auth.getContextUser(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	var data user.UpdateProfile
	if strings.HasPrefix(ctx.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		data.Name = ctx.FormValue("name")
		data.Email = ctx.FormValue("email")
		data.Avatar = ctx.FormValue("avatar")
		if fh, err := ctx.FormFile("avatar"); err == nil {
			f, err := fh.Open()
			if err != nil {
				return errors.Wrap(err, "opening avatar")
			}
			defer f.Close()
			if data.AvatarFile, err = io.ReadAll(f); err != nil {
				return errors.Wrap(err, "reading avatar")
			}
		} else if err != http.ErrMissingFile {
			return errors.Wrap(err, "getting avatar")
		}
	} else if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateProfile")
	}

	usr, out, err := api.svc.UpdateProfile(ctx.Request().Context(), usr.ID, data)
	if err != nil {
		return errors.Wrap(err, "updating profile")
	}
	ctx.Set(contextUserKey, usr)
	return ctx.JSON(http.StatusOK, ProfileResponse{User: usr, Outcome: out})
}
