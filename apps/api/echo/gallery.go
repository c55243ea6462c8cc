package echoapi

import (
	"io"
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Sazzad-Saju/circle-funds-flow/core"
	"github.com/Sazzad-Saju/circle-funds-flow/core/gallery"
)

type (
	galleryApi struct {
		auth       *authenticator
		svc        *gallery.Service
		validate   *validator.Validate
		translator ut.Translator
	}

	GalleryItemResponse struct {
		Item   gallery.Item `json:"item"`
		Notice *core.Notice `json:"notice"`
	}
)

func registerGalleryAPI(
	g *echo.Group,
	jwt echo.MiddlewareFunc,
	auth *authenticator,
	svc *gallery.Service,
	validate *validator.Validate,
	translator ut.Translator,
) {
	api := galleryApi{auth: auth, svc: svc, validate: validate, translator: translator}

	gg := g.Group("/gallery")

	// un-authed: image tags cannot send a bearer token; blob ids are random
	gg.GET("/blobs/:id", api.photo)

	gg.GET("", api.query, jwt)
	gg.POST("", api.create, jwt)
	gg.POST("/:id/like", api.like, jwt)
}

// Handlers

func (api *galleryApi) query(ctx echo.Context) error {
	items, err := api.svc.List()
	if err != nil {
		return errors.Wrap(err, "listing gallery items")
	}
	return ctx.JSON(http.StatusOK, items)
}

// create expects a multipart form with a "file" and a "caption".
func (api *galleryApi) create(ctx echo.Context) error {
	usr, err := api.auth.getContextUser(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	data := gallery.NewPhoto{Caption: ctx.FormValue("caption")}
	if fh, err := ctx.FormFile("file"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return errors.Wrap(err, "opening file")
		}
		defer f.Close()
		if data.File, err = io.ReadAll(f); err != nil {
			return errors.Wrap(err, "reading file")
		}
		data.Filename = fh.Filename
	}
	if err := data.Validate(api.validate, api.translator); err != nil {
		return err
	}

	it, notice, err := api.svc.AddPhoto(usr.Name, data)
	if err != nil {
		return errors.Wrap(err, "adding photo")
	}
	return ctx.JSON(http.StatusCreated, GalleryItemResponse{Item: it, Notice: notice})
}

func (api *galleryApi) like(ctx echo.Context) error {
	usr, err := api.auth.getContextUser(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}
	res, err := api.svc.Like(usr.ID, ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "liking")
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *galleryApi) photo(ctx echo.Context) error {
	data, contentType, err := api.svc.Photo(ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == gallery.ErrBlobNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "getting photo")
	}
	return ctx.Blob(http.StatusOK, contentType, data)
}
