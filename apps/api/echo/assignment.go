package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/edtech/core/assignment"
)

type assignmentApi struct {
	svc      assignment.Service
	validate *validator.Validate
}

func registerAssignmentAPI(app *echo.Echo, svc assignment.Service, validate *validator.Validate) {
	api := assignmentApi{svc: svc, validate: validate}

	ag := app.Group("/assignments")
	ag.POST("", api.create)
	ag.GET("", api.query)
}

func (api *assignmentApi) create(ctx echo.Context) error {
	var data assignment.NewAssignment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(bindError(err), "binding to NewAssignment")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	if _, err := api.svc.Create(ctx.Request().Context(), data); err != nil {
		return errors.Wrap(err, "creating assignment")
	}
	return ctx.JSON(http.StatusOK, MessageResponse{Message: "Assignment created"})
}

func (api *assignmentApi) query(ctx echo.Context) error {
	asgs, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying assignments")
	}
	return ctx.JSON(http.StatusOK, asgs)
}
