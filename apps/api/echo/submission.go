package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/edtech/core/submission"
)

type submissionApi struct {
	svc      submission.Service
	validate *validator.Validate
}

func registerSubmissionAPI(app *echo.Echo, svc submission.Service, validate *validator.Validate) {
	api := submissionApi{svc: svc, validate: validate}

	app.POST("/submit", api.create)
	app.GET("/submissions/:assignment_id", api.queryByAssignment)
}

func (api *submissionApi) create(ctx echo.Context) error {
	var data submission.NewSubmission
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(bindError(err), "binding to NewSubmission")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	if _, err := api.svc.Submit(ctx.Request().Context(), data); err != nil {
		return errors.Wrap(err, "submitting assignment")
	}
	return ctx.JSON(http.StatusOK, MessageResponse{Message: "Submission successful"})
}

// queryByAssignment never 404s: an unknown assignment simply has no submissions.
func (api *submissionApi) queryByAssignment(ctx echo.Context) error {
	subs, err := api.svc.QueryByAssignment(ctx.Request().Context(), ctx.Param("assignment_id"))
	if err != nil {
		return errors.Wrap(err, "querying submissions")
	}
	return ctx.JSON(http.StatusOK, subs)
}
