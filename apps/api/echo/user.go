package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/edtech/core"
	"github.com/trezcool/edtech/core/user"
)

type userApi struct {
	svc      user.Service
	validate *validator.Validate
	logger   core.Logger
}

func registerUserAPI(app *echo.Echo, svc user.Service, validate *validator.Validate, logger core.Logger) {
	api := userApi{
		svc:      svc,
		validate: validate,
		logger:   logger,
	}

	// no authentication: login only checks credentials and hands the user record back
	app.POST("/signup", api.signup)
	app.POST("/login", api.login)
}

// Handlers

func (api *userApi) signup(ctx echo.Context) error {
	var data user.NewUser
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(bindError(err), "binding to NewUser")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	usr, err := api.svc.Signup(ctx.Request().Context(), data)
	if err != nil {
		if errors.Cause(err) == user.ErrEmailExists {
			return errEmailExists
		}
		return errors.Wrap(err, "signing up user")
	}
	api.logger.Info("user signed up", usr)

	return ctx.JSON(http.StatusOK, MessageResponse{Message: "User created"})
}

// login responds with the full User record, password included.
func (api *userApi) login(ctx echo.Context) error {
	var data user.Credentials
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(bindError(err), "binding to Credentials")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	usr, err := api.svc.Login(ctx.Request().Context(), data)
	if err != nil {
		if errors.Cause(err) == user.ErrInvalidCredentials {
			return errInvalidCredentials
		}
		return errors.Wrap(err, "logging in")
	}

	return ctx.JSON(http.StatusOK, usr)
}
