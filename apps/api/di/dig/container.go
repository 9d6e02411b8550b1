package digcontainer

import (
	"log"
	"os"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/dig"

	echoapi "github.com/trezcool/edtech/apps/api/echo"
	"github.com/trezcool/edtech/core"
	"github.com/trezcool/edtech/core/assignment"
	"github.com/trezcool/edtech/core/submission"
	"github.com/trezcool/edtech/core/user"
	logsvc "github.com/trezcool/edtech/services/logger"
	inmemdb "github.com/trezcool/edtech/storage/database/inmem"
)

type serverParams struct {
	dig.In

	Conf          *core.Config
	Logger        core.Logger
	UserSvc       user.Service
	AssignmentSvc assignment.Service
	SubmissionSvc submission.Service
	Validate      *validator.Validate
	Translator    ut.Translator
}

func newLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "API : ", log.LstdFlags)
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug)
	return logger
}

func newDB(logger core.Logger) *inmemdb.DB {
	db, err := inmemdb.Open()
	if err != nil {
		logger.Fatal("opening database", err)
	}
	return db
}

// newValidate returns the validator with english messages and JSON field names installed.
func newValidate(translator ut.Translator) *validator.Validate {
	validate := validator.New()
	core.InitValidators(validate, translator)
	return validate
}

func newServer(p serverParams) *echoapi.Server {
	return echoapi.NewServer(echoapi.ServerDeps{
		Conf:          p.Conf,
		Logger:        p.Logger,
		UserSvc:       p.UserSvc,
		AssignmentSvc: p.AssignmentSvc,
		SubmissionSvc: p.SubmissionSvc,
		Validate:      p.Validate,
		Translator:    p.Translator,
	})
}

// New returns a new dependency injection dig.Container
func New() *dig.Container {
	c := dig.New()

	must(c.Provide(core.NewConfig))
	must(c.Provide(newLogger))
	must(c.Provide(newDB))
	must(c.Provide(inmemdb.NewUserRepository))
	must(c.Provide(inmemdb.NewAssignmentRepository))
	must(c.Provide(inmemdb.NewSubmissionRepository))
	must(c.Provide(user.NewService))
	must(c.Provide(assignment.NewService))
	must(c.Provide(submission.NewService))
	must(c.Provide(newValidate))
	must(c.Provide(core.NewTranslator))
	must(c.Provide(newServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
