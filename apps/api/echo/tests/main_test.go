package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/go-playground/validator/v10"

	echoapi "github.com/trezcool/edtech/apps/api/echo"
	"github.com/trezcool/edtech/core"
	"github.com/trezcool/edtech/core/assignment"
	"github.com/trezcool/edtech/core/submission"
	"github.com/trezcool/edtech/core/user"
	logsvc "github.com/trezcool/edtech/services/logger"
	inmemdb "github.com/trezcool/edtech/storage/database/inmem"
	testutil "github.com/trezcool/edtech/tests"
)

var (
	errNotFound           = httpErr{Detail: "Not Found"}
	errEmailExists        = httpErr{Detail: "Email already exists"}
	errInvalidCredentials = httpErr{Detail: "Invalid credentials"}
	errRequired           = "this field is required"
	errInvalidJSON        = "invalid JSON"
)

type testApp struct {
	server  *echoapi.Server
	db      *inmemdb.DB
	usrRepo user.Repository
	asgRepo assignment.Repository
	subRepo submission.Repository
}

// setup returns a server backed by a fresh, empty DB.
func setup(t *testing.T) testApp {
	conf := &core.Config{
		Env:      "TEST",
		TestMode: true,
		AppName:  "EdTech",
		Server: core.ServerConfig{
			DisableReqLogs:   true,
			CORSAllowOrigins: []string{"*"},
		},
	}

	logger := logsvc.NewRollbarLogger(log.New(io.Discard, "", 0), conf)
	logger.Enable(false)

	translator := core.NewTranslator()
	validate := validator.New()
	core.InitValidators(validate, translator)

	db := testutil.OpenDB(t)
	app := testApp{
		db:      db,
		usrRepo: inmemdb.NewUserRepository(db),
		asgRepo: inmemdb.NewAssignmentRepository(db),
		subRepo: inmemdb.NewSubmissionRepository(db),
	}
	app.server = echoapi.NewServer(echoapi.ServerDeps{
		Conf:          conf,
		Logger:        logger,
		UserSvc:       user.NewService(app.usrRepo),
		AssignmentSvc: assignment.NewService(app.asgRepo),
		SubmissionSvc: submission.NewService(app.subRepo),
		Validate:      validate,
		Translator:    translator,
	})
	return app
}

type httpErr struct {
	Detail interface{} `json:"detail"`
}

type httpMsg struct {
	Message string `json:"message"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func (app testApp) do(method, path string, data ...[]byte) *httptest.ResponseRecorder {
	req, rec := newRequest(method, path, data...)
	app.server.ServeHTTP(rec, req)
	return rec
}

func marshallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshallObj() failed: %v", err)
	}
	return data
}

func marshallList(t *testing.T, objs ...interface{}) []byte {
	if objs == nil {
		objs = []interface{}{}
	}
	data, err := json.Marshal(objs)
	if err != nil {
		t.Fatalf("marshallList() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func runHTTPTests(t *testing.T, app testApp, tests []httpTest) {
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.do(tt.method, tt.path, tt.body)
			checkCodeAndData(t, tt, rec)
		})
	}
}
