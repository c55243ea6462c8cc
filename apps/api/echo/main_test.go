package echoapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/mail"
	"reflect"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/Sazzad-Saju/circle-funds-flow/core"
	"github.com/Sazzad-Saju/circle-funds-flow/core/event"
	"github.com/Sazzad-Saju/circle-funds-flow/core/fund"
	"github.com/Sazzad-Saju/circle-funds-flow/core/gallery"
	"github.com/Sazzad-Saju/circle-funds-flow/core/message"
	"github.com/Sazzad-Saju/circle-funds-flow/core/notification"
	"github.com/Sazzad-Saju/circle-funds-flow/core/user"
	emailsvc "github.com/Sazzad-Saju/circle-funds-flow/services/email"
	logsvc "github.com/Sazzad-Saju/circle-funds-flow/services/logger"
	"github.com/Sazzad-Saju/circle-funds-flow/storage/blob"
	inmemdb "github.com/Sazzad-Saju/circle-funds-flow/storage/database/inmem"
)

var errMissingToken = httpErr{Error: "missing or malformed jwt"}

type sentMessager interface {
	SentMessages() []core.EmailMessage
}

type testApp struct {
	*Server
	conf    *core.Config
	db      *inmemdb.DB
	mailSvc sentMessager
	member  user.User
}

func testConfig() *core.Config {
	return &core.Config{
		Env:              "TEST",
		AppName:          "Khajana",
		TestMode:         true,
		SecretKey:        "test-secret",
		AdminEmail:       mail.Address{Name: "Khajana Admin", Address: "admin@friendcircle.com"},
		DefaultFromEmail: mail.Address{Name: "Khajana", Address: "noreply@friendcircle.com"},
		CurrencySymbol:   "$",
		Server: core.ServerConfig{
			DisableReqLogs:     true,
			JWTExpirationDelta: time.Hour,
		},
		Policy: core.PolicyConfig{
			EventVote:   core.PolicyOnce,
			GalleryLike: core.PolicyUnlimited,
		},
	}
}

// setup returns a server backed by a freshly seeded in-memory DB.
func setup(t *testing.T, configure ...func(*core.Config)) testApp {
	conf := testConfig()
	for _, fn := range configure {
		fn(conf)
	}

	logger := logsvc.NewRollbarLogger(log.New(io.Discard, "", 0), conf)
	logger.Enable(false)
	core.ParseEmailTemplates(conf, logger)

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	event.InitValidators(validate, translator)

	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("inmemdb.Open() failed: %v", err)
	}
	mailSvc := emailsvc.NewConsoleServiceMock(conf, logger)
	usrSvc := user.NewServiceFromConfig(inmemdb.NewUserRepository(db), inmemdb.NewSessionRepository(db), conf)

	srv := NewServer(ServerDeps{
		Conf:            conf,
		Logger:          logger,
		Validate:        validate,
		Translator:      translator,
		EventSvc:        event.NewServiceFromConfig(inmemdb.NewEventRepository(db), conf),
		GallerySvc:      gallery.NewServiceFromConfig(inmemdb.NewGalleryRepository(db), blob.NewStore(), conf),
		NotificationSvc: notification.NewService(inmemdb.NewNotificationRepository(db)),
		FundSvc:         fund.NewServiceFromConfig(inmemdb.NewFundRepository(db), conf),
		UserSvc:         usrSvc,
		MessageSvc:      message.NewServiceFromConfig(inmemdb.NewMessageRepository(db), mailSvc, conf),
	})
	t.Cleanup(func() { _ = srv.Shutdown(context.Background()) })

	member, err := usrSvc.GetByID(inmemdb.SeedMemberID)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	return testApp{Server: srv, conf: conf, db: db, mailSvc: mailSvc, member: member}
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
	extra    interface{}
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

// newMultipartRequest builds a multipart form. files maps a field name to {filename, content}.
func newMultipartRequest(t *testing.T, method, path, token string, fields map[string]string, files map[string][2]string) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("WriteField() failed: %v", err)
		}
	}
	for k, f := range files {
		fw, err := w.CreateFormFile(k, f[0])
		if err != nil {
			t.Fatalf("CreateFormFile() failed: %v", err)
		}
		_, _ = fw.Write([]byte(f[1]))
	}
	if err := w.Close(); err != nil {
		t.Fatalf("multipart.Close() failed: %v", err)
	}

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, httptest.NewRecorder()
}

func getToken(t *testing.T, usr user.User, conf *core.Config) string {
	token, err := IssueToken(usr, conf)
	if err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	return token
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func marchallList(t *testing.T, objs ...interface{}) []byte {
	data, err := json.Marshal(objs)
	if err != nil {
		t.Fatalf("marchallList() failed: %v", err)
	}
	return data
}

func unmarshal(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("json.Unmarshal() failed: %v; body %s", err, rec.Body.String())
	}
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ElementsMatch(t, j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
