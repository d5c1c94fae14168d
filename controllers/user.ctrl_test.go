package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/invoicehub/invoicehub.go/lib"
	"github.com/invoicehub/invoicehub.go/lib/responses"
	"github.com/invoicehub/invoicehub.go/lib/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createUserReq(t *testing.T, svc *service.DashboardService, body string) *httptest.ResponseRecorder {
	e := echo.New()
	e.Validator = &lib.CustomValidator{Validator: validator.New()}

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, NewUserController(svc).CreateUser(c))
	return rec
}

// Bind and Validate reject bad payloads before the service is touched,
// so these cases run without a database.
func TestCreateUserRejectsBadPayloads(t *testing.T) {
	svc := &service.DashboardService{Config: &service.Config{}}

	for _, body := range []string{
		`{not json`,
		`{}`,
		`{"name":"User","password":"secret"}`,
		`{"name":"User","email":"not-an-email","password":"secret"}`,
		`{"name":"User","email":"user@nextmail.com"}`,
	} {
		rec := createUserReq(t, svc, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)

		errorResponse := &responses.ErrorResponse{}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(errorResponse))
		assert.Equal(t, responses.BadArgumentsError.Message, errorResponse.Message, "body %s", body)
	}
}
