package integration_tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/invoicehub/invoicehub.go/controllers"
	"github.com/invoicehub/invoicehub.go/lib"
	"github.com/invoicehub/invoicehub.go/lib/responses"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserAndDuplicateEmail(t *testing.T) {
	svc := dashboardTestServiceInit(t)
	require.NoError(t, clearTable(svc, "users"))

	e := echo.New()
	e.Validator = &lib.CustomValidator{Validator: validator.New()}
	userCtrl := controllers.NewUserController(svc)

	serve := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		require.NoError(t, userCtrl.CreateUser(e.NewContext(req, rec)))
		return rec
	}

	rec := serve(`{"name":"Ada","email":"ada@example.com","password":"correct horse battery staple"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	created := &controllers.CreateUserResponseBody{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(created))
	assert.Equal(t, "Ada", created.Name)
	assert.Equal(t, "ada@example.com", created.Email)

	// the stored hash must verify but never equal the raw password
	user, err := svc.FindUserByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.NotEqual(t, "correct horse battery staple", user.Password)

	rec = serve(`{"name":"Ada Again","email":"ada@example.com","password":"correct horse battery staple"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	errorResponse := &responses.ErrorResponse{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(errorResponse))
	assert.Equal(t, responses.EmailTakenError.Message, errorResponse.Message)
}
