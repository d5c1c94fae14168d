package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/invoicehub/invoicehub.go/lib/responses"
	"github.com/invoicehub/invoicehub.go/lib/service"
	"github.com/labstack/echo/v4"
)

// UserController : dashboard account controller struct
type UserController struct {
	svc *service.DashboardService
}

func NewUserController(svc *service.DashboardService) *UserController {
	return &UserController{svc: svc}
}

type CreateUserRequestBody struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateUserResponseBody struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// CreateUser creates a dashboard account. Only the bcrypt hash of the
// password is persisted.
func (controller *UserController) CreateUser(c echo.Context) error {
	var body CreateUserRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load create user request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid create user request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	if existing, _ := controller.svc.FindUserByEmail(c.Request().Context(), body.Email); existing != nil {
		return c.JSON(http.StatusBadRequest, responses.EmailTakenError)
	}

	user, err := controller.svc.CreateUser(c.Request().Context(), body.Name, body.Email, body.Password)
	if err != nil {
		c.Logger().Errorf("Failed to create user: %v", err)
		// the insert can still race the pre-check on the unique email index
		if strings.Contains(err.Error(), "duplicate") {
			return c.JSON(http.StatusBadRequest, responses.EmailTakenError)
		}
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	return c.JSON(http.StatusOK, &CreateUserResponseBody{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
}
