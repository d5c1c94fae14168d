package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/invoicehub/invoicehub.go/db/models"
	"github.com/invoicehub/invoicehub.go/lib/security"
	passwordvalidator "github.com/wagslane/go-password-validator"
)

func (svc *DashboardService) CreateUser(ctx context.Context, name, email, password string) (*models.User, error) {
	if svc.Config.MinPasswordEntropy > 0 {
		entropy := passwordvalidator.GetEntropy(password)
		if entropy < float64(svc.Config.MinPasswordEntropy) {
			return nil, fmt.Errorf("password entropy is too low (%f), required is %d", entropy, svc.Config.MinPasswordEntropy)
		}
	}

	// we only ever store the hashed password
	hashedPassword, err := security.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		ID:       uuid.New(),
		Name:     name,
		Email:    email,
		Password: hashedPassword,
	}
	if _, err := svc.DB.NewInsert().Model(user).Exec(ctx); err != nil {
		return nil, err
	}
	return user, nil
}

func (svc *DashboardService) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := svc.DB.NewSelect().Model(&user).Where("email = ?", email).Limit(1).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
