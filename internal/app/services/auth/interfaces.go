package auth

import (
	"carelink-agent/internal/app/models"
	"carelink-agent/internal/pkg/dto/requests"
	"context"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.LoginUser) (*models.Identity, error)
	Register(ctx context.Context, request *requests.RegisterUser) (*models.Identity, error)
	CurrentUser(ctx context.Context) (*models.Identity, error)
	UpdateProfile(ctx context.Context, request *requests.UpdateProfile) (*models.Identity, error)
	Logout(ctx context.Context) error
}
