package auth

import (
	"carelink-agent/internal/app/models"
	"carelink-agent/internal/app/services/session"
	"carelink-agent/internal/app/services/shared/apiclient"
	"carelink-agent/internal/pkg/constvars"
	"carelink-agent/internal/pkg/dto/requests"
	"carelink-agent/internal/pkg/dto/responses"
	"carelink-agent/internal/pkg/exceptions"
	"carelink-agent/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

type authUsecase struct {
	apiClient    apiclient.Client
	sessionStore session.SessionStore
	coordinator  *session.LogoutCoordinator
	log          *zap.Logger
}

func NewAuthUsecase(
	apiClient apiclient.Client,
	sessionStore session.SessionStore,
	coordinator *session.LogoutCoordinator,
	logger *zap.Logger,
) AuthUsecase {
	return &authUsecase{
		apiClient:    apiClient,
		sessionStore: sessionStore,
		coordinator:  coordinator,
		log:          logger,
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.LoginUser) (*models.Identity, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	uc.log.Info("authUsecase.Login called", zap.String("email", request.Email))

	response := new(responses.AuthToken)
	if err := uc.apiClient.Post(ctx, constvars.EndpointAuthLogin, request, response); err != nil {
		return nil, err
	}

	if err := uc.populateSession(ctx, response); err != nil {
		return nil, err
	}

	uc.log.Info("authUsecase.Login session populated", zap.Int("user_id", response.User.ID))
	return response.User, nil
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.RegisterUser) (*models.Identity, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	uc.log.Info("authUsecase.Register called", zap.String("email", request.Email))

	response := new(responses.AuthToken)
	if err := uc.apiClient.Post(ctx, constvars.EndpointAuthRegister, request, response); err != nil {
		return nil, err
	}

	if err := uc.populateSession(ctx, response); err != nil {
		return nil, err
	}

	uc.log.Info("authUsecase.Register session populated", zap.Int("user_id", response.User.ID))
	return response.User, nil
}

func (uc *authUsecase) CurrentUser(ctx context.Context) (*models.Identity, error) {
	identity := new(models.Identity)
	if err := uc.apiClient.Get(ctx, constvars.EndpointAuthMe, identity); err != nil {
		return nil, err
	}
	return identity, nil
}

func (uc *authUsecase) UpdateProfile(ctx context.Context, request *requests.UpdateProfile) (*models.Identity, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	identity := new(models.Identity)
	if err := uc.apiClient.Put(ctx, constvars.EndpointAuthUpdateProfile, request, identity); err != nil {
		return nil, err
	}

	if err := uc.sessionStore.SetIdentity(ctx, identity); err != nil {
		return nil, err
	}
	return identity, nil
}

func (uc *authUsecase) Logout(ctx context.Context) error {
	uc.log.Info("authUsecase.Logout called")
	return uc.coordinator.ForceLogout(ctx)
}

// populateSession writes credential before identity so the persisted
// slot never holds an identity bound to a stale token.
func (uc *authUsecase) populateSession(ctx context.Context, token *responses.AuthToken) error {
	if err := uc.sessionStore.SetCredential(ctx, token.AccessToken); err != nil {
		return err
	}
	if err := uc.sessionStore.SetIdentity(ctx, token.User); err != nil {
		return err
	}
	uc.coordinator.Reset()
	return nil
}
