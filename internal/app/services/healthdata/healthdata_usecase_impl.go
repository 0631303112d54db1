package healthdata

import (
	"context"
	"fmt"
	"net/url"

	"carelink-agent/internal/app/models"
	"carelink-agent/internal/app/services/shared/apiclient"
	"carelink-agent/internal/pkg/constvars"
	"carelink-agent/internal/pkg/dto/requests"
	"carelink-agent/internal/pkg/exceptions"
	"carelink-agent/internal/pkg/utils"

	"go.uber.org/zap"
)

type healthDataUsecase struct {
	apiClient apiclient.Client
	log       *zap.Logger
}

func NewHealthDataUsecase(apiClient apiclient.Client, logger *zap.Logger) HealthDataUsecase {
	return &healthDataUsecase{
		apiClient: apiClient,
		log:       logger,
	}
}

func (uc *healthDataUsecase) FetchData(ctx context.Context, filter *requests.HealthDataFilter) ([]models.HealthData, error) {
	uc.log.Info("healthDataUsecase.FetchData called")

	path := constvars.EndpointHealthData
	if filter != nil {
		query := url.Values{}
		if filter.DataType != "" {
			query.Set("data_type", filter.DataType)
		}
		if filter.StartDate != "" {
			query.Set("start_date", filter.StartDate)
		}
		if filter.EndDate != "" {
			query.Set("end_date", filter.EndDate)
		}
		if encoded := query.Encode(); encoded != "" {
			path += "?" + encoded
		}
	}

	var data []models.HealthData
	if err := uc.apiClient.Get(ctx, path, &data); err != nil {
		return nil, err
	}
	return data, nil
}

func (uc *healthDataUsecase) RecordData(ctx context.Context, request *requests.CreateHealthData) (*models.HealthData, error) {
	uc.log.Info("healthDataUsecase.RecordData called", zap.String("dataType", request.DataType))

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	data := new(models.HealthData)
	if err := uc.apiClient.Post(ctx, constvars.EndpointHealthData, request, data); err != nil {
		return nil, err
	}
	return data, nil
}

func (uc *healthDataUsecase) UpdateData(ctx context.Context, dataID int, request *requests.UpdateHealthData) (*models.HealthData, error) {
	uc.log.Info("healthDataUsecase.UpdateData called", zap.Int("dataID", dataID))

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	data := new(models.HealthData)
	path := fmt.Sprintf("%s/%d", constvars.EndpointHealthData, dataID)
	if err := uc.apiClient.Put(ctx, path, request, data); err != nil {
		return nil, err
	}
	return data, nil
}

func (uc *healthDataUsecase) DeleteData(ctx context.Context, dataID int) error {
	uc.log.Info("healthDataUsecase.DeleteData called", zap.Int("dataID", dataID))

	path := fmt.Sprintf("%s/%d", constvars.EndpointHealthData, dataID)
	return uc.apiClient.Delete(ctx, path)
}

func (uc *healthDataUsecase) FetchGoals(ctx context.Context) ([]models.HealthGoal, error) {
	uc.log.Info("healthDataUsecase.FetchGoals called")

	var goals []models.HealthGoal
	if err := uc.apiClient.Get(ctx, constvars.EndpointHealthGoals, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

func (uc *healthDataUsecase) CreateGoal(ctx context.Context, request *requests.CreateHealthGoal) (*models.HealthGoal, error) {
	uc.log.Info("healthDataUsecase.CreateGoal called", zap.String("dataType", request.DataType))

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	goal := new(models.HealthGoal)
	if err := uc.apiClient.Post(ctx, constvars.EndpointHealthGoals, request, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (uc *healthDataUsecase) UpdateGoal(ctx context.Context, goalID int, request *requests.UpdateHealthGoal) (*models.HealthGoal, error) {
	uc.log.Info("healthDataUsecase.UpdateGoal called", zap.Int("goalID", goalID))

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	goal := new(models.HealthGoal)
	path := fmt.Sprintf("%s/%d", constvars.EndpointHealthGoals, goalID)
	if err := uc.apiClient.Put(ctx, path, request, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (uc *healthDataUsecase) DeleteGoal(ctx context.Context, goalID int) error {
	uc.log.Info("healthDataUsecase.DeleteGoal called", zap.Int("goalID", goalID))

	path := fmt.Sprintf("%s/%d", constvars.EndpointHealthGoals, goalID)
	return uc.apiClient.Delete(ctx, path)
}
