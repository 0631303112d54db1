package healthdata

import (
	"context"

	"carelink-agent/internal/app/models"
	"carelink-agent/internal/pkg/dto/requests"
)

type HealthDataUsecase interface {
	FetchData(ctx context.Context, filter *requests.HealthDataFilter) ([]models.HealthData, error)
	RecordData(ctx context.Context, request *requests.CreateHealthData) (*models.HealthData, error)
	UpdateData(ctx context.Context, dataID int, request *requests.UpdateHealthData) (*models.HealthData, error)
	DeleteData(ctx context.Context, dataID int) error
	FetchGoals(ctx context.Context) ([]models.HealthGoal, error)
	CreateGoal(ctx context.Context, request *requests.CreateHealthGoal) (*models.HealthGoal, error)
	UpdateGoal(ctx context.Context, goalID int, request *requests.UpdateHealthGoal) (*models.HealthGoal, error)
	DeleteGoal(ctx context.Context, goalID int) error
}
