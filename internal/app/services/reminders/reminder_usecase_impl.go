package reminders

import (
	"context"
	"fmt"

	"carelink-agent/internal/app/models"
	"carelink-agent/internal/app/services/shared/apiclient"
	"carelink-agent/internal/pkg/constvars"
	"carelink-agent/internal/pkg/dto/requests"
	"carelink-agent/internal/pkg/exceptions"
	"carelink-agent/internal/pkg/utils"

	"go.uber.org/zap"
)

type reminderUsecase struct {
	apiClient apiclient.Client
	log       *zap.Logger
}

func NewReminderUsecase(apiClient apiclient.Client, logger *zap.Logger) ReminderUsecase {
	return &reminderUsecase{
		apiClient: apiClient,
		log:       logger,
	}
}

func (uc *reminderUsecase) FetchUpcoming(ctx context.Context) ([]models.Reminder, error) {
	uc.log.Info("reminderUsecase.FetchUpcoming called")

	var reminders []models.Reminder
	path := fmt.Sprintf("%s?upcoming_only=true&is_completed=false", constvars.EndpointReminders)
	if err := uc.apiClient.Get(ctx, path, &reminders); err != nil {
		return nil, err
	}
	return reminders, nil
}

func (uc *reminderUsecase) FetchAll(ctx context.Context) ([]models.Reminder, error) {
	uc.log.Info("reminderUsecase.FetchAll called")

	var reminders []models.Reminder
	if err := uc.apiClient.Get(ctx, constvars.EndpointReminders, &reminders); err != nil {
		return nil, err
	}
	return reminders, nil
}

func (uc *reminderUsecase) Create(ctx context.Context, request *requests.CreateReminder) (*models.Reminder, error) {
	uc.log.Info("reminderUsecase.Create called", zap.String("title", request.Title))

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	reminder := new(models.Reminder)
	if err := uc.apiClient.Post(ctx, constvars.EndpointReminders, request, reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

func (uc *reminderUsecase) Update(ctx context.Context, reminderID int, request *requests.UpdateReminder) (*models.Reminder, error) {
	uc.log.Info("reminderUsecase.Update called", zap.Int("reminderID", reminderID))

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	reminder := new(models.Reminder)
	path := fmt.Sprintf("%s/%d", constvars.EndpointReminders, reminderID)
	if err := uc.apiClient.Put(ctx, path, request, reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

func (uc *reminderUsecase) Complete(ctx context.Context, reminderID int) (*models.Reminder, error) {
	uc.log.Info("reminderUsecase.Complete called", zap.Int("reminderID", reminderID))

	reminder := new(models.Reminder)
	path := fmt.Sprintf("%s/%d/complete", constvars.EndpointReminders, reminderID)
	if err := uc.apiClient.Put(ctx, path, nil, reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

func (uc *reminderUsecase) Delete(ctx context.Context, reminderID int) error {
	uc.log.Info("reminderUsecase.Delete called", zap.Int("reminderID", reminderID))

	path := fmt.Sprintf("%s/%d", constvars.EndpointReminders, reminderID)
	return uc.apiClient.Delete(ctx, path)
}
