package reminders

import (
	"context"

	"carelink-agent/internal/app/models"
	"carelink-agent/internal/pkg/dto/requests"
)

type ReminderUsecase interface {
	FetchUpcoming(ctx context.Context) ([]models.Reminder, error)
	FetchAll(ctx context.Context) ([]models.Reminder, error)
	Create(ctx context.Context, request *requests.CreateReminder) (*models.Reminder, error)
	Update(ctx context.Context, reminderID int, request *requests.UpdateReminder) (*models.Reminder, error)
	Complete(ctx context.Context, reminderID int) (*models.Reminder, error)
	Delete(ctx context.Context, reminderID int) error
}
