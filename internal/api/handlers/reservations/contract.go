package reservations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DormService/internal/service/reservations/models"
)

type ReservationService interface {
	Create(ctx context.Context, req *models.CreateReservationRequest) (*models.ReservationResponse, error)
	GetByID(ctx context.Context, id string) (*models.ReservationResponse, error)
	GetAll(ctx context.Context) (*models.ReservationListResponse, error)
	Update(ctx context.Context, id string, req *models.UpdateReservationRequest) (*models.ReservationResponse, error)
	Delete(ctx context.Context, id string) error
	CountInPeriod(ctx context.Context, start, end time.Time) (*models.CountResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
