package allocate_reservation

import (
	"context"

	allocateReservation "github.com/m04kA/SMC-DormService/internal/usecase/allocate_reservation"
)

type AllocateReservationUseCase interface {
	Execute(ctx context.Context, req *allocateReservation.Request) (*allocateReservation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
