package invalidate_reservations

import (
	"context"

	invalidateReservations "github.com/m04kA/SMC-DormService/internal/usecase/invalidate_reservations"
)

type InvalidateReservationsUseCase interface {
	Execute(ctx context.Context) (*invalidateReservations.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
