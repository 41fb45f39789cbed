package assignments

import (
	"context"

	"github.com/m04kA/SMC-DormService/internal/service/assignments/models"
)

type AssignmentService interface {
	AttachReservationToRoom(ctx context.Context, reservationID string, chambreID int64) (*models.ChambreLinkResponse, error)
	DetachReservationFromRoom(ctx context.Context, reservationID string, chambreID int64) (*models.ChambreLinkResponse, error)
	AttachReservationToStudent(ctx context.Context, reservationID, nom, prenom string) (*models.EtudiantLinkResponse, error)
	DetachReservationFromStudent(ctx context.Context, reservationID, nom, prenom string) (*models.EtudiantLinkResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
