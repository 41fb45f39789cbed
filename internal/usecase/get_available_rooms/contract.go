package get_available_rooms

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DormService/internal/domain"
)

// ChambreRepository интерфейс репозитория комнат
type ChambreRepository interface {
	GetByFoyerNameAndType(ctx context.Context, foyerName string, roomType domain.RoomType) ([]*domain.Chambre, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}
