package domain

// Форматы дат
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// CancellationMessageFormat текст подтверждения отмены бронирования студентом
const CancellationMessageFormat = "Бронирование %s успешно отменено"
