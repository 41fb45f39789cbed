package domain

import "time"

// Границы учебного года
const (
	AcademicYearStartMonth = time.September
	AcademicYearStartDay   = 15
	AcademicYearEndMonth   = time.June
	AcademicYearEndDay     = 30
)

// AcademicYear окно учебного года [Start, End], обе границы включительно
type AcademicYear struct {
	Start time.Time
	End   time.Time
}

// AcademicYearWindow вычисляет учебный год для даты now.
// С сентября окно начинается 15 сентября текущего года, иначе 15 сентября предыдущего.
// Конец окна всегда 30 июня следующего за началом календарного года.
// Дата между 1 июля и 14 сентября в окно не попадает: она относится к году, который только начнётся.
func AcademicYearWindow(now time.Time) AcademicYear {
	startYear := now.Year()
	if now.Month() < AcademicYearStartMonth {
		startYear--
	}
	loc := now.Location()
	return AcademicYear{
		Start: time.Date(startYear, AcademicYearStartMonth, AcademicYearStartDay, 0, 0, 0, 0, loc),
		End:   time.Date(startYear+1, AcademicYearEndMonth, AcademicYearEndDay, 0, 0, 0, 0, loc),
	}
}

// Contains проверяет, что дата t (без учета времени суток) попадает в окно
func (y AcademicYear) Contains(t time.Time) bool {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, y.Start.Location())
	return !d.Before(y.Start) && !d.After(y.End)
}
