package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const timeFormat = "15:04"

const minutesPerDay = 24 * 60

// TimeString время дня в формате "HH:MM" (24-часовой формат)
// Хранится как строка, чтобы не тащить дату и таймзону туда, где нужны
// только часы и минуты
type TimeString string

// NewTimeString создает TimeString из time.Time (дата и секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeFormat))
}

// NewTimeStringFromString создает TimeString из строки "HH:MM"
func NewTimeStringFromString(s string) (TimeString, error) {
	parsed, err := time.Parse(timeFormat, s)
	if err != nil {
		return "", fmt.Errorf("invalid time string format: %v", err)
	}
	return TimeString(parsed.Format(timeFormat)), nil
}

// Validate проверяет, что значение соответствует формату "HH:MM"
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeFormat, string(t)); err != nil {
		return fmt.Errorf("invalid time string format: %v", err)
	}
	return nil
}

// IsZero проверяет, что значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// Hour возвращает часовую составляющую
func (t TimeString) Hour() int {
	return t.TotalMinutes() / 60
}

// Minute возвращает минутную составляющую
func (t TimeString) Minute() int {
	return t.TotalMinutes() % 60
}

// TotalMinutes возвращает количество минут с начала суток
// Для некорректного значения возвращает 0 (валидация - отдельный шаг)
func (t TimeString) TotalMinutes() int {
	parsed, err := time.Parse(timeFormat, string(t))
	if err != nil {
		return 0
	}
	return parsed.Hour()*60 + parsed.Minute()
}

// AddMinutes возвращает время через m минут
// Возвращает ошибку при выходе за границы суток - интервалы через полночь
// сервис не поддерживает
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}

	total := t.TotalMinutes() + m
	if total < 0 || total >= minutesPerDay {
		return "", fmt.Errorf("time %s + %d minutes is out of day range", t, m)
	}

	return FromMinutes(total), nil
}

// FromMinutes создает TimeString из количества минут с начала суток
func FromMinutes(total int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60))
}

// IsBefore проверяет, что t строго раньше other
// Для корректных "HH:MM" значений лексикографическое сравнение совпадает
// с временным
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter проверяет, что t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// MinutesUntil возвращает количество минут от t до other
// Отрицательное значение означает, что other раньше t
func (t TimeString) MinutesUntil(other TimeString) int {
	return other.TotalMinutes() - t.TotalMinutes()
}

// Scan реализует sql.Scanner
// Поддерживает строковые колонки и колонки типа TIME (драйвер отдает time.Time)
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		*t = TimeString(v)
		return nil
	case []byte:
		*t = TimeString(v)
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}
