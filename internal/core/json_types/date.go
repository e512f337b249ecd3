package json_types

import (
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date - календарная дата без времени суток
// На проводе всегда "2006-01-02", но из реестра дата может прийти
// и полным RFC3339 timestamp'ом - тогда обрезаем до даты
type Date struct {
	Time time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(str string) (Date, error) {
	parsed, err := time.Parse(dateLayout, str)
	if err != nil {
		// Если не удалось, пробуем как полный timestamp
		parsed, err = time.Parse(time.RFC3339, str)
		if err != nil {
			return Date{}, fmt.Errorf("failed to parse date %q: %w", str, err)
		}
	}
	return NewDate(parsed.Year(), parsed.Month(), parsed.Day()), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) < 2 {
		return fmt.Errorf("failed to parse date: %s", string(data))
	}
	// Убираем кавычки вокруг строки
	str := string(data[1 : len(data)-1])

	parsed, err := ParseDate(str)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d Date) String() string {
	return d.Time.Format(dateLayout)
}

func (d Date) Weekday() time.Weekday {
	return d.Time.Weekday()
}

func (d Date) IsZero() bool {
	return d.Time.IsZero()
}

func (d Date) Equal(other Date) bool {
	return d.String() == other.String()
}

func (d Date) After(other Date) bool {
	return d.Time.After(other.Time)
}

// AddDays возвращает новую дату, где день увеличен на days, а таймзона остается прежней
func (d Date) AddDays(days int) Date {
	next := d.Time.AddDate(0, 0, days)
	return NewDate(next.Year(), next.Month(), next.Day())
}

// At совмещает дату с минутой дня в заданной таймзоне
func (d Date) At(minute ClockMinute, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Time.Year(), d.Time.Month(), d.Time.Day(), int(minute)/60, int(minute)%60, 0, 0, loc)
}
