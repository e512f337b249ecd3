package json_types

import (
	"encoding/json"
	"fmt"
	"time"
)

// ClockMinute - минута дня (0-1439)
// На проводе представлена строкой "HH:MM", допускаем также "HH:MM:SS"
type ClockMinute int

func NewClockMinute(hour, minute int) ClockMinute {
	return ClockMinute(hour*60 + minute)
}

func (m *ClockMinute) UnmarshalJSON(data []byte) error {
	if len(data) < 2 {
		return fmt.Errorf("failed to parse clock minute: %s", string(data))
	}
	// Убираем кавычки вокруг строки
	str := string(data[1 : len(data)-1])

	parsedTime, err := time.Parse("15:04", str)
	if err != nil {
		parsedTime, err = time.Parse("15:04:05", str)
		if err != nil {
			return fmt.Errorf("failed to parse clock minute %q: %w", str, err)
		}
	}

	*m = NewClockMinute(parsedTime.Hour(), parsedTime.Minute())
	return nil
}

func (m ClockMinute) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m ClockMinute) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}
