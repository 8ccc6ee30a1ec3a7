package utils

import "time"

// ParseOptionalDate interpreta datas no formato YYYY-MM-DD; string vazia devolve nil
func ParseOptionalDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
