package services

import "time"

// SameDayCutoffHour is the local hour after which same-day delivery closes.
const SameDayCutoffHour = 18

type DeliveryService struct {
	Now func() time.Time
}

func NewDeliveryService() *DeliveryService {
	return &DeliveryService{Now: time.Now}
}

type DeliveryDate struct {
	Date    string `json:"date"` // YYYY-MM-DD
	Weekday string `json:"weekday"`
}

var weekdaysRu = [...]string{
	"воскресенье", "понедельник", "вторник", "среда", "четверг", "пятница", "суббота",
}

// Dates returns the next n candidate delivery days for the storefront picker.
// Same-day delivery is offered only before the cutoff hour.
func (s *DeliveryService) Dates(n int) []DeliveryDate {
	now := s.Now()
	start := now
	if now.Hour() >= SameDayCutoffHour {
		start = now.AddDate(0, 0, 1)
	}

	out := make([]DeliveryDate, 0, n)
	for i := 0; i < n; i++ {
		d := start.AddDate(0, 0, i)
		out = append(out, DeliveryDate{
			Date:    d.Format("2006-01-02"),
			Weekday: weekdaysRu[d.Weekday()],
		})
	}
	return out
}
