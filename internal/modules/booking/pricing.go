package booking

import (
	"math"
	"time"

	"petsitter/internal/domain"
)

// RateCard is a listing's price points. PricePerHour is always set; the
// day and night rates are optional.
type RateCard struct {
	PricePerHour  float64
	PricePerDay   *float64
	PricePerNight *float64
}

// Quote is the pricing result. Exactly one of Hours/Days is non-nil,
// depending on which billing branch fired.
type Quote struct {
	Hours *float64
	Days  *int
	Price float64
}

// ComputeQuote derives duration and price from the service type, the time
// range and the rate card.
//
//   - dog_walking, grooming: always hourly.
//   - daycare: daily when a day rate exists, otherwise hourly.
//   - pet_sitting: hourly up to 24h, then daily when a day rate exists,
//     otherwise hourly on the full elapsed time.
//   - overnight_care: night rate, then day rate, then hourly.
//
// Days are billed as ceil(hours/24). Prices are rounded to 2 decimal
// places after the branch.
func ComputeQuote(service domain.ServiceType, start, end time.Time, rates RateCard) (Quote, error) {
	totalHours := end.Sub(start).Hours()
	totalDays := int(math.Ceil(totalHours / 24))

	var q Quote
	switch service {
	case domain.ServiceDogWalking, domain.ServiceGrooming:
		q = hourlyQuote(totalHours, rates.PricePerHour)

	case domain.ServiceDaycare:
		if rates.PricePerDay != nil {
			q = dailyQuote(totalDays, *rates.PricePerDay)
		} else {
			q = hourlyQuote(totalHours, rates.PricePerHour)
		}

	case domain.ServicePetSitting:
		switch {
		case totalHours <= 24:
			q = hourlyQuote(totalHours, rates.PricePerHour)
		case rates.PricePerDay != nil:
			q = dailyQuote(totalDays, *rates.PricePerDay)
		default:
			q = hourlyQuote(totalHours, rates.PricePerHour)
		}

	case domain.ServiceOvernightCare:
		switch {
		case rates.PricePerNight != nil:
			q = dailyQuote(totalDays, *rates.PricePerNight)
		case rates.PricePerDay != nil:
			q = dailyQuote(totalDays, *rates.PricePerDay)
		default:
			q = hourlyQuote(totalHours, rates.PricePerHour)
		}

	default:
		return Quote{}, ErrInvalidServiceType
	}

	q.Price = math.Round(q.Price*100) / 100
	return q, nil
}

func hourlyQuote(hours, rate float64) Quote {
	return Quote{Hours: &hours, Price: hours * rate}
}

func dailyQuote(days int, rate float64) Quote {
	return Quote{Days: &days, Price: float64(days) * rate}
}
