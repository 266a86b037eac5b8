package appointment

import (
	"github.com/BruksfildServices01/barberias/internal/models"
	"github.com/BruksfildServices01/barberias/internal/timeofday"
)

// Subtract removes taken times from candidates, keeping candidate order and
// dropping repeated candidates. Times that fail to parse are compared raw.
func Subtract(candidates []string, taken []string) []string {
	busy := make(map[string]struct{}, len(taken))
	for _, t := range taken {
		busy[canonical(t)] = struct{}{}
	}

	free := make([]string, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		key := canonical(c)
		if _, ok := busy[key]; ok {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		free = append(free, key)
	}
	return free
}

// TakenTimes extracts the booked times of a day.
func TakenTimes(list []models.Appointment) []string {
	out := make([]string, 0, len(list))
	for _, ap := range list {
		out = append(out, ap.Time)
	}
	return out
}

func canonical(t string) string {
	n, err := timeofday.Normalize(t)
	if err != nil {
		return t
	}
	return n
}
