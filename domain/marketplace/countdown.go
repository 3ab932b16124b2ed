package marketplace

import (
	"fmt"
	"time"
)

// Countdown is the derived remaining-time presentation of an auction.
type Countdown struct {
	Ended bool   `json:"ended"`
	Label string `json:"label"`
}

// Remaining derives the countdown label from the auction end time
// against the given wall-clock time. It is pure; callers re-evaluate on
// a tick since the result changes as time passes.
//
// The label renders the two coarsest units, never going below minutes:
// "2d 3h", "3h 15m", "15m", and "0m" when under a minute.
func Remaining(endTime, now time.Time) Countdown {
	left := endTime.Unix() - now.Unix()
	if left <= 0 {
		return Countdown{Ended: true, Label: "Ended"}
	}

	days := left / 86400
	hours := (left % 86400) / 3600
	minutes := (left % 3600) / 60

	switch {
	case days > 0:
		return Countdown{Label: fmt.Sprintf("%dd %dh", days, hours)}
	case hours > 0:
		return Countdown{Label: fmt.Sprintf("%dh %dm", hours, minutes)}
	default:
		return Countdown{Label: fmt.Sprintf("%dm", minutes)}
	}
}
