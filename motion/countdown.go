package motion

import (
	"fmt"
	"time"
)

// Remaining is a duration decomposed into the four values the countdown
// displays. All components use floored integer division; there is no
// rounding up.
type Remaining struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// SplitDuration decomposes a remaining duration into whole days, hours,
// minutes and seconds. Negative durations decompose to all zeros; the
// caller is expected to have treated them as "finished" already.
func SplitDuration(d time.Duration) Remaining {
	total := int(d / time.Second)
	if total < 0 {
		return Remaining{}
	}
	return Remaining{
		Days:    total / 86400,
		Hours:   (total % 86400) / 3600,
		Minutes: (total % 3600) / 60,
		Seconds: total % 60,
	}
}

// Pad2 formats a countdown component zero-padded to two digits.
func Pad2(n int) string {
	return fmt.Sprintf("%02d", n)
}
