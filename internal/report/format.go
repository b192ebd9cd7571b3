package report

import (
	"fmt"
)

// FormatMinutes renders a minute count as "{hours} hr {minutes} min".
// Zero renders as "0 hr 0 min"; negative input is a programmer error and
// is not special-cased.
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%d hr %d min", minutes/60, minutes%60)
}
