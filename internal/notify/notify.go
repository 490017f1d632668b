package notify

import (
	"fmt"
	"strings"

	"github.com/gen2brain/beeep"
)

func Info(title, message string) error {
	return beeep.Notify(title, message, "")
}

func Done(message string) error {
	return beeep.Alert("LifeHub", message, "")
}

// FormatCheckInPrompt builds the daily check-in reminder. missing lists the
// domains with no entry yet today.
func FormatCheckInPrompt(missing []string) (string, string) {
	title := "Daily check-in"
	if len(missing) == 0 {
		return title, "All caught up for today. Anything else to note down?"
	}
	msg := fmt.Sprintf("Nothing logged today for: %s. Take a minute to check in?", strings.Join(missing, ", "))
	return title, msg
}
