package main

import (
	"os"

	"taskboard/internal/app"
)

// Intended to be run once per day (e.g. 10:00 on working days) by cron.
func main() {
	os.Exit(app.RunReminders())
}
