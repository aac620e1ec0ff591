package main

import "taskboard/internal/app"

// @title           Taskboard API
// @version         1.0
// @description     Project and task tracker with due-date reminders.
// @BasePath        /
func main() {
	app.Run()
}
