package main

import "github.com/AlMamunFarhad/job-portal/internal/app"

func main() {
	app.Run()
}
