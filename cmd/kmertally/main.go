// cmd/kmertally/main.go
package main

import (
	"kmertally/internal/app"
	"kmertally/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
