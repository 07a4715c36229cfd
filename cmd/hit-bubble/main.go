// cmd/hit-bubble/main.go
package main

import (
	"blasthits/internal/appshell"
	"blasthits/internal/bubbleapp"
)

func main() {
	appshell.Main(bubbleapp.Run)
}
