// cmd/hit-plot/main.go
package main

import (
	"blasthits/internal/appshell"
	"blasthits/internal/plotapp"
)

func main() {
	appshell.Main(plotapp.Run)
}
