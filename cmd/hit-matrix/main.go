// cmd/hit-matrix/main.go
package main

import (
	"blasthits/internal/appshell"
	"blasthits/internal/matrixapp"
)

func main() {
	appshell.Main(matrixapp.Run)
}
