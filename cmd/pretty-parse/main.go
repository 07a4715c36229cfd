// cmd/pretty-parse/main.go
package main

import (
	"blasthits/internal/appshell"
	"blasthits/internal/parseapp"
)

func main() {
	appshell.Main(parseapp.Run)
}
