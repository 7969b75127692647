// cmd/unitig-canon/main.go
package main

import (
	"unitig/internal/appshell"
	"unitig/internal/canonapp"
)

func main() { appshell.Main(canonapp.RunContext) }
