// cmd/unitig-verify/main.go
package main

import (
	"unitig/internal/appshell"
	"unitig/internal/verifyapp"
)

func main() { appshell.Main(verifyapp.RunContext) }
