// File: cmd/service/main.go
// @title        Project Hub API
// @version      0.1.0
// @description  CRUD service for users, projects and project memberships
// @BasePath     /
package main

import (
	"log"
)

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
