// Package main gitcoach practice workspace API
//
//	@title			gitcoach API
//	@version		1.0.0
//	@description	Practice workspaces for learning the git command line.
//	@termsOfService	http://swagger.io/terms/
//
//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html
//
//	@host			localhost:3000
//	@BasePath		/api/v1
package main

import "github.com/careersim/gitcoach/internal"

//go:generate swag init --parseDependency --outputTypes go -g ./main.go -o ./internal/server/docs

func main() {
	internal.Run()
}
