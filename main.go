/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/podforge/podforge-api/cmd"

// @title           Podforge API
// @version         1.0
// @description     API for generating podcasts from source content
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @BasePath        /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 JWT bearer token. Prefix the token with "Bearer ".
func main() {
	cmd.Execute()
}
