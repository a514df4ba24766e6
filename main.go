package main

import "github.com/killallgit/podcast-gateway/cmd"

// @title           Podcast Search Gateway
// @version         1.0.0
// @description     GraphQL gateway exposing podcast search backed by the Podchaser API
// @contact.name    API Support
// @contact.url     https://github.com/killallgit/podcast-gateway
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
