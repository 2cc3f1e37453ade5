package main

import "github.com/FACorreiaa/go-starwars-favorites/cmd"

// @title        Star Wars Favorites API
// @version      1.0
// @description  Users, planets, characters, starships and the favorites that link them.
// @BasePath     /
func main() {
	cmd.Execute()
}
