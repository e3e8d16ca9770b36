package main

import "drivn/internal/game"

func main() {
	game.RunDesktop()
}
