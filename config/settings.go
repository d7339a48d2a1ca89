package config

// GameConfig describes where a game's resources live inside its directory.
type GameConfig struct {
	ImagesDir string
	SoundsDir string
	RoomsDir  string

	// Room loaded when none is requested
	StartRoom string

	// Default room dimensions for new rooms
	RoomWidth  int
	RoomHeight int
}

// Game is the global game layout configuration
var Game GameConfig

func init() {
	Game = GameConfig{
		ImagesDir:  "images",
		SoundsDir:  "sounds",
		RoomsDir:   "rooms",
		StartRoom:  "main",
		RoomWidth:  640,
		RoomHeight: 480,
	}
}
