package main

import (
	"encoding/json"
	"flag"
	"io/fs"
	"log"
	"math"
	"os"

	"github.com/automoto/generic-star/assets"
	"github.com/automoto/generic-star/config"
	"github.com/automoto/generic-star/fonts"
	"github.com/automoto/generic-star/persistence"
	"github.com/automoto/generic-star/rooms"
	"github.com/automoto/generic-star/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	dmath "github.com/yohamta/donburi/features/math"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene  Scene
	width  int
	height int
}

func NewGame(scene *scenes.RoomScene) *Game {
	room := scene.Room()
	return &Game{
		scene:  scene,
		width:  room.ViewWidth,
		height: room.ViewHeight,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.width, g.height
}

func main() {
	gameDir := flag.String("game", "", "Game directory with images/, sounds/ and rooms/ (empty = bundled demo)")
	roomName := flag.String("room", config.Game.StartRoom, "Room to start in")
	gravity := flag.Float64("gravity", math.NaN(), "World gravity in px/s² pointing down (unset = no world gravity)")
	debug := flag.Bool("debug", false, "Log corrected inputs and draw body outlines")
	schema := flag.Bool("schema", false, "Print the room file JSON schema and exit")
	flag.Parse()

	if *schema {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rooms.Schema()); err != nil {
			log.Fatalf("Failed to write schema: %v", err)
		}
		return
	}

	config.Debug.Enabled = *debug
	if err := fonts.LoadDefaults(config.UI.DebugFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	var game fs.FS = assets.Demo()
	if *gameDir != "" {
		game = os.DirFS(*gameDir)
	}

	store, err := persistence.Open("generic-star")
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	opts := scenes.SessionOptions{Game: game, Debug: *debug, Store: store}
	if !math.IsNaN(*gravity) {
		opts.Gravity = &dmath.Vec2{X: 0, Y: *gravity}
	}
	session, err := scenes.NewSession(opts)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}
	defer session.Close()

	room, err := session.LoadRoom(*roomName)
	if err != nil {
		log.Fatalf("Failed to load room: %v", err)
	}
	scene, err := scenes.NewRoomScene(session, room)
	if err != nil {
		log.Fatalf("Failed to start room: %v", err)
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(room.ViewWidth, room.ViewHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetFullscreen(session.Settings.Fullscreen)

	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		log.Fatal(err)
	}
}
