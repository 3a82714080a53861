// tilescene runs a tile scene with a keyboard-driven hero, static
// geometry that clamps movement and patrolling damage sources.
//
// Usage:
//
//	tilescene [--level path/to/level.tmx] [--config path] [--debug]
//
// Without --level a built-in demo room is used.
package main

import (
	"fmt"
	"os"

	"github.com/automoto/tilescene/config"
	"github.com/automoto/tilescene/fonts"
	"github.com/automoto/tilescene/scenes"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagLevel  string
	flagConfig string
	flagDebug  bool
	flagWidth  int
	flagHeight int
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene         Scene
	width, height int
}

func NewGame(scene Scene, width, height int) *Game {
	return &Game{scene: scene, width: width, height: height}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilescene",
	Short: "Tile scene with AABB movement clamping",
	Long: `Runs a 2D tile scene: arrow keys or WASD move the hero, static tiles
block movement and patrolling blocks cause contact damage.

Controls:
  Arrows/WASD - Move
  P/Esc       - Pause
  F3          - Toggle hit-box overlay

Examples:
  tilescene
  tilescene --level levels/room.tmx
  tilescene --config ./my-scene.yaml --debug`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagLevel, "level", "", "Path to a TMX level (default: built-in demo)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to config YAML (default: "+config.DefaultPath+")")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Debug logging and hit-box overlay")
	rootCmd.Flags().IntVar(&flagWidth, "width", 0, "Window width override")
	rootCmd.Flags().IntVar(&flagHeight, "height", 0, "Window height override")
}

func run(cmd *cobra.Command, _ []string) error {
	log.SetReportTimestamp(true)

	if err := config.Load(flagConfig); err != nil {
		return err
	}
	if cmd.Flags().Changed("width") {
		config.C.Width = flagWidth
	}
	if cmd.Flags().Changed("height") {
		config.C.Height = flagHeight
	}
	if err := config.Validate(); err != nil {
		return err
	}

	if flagDebug {
		log.SetLevel(log.DebugLevel)
		config.Debug.ShowHitBoxes = true
		config.Debug.LogClamps = true
	}

	if err := fonts.LoadDefaults(config.HUD.FontSize); err != nil {
		return err
	}

	world, err := scenes.NewWorld(flagLevel)
	if err != nil {
		return fmt.Errorf("build scene: %w", err)
	}

	w, h := world.Scene().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("tilescene")
	ebiten.SetTPS(config.C.TPS)

	return ebiten.RunGame(NewGame(world, w, h))
}
