package main

import (
	"embed"
	"fmt"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"golang.org/x/image/font"
	"image/color"
	_ "image/png"
	"log"
	"os"
	"time"
)

// ReleaseVersion is the version of an executable built and given to someone,
// either as a desktop executable or a .wasm on the browser. It must change
// every time a new executable is handed out, and every time SimulationVersion
// or InputVersion change.
const ReleaseVersion = 3

//go:embed data/*
var embeddedFiles embed.FS

type GameState int64

const (
	PlayScreen GameState = iota
	Playback
)

type Gui struct {
	Config
	Animations
	world               World
	FSys                FS
	imgDoge             *ebiten.Image
	folderWatcher1      FolderWatcher
	folderWatcher2      FolderWatcher
	defaultFont         font.Face
	playthrough         Playthrough
	frameIdx            int64
	state               GameState
	devModeEnabled      bool
	variantOverride     string
	sensors             Sensors
	motion              *MotionAccess
	startTime           time.Time
	canvasArea          Rectangle
	playbackArea        Rectangle
	buttonPlaybackPlay  Rectangle
	buttonPlaybackBar   Rectangle
	pointer             PointerTracker
	keepHistory         bool
	virtualPointer      Vec
	playbackPaused      bool
	pressedKeys         []ebiten.Key
	justPressedKeys     []ebiten.Key // keys pressed in this frame
	justPressedTouches  []ebiten.TouchID
	FrameSkipShiftArrow int64
	FrameSkipArrow      int64
	backgroundColor     color.NRGBA
	marginColor         color.NRGBA
	spriteTint          color.NRGBA
}

type Config struct {
	Variant              string  `yaml:"Variant"`
	StartState           string  `yaml:"StartState"`
	PlaybackFile         string  `yaml:"PlaybackFile"`
	RecordToFile         bool    `yaml:"RecordToFile"`
	RecordingFile        string  `yaml:"RecordingFile"`
	FrameRateIndependent bool    `yaml:"FrameRateIndependent"`
	ShakeThreshold       float64 `yaml:"ShakeThreshold"`
	CanvasFraction       float64 `yaml:"CanvasFraction"`
	ImageScale           float64 `yaml:"ImageScale"`
	ShowDiagnostics      bool    `yaml:"ShowDiagnostics"`
	BackgroundColor      string  `yaml:"BackgroundColor"`
	MarginColor          string  `yaml:"MarginColor"`
	SpriteTint           string  `yaml:"SpriteTint"`
}

type Animations struct {
	animSpider Animation
}

func main() {
	// The desktop build is meant to be started with a double click as well,
	// don't refuse to run outside a terminal.
	cobra.MousetrapHelpText = ""
	if err := NewRootCommand().Execute(); err != nil {
		// cobra already printed the error.
		os.Exit(1)
	}
}

func NewRootCommand() *cobra.Command {
	var devMode bool
	var variant string
	cmd := &cobra.Command{
		Use:   "shake [playback-file]",
		Short: "A tilting doge or a swarm of spiders that react to taps and shakes",
		Long: "Opens the sketch in a window. If a playback file is given, the " +
			"recorded session is replayed instead.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if variant != "" {
				if _, err := ParseVariant(variant); err != nil {
					return err
				}
			}
			playbackFile := ""
			if len(args) == 1 {
				playbackFile = args[0]
			}
			RunGui(devMode, variant, playbackFile)
			return nil
		},
	}
	cmd.Flags().BoolVar(&devMode, "dev", false,
		"use data/config-dev.yaml and reload data when it changes on disk")
	cmd.Flags().StringVar(&variant, "variant", "",
		"what to show, burst or swarm (overrides the config file)")
	return cmd
}

func RunGui(devMode bool, variant string, playbackFile string) {
	var g Gui
	g.devModeEnabled = devMode
	g.variantOverride = variant
	g.FrameSkipShiftArrow = 10
	g.FrameSkipArrow = 1

	if !FileExists(os.DirFS("."), "data") {
		g.FSys = &embeddedFiles
	} else {
		g.FSys = os.DirFS(".").(FS)
		g.folderWatcher1.Folder = "data/gui"
		g.folderWatcher2.Folder = "data"
		// Let the watchers record the current timestamps, otherwise the first
		// check reports a change and reloads everything right away.
		g.folderWatcher1.FolderContentsChanged()
		g.folderWatcher2.FolderContentsChanged()
	}

	g.LoadGuiData()

	if playbackFile != "" {
		g.StartState = "Playback"
		g.PlaybackFile = playbackFile
	}

	switch g.StartState {
	case "Playback":
		g.state = Playback
		g.playthrough = DeserializePlaythrough(ReadFile(g.PlaybackFile))
	case "Play":
		g.state = PlayScreen
		v, err := ParseVariant(g.Variant)
		Check(err)
		g.playthrough = NewPlaythrough(v, time.Now().UnixNano())
		g.playthrough.FrameRateIndependent = g.FrameRateIndependent
	default:
		panic(fmt.Errorf("invalid g.StartState: %s", g.StartState))
	}

	g.world = NewWorldFromPlaythrough(&g.playthrough)
	g.sensors, g.motion = NewPlatform(g.ShakeThreshold)
	g.keepHistory = CanWriteFiles
	g.startTime = time.Now()
	log.Printf("starting %v, release %d, playthrough %s",
		g.world.Variant, ReleaseVersion, g.playthrough.Id)

	err := ebiten.RunGame(&g)
	Check(err)
}
