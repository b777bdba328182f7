package main

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"os"
	"time"
)

func (g *Gui) LoadGuiData() {
	// Read from the disk over and over until a full read is possible.
	// This repetition is meant to avoid crashes due to reading files
	// while they are still being written.
	// This repeated reading is only useful when we're not reading from the
	// embedded filesystem. When we're reading from the embedded filesystem we
	// want to crash as soon as possible. We might be in the browser, in which
	// case we want to see an error in the developer console instead of a page
	// that keeps trying to load and reports nothing.
	previousVal := CheckCrashes
	if g.FSys != FS(&embeddedFiles) {
		CheckCrashes = false
	}
	for {
		CheckFailed = nil
		if g.devModeEnabled {
			LoadYAML(g.FSys, "data/config-dev.yaml", &g.Config)
		} else {
			LoadYAML(g.FSys, "data/config.yaml", &g.Config)
		}
		g.imgDoge = LoadImage(g.FSys, "data/gui/doge.png")
		g.animSpider = NewAnimation(g.FSys, "data/gui/spider")
		g.backgroundColor = ParseColor(g.BackgroundColor)
		g.marginColor = ParseColor(g.MarginColor)
		g.spriteTint = ParseColor(g.SpriteTint)

		if CheckFailed == nil {
			break
		}
		time.Sleep(100 * time.Millisecond)
	}
	CheckCrashes = previousVal

	if g.variantOverride != "" {
		g.Variant = g.variantOverride
	}
	if g.CanvasFraction <= 0 || g.CanvasFraction > 1 {
		g.CanvasFraction = 0.8
	}
	if g.ImageScale <= 0 {
		g.ImageScale = 0.8
	}

	g.UpdateWindowSize()

	fontData, err := opentype.Parse(goregular.TTF)
	Check(err)

	g.defaultFont, err = opentype.NewFace(fontData, &opentype.FaceOptions{
		Size:    28,
		DPI:     72,
		Hinting: font.HintingVertical,
	})
	Check(err)
}

// FolderWatcher tells if the files in a folder changed since the last check.
// In developer mode it is used to reload the data as soon as it is edited.
type FolderWatcher struct {
	Folder string
	times  []time.Time
}

func (f *FolderWatcher) FolderContentsChanged() bool {
	if f.Folder == "" {
		return false
	}

	files, err := os.ReadDir(f.Folder)
	Check(err)
	if len(files) != len(f.times) {
		f.times = make([]time.Time, len(files))
	}
	changed := false
	for idx, file := range files {
		info, err := file.Info()
		Check(err)
		if f.times[idx] != info.ModTime() {
			changed = true
			f.times[idx] = info.ModTime()
		}
	}
	return changed
}
