package main

import (
	"fmt"
	"github.com/hajimehoshi/ebiten/v2"
	_ "image/png"
)

// AnimationFps is the global number that says how fast animations run.
// It doesn't need to match the 60 updates per second, a spider moving its legs
// looks fine at a much lower rate.
const AnimationFps = 8

// Animation is a sequence of images that loops. It holds no state about where
// in the sequence it is: many sprites share one Animation and each one picks
// its image based on its own age.
type Animation struct {
	Imgs []*ebiten.Image
}

// NewAnimation loads "name-01.png", "name-02.png", ... until a file is
// missing. If there is no numbered file, it loads "name.png".
func NewAnimation(fsys FS, name string) (a Animation) {
	count := 1
	for {
		fullName := name + "-" + fmt.Sprintf("%02d", count) + ".png"
		if !FileExists(fsys, fullName) {
			break
		}

		img := LoadImage(fsys, fullName)
		a.Imgs = append(a.Imgs, img)
		count++
	}

	if count == 1 {
		fullName := name + ".png"
		img := LoadImage(fsys, fullName)
		a.Imgs = append(a.Imgs, img)
	}
	return
}

// ImgIdxAt returns the index of the image shown elapsedMs after the
// animation started.
func (a *Animation) ImgIdxAt(elapsedMs int64) int64 {
	if len(a.Imgs) == 0 || elapsedMs < 0 {
		return 0
	}
	return elapsedMs * AnimationFps / 1000 % int64(len(a.Imgs))
}

func (a *Animation) ImgAt(elapsedMs int64) *ebiten.Image {
	return a.Imgs[a.ImgIdxAt(elapsedMs)]
}
