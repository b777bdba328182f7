package main

import (
	"bytes"
	"compress/flate"
	"encoding/binary"
	"github.com/goccy/go-yaml"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lucasb-eyer/go-colorful"
	"image"
	"image/color"
	"io"
	"io/fs"
	"os"
)

var CheckCrashes = true
var CheckFailed error

func Check(e error) {
	if e != nil {
		CheckFailed = e
		if CheckCrashes {
			panic(e)
		}
	}
}

// FS groups together the filesystem interfaces that are common between
// embed.FS and what os.DirFS() returns. This way the code that reads data from
// disk works the same whether the files are embedded or not.
type FS interface {
	fs.FS
	fs.ReadFileFS
	fs.ReadDirFS
}

func LoadImage(fsys FS, str string) *ebiten.Image {
	file, err := fsys.Open(str)
	Check(err)
	if err != nil {
		return nil
	}
	defer CloseFile(file)

	img, _, err := image.Decode(file)
	Check(err)
	if err != nil {
		return nil
	}

	return ebiten.NewImageFromImage(img)
}

func LoadYAML(fsys FS, filename string, v any) {
	data, err := fsys.ReadFile(filename)
	Check(err)
	if err != nil {
		return
	}
	Check(yaml.Unmarshal(data, v))
}

// ParseColor reads a color written as "#rrggbb", the way colors are written
// in the config files.
func ParseColor(hex string) color.NRGBA {
	c, err := colorful.Hex(hex)
	Check(err)
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func CloseFile(f fs.File) {
	Check(f.Close())
}

func ReadFile(name string) []byte {
	data, err := os.ReadFile(name)
	Check(err)
	return data
}

func FileExists(fsys fs.FS, name string) bool {
	file, err := fsys.Open(name)
	if err == nil {
		CloseFile(file)
		return true
	} else {
		return false
	}
}

func Serialize(w io.Writer, data any) {
	Check(binary.Write(w, binary.LittleEndian, data))
}

func Deserialize(r io.Reader, data any) {
	Check(binary.Read(r, binary.LittleEndian, data))
}

func SerializeSlice[T any](w io.Writer, s []T) {
	Serialize(w, int64(len(s)))
	Serialize(w, s)
}

func DeserializeSlice[T any](r io.Reader, s *[]T) {
	var n int64
	Deserialize(r, &n)
	*s = make([]T, n)
	Deserialize(r, *s)
}

func Zip(data []byte) []byte {
	buf := new(bytes.Buffer)
	w, err := flate.NewWriter(buf, flate.BestCompression)
	Check(err)
	_, err = w.Write(data)
	Check(err)
	Check(w.Close())
	return buf.Bytes()
}

func Unzip(data []byte) []byte {
	r := flate.NewReader(bytes.NewReader(data))
	defer func() { Check(r.Close()) }()
	unzipped, err := io.ReadAll(r)
	Check(err)
	return unzipped
}
