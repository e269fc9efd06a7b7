// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 960
	ScreenHeight = 640
	MaxDeltaTime = 0.06

	GalleryPadding = 24.0 // поля вокруг сот
	GalleryTop     = 72.0 // место под кнопку звука
	GalleryFill    = 0.92 // радиус шестиугольника относительно шага сот

	PreviewMargin = 48.0

	SoundButtonX    = 40.0
	SoundButtonY    = 36.0
	SoundButtonSize = 18.0 // радиус кнопки

	ClickDebounceTime = 100 // мс
)

var (
	BackgroundColor = color.RGBA{236, 242, 248, 255}

	SoundButtonColors = []color.Color{
		color.RGBA{160, 160, 170, 220}, // выключена
		color.RGBA{70, 130, 180, 220},  // включена
	}
	SoundButtonStroke = color.RGBA{240, 240, 240, 255}

	// GalleryLabels — подписи шестиугольников в галерее
	GalleryLabels = []string{"a", "b", "c", "d", "e", "f", "g", "ß"}
)
