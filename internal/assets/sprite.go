// internal/assets/sprite.go
package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	"comet-sky/internal/config"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Встроенная комета: голова смотрит вверх, хвост вниз,
// что соответствует поправке ориентации 90°.
//
//go:embed comet.svg
var cometSVGData []byte

// ResolveImagePath выбирает путь к спрайту: заданный, затем запасной.
// Пустая строка означает встроенный спрайт.
func ResolveImagePath(configured string) string {
	for _, path := range []string{configured, config.DefaultImagePath} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// LoadSprite загружает спрайт кометы и вписывает его в квадрат size×size.
// При любой ошибке используется встроенный SVG: отсутствие картинки
// не должно останавливать эффект.
func LoadSprite(path string, size int) image.Image {
	if path != "" {
		img, err := decodeFile(path)
		if err == nil {
			log.Printf("Loaded comet sprite %s", path)
			return fit(img, size)
		}
		log.Printf("WARNING: failed to load comet sprite %s, using built-in: %v", path, err)
	}

	img, err := svgToImage(cometSVGData, size, size)
	if err != nil {
		// встроенный SVG валиден, сюда попадаем только при поломке сборки
		log.Printf("WARNING: built-in comet sprite is broken: %v", err)
		return image.NewRGBA(image.Rect(0, 0, size, size))
	}
	return img
}

func decodeFile(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sprite: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode sprite: %w", err)
	}
	return img, nil
}

// svgToImage растеризует SVG в RGBA нужного размера
func svgToImage(svgData []byte, width, height int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}

// fit масштабирует картинку с сохранением пропорций и центрирует её.
func fit(src image.Image, size int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	if w == 0 || h == 0 {
		return dst
	}

	tw, th := size, size
	if w > h {
		th = max(1, size*h/w)
	} else {
		tw = max(1, size*w/h)
	}
	ox, oy := (size-tw)/2, (size-th)/2

	draw.CatmullRom.Scale(dst, image.Rect(ox, oy, ox+tw, oy+th), src, b, draw.Over, nil)
	return dst
}
