package texture

import (
	"os"

	"github.com/Faultbox/skr/internal/engine/errstate"
)

// TGA image type constants.
const (
	TGATypeUncompressed = 2  // Uncompressed true-color
	TGATypeRLE          = 10 // RLE compressed true-color
)

// TGALoader is an ImageLoader for TGA files, covering the uncompressed
// and RLE true-color variants. It exists so the demo driver has a
// loader to install; embedders are free to bring their own.
type TGALoader struct{}

// Load reads and decodes a TGA file into RGBA pixels.
func (TGALoader) Load(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errstate.Wrap(errstate.KindIO, err, "failed to open %s", path)
	}
	return DecodeTGA(data)
}

// Free is a no-op: decoded pixels are Go memory.
func (TGALoader) Free(*Image) {}

// DecodeTGA decodes a TGA image into RGBA pixels (4 channels, top-down
// row order). Supports uncompressed true-color (type 2) and RLE
// compressed (type 10) files with 24 or 32 bits per pixel.
func DecodeTGA(data []byte) (*Image, error) {
	if len(data) < 18 {
		return nil, errstate.New(errstate.KindExternalLoad, "TGA data too short")
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return nil, errstate.New(errstate.KindExternalLoad, "color-mapped TGA not supported")
	}
	if imageType != TGATypeUncompressed && imageType != TGATypeRLE {
		return nil, errstate.New(errstate.KindExternalLoad,
			"unsupported TGA type %d (only uncompressed/RLE true-color supported)", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, errstate.New(errstate.KindExternalLoad,
			"unsupported TGA bit depth %d (only 24/32 supported)", bpp)
	}

	offset := 18 + idLength
	if offset > len(data) {
		return nil, errstate.New(errstate.KindExternalLoad, "TGA data truncated")
	}
	pixelData := data[offset:]

	img := &Image{
		Pixels:   make([]byte, width*height*4),
		Width:    width,
		Height:   height,
		Channels: 4,
	}
	bytesPerPixel := bpp / 8

	// Bit 5 of the descriptor means rows are stored top-to-bottom.
	topToBottom := (descriptor & 0x20) != 0

	if imageType == TGATypeUncompressed {
		if len(pixelData) < width*height*bytesPerPixel {
			return nil, errstate.New(errstate.KindExternalLoad, "TGA pixel data truncated")
		}
		for i := 0; i < width*height; i++ {
			src := i * bytesPerPixel
			img.setBGRA(i%width, i/width, topToBottom, pixelData[src:src+bytesPerPixel])
		}
		return img, nil
	}

	decodeTGARLE(img, pixelData, bytesPerPixel, topToBottom)
	return img, nil
}

// setBGRA writes one BGR(A)-ordered source pixel at logical (x, y),
// flipping vertically for bottom-up files.
func (img *Image) setBGRA(x, y int, topToBottom bool, px []byte) {
	destY := y
	if !topToBottom {
		destY = img.Height - 1 - y
	}
	i := (destY*img.Width + x) * 4
	img.Pixels[i] = px[2]
	img.Pixels[i+1] = px[1]
	img.Pixels[i+2] = px[0]
	if len(px) == 4 {
		img.Pixels[i+3] = px[3]
	} else {
		img.Pixels[i+3] = 255
	}
}

// decodeTGARLE expands RLE-compressed pixel packets. Truncated streams
// stop early rather than erroring, leaving the remaining pixels zero.
func decodeTGARLE(img *Image, pixelData []byte, bytesPerPixel int, topToBottom bool) {
	pixelCount := img.Width * img.Height
	pixelIdx := 0
	dataIdx := 0

	for pixelIdx < pixelCount && dataIdx < len(pixelData) {
		packet := pixelData[dataIdx]
		dataIdx++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			// RLE packet: one pixel repeated count times
			if dataIdx+bytesPerPixel > len(pixelData) {
				break
			}
			px := pixelData[dataIdx : dataIdx+bytesPerPixel]
			dataIdx += bytesPerPixel
			for i := 0; i < count && pixelIdx < pixelCount; i++ {
				img.setBGRA(pixelIdx%img.Width, pixelIdx/img.Width, topToBottom, px)
				pixelIdx++
			}
		} else {
			// Raw packet: count literal pixels
			for i := 0; i < count && pixelIdx < pixelCount; i++ {
				if dataIdx+bytesPerPixel > len(pixelData) {
					return
				}
				px := pixelData[dataIdx : dataIdx+bytesPerPixel]
				dataIdx += bytesPerPixel
				img.setBGRA(pixelIdx%img.Width, pixelIdx/img.Width, topToBottom, px)
				pixelIdx++
			}
		}
	}
}
