package raster

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// FitzRasterizer converts PDF documents to PNG page images through
// MuPDF.
type FitzRasterizer struct{}

// NewFitzRasterizer creates a new MuPDF-backed rasterizer.
func NewFitzRasterizer() *FitzRasterizer {
	return &FitzRasterizer{}
}

// Rasterize writes one PNG per page of the PDF into outputDir at the
// given DPI and returns the image paths. Images are named
// <stem>0<page>.png, all in one flat directory.
func (r *FitzRasterizer) Rasterize(pdfPath, outputDir string, dpi int) ([]string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("raster: failed to create %s: %w", outputDir, err)
	}

	doc, err := fitz.New(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("raster: failed to open %s: %w", pdfPath, err)
	}
	defer doc.Close()

	stem := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))

	var images []string
	for page := 0; page < doc.NumPage(); page++ {
		img, err := doc.ImageDPI(page, float64(dpi))
		if err != nil {
			return nil, fmt.Errorf("raster: failed to render page %d of %s: %w", page+1, pdfPath, err)
		}
		imgPath := filepath.Join(outputDir, fmt.Sprintf("%s0%d.png", stem, page+1))
		if err := writePNG(imgPath, img); err != nil {
			return nil, err
		}
		images = append(images, imgPath)
	}
	return images, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("raster: failed to encode %s: %w", path, err)
	}
	return f.Close()
}
