package document

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

// EmbedQR encodes payload as a QR image and places it on the canvas,
// centered horizontally, w units wide, with its top edge at y. The
// staged PNG lives in the OS temp directory under a unique name and is
// removed once embedded, whether or not embedding succeeds.
func EmbedQR(c Canvas, payload string, y, w float64) error {
	tmp := filepath.Join(os.TempDir(), "billgen-qr-"+uuid.NewString()+".png")
	if err := qrcode.WriteFile(payload, qrcode.Medium, 256, tmp); err != nil {
		return fmt.Errorf("document: failed to generate QR image: %w", err)
	}
	defer os.Remove(tmp)

	x := (c.Width() - w) / 2
	c.Image(tmp, x, y, w)
	return nil
}
