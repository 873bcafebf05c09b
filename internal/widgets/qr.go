package widgets

import (
	"image"

	"github.com/eink-works/gxui/internal/render"
	"github.com/eink-works/gxui/internal/ui"
)

const defaultQRSize = 128

// QRCode renders a QR code for a payload string. The image is generated once
// per payload and cached.
type QRCode struct {
	ui.Core
	payload string
	img     image.Image
	genErr  error
}

func NewQRCode(id, payload string) *QRCode {
	return &QRCode{Core: ui.NewCore(id), payload: payload}
}

func (q *QRCode) SetPayload(payload string) {
	if payload == q.payload {
		return
	}
	q.payload = payload
	q.img = nil
	q.genErr = nil
}

func (q *QRCode) Draw(d render.Drawer, rg *render.Region) {
	if rg.Width == 0 || rg.Height == 0 {
		rg.Width = defaultQRSize
		rg.Height = defaultQRSize
	}
	if q.img == nil && q.genErr == nil {
		q.img, q.genErr = render.QRCodeImage(q.payload, rg.Width)
	}
	if q.img == nil {
		return
	}
	d.DrawImageInRect(q.img, rg.Rect(), render.ScaleModeFit)
}
