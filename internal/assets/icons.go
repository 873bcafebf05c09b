// Package assets holds the built-in icon bitmaps. Icons are 1-bit MSB-first
// rows padded to whole bytes, the format the icon conversion script emits.
package assets

import "github.com/eink-works/gxui/internal/render"

// IconHome is a 16x16 house silhouette.
var IconHome = render.Bitmap{Width: 16, Height: 16, Data: []byte{
	0x01, 0x80,
	0x03, 0xC0,
	0x07, 0xE0,
	0x0F, 0xF0,
	0x1F, 0xF8,
	0x3F, 0xFC,
	0x7F, 0xFE,
	0x3F, 0xFC,
	0x3F, 0xFC,
	0x3F, 0xFC,
	0x3C, 0x3C,
	0x3C, 0x3C,
	0x3C, 0x3C,
	0x3C, 0x3C,
	0x3F, 0xFC,
	0x00, 0x00,
}}

// IconGear is a 16x16 settings gear.
var IconGear = render.Bitmap{Width: 16, Height: 16, Data: []byte{
	0x01, 0x80,
	0x19, 0x98,
	0x3F, 0xFC,
	0x3F, 0xFC,
	0x7E, 0x7E,
	0xFC, 0x3F,
	0xFC, 0x3F,
	0x7E, 0x7E,
	0x7E, 0x7E,
	0xFC, 0x3F,
	0xFC, 0x3F,
	0x7E, 0x7E,
	0x3F, 0xFC,
	0x3F, 0xFC,
	0x19, 0x98,
	0x01, 0x80,
}}

// IconInfo is a 16x16 outlined info mark.
var IconInfo = render.Bitmap{Width: 16, Height: 16, Data: []byte{
	0x07, 0xE0,
	0x18, 0x18,
	0x21, 0x84,
	0x41, 0x82,
	0x40, 0x02,
	0x81, 0x81,
	0x81, 0x81,
	0x81, 0x81,
	0x81, 0x81,
	0x81, 0x81,
	0x40, 0x02,
	0x41, 0x82,
	0x21, 0x84,
	0x18, 0x18,
	0x07, 0xE0,
	0x00, 0x00,
}}

// IconPower is a 16x16 power symbol.
var IconPower = render.Bitmap{Width: 16, Height: 16, Data: []byte{
	0x01, 0x80,
	0x01, 0x80,
	0x19, 0x98,
	0x21, 0x84,
	0x41, 0x82,
	0x41, 0x82,
	0x81, 0x81,
	0x81, 0x81,
	0x80, 0x01,
	0x80, 0x01,
	0x40, 0x02,
	0x40, 0x02,
	0x20, 0x04,
	0x18, 0x18,
	0x07, 0xE0,
	0x00, 0x00,
}}
