package hal

import "image"

func rgb565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

func rgb888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// ToRGBA expands an RGB565 little-endian buffer into dst, reallocating dst
// when its bounds do not match w x h.
func ToRGBA(dst *image.RGBA, src []byte, w, h, stride int) *image.RGBA {
	if dst == nil || dst.Bounds().Dx() != w || dst.Bounds().Dy() != h {
		dst = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	for y := 0; y < h; y++ {
		row := y * stride
		for x := 0; x < w; x++ {
			off := row + x*2
			if off+1 >= len(src) {
				return dst
			}
			r, g, b := rgb888From565(uint16(src[off]) | uint16(src[off+1])<<8)
			j := dst.PixOffset(x, y)
			dst.Pix[j+0] = r
			dst.Pix[j+1] = g
			dst.Pix[j+2] = b
			dst.Pix[j+3] = 0xFF
		}
	}
	return dst
}

// Snapshot copies fb into dst as RGBA.
func Snapshot(fb Framebuffer, dst *image.RGBA) *image.RGBA {
	if fb == nil || fb.Format() != PixelFormatRGB565 {
		return dst
	}
	if s, ok := fb.(interface{ snapshotRGB565(dst []byte) }); ok {
		scratch := make([]byte, fb.StrideBytes()*fb.Height())
		s.snapshotRGB565(scratch)
		return ToRGBA(dst, scratch, fb.Width(), fb.Height(), fb.StrideBytes())
	}
	return ToRGBA(dst, fb.Buffer(), fb.Width(), fb.Height(), fb.StrideBytes())
}
