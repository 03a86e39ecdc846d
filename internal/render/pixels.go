package render

// FillRGBA converts packed colors into opaque RGBA bytes in buf, four bytes
// per pixel. buf must hold at least 4*len(px) bytes.
func FillRGBA(buf []byte, px []Color) {
	for i, c := range px {
		base := i * 4
		r, g, b := c.Channels()
		buf[base+0] = r
		buf[base+1] = g
		buf[base+2] = b
		buf[base+3] = 0xff
	}
}
