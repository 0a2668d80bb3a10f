package render

// Camera переводит мировые координаты (y вверх) в экранные (y вниз).
type Camera struct {
	Projection   Projection
	ScreenWidth  float64
	ScreenHeight float64
}

// PixelsPerUnit — сколько пикселей экрана на одну мировую единицу по осям.
func (c Camera) PixelsPerUnit() (float64, float64) {
	w, h := c.Projection.Width(), c.Projection.Height()
	if w == 0 || h == 0 {
		return 0, 0
	}
	return c.ScreenWidth / w, c.ScreenHeight / h
}

// WorldToScreen — мировая точка в пиксели.
func (c Camera) WorldToScreen(x, y float64) (float64, float64) {
	sx, sy := c.PixelsPerUnit()
	return (x - c.Projection.Left) * sx, (c.Projection.Top - y) * sy
}

// ScreenToNormalized — пиксели в нормализованные координаты [0,1].
func (c Camera) ScreenToNormalized(px, py float64) (float64, float64) {
	if c.ScreenWidth == 0 || c.ScreenHeight == 0 {
		return 0, 0
	}
	return px / c.ScreenWidth, py / c.ScreenHeight
}
