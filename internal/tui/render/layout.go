package render

// Insets 用于描述内边距。
type Insets struct {
	Top    int
	Left   int
	Right  int
	Bottom int
}

// VH 通过垂直/水平值构造 Insets。
func VH(vertical, horizontal int) Insets {
	return Insets{Top: vertical, Left: horizontal, Bottom: vertical, Right: horizontal}
}

// Rect 表示矩形区域。
type Rect struct {
	X, Y          int
	Width, Height int
}

// Inset 按内边距收紧矩形，使用饱和计算避免下溢。
func (r Rect) Inset(in Insets) Rect {
	w := r.Width - in.Left - in.Right
	h := r.Height - in.Top - in.Bottom
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{
		X:      r.X + in.Left,
		Y:      r.Y + in.Top,
		Width:  w,
		Height: h,
	}
}

// 弹窗最大尺寸，对应网页端的 max-w-3xl / h-[600px]。
const (
	modalMaxWidth  = 96
	modalMaxHeight = 30
)

// ModalRect 计算终端弹窗在屏幕中的居中区域。
func ModalRect(screenWidth, screenHeight int) Rect {
	area := Rect{Width: screenWidth, Height: screenHeight}.Inset(VH(1, 2))
	if area.Width > modalMaxWidth {
		area.X += (area.Width - modalMaxWidth) / 2
		area.Width = modalMaxWidth
	}
	if area.Height > modalMaxHeight {
		area.Y += (area.Height - modalMaxHeight) / 2
		area.Height = modalMaxHeight
	}
	return area
}
