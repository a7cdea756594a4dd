package world

type Direction int

const (
	MoveUp Direction = iota
	MoveDown
	MoveLeft
	MoveRight
)

func (d Direction) String() string {
	switch d {
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	}
	return "unknown"
}

// Neighbor returns the cell reached by moving from c in direction d. Moves the
// grid does not allow from c return c itself.
func Neighbor(c Cell, d Direction) Cell {
	switch d {
	case MoveUp:
		switch c {
		case Center:
			return TopCenter
		case Left:
			return TopLeft
		case Right:
			return TopRight
		case BottomCenter:
			return Center
		case BottomLeft:
			return Left
		case BottomRight:
			return Right
		}
	case MoveDown:
		switch c {
		case TopCenter:
			return Center
		case TopLeft:
			return Left
		case TopRight:
			return Right
		case Center:
			return BottomCenter
		case Left:
			return BottomLeft
		case Right:
			return BottomRight
		}
	case MoveLeft:
		switch c {
		case Center:
			return Left
		case Right:
			return Center
		case BottomCenter:
			return BottomLeft
		case BottomRight:
			return BottomCenter
		case TopCenter:
			return TopLeft
		case TopRight:
			return TopCenter
		}
	case MoveRight:
		switch c {
		case Center:
			return Right
		case Left:
			return Center
		case BottomCenter:
			return BottomRight
		case BottomLeft:
			return BottomCenter
		case TopCenter:
			return TopRight
		case TopLeft:
			return TopCenter
		}
	}
	return c
}
