package layout

// Side is the placement of the editor popover relative to its trigger.
type Side string

const (
	SideTop    Side = "top"
	SideBottom Side = "bottom"
	SideLeft   Side = "left"
	SideRight  Side = "right"
	SideCenter Side = "center"
)

// Rect is a trigger element's bounding rectangle in viewport coordinates.
type Rect struct {
	Top    float64
	Left   float64
	Width  float64
	Height float64
}

// Viewport holds the visible area's dimensions.
type Viewport struct {
	Width  float64
	Height float64
}

// horizontalBias is how much larger the horizontal gap must be before a
// left/right placement beats the vertical default.
const horizontalBias = 1.5

// ResolvePopoverSide picks the side with the most room for the popover.
// The trigger's center determines its viewport quadrant; the available
// space away from the nearer edge on each axis is compared, and a
// horizontal side wins only when it offers more than 1.5 times the
// vertical space. Ties therefore fall to a vertical placement. A nil
// trigger means there is nothing to anchor to and the popover centers in
// the viewport.
func ResolvePopoverSide(trigger *Rect, viewport Viewport) Side {
	if trigger == nil {
		return SideCenter
	}

	centerX := trigger.Left + trigger.Width/2
	centerY := trigger.Top + trigger.Height/2

	// An exact center counts as the top/left half so the tie falls to
	// the bottom placement.
	inTopHalf := centerY <= viewport.Height/2
	inLeftHalf := centerX <= viewport.Width/2

	var verticalSpace, horizontalSpace float64
	if inTopHalf {
		// Prefer opening downward, below the trigger.
		verticalSpace = viewport.Height - (trigger.Top + trigger.Height)
	} else {
		verticalSpace = trigger.Top
	}
	if inLeftHalf {
		horizontalSpace = viewport.Width - (trigger.Left + trigger.Width)
	} else {
		horizontalSpace = trigger.Left
	}

	if horizontalSpace > horizontalBias*verticalSpace {
		if inLeftHalf {
			return SideRight
		}
		return SideLeft
	}

	if inTopHalf {
		return SideBottom
	}
	return SideTop
}
