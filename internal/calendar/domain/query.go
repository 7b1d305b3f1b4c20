package domain

import "time"

// SameDay reports whether a and b fall on the same calendar day. Only the
// date components are compared; time of day is ignored.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ItemsForDate returns the items starting on the given calendar day.
func ItemsForDate(items []*Item, date time.Time) []*Item {
	matched := make([]*Item, 0)
	for _, item := range items {
		if SameDay(item.Start, date) {
			matched = append(matched, item)
		}
	}
	return matched
}

// ItemsForRange returns the items overlapping [start, end]: an item counts
// when it starts inside the range, ends inside the range, or spans it
// entirely.
func ItemsForRange(items []*Item, start, end time.Time) []*Item {
	matched := make([]*Item, 0)
	for _, item := range items {
		itemEnd := item.Start
		if item.End != nil {
			itemEnd = *item.End
		}

		startsInside := !item.Start.Before(start) && !item.Start.After(end)
		endsInside := !itemEnd.Before(start) && !itemEnd.After(end)
		spans := item.Start.Before(start) && itemEnd.After(end)

		if startsInside || endsInside || spans {
			matched = append(matched, item)
		}
	}
	return matched
}
