package sim

// leaderOf returns the active vehicle in lane l with the smallest
// position greater than x, excluding ego, or nil (spec §4.4).
func (l *Lane) leaderOf(x float64, ego *Vehicle) *Vehicle {
	for n := l.order.First(); n != nil; n = n.Next() {
		v := n.Extra
		if v == ego || !vehicleParticipates(v) {
			continue
		}
		if v.X > x {
			return v
		}
	}
	return nil
}

// followerOf returns the active vehicle in lane l with the largest
// position less than x, excluding ego, or nil (spec §4.4).
func (l *Lane) followerOf(x float64, ego *Vehicle) *Vehicle {
	var best *Vehicle
	for n := l.order.First(); n != nil; n = n.Next() {
		v := n.Extra
		if v == ego || !vehicleParticipates(v) {
			continue
		}
		if v.X < x {
			best = v
		} else {
			break
		}
	}
	return best
}

// vehicleParticipates reports whether v should be considered by
// neighbor queries: an inactive obstacle (outside its activity window)
// is excluded (spec §4.4).
func vehicleParticipates(v *Vehicle) bool {
	if v.Type == Obstacle {
		return v.IsActive
	}
	return true
}
