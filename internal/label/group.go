package label

// Group is an ordered set of labels drawn back to front.
type Group struct {
	labels []*Label
}

// Append adds l on top of the existing labels. Appending a label that is
// already in the group is a no-op.
func (g *Group) Append(l *Label) {
	if g.index(l) >= 0 {
		return
	}
	g.labels = append(g.labels, l)
}

// Remove drops l from the group and reports whether it was present.
func (g *Group) Remove(l *Label) bool {
	i := g.index(l)
	if i < 0 {
		return false
	}
	g.labels = append(g.labels[:i], g.labels[i+1:]...)
	return true
}

// Labels returns the labels in draw order. The slice must not be modified.
func (g *Group) Labels() []*Label {
	return g.labels
}

func (g *Group) Len() int {
	return len(g.labels)
}

func (g *Group) index(l *Label) int {
	for i, x := range g.labels {
		if x == l {
			return i
		}
	}
	return -1
}
