package physics

// Arena owns the bodies of one simulation, in registration order. Contacts refer to
// bodies by BodyID so bodies never own each other.
//
// Adding or removing bodies while Step or Detect runs is not supported; callers
// confine those changes to frame or scene boundaries.
type Arena struct {
	bodies []*Body
	index  map[BodyID]int
	nextID BodyID
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{index: make(map[BodyID]int)}
}

// Add registers b, assigns its ID and returns it.
func (a *Arena) Add(b *Body) BodyID {
	a.nextID++
	b.ID = a.nextID
	a.index[b.ID] = len(a.bodies)
	a.bodies = append(a.bodies, b)
	return b.ID
}

// Remove drops the body with the given id. Contacts of other bodies that still point
// at it are left alone; Get reports them as missing.
func (a *Arena) Remove(id BodyID) bool {
	i, ok := a.index[id]
	if !ok {
		return false
	}
	last := len(a.bodies) - 1
	copy(a.bodies[i:], a.bodies[i+1:])
	a.bodies[last] = nil
	a.bodies = a.bodies[:last]
	delete(a.index, id)
	for j := i; j < len(a.bodies); j++ {
		a.index[a.bodies[j].ID] = j
	}
	return true
}

// Get returns the body with the given id.
func (a *Arena) Get(id BodyID) (*Body, bool) {
	i, ok := a.index[id]
	if !ok {
		return nil, false
	}
	return a.bodies[i], true
}

// Lookup returns the first body registered under name.
func (a *Arena) Lookup(name string) (*Body, bool) {
	for _, b := range a.bodies {
		if b.Name == name {
			return b, true
		}
	}
	return nil, false
}

// Bodies returns the registered bodies in registration order. The slice is shared;
// do not append to it.
func (a *Arena) Bodies() []*Body {
	return a.bodies
}

// Len returns the number of registered bodies.
func (a *Arena) Len() int {
	return len(a.bodies)
}

// ClearContacts empties every contact list, keeping the backing arrays.
func (a *Arena) ClearContacts() {
	for _, b := range a.bodies {
		b.Contacts = b.Contacts[:0]
	}
}

// RemoveExpired drops every body that is no longer alive and returns how many went away.
func (a *Arena) RemoveExpired() int {
	kept := a.bodies[:0]
	removed := 0
	for _, b := range a.bodies {
		if b.Alive() {
			kept = append(kept, b)
			continue
		}
		delete(a.index, b.ID)
		removed++
	}
	for i := len(kept); i < len(a.bodies); i++ {
		a.bodies[i] = nil
	}
	a.bodies = kept
	for i, b := range a.bodies {
		a.index[b.ID] = i
	}
	return removed
}
