package roster

// Collection is an ordered sequence of users. Insertion order is the
// canonical display order prior to sorting. Every mutating method returns a
// freshly backed collection, so snapshots captured earlier stay valid no
// matter what happens to the canonical one.
type Collection []User

// Clone returns a deep copy of the collection.
func (c Collection) Clone() Collection {
	if len(c) == 0 {
		return nil
	}
	dup := make(Collection, len(c))
	for i, u := range c {
		dup[i] = u.Clone()
	}
	return dup
}

// Add appends the user and returns the resulting collection.
func (c Collection) Add(u User) Collection {
	out := make(Collection, len(c), len(c)+1)
	for i, existing := range c {
		out[i] = existing.Clone()
	}
	return append(out, u.Clone())
}

// Remove drops the user with the given id. Removing an absent id is a no-op,
// not an error.
func (c Collection) Remove(id int64) Collection {
	if _, ok := c.Find(id); !ok {
		return c
	}
	out := make(Collection, 0, len(c)-1)
	for _, u := range c {
		if u.ID == id {
			continue
		}
		out = append(out, u.Clone())
	}
	return out
}

// Update merges the patch into the user with the given id, leaving every
// other field and user untouched. Updating an absent id is a no-op.
func (c Collection) Update(id int64, p Patch) Collection {
	if _, ok := c.Find(id); !ok {
		return c
	}
	out := make(Collection, len(c))
	for i, u := range c {
		if u.ID == id {
			out[i] = u.Apply(p)
		} else {
			out[i] = u.Clone()
		}
	}
	return out
}

// Find returns the user with the given id.
func (c Collection) Find(id int64) (User, bool) {
	for _, u := range c {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// MaxID returns the largest id present, or zero for an empty collection.
func (c Collection) MaxID() int64 {
	var max int64
	for _, u := range c {
		if u.ID > max {
			max = u.ID
		}
	}
	return max
}
