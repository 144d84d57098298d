package drawing

// Drawing is the immutable result of evaluating a script. Each evaluation
// produces a new Drawing; it is never mutated after evaluation returns.
type Drawing struct {
	Entities  map[EntityID]*Entity `json:"entities"`
	Order     []EntityID           `json:"order"`
	NameIndex map[string]EntityID  `json:"name_index"`
	Version   uint64               `json:"version"`
}

// New creates an empty Drawing.
func New() *Drawing {
	return &Drawing{
		Entities:  make(map[EntityID]*Entity),
		NameIndex: make(map[string]EntityID),
	}
}

// Add appends an entity. A later entity with the same name takes over the
// name index entry; Validate reports the clash.
func (d *Drawing) Add(e *Entity) {
	if _, ok := d.Entities[e.ID]; !ok {
		d.Order = append(d.Order, e.ID)
	}
	d.Entities[e.ID] = e
	if e.Name != "" {
		d.NameIndex[e.Name] = e.ID
	}
}

// Lookup returns the entity with the given name, or nil.
func (d *Drawing) Lookup(name string) *Entity {
	id, ok := d.NameIndex[name]
	if !ok {
		return nil
	}
	return d.Entities[id]
}

// Get returns the entity with the given ID, or nil.
func (d *Drawing) Get(id EntityID) *Entity {
	return d.Entities[id]
}

// All returns the entities in insertion order.
func (d *Drawing) All() []*Entity {
	all := make([]*Entity, 0, len(d.Order))
	for _, id := range d.Order {
		if e := d.Entities[id]; e != nil {
			all = append(all, e)
		}
	}
	return all
}

// Closed returns the entities that bound a region: circles and closed
// polylines.
func (d *Drawing) Closed() []*Entity {
	var closed []*Entity
	for _, e := range d.All() {
		if e.Closed() {
			closed = append(closed, e)
		}
	}
	return closed
}

// Count returns the number of entities.
func (d *Drawing) Count() int {
	return len(d.Entities)
}
