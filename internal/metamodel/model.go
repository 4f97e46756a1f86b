package metamodel

// Model is the read-only query surface the generator consumes.
type Model interface {
	// Classes returns every class in metamodel iteration order, nested ones included.
	Classes() []*Class
	// GlobalEnums returns enums declared outside any class.
	GlobalEnums() []*Enum
	// PrimitiveTypes returns registered primitive entries (include aggregation only).
	PrimitiveTypes() []*TypeEntry
	// ContainerTypes returns registered container entries (include aggregation only).
	ContainerTypes() []*TypeEntry
	// FindClass looks a class up by qualified name. Returns nil when absent.
	FindClass(name string) *Class
	// ImplicitConversions returns the implicit conversions targeting entry, in declaration order.
	ImplicitConversions(entry *TypeEntry) []*Function
	// TypeEntries returns all registered entries in registration order.
	TypeEntries() []*TypeEntry
}

// Snapshot is an in-memory Model. Build it with the Add methods, then treat it
// as immutable.
type Snapshot struct {
	classes     []*Class
	classByName map[string]*Class
	globalEnums []*Enum
	entries     []*TypeEntry
	entryByName map[string]*TypeEntry
	implicit    map[*TypeEntry][]*Function
}

// NewSnapshot creates an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		classByName: make(map[string]*Class),
		entryByName: make(map[string]*TypeEntry),
		implicit:    make(map[*TypeEntry][]*Function),
	}
}

// AddTypeEntry registers an entry. Returns false if the name is taken.
func (s *Snapshot) AddTypeEntry(t *TypeEntry) bool {
	if _, ok := s.entryByName[t.Name]; ok {
		return false
	}

	s.entries = append(s.entries, t)
	s.entryByName[t.Name] = t

	return true
}

// AddClass registers a class (and none of its inner classes). Returns false
// if the qualified name is taken.
func (s *Snapshot) AddClass(c *Class) bool {
	if _, ok := s.classByName[c.QualifiedName]; ok {
		return false
	}

	s.classes = append(s.classes, c)
	s.classByName[c.QualifiedName] = c

	return true
}

// AddGlobalEnum registers an enum declared outside any class.
func (s *Snapshot) AddGlobalEnum(e *Enum) {
	s.globalEnums = append(s.globalEnums, e)
}

// AddImplicitConversion appends fn to the conversions targeting entry.
func (s *Snapshot) AddImplicitConversion(entry *TypeEntry, fn *Function) {
	s.implicit[entry] = append(s.implicit[entry], fn)
}

// TypeEntry looks an entry up by name. Returns nil when absent.
func (s *Snapshot) TypeEntry(name string) *TypeEntry {
	return s.entryByName[name]
}

// Classes implements Model.
func (s *Snapshot) Classes() []*Class { return s.classes }

// GlobalEnums implements Model.
func (s *Snapshot) GlobalEnums() []*Enum { return s.globalEnums }

// TypeEntries implements Model.
func (s *Snapshot) TypeEntries() []*TypeEntry { return s.entries }

// FindClass implements Model.
func (s *Snapshot) FindClass(name string) *Class { return s.classByName[name] }

// ImplicitConversions implements Model.
func (s *Snapshot) ImplicitConversions(entry *TypeEntry) []*Function {
	return s.implicit[entry]
}

// PrimitiveTypes implements Model.
func (s *Snapshot) PrimitiveTypes() []*TypeEntry {
	return s.entriesOf(CategoryPrimitive)
}

// ContainerTypes implements Model.
func (s *Snapshot) ContainerTypes() []*TypeEntry {
	return s.entriesOf(CategoryContainer)
}

func (s *Snapshot) entriesOf(cat TypeCategory) []*TypeEntry {
	var out []*TypeEntry

	for _, t := range s.entries {
		if t.Category == cat {
			out = append(out, t)
		}
	}

	return out
}
