package types

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Well-known class IDs.
const (
	ObjectID       = "java.lang.Object"
	NumberID       = "java.lang.Number"
	ComparableID   = "java.lang.Comparable"
	CharSequenceID = "java.lang.CharSequence"
	StringID       = "java.lang.String"
	CloneableID    = "java.lang.Cloneable"
	SerializableID = "java.io.Serializable"
)

var wellKnown = map[string]string{
	"Object":       ObjectID,
	"Number":       NumberID,
	"Comparable":   ComparableID,
	"CharSequence": CharSequenceID,
	"String":       StringID,
	"Cloneable":    CloneableID,
	"Serializable": SerializableID,
}

// ErrFrozen is returned when classes are added to a frozen universe.
var ErrFrozen = errors.New("universe is frozen")

// ClassInfo describes one class or interface of the universe.
type ClassInfo struct {
	ID          string   // qualified name, e.g. "p.Y"
	Super       string   // superclass; empty means java.lang.Object
	Interfaces  []string // directly implemented or extended interfaces
	IsInterface bool
}

// Package returns the package part of the class ID.
func (c *ClassInfo) Package() string {
	return PackageOf(c.ID)
}

// PackageOf returns everything before the last '.' of a qualified name.
func PackageOf(id string) string {
	if i := strings.LastIndexByte(id, '.'); i >= 0 {
		return id[:i]
	}

	return ""
}

// Universe holds the class graph reference widening and lub are computed
// against. It is built with Add and then frozen; a frozen universe is never
// mutated again and may be shared by any number of goroutines.
type Universe struct {
	classes map[string]*ClassInfo
	supers  map[string][]string // filled by Freeze
	frozen  bool
}

// NewUniverse creates a universe seeded with java.lang.Object, the wrapper
// classes and the interfaces they implement.
func NewUniverse() *Universe {
	u := &Universe{classes: make(map[string]*ClassInfo, 32)}

	seed := []ClassInfo{
		{ID: ObjectID},
		{ID: SerializableID, IsInterface: true},
		{ID: CloneableID, IsInterface: true},
		{ID: ComparableID, IsInterface: true},
		{ID: CharSequenceID, IsInterface: true},
		{ID: NumberID, Interfaces: []string{SerializableID}},
		{ID: StringID, Interfaces: []string{SerializableID, ComparableID, CharSequenceID}},
		{ID: "java.lang.Boolean", Interfaces: []string{SerializableID, ComparableID}},
		{ID: "java.lang.Character", Interfaces: []string{SerializableID, ComparableID}},
		{ID: "java.lang.Byte", Super: NumberID, Interfaces: []string{ComparableID}},
		{ID: "java.lang.Short", Super: NumberID, Interfaces: []string{ComparableID}},
		{ID: "java.lang.Integer", Super: NumberID, Interfaces: []string{ComparableID}},
		{ID: "java.lang.Long", Super: NumberID, Interfaces: []string{ComparableID}},
		{ID: "java.lang.Float", Super: NumberID, Interfaces: []string{ComparableID}},
		{ID: "java.lang.Double", Super: NumberID, Interfaces: []string{ComparableID}},
	}

	for _, c := range seed {
		u.classes[c.ID] = &c
	}

	return u
}

// Add registers a class. Class names are normalized like Class does.
func (u *Universe) Add(c ClassInfo) error {
	if u.frozen {
		return ErrFrozen
	}

	c.ID = normalizeID(c.ID)
	if c.ID == "" {
		return errors.New("class id is empty")
	}

	if _, ok := u.classes[c.ID]; ok {
		return fmt.Errorf("duplicate class %q", c.ID)
	}

	c.Super = normalizeID(c.Super)

	ifaces := make([]string, len(c.Interfaces))
	for i, id := range c.Interfaces {
		ifaces[i] = normalizeID(id)
	}

	c.Interfaces = ifaces
	u.classes[c.ID] = &c

	return nil
}

// Freeze validates the hierarchy, precomputes supertype closures and makes
// the universe read-only.
func (u *Universe) Freeze() (*Universe, error) {
	if u.frozen {
		return u, nil
	}

	for _, c := range u.classes {
		if c.Super != "" {
			sup, ok := u.classes[c.Super]
			if !ok {
				return nil, fmt.Errorf("class %q extends unknown class %q", c.ID, c.Super)
			}

			if sup.IsInterface {
				return nil, fmt.Errorf("class %q extends interface %q", c.ID, c.Super)
			}
		}

		for _, id := range c.Interfaces {
			iface, ok := u.classes[id]
			if !ok {
				return nil, fmt.Errorf("class %q implements unknown interface %q", c.ID, id)
			}

			if !iface.IsInterface {
				return nil, fmt.Errorf("class %q implements non-interface %q", c.ID, id)
			}
		}
	}

	u.supers = make(map[string][]string, len(u.classes))
	for id := range u.classes {
		closure, err := u.closure(id)
		if err != nil {
			return nil, err
		}

		u.supers[id] = closure
	}

	u.frozen = true

	return u, nil
}

// MustFreeze is Freeze for hierarchies known to be valid.
func (u *Universe) MustFreeze() *Universe {
	res, err := u.Freeze()
	if err != nil {
		panic(err)
	}

	return res
}

// Lookup returns the ClassInfo for a class ID.
func (u *Universe) Lookup(id string) (*ClassInfo, bool) {
	c, ok := u.classes[normalizeID(id)]
	return c, ok
}

// Classes returns all class IDs, sorted.
func (u *Universe) Classes() []string {
	res := make([]string, 0, len(u.classes))
	for id := range u.classes {
		res = append(res, id)
	}

	sort.Strings(res)

	return res
}

// closure walks supertypes breadth first: the class itself, then its
// superclass chain and interfaces, Object last.
func (u *Universe) closure(id string) ([]string, error) {
	var (
		res   []string
		seen  = map[string]bool{}
		queue = []string{id}
	)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if seen[cur] {
			continue
		}

		seen[cur] = true
		res = append(res, cur)

		c, ok := u.classes[cur]
		if !ok {
			continue
		}

		if c.Super != "" {
			if c.Super == id {
				return nil, fmt.Errorf("cyclic inheritance involving %q", id)
			}

			queue = append(queue, c.Super)
		}

		for _, iface := range c.Interfaces {
			if iface == id {
				return nil, fmt.Errorf("cyclic inheritance involving %q", id)
			}

			queue = append(queue, iface)
		}
	}

	if !seen[ObjectID] {
		res = append(res, ObjectID)
	} else {
		// keep Object last so the closure reads most specific first
		for i, s := range res {
			if s == ObjectID {
				res = append(append(res[:i:i], res[i+1:]...), ObjectID)
				break
			}
		}
	}

	return res, nil
}

// Supertypes returns the reflexive supertype closure of a class, most
// specific first. Unknown classes are treated as direct subclasses of Object.
func (u *Universe) Supertypes(id string) []string {
	id = normalizeID(id)

	if s, ok := u.supers[id]; ok {
		return s
	}

	if s, err := u.closure(id); err == nil {
		return s
	}

	return []string{id, ObjectID}
}

// IsSubclass reports a <: b for class IDs (reflexive).
func (u *Universe) IsSubclass(a, b string) bool {
	a, b = normalizeID(a), normalizeID(b)
	if a == b || b == ObjectID {
		return true
	}

	for _, s := range u.Supertypes(a) {
		if s == b {
			return true
		}
	}

	return false
}

// IsSubtype reports reference subtyping t <: s, including the null type and
// array covariance. Primitive types are subtypes only of themselves.
func (u *Universe) IsSubtype(t, s Type) bool {
	if t == s {
		return true
	}

	if t.IsPrimitive() || s.IsPrimitive() || !t.IsValid() || !s.IsValid() {
		return false
	}

	if t.IsNull() {
		return !s.IsNull()
	}

	if s.IsNull() {
		return false
	}

	if t.IsArray() {
		if s.IsArray() {
			te, _ := t.Elem()
			se, _ := s.Elem()

			if te.IsPrimitive() || se.IsPrimitive() {
				return te == se
			}

			return u.IsSubtype(te, se)
		}

		switch s.ClassID() {
		case ObjectID, CloneableID, SerializableID:
			return true
		default:
			return false
		}
	}

	if s.IsArray() {
		return false
	}

	return u.IsSubclass(t.ClassID(), s.ClassID())
}

// Lub computes the least upper bound of two reference types. When the minimal
// common supertypes are several (an intersection type), the most specific
// common class is returned since intersections are not representable.
// Unknown classes are direct subclasses of Object, as in Supertypes. Returns
// false for primitive operands.
func (u *Universe) Lub(a, b Type) (Type, bool) {
	if a.IsPrimitive() || b.IsPrimitive() || !a.IsValid() || !b.IsValid() {
		return Type{}, false
	}

	switch {
	case a == b:
		return a, true
	case a.IsNull():
		return b, true
	case b.IsNull():
		return a, true
	}

	if a.IsArray() && b.IsArray() {
		ae, _ := a.Elem()
		be, _ := b.Elem()

		if !ae.IsPrimitive() && !be.IsPrimitive() {
			elem, ok := u.Lub(ae, be)
			if !ok {
				return Type{}, false
			}

			return ArrayOf(elem), true
		}
	}

	common := intersect(u.supertypesOf(a), u.supertypesOf(b))

	var minimal []string

	for _, c := range common {
		isMinimal := true

		for _, other := range common {
			if other != c && u.IsSubclass(other, c) {
				isMinimal = false
				break
			}
		}

		if isMinimal {
			minimal = append(minimal, c)
		}
	}

	if len(minimal) == 1 {
		return Class(minimal[0]), true
	}

	for _, c := range minimal {
		if info, ok := u.classes[c]; ok && !info.IsInterface {
			return Class(c), true
		}
	}

	return Class(ObjectID), true
}

func (u *Universe) supertypesOf(t Type) []string {
	if t.IsArray() {
		return []string{CloneableID, SerializableID, ObjectID}
	}

	return u.Supertypes(t.ClassID())
}

func intersect(a, b []string) []string {
	inB := make(map[string]bool, len(b))
	for _, s := range b {
		inB[s] = true
	}

	var res []string

	for _, s := range a {
		if inB[s] {
			res = append(res, s)
		}
	}

	return res
}

func normalizeID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return ""
	}

	return Class(id).ClassID()
}
