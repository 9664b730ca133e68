// Package rot13 provides a list decorator that applies the ROT13 substitution
// to every string passing through it.
//
// Strings are rotated on the way into the delegate and rotated back on the
// way out, so callers see plain text while the delegate only ever stores the
// substituted form. ROT13 is its own inverse.
package rot13

import "strings"

// Rotate shifts each ASCII letter 13 places, preserving case. All other runes
// are left untouched.
func Rotate(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z':
			return 'A' + (r-'A'+13)%26
		case r >= 'a' && r <= 'z':
			return 'a' + (r-'a'+13)%26
		default:
			return r
		}
	}, s)
}

// List is an ordered collection of strings.
type List interface {
	Get(index int) string
	Set(index int, s string) string
	Add(s string) bool
	Insert(index int, s string)
	IndexOf(s string) int
	LastIndexOf(s string) int
	Contains(s string) bool
	Remove(s string) bool
	RemoveAt(index int) string
	Size() int
	Clear()
}

// Decorator is a List that stores ROT13-substituted strings in its delegate.
type Decorator struct {
	delegate List
}

var _ List = (*Decorator)(nil)

// New wraps delegate.
func New(delegate List) *Decorator {
	return &Decorator{delegate: delegate}
}

func (d *Decorator) Get(index int) string {
	return Rotate(d.delegate.Get(index))
}

// Set replaces the element at index and returns the previous one.
func (d *Decorator) Set(index int, s string) string {
	return Rotate(d.delegate.Set(index, Rotate(s)))
}

func (d *Decorator) Add(s string) bool {
	return d.delegate.Add(Rotate(s))
}

func (d *Decorator) Insert(index int, s string) {
	d.delegate.Insert(index, Rotate(s))
}

func (d *Decorator) IndexOf(s string) int {
	return d.delegate.IndexOf(Rotate(s))
}

func (d *Decorator) LastIndexOf(s string) int {
	return d.delegate.LastIndexOf(Rotate(s))
}

func (d *Decorator) Contains(s string) bool {
	return d.delegate.Contains(Rotate(s))
}

func (d *Decorator) Remove(s string) bool {
	return d.delegate.Remove(Rotate(s))
}

// RemoveAt removes and returns the element at index.
func (d *Decorator) RemoveAt(index int) string {
	return Rotate(d.delegate.RemoveAt(index))
}

func (d *Decorator) Size() int {
	return d.delegate.Size()
}

func (d *Decorator) Clear() {
	d.delegate.Clear()
}

// Slice is a plain slice-backed List.
type Slice struct {
	items []string
}

var _ List = (*Slice)(nil)

func (l *Slice) Get(index int) string { return l.items[index] }

func (l *Slice) Set(index int, s string) string {
	prev := l.items[index]
	l.items[index] = s
	return prev
}

func (l *Slice) Add(s string) bool {
	l.items = append(l.items, s)
	return true
}

func (l *Slice) Insert(index int, s string) {
	l.items = append(l.items, "")
	copy(l.items[index+1:], l.items[index:])
	l.items[index] = s
}

func (l *Slice) IndexOf(s string) int {
	for i, item := range l.items {
		if item == s {
			return i
		}
	}
	return -1
}

func (l *Slice) LastIndexOf(s string) int {
	for i := len(l.items) - 1; i >= 0; i-- {
		if l.items[i] == s {
			return i
		}
	}
	return -1
}

func (l *Slice) Contains(s string) bool { return l.IndexOf(s) >= 0 }

func (l *Slice) Remove(s string) bool {
	i := l.IndexOf(s)
	if i < 0 {
		return false
	}
	l.RemoveAt(i)
	return true
}

func (l *Slice) RemoveAt(index int) string {
	removed := l.items[index]
	l.items = append(l.items[:index], l.items[index+1:]...)
	return removed
}

func (l *Slice) Size() int { return len(l.items) }

func (l *Slice) Clear() { l.items = l.items[:0] }

// Items returns a copy of the stored strings.
func (l *Slice) Items() []string {
	return append([]string(nil), l.items...)
}
