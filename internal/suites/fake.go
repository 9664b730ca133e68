package suites

import (
	"context"
	"fmt"
	"strings"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/benchmocker/internal/rot13"
)

// RunFake runs the scenarios against a hand-written recording fake.
func RunFake(ctx context.Context) error {
	return runScenarios(ctx, FakeUnit, fakeScenarios)
}

var fakeScenarios = []scenario{
	{"simpleScenario", fakeSimpleScenario},
	{"fuzzyParameterMatching", fakeFuzzyParameterMatching},
	{"callsInSequence", fakeCallsInSequence},
	{"throwExceptions", fakeThrowExceptions},
	{"ignoreInvocations", fakeIgnoreInvocations},
	{"consecutiveCalls", fakeConsecutiveCalls},
}

// journal is the shared call log of one or more fakes.
type journal struct {
	calls []string
}

func (j *journal) record(name, method string, args ...any) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	j.calls = append(j.calls, fmt.Sprintf("%s.%s(%s)", name, method, strings.Join(parts, ", ")))
}

func (j *journal) count(prefix string) int {
	n := 0
	for _, c := range j.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

// fakeList records every call and answers from optional stub functions.
// Unstubbed methods return zero values.
type fakeList struct {
	name    string
	journal *journal

	get   func(index int) string
	set   func(index int, s string) string
	add   func(s string) bool
	size  func() int
	clear func()
}

var _ rot13.List = (*fakeList)(nil)

func newFake(name string, j *journal) *fakeList {
	if j == nil {
		j = &journal{}
	}
	return &fakeList{name: name, journal: j}
}

func (f *fakeList) Get(index int) string {
	f.journal.record(f.name, "Get", index)
	if f.get != nil {
		return f.get(index)
	}
	return ""
}

func (f *fakeList) Set(index int, s string) string {
	f.journal.record(f.name, "Set", index, s)
	if f.set != nil {
		return f.set(index, s)
	}
	return ""
}

func (f *fakeList) Add(s string) bool {
	f.journal.record(f.name, "Add", s)
	if f.add != nil {
		return f.add(s)
	}
	return false
}

func (f *fakeList) Insert(index int, s string) {
	f.journal.record(f.name, "Insert", index, s)
}

func (f *fakeList) IndexOf(s string) int {
	f.journal.record(f.name, "IndexOf", s)
	return -1
}

func (f *fakeList) LastIndexOf(s string) int {
	f.journal.record(f.name, "LastIndexOf", s)
	return -1
}

func (f *fakeList) Contains(s string) bool {
	f.journal.record(f.name, "Contains", s)
	return false
}

func (f *fakeList) Remove(s string) bool {
	f.journal.record(f.name, "Remove", s)
	return false
}

func (f *fakeList) RemoveAt(index int) string {
	f.journal.record(f.name, "RemoveAt", index)
	return ""
}

func (f *fakeList) Size() int {
	f.journal.record(f.name, "Size")
	if f.size != nil {
		return f.size()
	}
	return 0
}

func (f *fakeList) Clear() {
	f.journal.record(f.name, "Clear")
	if f.clear != nil {
		f.clear()
	}
}

func fakeSimpleScenario(r *reporter) {
	fake := newFake("mock", nil)
	fake.add = func(s string) bool { return s == "Uryyb Jbeyq" }
	fake.size = func() int { return 1 }
	fake.get = func(index int) string {
		if index == 0 {
			return "Uryyb Jbeyq"
		}
		return ""
	}

	list := rot13.New(fake)
	list.Clear()
	assert.True(r, list.Add("Hello World"))
	assert.Equal(r, 1, list.Size())
	assert.Equal(r, "Hello World", list.Get(0))

	assert.Equal(r, []string{
		"mock.Clear()",
		"mock.Add(Uryyb Jbeyq)",
		"mock.Size()",
		"mock.Get(0)",
	}, fake.journal.calls)
}

func fakeFuzzyParameterMatching(r *reporter) {
	fake := newFake("mock", nil)
	fake.get = func(index int) string {
		if index == 0 {
			return "Tbbqolr Whcvgre"
		}
		return "Uryyb Jbeyq"
	}
	fake.add = func(s string) bool {
		return strings.HasSuffix(s, "Natryf")
	}
	fake.set = func(int, string) string { return "Obawbhe Zrephel" }

	list := rot13.New(fake)
	assert.Equal(r, "Goodbye Jupiter", list.Get(0))
	assert.Equal(r, "Hello World", list.Get(1))
	assert.Equal(r, "Hello World", list.Get(19))
	assert.Equal(r, "Hello World", list.Get(90210))
	assert.True(r, list.Add("California Angels"))
	assert.False(r, list.Add("New Jersey Devils"))
	assert.Equal(r, "Bonjour Mercury", list.Set(0, "something"))

	j := fake.journal
	assert.Equal(r, 1, j.count("mock.Get(0)"))
	assert.Equal(r, 4, j.count("mock.Get("))
	assert.Contains(r, j.calls, "mock.Add(Pnyvsbeavn Natryf)")
	assert.Contains(r, j.calls, "mock.Add(Arj Wrefrl Qrivyf)")
	assert.Equal(r, 1, j.count("mock.Set("))
	assert.Len(r, j.calls, 7)
}

func fakeCallsInSequence(r *reporter) {
	j := &journal{}
	fake := newFake("mock", j)
	other := newFake("otherMock", j)

	list := rot13.New(fake)
	otherList := rot13.New(other)
	list.Add("first call")
	otherList.Add("second call")
	list.Add("third call")

	assert.Equal(r, []string{
		"mock.Add(svefg pnyy)",
		"otherMock.Add(frpbaq pnyy)",
		"mock.Add(guveq pnyy)",
	}, j.calls)
}

func fakeThrowExceptions(r *reporter) {
	fake := newFake("mock", nil)
	fake.clear = func() { panic("hello") }
	fake.add = func(s string) bool {
		if strings.Contains(s, "Fdhveery") {
			panic("allergic to squirrels")
		}
		return false
	}

	list := rot13.New(fake)
	assert.PanicsWithValue(r, "hello", func() { list.Clear() })
	assert.PanicsWithValue(r, "allergic to squirrels", func() { list.Add("Magic Squirrel Juice") })

	assert.Equal(r, []string{
		"mock.Clear()",
		"mock.Add(Zntvp Fdhveery Whvpr)",
	}, fake.journal.calls)
}

func fakeIgnoreInvocations(r *reporter) {
	fake := newFake("mock", nil)
	fake.get = func(int) string { return "Uryyb Jbeyq" }
	fake.add = func(string) bool { return true }

	list := rot13.New(fake)
	for _, s := range []string{"doesn't", "matter", "it's all", "ignored", "anyway"} {
		assert.True(r, list.Add(s))
	}
	assert.Equal(r, "Hello World", list.Get(0))

	assert.Equal(r, 1, fake.journal.count("mock.Get(0)"))
}

func fakeConsecutiveCalls(r *reporter) {
	answers := map[int][]string{
		0:    {"bar", "gjb", "guerr"},
		1234: {"nqvbf"},
	}
	fake := newFake("mock", nil)
	fake.get = func(index int) string {
		queue := answers[index]
		if len(queue) == 0 {
			r.Errorf("unexpected call to Get(%d)", index)
			return ""
		}
		answers[index] = queue[1:]
		return queue[0]
	}

	list := rot13.New(fake)
	assert.Equal(r, "one", list.Get(0))
	assert.Equal(r, "two", list.Get(0))
	assert.Equal(r, "three", list.Get(0))
	assert.Equal(r, "adios", list.Get(1234))

	assert.Equal(r, 3, fake.journal.count("mock.Get(0)"))
	assert.Equal(r, 1, fake.journal.count("mock.Get(1234)"))
	assert.Len(r, fake.journal.calls, 4)
}
