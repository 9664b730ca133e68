package suites

import (
	"context"
	"fmt"
	"strings"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/roach88/benchmocker/internal/rot13"
)

// RunGoMock runs the scenarios against go.uber.org/mock generated mocks.
func RunGoMock(ctx context.Context) error {
	return runScenarios(ctx, GoMockUnit, gomockScenarios)
}

var gomockScenarios = []scenario{
	{"simpleScenario", gomockSimpleScenario},
	{"fuzzyParameterMatching", gomockFuzzyParameterMatching},
	{"callsInSequence", gomockCallsInSequence},
	{"throwExceptions", gomockThrowExceptions},
	{"ignoreInvocations", gomockIgnoreInvocations},
	{"consecutiveCalls", gomockConsecutiveCalls},
}

// stringMatcher matches string arguments by a predicate.
type stringMatcher struct {
	desc string
	fn   func(string) bool
}

func (m stringMatcher) Matches(x any) bool {
	s, ok := x.(string)
	return ok && m.fn(s)
}

func (m stringMatcher) String() string { return m.desc }

func endsWith(suffix string) gomock.Matcher {
	return stringMatcher{
		desc: fmt.Sprintf("ends with %q", suffix),
		fn:   func(s string) bool { return strings.HasSuffix(s, suffix) },
	}
}

func containsString(sub string) gomock.Matcher {
	return stringMatcher{
		desc: fmt.Sprintf("contains %q", sub),
		fn:   func(s string) bool { return strings.Contains(s, sub) },
	}
}

// greaterThan matches int arguments above a bound.
type greaterThan int

func (g greaterThan) Matches(x any) bool {
	i, ok := x.(int)
	return ok && i > int(g)
}

func (g greaterThan) String() string { return fmt.Sprintf("is greater than %d", int(g)) }

func gomockSimpleScenario(r *reporter) {
	ctrl := gomock.NewController(r)
	mock := NewMockList(ctrl)

	mock.EXPECT().Clear()
	mock.EXPECT().Add("Uryyb Jbeyq").Return(true)
	mock.EXPECT().Size().Return(1)
	mock.EXPECT().Get(0).Return("Uryyb Jbeyq")

	list := rot13.New(mock)
	list.Clear()
	assert.True(r, list.Add("Hello World"))
	assert.Equal(r, 1, list.Size())
	assert.Equal(r, "Hello World", list.Get(0))

	ctrl.Finish()
}

func gomockFuzzyParameterMatching(r *reporter) {
	ctrl := gomock.NewController(r)
	mock := NewMockList(ctrl)

	mock.EXPECT().Get(0).Return("Tbbqolr Whcvgre")
	mock.EXPECT().Get(greaterThan(0)).Return("Uryyb Jbeyq").MinTimes(1)
	mock.EXPECT().Add(endsWith("Natryf")).Return(true)
	mock.EXPECT().Add(endsWith("Qrivyf")).Return(false)
	mock.EXPECT().Set(gomock.Any(), gomock.Any()).Return("Obawbhe Zrephel")

	list := rot13.New(mock)
	assert.Equal(r, "Goodbye Jupiter", list.Get(0))
	assert.Equal(r, "Hello World", list.Get(1))
	assert.Equal(r, "Hello World", list.Get(19))
	assert.Equal(r, "Hello World", list.Get(90210))
	assert.True(r, list.Add("California Angels"))
	assert.False(r, list.Add("New Jersey Devils"))
	assert.Equal(r, "Bonjour Mercury", list.Set(0, "something"))

	ctrl.Finish()
}

func gomockCallsInSequence(r *reporter) {
	ctrl := gomock.NewController(r)
	mock := NewMockList(ctrl)
	otherMock := NewMockList(ctrl)

	gomock.InOrder(
		mock.EXPECT().Add("svefg pnyy"),
		otherMock.EXPECT().Add("frpbaq pnyy"),
		mock.EXPECT().Add("guveq pnyy"),
	)

	list := rot13.New(mock)
	otherList := rot13.New(otherMock)
	list.Add("first call")
	otherList.Add("second call")
	list.Add("third call")

	ctrl.Finish()
}

func gomockThrowExceptions(r *reporter) {
	ctrl := gomock.NewController(r)
	mock := NewMockList(ctrl)

	mock.EXPECT().Clear().Do(func() { panic("hello") })
	mock.EXPECT().Add(containsString("Fdhveery")).DoAndReturn(func(string) bool {
		panic("allergic to squirrels")
	})

	list := rot13.New(mock)
	assert.PanicsWithValue(r, "hello", func() { list.Clear() })
	assert.PanicsWithValue(r, "allergic to squirrels", func() { list.Add("Magic Squirrel Juice") })

	ctrl.Finish()
}

func gomockIgnoreInvocations(r *reporter) {
	ctrl := gomock.NewController(r)
	mock := NewMockList(ctrl)

	mock.EXPECT().Get(0).Return("Uryyb Jbeyq")
	mock.EXPECT().Add(gomock.Any()).Return(true).AnyTimes()

	list := rot13.New(mock)
	for _, s := range []string{"doesn't", "matter", "it's all", "ignored", "anyway"} {
		assert.True(r, list.Add(s))
	}
	assert.Equal(r, "Hello World", list.Get(0))

	ctrl.Finish()
}

func gomockConsecutiveCalls(r *reporter) {
	ctrl := gomock.NewController(r)
	mock := NewMockList(ctrl)

	gomock.InOrder(
		mock.EXPECT().Get(0).Return("bar"),
		mock.EXPECT().Get(0).Return("gjb"),
		mock.EXPECT().Get(0).Return("guerr"),
	)
	mock.EXPECT().Get(1234).Return("nqvbf")

	list := rot13.New(mock)
	assert.Equal(r, "one", list.Get(0))
	assert.Equal(r, "two", list.Get(0))
	assert.Equal(r, "three", list.Get(0))
	assert.Equal(r, "adios", list.Get(1234))

	ctrl.Finish()
}
