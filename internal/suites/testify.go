package suites

import (
	"context"
	"strings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/roach88/benchmocker/internal/rot13"
)

// RunTestifyMock runs the scenarios against testify/mock doubles.
func RunTestifyMock(ctx context.Context) error {
	return runScenarios(ctx, TestifyMockUnit, testifyScenarios)
}

var testifyScenarios = []scenario{
	{"simpleScenario", testifySimpleScenario},
	{"fuzzyParameterMatching", testifyFuzzyParameterMatching},
	{"callsInSequence", testifyCallsInSequence},
	{"throwExceptions", testifyThrowExceptions},
	{"ignoreInvocations", testifyIgnoreInvocations},
	{"consecutiveCalls", testifyConsecutiveCalls},
}

// testifyList is a rot13.List backed by mock.Mock.
type testifyList struct {
	mock.Mock
}

var _ rot13.List = (*testifyList)(nil)

func newTestifyList(r *reporter) *testifyList {
	m := &testifyList{}
	m.Test(r)
	return m
}

func (m *testifyList) Get(index int) string {
	args := m.Called(index)
	return args.String(0)
}

func (m *testifyList) Set(index int, s string) string {
	args := m.Called(index, s)
	return args.String(0)
}

func (m *testifyList) Add(s string) bool {
	args := m.Called(s)
	return args.Bool(0)
}

func (m *testifyList) Insert(index int, s string) {
	m.Called(index, s)
}

func (m *testifyList) IndexOf(s string) int {
	args := m.Called(s)
	return args.Int(0)
}

func (m *testifyList) LastIndexOf(s string) int {
	args := m.Called(s)
	return args.Int(0)
}

func (m *testifyList) Contains(s string) bool {
	args := m.Called(s)
	return args.Bool(0)
}

func (m *testifyList) Remove(s string) bool {
	args := m.Called(s)
	return args.Bool(0)
}

func (m *testifyList) RemoveAt(index int) string {
	args := m.Called(index)
	return args.String(0)
}

func (m *testifyList) Size() int {
	args := m.Called()
	return args.Int(0)
}

func (m *testifyList) Clear() {
	m.Called()
}

func testifySimpleScenario(r *reporter) {
	m := newTestifyList(r)
	m.On("Clear").Return().Once()
	m.On("Add", "Uryyb Jbeyq").Return(true).Once()
	m.On("Size").Return(1).Once()
	m.On("Get", 0).Return("Uryyb Jbeyq").Once()

	list := rot13.New(m)
	list.Clear()
	assert.True(r, list.Add("Hello World"))
	assert.Equal(r, 1, list.Size())
	assert.Equal(r, "Hello World", list.Get(0))

	m.AssertExpectations(r)
	m.AssertNumberOfCalls(r, "Get", 1)
}

func testifyFuzzyParameterMatching(r *reporter) {
	m := newTestifyList(r)
	m.On("Get", 0).Return("Tbbqolr Whcvgre").Once()
	m.On("Get", mock.MatchedBy(func(i int) bool { return i > 0 })).Return("Uryyb Jbeyq")
	m.On("Add", mock.MatchedBy(func(s string) bool { return strings.HasSuffix(s, "Natryf") })).Return(true).Once()
	m.On("Add", mock.MatchedBy(func(s string) bool { return strings.HasSuffix(s, "Qrivyf") })).Return(false).Once()
	m.On("Set", mock.Anything, mock.Anything).Return("Obawbhe Zrephel").Once()

	list := rot13.New(m)
	assert.Equal(r, "Goodbye Jupiter", list.Get(0))
	assert.Equal(r, "Hello World", list.Get(1))
	assert.Equal(r, "Hello World", list.Get(19))
	assert.Equal(r, "Hello World", list.Get(90210))
	assert.True(r, list.Add("California Angels"))
	assert.False(r, list.Add("New Jersey Devils"))
	assert.Equal(r, "Bonjour Mercury", list.Set(0, "something"))

	m.AssertExpectations(r)
	m.AssertNumberOfCalls(r, "Get", 4)
}

func testifyCallsInSequence(r *reporter) {
	m := newTestifyList(r)
	other := newTestifyList(r)

	mock.InOrder(
		m.On("Add", "svefg pnyy").Return(true).Once(),
		other.On("Add", "frpbaq pnyy").Return(true).Once(),
		m.On("Add", "guveq pnyy").Return(true).Once(),
	)

	list := rot13.New(m)
	otherList := rot13.New(other)
	list.Add("first call")
	otherList.Add("second call")
	list.Add("third call")

	m.AssertExpectations(r)
	other.AssertExpectations(r)
}

func testifyThrowExceptions(r *reporter) {
	m := newTestifyList(r)
	m.On("Clear").Panic("hello").Once()
	m.On("Add", mock.MatchedBy(func(s string) bool { return strings.Contains(s, "Fdhveery") })).
		Panic("allergic to squirrels").Once()

	list := rot13.New(m)
	assert.PanicsWithValue(r, "hello", func() { list.Clear() })
	assert.PanicsWithValue(r, "allergic to squirrels", func() { list.Add("Magic Squirrel Juice") })

	m.AssertExpectations(r)
}

func testifyIgnoreInvocations(r *reporter) {
	m := newTestifyList(r)
	m.On("Get", 0).Return("Uryyb Jbeyq").Once()
	m.On("Add", mock.Anything).Return(true)

	list := rot13.New(m)
	for _, s := range []string{"doesn't", "matter", "it's all", "ignored", "anyway"} {
		assert.True(r, list.Add(s))
	}
	assert.Equal(r, "Hello World", list.Get(0))

	m.AssertCalled(r, "Get", 0)
}

func testifyConsecutiveCalls(r *reporter) {
	m := newTestifyList(r)
	m.On("Get", 0).Return("bar").Once()
	m.On("Get", 0).Return("gjb").Once()
	m.On("Get", 0).Return("guerr").Once()
	m.On("Get", 1234).Return("nqvbf").Once()

	list := rot13.New(m)
	assert.Equal(r, "one", list.Get(0))
	assert.Equal(r, "two", list.Get(0))
	assert.Equal(r, "three", list.Get(0))
	assert.Equal(r, "adios", list.Get(1234))

	m.AssertExpectations(r)
	m.AssertNumberOfCalls(r, "Get", 4)
}
