package attr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wiregraph/wiregraph/attr"
)

func TestAddOutputAndAddInput(t *testing.T) {
	s := attr.NewSet()
	var x float64
	s.AddOutput("x", attr.TypeIDFor[float64](), &x)
	s.AddInput("input", attr.TypeIDFor[float64](), func(any) error { return nil })

	assert.Len(t, s.Outputs(), 1)
	assert.Equal(t, "x", s.Outputs()[0].Name)
	assert.Len(t, s.Inputs(), 1)
	assert.Equal(t, "input", s.Inputs()[0].Name)
}

func TestAddOutputDuplicateNamePanics(t *testing.T) {
	s := attr.NewSet()
	var a, b int
	s.AddOutput("y", attr.TypeIDFor[int](), &a)

	assert.PanicsWithValue(t, &attr.DuplicatePortError{Kind: attr.Output, Name: "y"}, func() {
		s.AddOutput("y", attr.TypeIDFor[int](), &b)
	})
}

func TestAddInputDuplicateNamePanics(t *testing.T) {
	s := attr.NewSet()
	s.AddInput("in", attr.TypeIDFor[int](), func(any) error { return nil })

	assert.PanicsWithValue(t, &attr.DuplicatePortError{Kind: attr.Input, Name: "in"}, func() {
		s.AddInput("in", attr.TypeIDFor[int](), func(any) error { return nil })
	})
}

func TestInputAndOutputNamespacesAreIndependent(t *testing.T) {
	s := attr.NewSet()
	var out int
	assert.NotPanics(t, func() {
		s.AddOutput("product", attr.TypeIDFor[int](), &out)
		s.AddInput("product", attr.TypeIDFor[int](), func(any) error { return nil })
	})
}

func TestRenameInput(t *testing.T) {
	s := attr.NewSet()
	s.AddInput("input", attr.TypeIDFor[float64](), func(any) error { return nil })
	s.Rename(attr.Input, "input", "start.x")

	assert.Equal(t, "start.x", s.Inputs()[0].Name)
}

func TestRenameOutput(t *testing.T) {
	s := attr.NewSet()
	var x int
	s.AddOutput("out", attr.TypeIDFor[int](), &x)
	s.Rename(attr.Output, "out", "renamed")

	assert.Equal(t, "renamed", s.Outputs()[0].Name)
}

func TestRenameUnknownPanics(t *testing.T) {
	s := attr.NewSet()
	assert.PanicsWithValue(t, &attr.UnknownRenameError{Kind: attr.Input, Old: "ghost"}, func() {
		s.Rename(attr.Input, "ghost", "whatever")
	})
}

func TestTypeIDEquality(t *testing.T) {
	assert.True(t, attr.TypeIDFor[float64]().Equal(attr.TypeIDFor[float64]()))
	assert.False(t, attr.TypeIDFor[float64]().Equal(attr.TypeIDFor[int64]()))
	assert.Equal(t, "float64", attr.TypeIDFor[float64]().String())
}
