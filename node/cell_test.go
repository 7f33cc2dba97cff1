package node_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wiregraph/wiregraph/attr"
	"github.com/wiregraph/wiregraph/node"
)

func TestOutputCellDefaultsAndSet(t *testing.T) {
	var c node.OutputCell[float64]
	assert.Zero(t, c.Get())

	c.Set(3.5)
	assert.Equal(t, 3.5, c.Get())
	assert.Equal(t, 3.5, *c.Addr())
}

func TestOutputCellAddrIsStable(t *testing.T) {
	var c node.OutputCell[int]
	p1 := c.Addr()
	c.Set(42)
	p2 := c.Addr()
	assert.Same(t, p1, p2)
	assert.Equal(t, 42, *p2)
}

func TestOutputCellDeclareAsPublishesDescriptor(t *testing.T) {
	var c node.OutputCell[string]
	c.Set("hello")
	s := attr.NewSet()
	c.DeclareAs(s, "greeting")

	assert.Len(t, s.Outputs(), 1)
	d := s.Outputs()[0]
	assert.Equal(t, "greeting", d.Name)
	assert.True(t, d.Type.Equal(attr.TypeIDFor[string]()))
	assert.Same(t, c.Addr(), d.Ptr.(*string))
}
