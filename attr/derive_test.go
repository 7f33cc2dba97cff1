package attr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wiregraph/wiregraph/attr"
	"github.com/wiregraph/wiregraph/node"
)

type derivedPorts struct {
	X       node.OutputCell[float64]
	Y       node.OutputCell[float64] `graph:"renamedY"`
	In      node.InputHandle[int]
	private node.OutputCell[int] // must be skipped: unexported
}

func TestDeriveFromStructPublishesExportedFields(t *testing.T) {
	s := attr.NewSet()
	target := &derivedPorts{}

	err := attr.DeriveFromStruct(s, target)

	assert.NoError(t, err)
	assert.Len(t, s.Outputs(), 2)
	assert.Len(t, s.Inputs(), 1)

	names := map[string]bool{}
	for _, o := range s.Outputs() {
		names[o.Name] = true
	}
	assert.True(t, names["X"])
	assert.True(t, names["renamedY"])
	assert.Equal(t, "In", s.Inputs()[0].Name)
}

func TestDeriveFromStructRejectsNonPointer(t *testing.T) {
	s := attr.NewSet()
	err := attr.DeriveFromStruct(s, derivedPorts{})
	assert.Error(t, err)
}
