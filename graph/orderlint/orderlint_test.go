package orderlint_test

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/wiregraph/wiregraph/attr"
	"github.com/wiregraph/wiregraph/graph"
	"github.com/wiregraph/wiregraph/graph/orderlint"
	"github.com/wiregraph/wiregraph/node"
)

type source struct{ out node.OutputCell[int] }

func (s *source) Declare(set *attr.Set) { s.out.DeclareAs(set, "v") }
func (s *source) Evaluate()             {}

type sink struct {
	ref string
	in  node.InputHandle[int]
}

func (s *sink) Declare(set *attr.Set) {
	s.in.DeclareAs(set, "in")
	set.Rename(attr.Input, "in", s.ref)
}
func (s *sink) Evaluate() {}

func TestCheckCleanOrderHasNoViolations(t *testing.T) {
	g := NewWithT(t)

	b := graph.NewBuilder()
	b.Add("src", node.Declare[*source](&source{}))
	b.Add("dst", node.Declare[*sink](&sink{ref: "src.v"}))
	built := b.Build()

	g.Expect(orderlint.Check(built)).To(BeEmpty())
}

func TestCheckFlagsConsumerBeforeProducer(t *testing.T) {
	g := NewWithT(t)

	b := graph.NewBuilder()
	b.Add("dst", node.Declare[*sink](&sink{ref: "src.v"}))
	b.Add("src", node.Declare[*source](&source{}))
	built := b.Build()

	violations := orderlint.Check(built)
	g.Expect(violations).To(HaveLen(1))
	g.Expect(violations[0].Producer).To(Equal("src"))
	g.Expect(violations[0].Consumer).To(Equal("dst"))
}

func TestCheckIgnoresSelfLoop(t *testing.T) {
	g := NewWithT(t)

	n := &selfLoop{}
	b := graph.NewBuilder()
	b.Add("self", node.Declare[*selfLoop](n))
	built := b.Build()

	g.Expect(orderlint.Check(built)).To(BeEmpty())
}

func TestDetectCycleOnAcyclicGraphIsNil(t *testing.T) {
	g := NewWithT(t)

	b := graph.NewBuilder()
	b.Add("src", node.Declare[*source](&source{}))
	b.Add("dst", node.Declare[*sink](&sink{ref: "src.v"}))
	built := b.Build()

	cyclic, err := orderlint.DetectCycle(built)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(cyclic).To(BeEmpty())
}

func TestDetectCycleIgnoresSelfLoop(t *testing.T) {
	g := NewWithT(t)

	n := &selfLoop{}
	b := graph.NewBuilder()
	b.Add("self", node.Declare[*selfLoop](n))
	built := b.Build()

	cyclic, err := orderlint.DetectCycle(built)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(cyclic).To(BeEmpty())
}

// selfLoop declares an output and an input wired to itself, so Check
// and DetectCycle both see a producer == consumer edge they must
// skip rather than flag.
type selfLoop struct {
	out node.OutputCell[int]
	in  node.InputHandle[int]
}

func (s *selfLoop) Declare(set *attr.Set) {
	s.out.DeclareAs(set, "v")
	s.in.DeclareAs(set, "echo")
	set.Rename(attr.Input, "echo", "self.v")
}
func (s *selfLoop) Evaluate() {}
