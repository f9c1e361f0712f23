package social

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestRanksByOverlap(t *testing.T) {
	graph := newFakeGraph()
	for _, zid := range []string{"z1000000", "z2000000", "z3000000", "z4000000"} {
		graph.addStudent(zid)
	}
	// z2000000 shares two courses with the subject, z3000000 one course,
	// z4000000 is reachable through a mutual friend only.
	graph.enrol("z1000000", "COMP1511", "MATH1081")
	graph.enrol("z2000000", "COMP1511", "MATH1081")
	graph.enrol("z3000000", "COMP1511")
	graph.befriend("z2000000", "z4000000")
	graph.befriend("z1000000", "z2000000")

	svc := NewService(graph, 12, rand.New(rand.NewSource(1)))

	got, err := svc.Suggest("z1000000")
	require.NoError(t, err)

	// z2000000 is already a friend so it never appears.
	assert.NotContains(t, got, "z2000000")
	assert.NotContains(t, got, "z1000000")
	// z3000000 shares a course, z4000000 shares the friend z2000000, so
	// the scores tie and the lower zid comes first.
	assert.Equal(t, []string{"z3000000", "z4000000"}, got)
}

func TestSuggestTieBreaksByZID(t *testing.T) {
	graph := newFakeGraph()
	for _, zid := range []string{"z1000000", "z5000000", "z2000000", "z9000000"} {
		graph.addStudent(zid)
	}
	graph.enrol("z1000000", "COMP1511")
	graph.enrol("z5000000", "COMP1511")
	graph.enrol("z2000000", "COMP1511")
	graph.enrol("z9000000", "COMP1511")

	svc := NewService(graph, 12, rand.New(rand.NewSource(1)))

	got, err := svc.Suggest("z1000000")
	require.NoError(t, err)
	assert.Equal(t, []string{"z2000000", "z5000000", "z9000000"}, got)
}

func TestSuggestExcludesSuspendedCandidates(t *testing.T) {
	graph := newFakeGraph()
	for _, zid := range []string{"z1000000", "z2000000", "z3000000"} {
		graph.addStudent(zid)
	}
	graph.enrol("z1000000", "COMP1511")
	graph.enrol("z2000000", "COMP1511")
	graph.enrol("z3000000", "COMP1511")
	graph.suspended["z3000000"] = true

	svc := NewService(graph, 12, rand.New(rand.NewSource(1)))

	got, err := svc.Suggest("z1000000")
	require.NoError(t, err)
	assert.Equal(t, []string{"z2000000"}, got)
}

func TestSuggestCapsAtLimit(t *testing.T) {
	graph := newFakeGraph()
	graph.addStudent("z1000000")
	graph.enrol("z1000000", "COMP1511")
	for i := 0; i < 20; i++ {
		zid := fmt.Sprintf("z%07d", 2000000+i)
		graph.addStudent(zid)
		graph.enrol(zid, "COMP1511")
	}

	svc := NewService(graph, 12, rand.New(rand.NewSource(1)))

	got, err := svc.Suggest("z1000000")
	require.NoError(t, err)
	assert.LessOrEqual(t, len(got), 12)
}

func TestSuggestFallsBackToRandomSample(t *testing.T) {
	graph := newFakeGraph()
	// The subject has no courses and no friends, so the candidate set is
	// empty and the sample pool is every other active student.
	for _, zid := range []string{"z1000000", "z2000000", "z3000000", "z4000000", "z5000000"} {
		graph.addStudent(zid)
	}
	graph.suspended["z5000000"] = true

	svc := NewService(graph, 3, rand.New(rand.NewSource(42)))

	got, err := svc.Suggest("z1000000")
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.NotContains(t, got, "z1000000")
	assert.NotContains(t, got, "z5000000")
	for _, zid := range got {
		assert.Contains(t, []string{"z2000000", "z3000000", "z4000000"}, zid)
	}
}

func TestSuggestFallbackSmallerPoolThanLimit(t *testing.T) {
	graph := newFakeGraph()
	graph.addStudent("z1000000")
	graph.addStudent("z2000000")

	svc := NewService(graph, 12, rand.New(rand.NewSource(7)))

	got, err := svc.Suggest("z1000000")
	require.NoError(t, err)
	assert.Equal(t, []string{"z2000000"}, got)
}
