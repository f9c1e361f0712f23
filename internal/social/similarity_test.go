package social

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGraph is an in-memory GraphStore for tests. Friendships are stored
// symmetrically by the test setup helpers.
type fakeGraph struct {
	friends   map[string][]string
	courses   map[string][]string
	suspended map[string]bool
	students  []string
}

func newFakeGraph() *fakeGraph {
	return &fakeGraph{
		friends:   make(map[string][]string),
		courses:   make(map[string][]string),
		suspended: make(map[string]bool),
	}
}

func (f *fakeGraph) addStudent(zid string) {
	f.students = append(f.students, zid)
}

func (f *fakeGraph) befriend(a, b string) {
	f.friends[a] = append(f.friends[a], b)
	f.friends[b] = append(f.friends[b], a)
}

func (f *fakeGraph) enrol(zid string, courses ...string) {
	f.courses[zid] = append(f.courses[zid], courses...)
}

func (f *fakeGraph) FriendZIDs(zid string) ([]string, error) {
	return f.friends[zid], nil
}

func (f *fakeGraph) Courses(zid string) ([]string, error) {
	return f.courses[zid], nil
}

func (f *fakeGraph) IsSuspended(zid string) (bool, error) {
	return f.suspended[zid], nil
}

func (f *fakeGraph) CourseMates(zid string) ([]string, error) {
	mine := make(map[string]struct{})
	for _, c := range f.courses[zid] {
		mine[c] = struct{}{}
	}
	var mates []string
	for _, other := range f.students {
		if other == zid || f.isFriend(zid, other) {
			continue
		}
		for _, c := range f.courses[other] {
			if _, ok := mine[c]; ok {
				mates = append(mates, other)
				break
			}
		}
	}
	return mates, nil
}

func (f *fakeGraph) FriendsOfFriends(zid string) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string
	for _, friend := range f.friends[zid] {
		for _, candidate := range f.friends[friend] {
			if candidate == zid || f.isFriend(zid, candidate) {
				continue
			}
			if _, ok := seen[candidate]; ok {
				continue
			}
			seen[candidate] = struct{}{}
			out = append(out, candidate)
		}
	}
	return out, nil
}

func (f *fakeGraph) StrangerZIDs(zid string) ([]string, error) {
	var out []string
	for _, other := range f.students {
		if other == zid || f.isFriend(zid, other) || f.suspended[other] {
			continue
		}
		out = append(out, other)
	}
	return out, nil
}

func (f *fakeGraph) isFriend(a, b string) bool {
	for _, friend := range f.friends[a] {
		if friend == b {
			return true
		}
	}
	return false
}

func TestSimilaritySharedCourse(t *testing.T) {
	graph := newFakeGraph()
	graph.addStudent("z1111111")
	graph.addStudent("z2222222")
	graph.enrol("z1111111", "COMP1511")
	graph.enrol("z2222222", "COMP1511")

	svc := NewService(graph, 12, nil)

	score, err := svc.Similarity("z1111111", "z2222222")
	require.NoError(t, err)
	assert.Equal(t, 1, score)
}

func TestSimilaritySymmetric(t *testing.T) {
	graph := newFakeGraph()
	for _, zid := range []string{"z1111111", "z2222222", "z3333333"} {
		graph.addStudent(zid)
	}
	graph.befriend("z1111111", "z3333333")
	graph.befriend("z2222222", "z3333333")
	graph.enrol("z1111111", "COMP1511", "MATH1081")
	graph.enrol("z2222222", "COMP1511")

	svc := NewService(graph, 12, nil)

	ab, err := svc.Similarity("z1111111", "z2222222")
	require.NoError(t, err)
	ba, err := svc.Similarity("z2222222", "z1111111")
	require.NoError(t, err)

	assert.Equal(t, ab, ba)
	assert.Equal(t, 2, ab) // shared friend z3333333 plus shared COMP1511
}

func TestSimilarityDuplicateEnrolmentCountsOnce(t *testing.T) {
	graph := newFakeGraph()
	graph.addStudent("z1111111")
	graph.addStudent("z2222222")
	graph.enrol("z1111111", "COMP1511", "COMP1511")
	graph.enrol("z2222222", "COMP1511")

	svc := NewService(graph, 12, nil)

	score, err := svc.Similarity("z1111111", "z2222222")
	require.NoError(t, err)
	assert.Equal(t, 1, score)
}

func TestSimilaritySuspendedSentinel(t *testing.T) {
	graph := newFakeGraph()
	graph.addStudent("z1111111")
	graph.addStudent("z2222222")
	graph.enrol("z1111111", "COMP1511")
	graph.enrol("z2222222", "COMP1511")
	graph.suspended["z2222222"] = true

	svc := NewService(graph, 12, nil)

	score, err := svc.Similarity("z1111111", "z2222222")
	require.NoError(t, err)
	assert.Equal(t, SuspendedScore, score)
	assert.Less(t, score, 0, "sentinel must sort below a zero-overlap pair")
}

func TestFriendsOfFiltersSuspended(t *testing.T) {
	graph := newFakeGraph()
	for _, zid := range []string{"z1111111", "z2222222", "z3333333"} {
		graph.addStudent(zid)
	}
	graph.befriend("z1111111", "z2222222")
	graph.befriend("z1111111", "z3333333")
	graph.suspended["z3333333"] = true

	svc := NewService(graph, 12, nil)

	friends, err := svc.FriendsOf("z1111111")
	require.NoError(t, err)
	assert.Equal(t, []string{"z2222222"}, friends)
}
