package feed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yunqiuxu/unswtalk/internal/models"
	"github.com/yunqiuxu/unswtalk/internal/store"
)

// fakeRecords is an in-memory FeedStore for tests.
type fakeRecords struct {
	students  map[string]*models.Student
	suspended map[string]bool
	posts     []models.Post
	comments  []models.Comment
	replies   []models.Reply
}

func newFakeRecords() *fakeRecords {
	return &fakeRecords{
		students:  make(map[string]*models.Student),
		suspended: make(map[string]bool),
	}
}

func (f *fakeRecords) addStudent(zid, fullName string) {
	f.students[zid] = &models.Student{
		ZID:        zid,
		FullName:   fullName,
		ProfileImg: "img/default.png",
	}
}

func (f *fakeRecords) PostsBy(zid string) ([]models.Post, error) {
	var out []models.Post
	for _, p := range f.posts {
		if p.ZID == zid {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeRecords) PostByID(id uint) (*models.Post, error) {
	for _, p := range f.posts {
		if p.ID == id {
			post := p
			return &post, nil
		}
	}
	return nil, store.ErrPostNotFound
}

func (f *fakeRecords) CommentsFor(postID uint) ([]models.Comment, error) {
	var out []models.Comment
	for _, c := range f.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeRecords) RepliesFor(commentID uint) ([]models.Reply, error) {
	var out []models.Reply
	for _, r := range f.replies {
		if r.CommentID == commentID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRecords) Profile(zid string) (*models.Student, error) {
	s, ok := f.students[zid]
	if !ok {
		return nil, store.ErrStudentNotFound
	}
	return s, nil
}

func (f *fakeRecords) IsSuspended(zid string) (bool, error) {
	return f.suspended[zid], nil
}

func (f *fakeRecords) SearchStudents(keyword string) ([]models.Student, error) {
	var out []models.Student
	for _, s := range f.students {
		if strings.Contains(s.FullName, keyword) || s.ZID == keyword {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeRecords) SearchPosts(keyword string) ([]models.Post, error) {
	var out []models.Post
	for _, p := range f.posts {
		if strings.Contains(p.Message, keyword) {
			out = append(out, p)
		}
	}
	return out, nil
}

func TestFeedNewestFirst(t *testing.T) {
	records := newFakeRecords()
	records.addStudent("z1111111", "Alice Ao")
	records.addStudent("z2222222", "Bob Bi")
	records.posts = []models.Post{
		{ID: 1, ZID: "z1111111", Time: "2016-05-13T04:35:53+0000", Message: "first"},
		{ID: 2, ZID: "z2222222", Time: "2017-01-02T10:00:00+0000", Message: "second"},
	}

	assembler := NewAssembler(records)

	feed, err := assembler.Feed([]string{"z1111111", "z2222222"})
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, uint(2), feed[0].ID)
	assert.Equal(t, uint(1), feed[1].ID)
	assert.Equal(t, "Bob Bi", feed[0].FullName)
	assert.Equal(t, "2017-01-02 10:00:00", feed[0].Time)
}

func TestFeedSkipsSuspendedAuthors(t *testing.T) {
	records := newFakeRecords()
	records.addStudent("z1111111", "Alice Ao")
	records.addStudent("z2222222", "Bob Bi")
	records.suspended["z2222222"] = true
	records.posts = []models.Post{
		{ID: 1, ZID: "z1111111", Time: "2016-05-13T04:35:53+0000", Message: "visible"},
		{ID: 2, ZID: "z2222222", Time: "2017-01-02T10:00:00+0000", Message: "hidden"},
	}

	assembler := NewAssembler(records)

	feed, err := assembler.Feed([]string{"z1111111", "z2222222"})
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "z1111111", feed[0].ZID)
}

func TestCommentsConversationOrder(t *testing.T) {
	records := newFakeRecords()
	records.addStudent("z1111111", "Alice Ao")
	records.comments = []models.Comment{
		{ID: 2, PostID: 7, ZID: "z1111111", Time: "2017-01-02T10:00:00+0000", Message: "later"},
		{ID: 1, PostID: 7, ZID: "z1111111", Time: "2016-05-13T04:35:53+0000", Message: "earlier"},
	}

	assembler := NewAssembler(records)

	comments, err := assembler.Comments(7)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, uint(1), comments[0].ID)
	assert.Equal(t, uint(2), comments[1].ID)
}

func TestRepliesConversationOrder(t *testing.T) {
	records := newFakeRecords()
	records.addStudent("z1111111", "Alice Ao")
	records.replies = []models.Reply{
		{ID: 2, CommentID: 3, ZID: "z1111111", Time: "2017-01-02T10:00:00+0000", Message: "later"},
		{ID: 1, CommentID: 3, ZID: "z1111111", Time: "2016-05-13T04:35:53+0000", Message: "earlier"},
	}

	assembler := NewAssembler(records)

	replies, err := assembler.Replies(3)
	require.NoError(t, err)
	require.Len(t, replies, 2)
	assert.Equal(t, uint(1), replies[0].ID)
	assert.Equal(t, uint(2), replies[1].ID)
}

func TestPostMissingID(t *testing.T) {
	assembler := NewAssembler(newFakeRecords())

	_, err := assembler.Post(99)
	assert.ErrorIs(t, err, store.ErrPostNotFound)
}

func TestSearchHidesSuspended(t *testing.T) {
	records := newFakeRecords()
	records.addStudent("z1111111", "Alice Ao")
	records.addStudent("z2222222", "Alice Bi")
	records.suspended["z2222222"] = true
	records.posts = []models.Post{
		{ID: 1, ZID: "z1111111", Time: "2016-05-13T04:35:53+0000", Message: "hello Alice"},
		{ID: 2, ZID: "z2222222", Time: "2017-01-02T10:00:00+0000", Message: "Alice again"},
	}

	assembler := NewAssembler(records)

	people, posts, err := assembler.Search("Alice")
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, "z1111111", people[0].ZID)
	require.Len(t, posts, 1)
	assert.Equal(t, uint(1), posts[0].ID)
}

func TestSearchByExactZID(t *testing.T) {
	records := newFakeRecords()
	records.addStudent("z1111111", "Alice Ao")

	assembler := NewAssembler(records)

	people, _, err := assembler.Search("z1111111")
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, "Alice Ao", people[0].FullName)
}
