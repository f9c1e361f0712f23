// Package social derives the friendship and enrollment graph from the
// record store and ranks friend suggestions over it.
package social

// GraphStore is the slice of the record store the social graph needs.
type GraphStore interface {
	FriendZIDs(zid string) ([]string, error)
	Courses(zid string) ([]string, error)
	IsSuspended(zid string) (bool, error)
	CourseMates(zid string) ([]string, error)
	FriendsOfFriends(zid string) ([]string, error)
	StrangerZIDs(zid string) ([]string, error)
}

// FriendsOf returns zid's friends with suspended accounts filtered out.
// A student with no friends gets an empty slice, not an error. The
// suspension state is read per call; nothing is cached across requests.
func (s *Service) FriendsOf(zid string) ([]string, error) {
	raw, err := s.store.FriendZIDs(zid)
	if err != nil {
		return nil, err
	}
	friends := make([]string, 0, len(raw))
	for _, friend := range raw {
		suspended, err := s.store.IsSuspended(friend)
		if err != nil {
			return nil, err
		}
		if !suspended {
			friends = append(friends, friend)
		}
	}
	return friends, nil
}

// CoursesOf returns the distinct set of courses zid is enrolled in.
// Duplicate enrollment rows collapse to one entry.
func (s *Service) CoursesOf(zid string) ([]string, error) {
	raw, err := s.store.Courses(zid)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(raw))
	courses := make([]string, 0, len(raw))
	for _, course := range raw {
		if _, ok := seen[course]; ok {
			continue
		}
		seen[course] = struct{}{}
		courses = append(courses, course)
	}
	return courses, nil
}
