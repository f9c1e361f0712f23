package social

// SuspendedScore is the similarity assigned when either side is suspended.
// It sits strictly below the zero of a no-overlap pair so ineligible
// accounts sort under everything a ranking could otherwise produce.
const SuspendedScore = -100

// Similarity scores two students by shared friends plus shared courses,
// one point each regardless of multiplicity. Symmetric in its arguments.
func (s *Service) Similarity(a, b string) (int, error) {
	suspendedA, err := s.store.IsSuspended(a)
	if err != nil {
		return 0, err
	}
	suspendedB, err := s.store.IsSuspended(b)
	if err != nil {
		return 0, err
	}
	if suspendedA || suspendedB {
		return SuspendedScore, nil
	}

	friendsA, err := s.FriendsOf(a)
	if err != nil {
		return 0, err
	}
	friendsB, err := s.FriendsOf(b)
	if err != nil {
		return 0, err
	}
	coursesA, err := s.CoursesOf(a)
	if err != nil {
		return 0, err
	}
	coursesB, err := s.CoursesOf(b)
	if err != nil {
		return 0, err
	}

	return intersectionSize(friendsA, friendsB) + intersectionSize(coursesA, coursesB), nil
}

func intersectionSize(a, b []string) int {
	set := make(map[string]struct{}, len(a))
	for _, v := range a {
		set[v] = struct{}{}
	}
	n := 0
	seen := make(map[string]struct{}, len(b))
	for _, v := range b {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		if _, ok := set[v]; ok {
			n++
		}
	}
	return n
}
