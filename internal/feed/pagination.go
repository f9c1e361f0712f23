package feed

// PageIndex partitions the index range [0, n) into consecutive chunks of
// ten, plus a final chunk covering the remainder [n - n%10, n). The
// remainder chunk is always present even when it is empty, which happens
// whenever n is a multiple of ten — including n == 0, which yields a single
// empty chunk.
func PageIndex(n int) [][]int {
	pages := make([][]int, 0, n/10+1)
	for i := 0; i < n/10; i++ {
		page := make([]int, 0, 10)
		for j := i * 10; j < i*10+10; j++ {
			page = append(page, j)
		}
		pages = append(pages, page)
	}

	remainder := make([]int, 0, n%10)
	for j := n - n%10; j < n; j++ {
		remainder = append(remainder, j)
	}
	pages = append(pages, remainder)
	return pages
}
