// Package crawl — BFS queue with deduplication.
package crawl

// queue is a BFS work list that ignores URLs it has already seen and
// stops accepting new ones once the page limit is reached.
type queue struct {
	items   []string
	visited map[string]bool
	idx     int // current read position
	limit   int // max accepted URLs; 0 means unlimited
}

func newQueue(limit int) *queue {
	return &queue{visited: make(map[string]bool), limit: limit}
}

func (q *queue) add(url string) {
	if q.visited[url] {
		return
	}
	if q.limit > 0 && len(q.items) >= q.limit {
		return
	}
	q.visited[url] = true
	q.items = append(q.items, url)
}

func (q *queue) hasNext() bool {
	return q.idx < len(q.items)
}

func (q *queue) next() string {
	url := q.items[q.idx]
	q.idx++
	return url
}

// seen returns the number of accepted URLs.
func (q *queue) seen() int {
	return len(q.visited)
}

// all returns every accepted URL in BFS order; never more than limit.
func (q *queue) all() []string {
	return q.items
}
