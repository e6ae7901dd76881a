package cache

// cache/list.go

// arena slots reserved for the sentinels
const (
	head = 0
	tail = 1
)

// entry is one arena slot. prev and next are arena indices.
type entry struct {
	key   int
	value int
	prev  int
	next  int
}

// splice i right after the head sentinel
func (kv *LRUCache) insertAtHead(i int) {
	first := kv.nodes[head].next

	kv.nodes[i].prev = head
	kv.nodes[i].next = first
	kv.nodes[first].prev = i
	kv.nodes[head].next = i
}

// i's own prev/next are stale after this
func (kv *LRUCache) unlink(i int) {
	prev, next := kv.nodes[i].prev, kv.nodes[i].next

	kv.nodes[prev].next = next
	kv.nodes[next].prev = prev
}

func (kv *LRUCache) moveToHead(i int) {
	kv.unlink(i)
	kv.insertAtHead(i)
}

// popTail unlinks the least recently used real entry.
// The list must hold at least one real entry.
func (kv *LRUCache) popTail() int {
	last := kv.nodes[tail].prev
	kv.unlink(last)
	return last
}

func (kv *LRUCache) alloc(key, value int) int {
	if n := len(kv.free); n > 0 {
		i := kv.free[n-1]
		kv.free = kv.free[:n-1]
		kv.nodes[i] = entry{key: key, value: value}
		return i
	}

	kv.nodes = append(kv.nodes, entry{key: key, value: value})
	return len(kv.nodes) - 1
}

func (kv *LRUCache) release(i int) {
	kv.nodes[i] = entry{}
	kv.free = append(kv.free, i)
}
