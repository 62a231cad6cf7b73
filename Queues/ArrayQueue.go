package Queues

// circArrQ is a ring buffer; content[head] is the oldest item and content[tail] the next free slot.
type circArrQ[T any] struct {
	sz, head, tail uint
	content        []T
}

func MakeArrayQueue[T any](initCap uint) ArrayQueue[T] {
	return &circArrQ[T]{0, 0, 0, make([]T, max(initCap, 2))}
}

func (u *circArrQ[T]) Empty() bool {
	return u.sz == 0
}

// grow the buffer by half, unwrapping the items to the front.
func (u *circArrQ[T]) grow() {
	nc := make([]T, uint(len(u.content))*3/2+1)
	n := copy(nc, u.content[u.head:])
	copy(nc[n:], u.content[:u.tail])
	u.head, u.tail = 0, u.sz
	u.content = nc
}

func (u *circArrQ[T]) Clear() {
	clear(u.content)
	u.tail, u.head, u.sz = 0, 0, 0
}

func (u *circArrQ[T]) Size() uint {
	return u.sz
}

func (u *circArrQ[T]) Push(item T) {
	if u.sz == uint(len(u.content)) {
		u.grow()
	}
	u.content[u.tail] = item
	u.tail = (u.tail + 1) % uint(len(u.content))
	u.sz++
}

func (u *circArrQ[T]) Pop() (item T, e error) {
	if u.Empty() {
		return item, &EmptyQueueError{}
	}
	item = u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return item, nil
}

func (u *circArrQ[T]) Peek() (item T, has bool) {
	if u.Empty() {
		return
	}
	return u.content[u.head], true
}
