package Queues

type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() (T, bool)
	Empty() bool
}

type ArrayQueue[T any] interface {
	Queue[T]
	Clear()
	Size() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
