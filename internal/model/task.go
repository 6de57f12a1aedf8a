package model

// Task defines a single, self-contained aggregation task over accepted
// flow records. This is the interface for the "execution layer".
type Task interface {
	ProcessFlow(flow *Flow)
	Snapshot() interface{}
	Reset()
	Name() string
}
