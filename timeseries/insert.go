package timeseries

import "github.com/pkg/errors"

// ErrIndexOutOfRange reports an insertion index outside [0, host length].
var ErrIndexOutOfRange = errors.New("insertion index out of range")

// Insert returns a new series with segment spliced into host before index,
// so that the result is host[0:index] + segment + host[index:]. The host
// grows by segment.Len() values; nothing is overwritten. Index must satisfy
// 0 <= index <= host.Len(). Neither input is mutated, and the result is
// reindexed contiguously from 0 with fresh timestamps.
func Insert(host, segment *Series, index int) (*Series, error) {
	if index < 0 || index > host.Len() {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "index %d, host length %d", index, host.Len())
	}
	values := make([]float64, 0, host.Len()+segment.Len())
	values = append(values, host.Values[:index]...)
	values = append(values, segment.Values...)
	values = append(values, host.Values[index:]...)
	return New(values), nil
}

// Concat returns a new series with segment appended after host.
// Equivalent to Insert at host.Len(), but never fails.
func Concat(host, segment *Series) *Series {
	values := make([]float64, 0, host.Len()+segment.Len())
	values = append(values, host.Values...)
	values = append(values, segment.Values...)
	return New(values)
}
