package message

type HeaderMap struct {
	keys   []string
	values map[string]string
}

func NewHeaderMap() *HeaderMap {
	return &HeaderMap{
		values: make(map[string]string, 16),
	}
}

// Set stores a header value. Keys are case-sensitive. Setting an existing
// key overwrites the value but keeps the original insertion position.
func (h *HeaderMap) Set(key string, value string) {
	if _, ok := h.values[key]; !ok {
		h.keys = append(h.keys, key)
	}
	h.values[key] = value
}

func (h *HeaderMap) Value(key string) string {
	return h.values[key]
}

func (h *HeaderMap) Has(key string) bool {
	_, ok := h.values[key]
	return ok
}

func (h *HeaderMap) Remove(key string) {
	if _, ok := h.values[key]; !ok {
		return
	}
	delete(h.values, key)
	for i, k := range h.keys {
		if k == key {
			h.keys = append(h.keys[:i], h.keys[i+1:]...)
			break
		}
	}
}

func (h *HeaderMap) Len() int {
	return len(h.keys)
}

// Bytes serializes every header as "<key>: <value>\r\n" in insertion order.
func (h *HeaderMap) Bytes() []byte {
	size := 0
	for _, key := range h.keys {
		size += len(key) + 2 + len(h.values[key]) + 2
	}

	buf := make([]byte, 0, size)
	for _, key := range h.keys {
		buf = append(buf, key...)
		buf = append(buf, ':', ' ')
		buf = append(buf, h.values[key]...)
		buf = append(buf, '\r', '\n')
	}
	return buf
}
