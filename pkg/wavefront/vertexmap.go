package wavefront

// vertexRef is one slash-delimited face reference. During welding the
// fields hold resolved absolute 1-based indices, so a pos of 0 can mark an
// unused slot in the vertex map.
type vertexRef struct {
	pos      int32
	texCoord int32
	normal   int32
}

// vertexMap maps resolved vertex references to output vertex indices.
// Open addressing with linear probing; the load factor is kept at or
// below 1/2 by doubling and rehashing.
type vertexMap struct {
	size uint32
	keys []vertexRef
	vals []uint32
}

func newVertexMap() *vertexMap {
	return &vertexMap{
		keys: make([]vertexRef, initialCap),
		vals: make([]uint32, initialCap),
	}
}

// hashRef mixes the three index fields FNV-1a style.
func hashRef(key vertexRef) uint64 {
	h := uint64(14695981039346656037)
	h ^= uint64(uint32(key.pos))
	h *= 1099511628211
	h ^= uint64(uint32(key.texCoord))
	h *= 1099511628211
	h ^= uint64(uint32(key.normal))
	h *= 1099511628211
	return h
}

// getOrAdd returns the output vertex index for key. If the key is not yet
// present it is inserted with value next, and added reports true.
func (m *vertexMap) getOrAdd(key vertexRef, next uint32) (idx uint32, added bool) {
	h := hashRef(key) % uint64(len(m.keys))
	for m.keys[h].pos != 0 {
		if m.keys[h] == key {
			return m.vals[h], false
		}
		h = (h + 1) % uint64(len(m.keys))
	}

	m.keys[h] = key
	m.vals[h] = next
	m.size++

	if m.size >= uint32(len(m.keys))/2 {
		m.rehash()
	}
	return next, true
}

func (m *vertexMap) rehash() {
	newCap := len(m.keys) * 2
	keys := make([]vertexRef, newCap)
	vals := make([]uint32, newCap)

	for i, key := range m.keys {
		if key.pos == 0 {
			continue
		}
		h := hashRef(key) % uint64(newCap)
		for keys[h].pos != 0 {
			h = (h + 1) % uint64(newCap)
		}
		keys[h] = key
		vals[h] = m.vals[i]
	}

	m.keys = keys
	m.vals = vals
}
