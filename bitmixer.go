package lttoolbox

// PHI_C64 Golden ratio bit mixer.
const PHI_C64 = uint64(0x9e3779b97f4a7c15)

func mix(key int) int {
	return mix32(key)
}

// MurmurHash3算法中的32位最终混合步骤
func mix32(v int) int {
	k := uint32(v)
	k = (k ^ (k >> 16)) * 0x85ebca6b
	k = (k ^ (k >> 13)) * 0xc2b2ae35
	return int(k ^ (k >> 16))
}

// mixPair spreads a (state, state, state) search key of the intersection over 64 bits.
func mixPair(a, b, c int) uint64 {
	h := uint64(uint32(mix32(a)))
	h = h*PHI_C64 ^ uint64(uint32(mix32(b)))
	h = h*PHI_C64 ^ uint64(uint32(mix32(c)))
	return h ^ (h >> 32)
}
