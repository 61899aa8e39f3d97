package pqb

import "hash/fnv"

func fnvString(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

func u64ToBytes(u uint64) []byte {
	return []byte{
		byte(u >> 56), byte(u >> 48), byte(u >> 40), byte(u >> 32),
		byte(u >> 24), byte(u >> 16), byte(u >> 8), byte(u),
	}
}

func mix64(a, b uint64) uint64 {
	h := fnv.New64a()
	h.Write(u64ToBytes(a))
	h.Write(u64ToBytes(b))
	return h.Sum64()
}
