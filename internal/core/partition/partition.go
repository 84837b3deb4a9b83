package partition

import "hash/fnv"

// Shard returns the shard index in [0, shards) for a SKU.
// Stable and deterministic: the same SKU always lands on the same shard for a
// given shard count. Uses FNV-32a.
func Shard(skuID string, shards int) int {
	if shards <= 1 {
		return 0
	}
	h := fnv.New32a()
	h.Write([]byte(skuID))
	return int(h.Sum32() % uint32(shards))
}
