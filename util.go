package huffmantree

import (
	"math"
)

func saturatingAdd(a, b uint32) uint32 {
	sum := a + b
	if sum < a {
		sum = math.MaxUint32
	}
	return sum
}
