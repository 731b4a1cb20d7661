package core

// Pointer 实体指针，是实体在目录段中的位置
// 目录段每个实体占两行，序号每次加 2，因此指针为 (序号-1)/2
type Pointer int

// PointerFromSequence 将目录段序号（或参数段回指列中的序号）换算为实体指针
func PointerFromSequence(sequence int) Pointer {
	return Pointer((sequence - 1) / 2)
}

// Point 代表三维空间中的一个点
type Point struct {
	X, Y, Z float64
}

// BBox 代表包围盒
type BBox struct {
	Min, Max Point
}
