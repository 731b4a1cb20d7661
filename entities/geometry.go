package entities

import "github.com/zooyer/iges/core"

// Geometry 网格几何构建器抽象，由下游网格生成器实现
// 各方法返回构建器内部的几何 ID，解码器只负责传递，0 表示无效
type Geometry interface {
	AddPoint(point core.Point, lcar float64) int
	AddLine(start, end int) int
	AddCircleArc(start, center, end int) int
	AddEllipseArc(start, center, major, end int) int
	AddBSpline(points []int) int
	AddCurveLoop(curves []int) int
	AddSurface(loop int) int
	Revolve(geometry int, axisStart, axisEnd core.Point, angle float64) int
}
