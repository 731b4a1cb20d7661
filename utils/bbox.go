package utils

import (
	"math"

	"github.com/zooyer/iges"
	"github.com/zooyer/iges/core"
	"github.com/zooyer/iges/entities"
)

// Bounds 计算文档中所有位置数据经变换后的世界坐标包围盒
// 文档中没有任何位置数据时第二个返回值为 false
func Bounds(doc *iges.Document) (core.BBox, bool) {
	var (
		found = false
		box   = core.BBox{
			Min: core.Point{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64},
			Max: core.Point{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64},
		}
	)

	for _, entity := range doc.Entities {
		for _, point := range worldPoints(doc, entity) {
			box.Min.X = math.Min(box.Min.X, point.X)
			box.Min.Y = math.Min(box.Min.Y, point.Y)
			box.Min.Z = math.Min(box.Min.Z, point.Z)
			box.Max.X = math.Max(box.Max.X, point.X)
			box.Max.Y = math.Max(box.Max.Y, point.Y)
			box.Max.Z = math.Max(box.Max.Z, point.Z)
			found = true
		}
	}

	if !found {
		return core.BBox{}, false
	}

	return box, true
}

// worldPoints 提取实体的位置数据并应用其变换矩阵
func worldPoints(doc *iges.Document, entity entities.Entity) []core.Point {
	points := localPoints(entity)
	if len(points) == 0 {
		return nil
	}

	raw := entity.Base().Transformation
	if raw == 0 {
		return points
	}

	referenced, err := doc.Entities.Resolve(core.PointerFromSequence(raw))
	if err != nil {
		return points
	}

	t, ok := referenced.(*entities.Transformation)
	if !ok {
		return points
	}

	for i, point := range points {
		points[i] = t.Transform(point)
	}

	return points
}

// localPoints 提取实体在自身坐标系下的位置数据
func localPoints(entity entities.Entity) (points []core.Point) {
	switch e := entity.(type) {
	case *entities.Point:
		points = append(points, e.Pos)
	case *entities.Line:
		points = append(points, e.Start, e.End)
	case *entities.CircularArc:
		points = append(points, e.Start, e.Center, e.End)
	case *entities.ConicArc:
		points = append(points, e.Start, e.End)
	case *entities.CopiousData:
		for _, tuple := range e.Tuples {
			if len(tuple) >= 3 {
				points = append(points, core.Point{X: tuple[0], Y: tuple[1], Z: tuple[2]})
			}
		}
	case *entities.RationalBSplineCurve:
		points = append(points, e.ControlPoints...)
	case *entities.RationalBSplineSurface:
		for _, row := range e.ControlPoints {
			points = append(points, row...)
		}
	case *entities.VertexList:
		points = append(points, e.Vertices...)
	}

	return points
}
