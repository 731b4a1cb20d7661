package entities

import (
	"fmt"

	"github.com/zooyer/iges/core"
)

// CircularArc 圆弧实体（类型 100）
// 定义在平行于 XY 平面、位移 ZT 的平面上，常配合变换矩阵（类型 124）定位
type CircularArc struct {
	BaseEntity
	ZT         float64
	Center     core.Point
	Start, End core.Point
}

func init() {
	Register(100, "CIRCULAR ARC", func() Entity { return &CircularArc{BaseEntity: BaseEntity{TypeNumber: 100}} })
}

func (a *CircularArc) AddParameters(params []core.Value) error {
	if err := a.BaseEntity.AddParameters(params); err != nil {
		return err
	}

	if len(params) < 7 {
		return fmt.Errorf("%w: 圆弧实体需要 7 个参数，实际 %d", core.ErrParameterArity, len(params))
	}

	a.ZT = params[0].AsFloat()
	a.Center = core.Point{X: params[1].AsFloat(), Y: params[2].AsFloat(), Z: a.ZT}
	a.Start = core.Point{X: params[3].AsFloat(), Y: params[4].AsFloat(), Z: a.ZT}
	a.End = core.Point{X: params[5].AsFloat(), Y: params[6].AsFloat(), Z: a.ZT}
	return nil
}

func (a *CircularArc) ToVTK(entities Registry, geometry Geometry, lcar float64) error {
	if !a.renderable() {
		return nil
	}

	start, center, end := a.Start, a.Center, a.End
	if err := a.transform(entities, &start, &center, &end); err != nil {
		return err
	}

	var (
		p1 = geometry.AddPoint(start, lcar)
		pc = geometry.AddPoint(center, lcar)
		p2 = geometry.AddPoint(end, lcar)
	)

	a.GeometryID = geometry.AddCircleArc(p1, pc, p2)
	return nil
}
