package entities

import (
	"fmt"

	"github.com/zooyer/iges/core"
)

// Line 直线实体（类型 110）
type Line struct {
	BaseEntity
	Start, End core.Point
}

func init() {
	Register(110, "LINE", func() Entity { return &Line{BaseEntity: BaseEntity{TypeNumber: 110}} })
}

func (l *Line) AddParameters(params []core.Value) error {
	if err := l.BaseEntity.AddParameters(params); err != nil {
		return err
	}

	if len(params) < 6 {
		return fmt.Errorf("%w: 直线实体需要 6 个坐标，实际 %d", core.ErrParameterArity, len(params))
	}

	l.Start = core.Point{X: params[0].AsFloat(), Y: params[1].AsFloat(), Z: params[2].AsFloat()}
	l.End = core.Point{X: params[3].AsFloat(), Y: params[4].AsFloat(), Z: params[5].AsFloat()}
	return nil
}

func (l *Line) ToVTK(entities Registry, geometry Geometry, lcar float64) error {
	if !l.renderable() {
		return nil
	}

	start, end := l.Start, l.End
	if err := l.transform(entities, &start, &end); err != nil {
		return err
	}

	p1 := geometry.AddPoint(start, lcar)
	p2 := geometry.AddPoint(end, lcar)

	l.GeometryID = geometry.AddLine(p1, p2)
	return nil
}
