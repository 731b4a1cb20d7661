package entities

import (
	"fmt"

	"github.com/zooyer/iges/core"
)

// Point 点实体（类型 116）
type Point struct {
	BaseEntity
	Pos core.Point
}

func init() {
	Register(116, "POINT", func() Entity { return &Point{BaseEntity: BaseEntity{TypeNumber: 116}} })
}

func (p *Point) AddParameters(params []core.Value) error {
	if err := p.BaseEntity.AddParameters(params); err != nil {
		return err
	}

	if len(params) < 3 {
		return fmt.Errorf("%w: 点实体需要 3 个坐标，实际 %d", core.ErrParameterArity, len(params))
	}

	p.Pos = core.Point{X: params[0].AsFloat(), Y: params[1].AsFloat(), Z: params[2].AsFloat()}
	return nil
}

func (p *Point) ToVTK(entities Registry, geometry Geometry, lcar float64) error {
	if !p.renderable() {
		return nil
	}

	point := p.Pos
	if err := p.transform(entities, &point); err != nil {
		return err
	}

	p.GeometryID = geometry.AddPoint(point, lcar)
	return nil
}
