package entities

import (
	"fmt"

	"github.com/zooyer/iges/core"
)

// ConicArc 圆锥曲线弧实体（类型 104）
// 由一般式 A*x^2 + B*x*y + C*y^2 + D*x + E*y + F = 0 定义
// 可表示椭圆、抛物线、双曲线，配合变换矩阵（类型 124）定位
type ConicArc struct {
	BaseEntity
	A, B, C, D, E, F float64
	Start, End       core.Point
}

func init() {
	Register(104, "CONIC ARC", func() Entity { return &ConicArc{BaseEntity: BaseEntity{TypeNumber: 104}} })
}

func (a *ConicArc) AddParameters(params []core.Value) error {
	if err := a.BaseEntity.AddParameters(params); err != nil {
		return err
	}

	if len(params) < 12 {
		return fmt.Errorf("%w: 圆锥曲线弧需要 12 个参数，实际 %d", core.ErrParameterArity, len(params))
	}

	a.A, a.B, a.C = params[0].AsFloat(), params[1].AsFloat(), params[2].AsFloat()
	a.D, a.E, a.F = params[3].AsFloat(), params[4].AsFloat(), params[5].AsFloat()
	a.Start = core.Point{X: params[6].AsFloat(), Y: params[7].AsFloat(), Z: params[8].AsFloat()}
	a.End = core.Point{X: params[9].AsFloat(), Y: params[10].AsFloat(), Z: params[11].AsFloat()}
	return nil
}

// CanonicalSemiAxis 求标准形长半轴，用于确定长轴上的一点
func (a *ConicArc) CanonicalSemiAxis() (float64, error) {
	axis, err := core.CanonicalSemiAxis(a.A, a.B, a.C, a.D, a.E, a.F)
	if err != nil {
		return 0, fmt.Errorf("圆锥曲线弧 %q: %w", a.Label, err)
	}

	return axis, nil
}

func (a *ConicArc) ToVTK(entities Registry, geometry Geometry, lcar float64) error {
	if !a.renderable() {
		return nil
	}

	axis, err := a.CanonicalSemiAxis()
	if err != nil {
		return err
	}

	// 曲线定义在自身坐标系内，中心即原点
	var (
		start  = a.Start
		end    = a.End
		center = core.Point{}
		major  = core.Point{X: axis}
	)

	if err = a.transform(entities, &start, &end, &center, &major); err != nil {
		return err
	}

	var (
		p1 = geometry.AddPoint(start, lcar)
		pc = geometry.AddPoint(center, lcar)
		pm = geometry.AddPoint(major, lcar)
		p2 = geometry.AddPoint(end, lcar)
	)

	a.GeometryID = geometry.AddEllipseArc(p1, pc, pm, p2)
	return nil
}
