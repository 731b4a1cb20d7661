package entities

import (
	"fmt"

	"github.com/zooyer/iges/core"
)

// RationalBSplineCurve 有理 B 样条曲线实体（类型 126）
// Form: 0=由数据决定 1=直线 2=圆弧 3=椭圆弧 4=抛物线弧 5=双曲线弧
type RationalBSplineCurve struct {
	BaseEntity
	UpperIndex int // K，控制点上标
	Degree     int // M，基函数次数
	Planar     bool
	Closed     bool
	Polynomial bool
	Periodic   bool

	Knots         []float64
	Weights       []float64
	ControlPoints []core.Point
	V0, V1        float64 // 参数范围
	Normal        core.Point
}

func init() {
	Register(126, "RATIONAL B-SPLINE CURVE", func() Entity { return &RationalBSplineCurve{BaseEntity: BaseEntity{TypeNumber: 126}} })
}

func (c *RationalBSplineCurve) AddParameters(params []core.Value) error {
	if err := c.BaseEntity.AddParameters(params); err != nil {
		return err
	}

	if len(params) < 6 {
		return fmt.Errorf("%w: B 样条曲线头部需要 6 个整数，实际 %d", core.ErrParameterArity, len(params))
	}

	c.UpperIndex = params[0].AsInt()
	c.Degree = params[1].AsInt()
	c.Planar = params[2].AsInt() != 0
	c.Closed = params[3].AsInt() != 0
	c.Polynomial = params[4].AsInt() != 0
	c.Periodic = params[5].AsInt() != 0

	if c.UpperIndex < 0 || c.Degree < 0 {
		return fmt.Errorf("%w: 非法的 K=%d M=%d", core.ErrParameterArity, c.UpperIndex, c.Degree)
	}

	// 节点 K+M+2 个，权重 K+1 个，控制点坐标 3(K+1) 个，随后 2 个参数范围和法向量
	var (
		knotCount    = c.UpperIndex + c.Degree + 2
		weightCount  = c.UpperIndex + 1
		knotStart    = 6
		weightStart  = knotStart + knotCount
		controlStart = weightStart + weightCount
		tailStart    = controlStart + 3*weightCount
		total        = tailStart + 5
	)

	if len(params) != total {
		return fmt.Errorf("%w: B 样条曲线 K=%d M=%d 需要 %d 个参数，实际 %d",
			core.ErrParameterArity, c.UpperIndex, c.Degree, total, len(params))
	}

	c.Knots = make([]float64, 0, knotCount)
	for _, param := range params[knotStart:weightStart] {
		c.Knots = append(c.Knots, param.AsFloat())
	}

	c.Weights = make([]float64, 0, weightCount)
	for _, param := range params[weightStart:controlStart] {
		c.Weights = append(c.Weights, param.AsFloat())
	}

	c.ControlPoints = make([]core.Point, 0, weightCount)
	for i := controlStart; i < tailStart; i += 3 {
		c.ControlPoints = append(c.ControlPoints, core.Point{
			X: params[i].AsFloat(),
			Y: params[i+1].AsFloat(),
			Z: params[i+2].AsFloat(),
		})
	}

	c.V0, c.V1 = params[tailStart].AsFloat(), params[tailStart+1].AsFloat()
	c.Normal = core.Point{
		X: params[tailStart+2].AsFloat(),
		Y: params[tailStart+3].AsFloat(),
		Z: params[tailStart+4].AsFloat(),
	}

	return nil
}

// ToVTK 将控制点交给构建器生成样条，曲线求值由构建器完成
func (c *RationalBSplineCurve) ToVTK(entities Registry, geometry Geometry, lcar float64) error {
	if !c.renderable() {
		return nil
	}

	points := make([]int, 0, len(c.ControlPoints))
	for _, control := range c.ControlPoints {
		point := control
		if err := c.transform(entities, &point); err != nil {
			return err
		}
		points = append(points, geometry.AddPoint(point, lcar))
	}

	c.GeometryID = geometry.AddBSpline(points)
	return nil
}
