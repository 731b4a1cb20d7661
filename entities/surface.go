package entities

import (
	"fmt"

	"github.com/zooyer/iges/core"
)

// RationalBSplineSurface 有理 B 样条曲面实体（类型 128）
// Form: 0=由数据决定 1=平面 2=圆柱面 3=锥面 4=球面 5=环面
// 6=旋转面 7=平移柱面 8=直纹面 9=一般二次曲面
type RationalBSplineSurface struct {
	BaseEntity
	K1, K2 int // 两个方向的控制点上标
	M1, M2 int // 两个方向的基函数次数

	ClosedU    bool
	ClosedV    bool
	Polynomial bool
	PeriodicU  bool
	PeriodicV  bool

	KnotsU  []float64
	KnotsV  []float64
	Weights []float64

	// 控制点网格，(K2+1) 行 (K1+1) 列
	ControlPoints [][]core.Point

	U0, U1, V0, V1 float64 // 参数范围
}

func init() {
	Register(128, "RATIONAL B-SPLINE SURFACE", func() Entity { return &RationalBSplineSurface{BaseEntity: BaseEntity{TypeNumber: 128}} })
}

func (s *RationalBSplineSurface) AddParameters(params []core.Value) error {
	if err := s.BaseEntity.AddParameters(params); err != nil {
		return err
	}

	if len(params) < 9 {
		return fmt.Errorf("%w: B 样条曲面头部需要 9 个整数，实际 %d", core.ErrParameterArity, len(params))
	}

	s.K1, s.K2 = params[0].AsInt(), params[1].AsInt()
	s.M1, s.M2 = params[2].AsInt(), params[3].AsInt()
	s.ClosedU = params[4].AsInt() != 0
	s.ClosedV = params[5].AsInt() != 0
	s.Polynomial = params[6].AsInt() != 0
	s.PeriodicU = params[7].AsInt() != 0
	s.PeriodicV = params[8].AsInt() != 0

	if s.K1 < 0 || s.K2 < 0 || s.M1 < 0 || s.M2 < 0 {
		return fmt.Errorf("%w: 非法的 K1=%d K2=%d M1=%d M2=%d", core.ErrParameterArity, s.K1, s.K2, s.M1, s.M2)
	}

	// 节点向量长度分别为 K1+M1+2 和 K2+M2+2
	// 权重 (K1+1)(K2+1) 个，控制点坐标为其 3 倍，最后 4 个参数范围
	var (
		knotUCount   = s.K1 + s.M1 + 2
		knotVCount   = s.K2 + s.M2 + 2
		weightCount  = (s.K1 + 1) * (s.K2 + 1)
		knotUStart   = 9
		knotVStart   = knotUStart + knotUCount
		weightStart  = knotVStart + knotVCount
		controlStart = weightStart + weightCount
		tailStart    = controlStart + 3*weightCount
		total        = tailStart + 4
	)

	if len(params) != total {
		return fmt.Errorf("%w: B 样条曲面 K1=%d K2=%d M1=%d M2=%d 需要 %d 个参数，实际 %d",
			core.ErrParameterArity, s.K1, s.K2, s.M1, s.M2, total, len(params))
	}

	s.KnotsU = make([]float64, 0, knotUCount)
	for _, param := range params[knotUStart:knotVStart] {
		s.KnotsU = append(s.KnotsU, param.AsFloat())
	}

	s.KnotsV = make([]float64, 0, knotVCount)
	for _, param := range params[knotVStart:weightStart] {
		s.KnotsV = append(s.KnotsV, param.AsFloat())
	}

	s.Weights = make([]float64, 0, weightCount)
	for _, param := range params[weightStart:controlStart] {
		s.Weights = append(s.Weights, param.AsFloat())
	}

	// 坐标展平顺序为先沿 U 方向，重组为 (K2+1) x (K1+1) 网格
	var (
		cols = s.K1 + 1
		rows = s.K2 + 1
	)

	s.ControlPoints = make([][]core.Point, 0, rows)
	for row := 0; row < rows; row++ {
		grid := make([]core.Point, 0, cols)
		for col := 0; col < cols; col++ {
			i := controlStart + 3*(row*cols+col)
			grid = append(grid, core.Point{
				X: params[i].AsFloat(),
				Y: params[i+1].AsFloat(),
				Z: params[i+2].AsFloat(),
			})
		}
		s.ControlPoints = append(s.ControlPoints, grid)
	}

	s.U0, s.U1 = params[tailStart].AsFloat(), params[tailStart+1].AsFloat()
	s.V0, s.V1 = params[tailStart+2].AsFloat(), params[tailStart+3].AsFloat()

	return nil
}

// ToVTK 沿控制点网格四边生成边界样条，围成曲线环后生成曲面片
func (s *RationalBSplineSurface) ToVTK(entities Registry, geometry Geometry, lcar float64) error {
	if !s.renderable() {
		return nil
	}

	var (
		rows = len(s.ControlPoints)
		cols = 0
	)
	if rows > 0 {
		cols = len(s.ControlPoints[0])
	}
	if rows < 2 || cols < 2 {
		return nil
	}

	add := func(row, col int) (int, error) {
		point := s.ControlPoints[row][col]
		if err := s.transform(entities, &point); err != nil {
			return 0, err
		}
		return geometry.AddPoint(point, lcar), nil
	}

	// 边界点 ID 必须首尾相接，不能只是坐标相同
	var top, right, bottom, left []int

	for col := 0; col < cols; col++ {
		id, err := add(0, col)
		if err != nil {
			return err
		}
		top = append(top, id)
	}

	right = append(right, top[cols-1])
	for row := 1; row < rows; row++ {
		id, err := add(row, cols-1)
		if err != nil {
			return err
		}
		right = append(right, id)
	}

	bottom = append(bottom, right[rows-1])
	for col := cols - 2; col >= 0; col-- {
		id, err := add(rows-1, col)
		if err != nil {
			return err
		}
		bottom = append(bottom, id)
	}

	left = append(left, bottom[cols-1])
	for row := rows - 2; row > 0; row-- {
		id, err := add(row, 0)
		if err != nil {
			return err
		}
		left = append(left, id)
	}
	left = append(left, top[0])

	loop := geometry.AddCurveLoop([]int{
		geometry.AddBSpline(top),
		geometry.AddBSpline(right),
		geometry.AddBSpline(bottom),
		geometry.AddBSpline(left),
	})

	s.GeometryID = geometry.AddSurface(loop)
	return nil
}
