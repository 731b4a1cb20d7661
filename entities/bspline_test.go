package entities

import (
	"errors"
	"testing"

	"github.com/zooyer/iges/core"
)

// curveParams 构造 K=3, M=2 的合法曲线参数表
// 节点 7 个，权重 4 个，控制点 4 个
func curveParams() []float64 {
	params := []float64{3, 2, 1, 0, 0, 0}
	params = append(params, 0, 0, 0, 0.5, 1, 1, 1)                     // 节点
	params = append(params, 1, 1, 1, 1)                                // 权重
	params = append(params, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0)       // 控制点
	params = append(params, 0, 1, 0, 0, 1)                             // 参数范围和法向量
	return params
}

func TestRationalBSplineCurve(t *testing.T) {
	curve := CreateEntity(126).(*RationalBSplineCurve)
	if err := curve.AddParameters(nums(curveParams()...)); err != nil {
		t.Fatalf("参数填充失败: %v", err)
	}

	if curve.UpperIndex != 3 || curve.Degree != 2 {
		t.Errorf("K/M 不符: %d/%d", curve.UpperIndex, curve.Degree)
	}
	if len(curve.Knots) != 7 {
		t.Errorf("节点数不符: 期望 7, 得到 %d", len(curve.Knots))
	}
	if len(curve.Weights) != 4 {
		t.Errorf("权重数不符: 期望 4, 得到 %d", len(curve.Weights))
	}
	if len(curve.ControlPoints) != 4 {
		t.Errorf("控制点数不符: 期望 4, 得到 %d", len(curve.ControlPoints))
	}
	if !curve.Planar {
		t.Error("平面标志不符")
	}

	geometry := new(fakeGeometry)
	if err := curve.ToVTK(Registry{0: curve}, geometry, 0.1); err != nil {
		t.Fatalf("生成几何失败: %v", err)
	}
	if len(geometry.splines) != 1 || len(geometry.splines[0]) != 4 {
		t.Errorf("样条调用不符: %+v", geometry.splines)
	}
}

func TestRationalBSplineCurve_Arity(t *testing.T) {
	// 少一个权重
	params := curveParams()
	params = append(params[:14], params[15:]...)

	curve := CreateEntity(126).(*RationalBSplineCurve)
	if err := curve.AddParameters(nums(params...)); !errors.Is(err, core.ErrParameterArity) {
		t.Errorf("基数不符应返回 ErrParameterArity, 得到 %v", err)
	}
}

// surfaceParams 构造 K1=1, K2=1, M1=1, M2=1 的合法曲面参数表
// 两个方向节点各 4 个，权重 4 个，控制点网格 2x2
func surfaceParams() []float64 {
	params := []float64{1, 1, 1, 1, 0, 0, 0, 0, 0}
	params = append(params, 0, 0, 1, 1) // U 节点
	params = append(params, 0, 0, 1, 1) // V 节点
	params = append(params, 1, 1, 1, 1) // 权重
	params = append(params,
		0, 0, 0,
		1, 0, 0,
		0, 1, 0,
		1, 1, 0,
	)
	params = append(params, 0, 1, 0, 1) // 参数范围
	return params
}

func TestRationalBSplineSurface(t *testing.T) {
	surface := CreateEntity(128).(*RationalBSplineSurface)
	if err := surface.AddParameters(nums(surfaceParams()...)); err != nil {
		t.Fatalf("参数填充失败: %v", err)
	}

	if len(surface.KnotsU) != 4 || len(surface.KnotsV) != 4 {
		t.Errorf("节点向量长度不符: U %d, V %d", len(surface.KnotsU), len(surface.KnotsV))
	}
	if len(surface.Weights) != 4 {
		t.Errorf("权重数不符: 期望 4, 得到 %d", len(surface.Weights))
	}
	if len(surface.ControlPoints) != 2 || len(surface.ControlPoints[0]) != 2 {
		t.Errorf("控制点网格不符: %d x %d", len(surface.ControlPoints), len(surface.ControlPoints[0]))
	}
	if surface.ControlPoints[1][1].Y != 1 {
		t.Errorf("控制点网格重组不符: %+v", surface.ControlPoints)
	}

	geometry := new(fakeGeometry)
	if err := surface.ToVTK(Registry{0: surface}, geometry, 0.1); err != nil {
		t.Fatalf("生成几何失败: %v", err)
	}
	if len(geometry.splines) != 4 || geometry.loops != 1 || geometry.surfaces != 1 {
		t.Errorf("几何调用不符: 样条 %d, 环 %d, 面 %d", len(geometry.splines), geometry.loops, geometry.surfaces)
	}
}

func TestRationalBSplineSurface_Arity(t *testing.T) {
	// 少一个控制点坐标
	params := surfaceParams()
	params = params[:len(params)-1]

	surface := CreateEntity(128).(*RationalBSplineSurface)
	if err := surface.AddParameters(nums(params...)); !errors.Is(err, core.ErrParameterArity) {
		t.Errorf("基数不符应返回 ErrParameterArity, 得到 %v", err)
	}
}
