package core

import (
	"fmt"
	"math"

	"github.com/zooyer/golib/xmath"
)

// epsilon 特征值判零精度
const epsilon = 1e-9

// CanonicalSemiAxis 由圆锥曲线一般式系数求标准形长半轴
//
//	a*x^2 + b*x*y + c*y^2 + d*x + e*y + f = 0
//
// 先求 2x2 矩阵 [[a,b/2],[b/2,c]] 的特征值 λ1、λ2
// 和 3x3 圆锥曲线矩阵的行列式 S，长半轴为 -S/(λ1^2 * λ2)
// 用于椭圆、双曲线重建时定位长轴上的一点
func CanonicalSemiAxis(a, b, c, d, e, f float64) (float64, error) {
	// 对称 2x2 矩阵的特征值有闭式解
	var (
		mean = (a + c) / 2
		diff = math.Hypot((a-c)/2, b/2)
		l1   = mean - diff
		l2   = mean + diff
	)

	if xmath.Equal(l1, 0, epsilon) || xmath.Equal(l2, 0, epsilon) {
		return 0, fmt.Errorf("%w: 特征值为零 λ1=%g λ2=%g", ErrDegenerateConic, l1, l2)
	}

	s := det3(
		a, b/2, d/2,
		b/2, c, e/2,
		d/2, e/2, f,
	)

	return -s / (l1 * l1 * l2), nil
}

// det3 计算 3x3 矩阵行列式
func det3(m11, m12, m13, m21, m22, m23, m31, m32, m33 float64) float64 {
	return m11*(m22*m33-m23*m32) - m12*(m21*m33-m23*m31) + m13*(m21*m32-m22*m31)
}
