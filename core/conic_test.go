package core

import (
	"errors"
	"testing"

	"github.com/zooyer/golib/xmath"
)

func TestCanonicalSemiAxis_UnitCircle(t *testing.T) {
	// 单位圆 x^2 + y^2 - 1 = 0
	axis, err := CanonicalSemiAxis(1, 0, 1, 0, 0, -1)
	if err != nil {
		t.Fatalf("计算失败: %v", err)
	}

	if !xmath.Equal(axis, 1.0, 1e-9) {
		t.Errorf("单位圆长半轴不符: 期望 1.0, 得到 %g", axis)
	}
}

func TestCanonicalSemiAxis_Ellipse(t *testing.T) {
	// 椭圆 x^2/4 + y^2 - 1 = 0，长半轴 2，-S/(λ1^2*λ2) = 4
	axis, err := CanonicalSemiAxis(0.25, 0, 1, 0, 0, -1)
	if err != nil {
		t.Fatalf("计算失败: %v", err)
	}

	if !xmath.Equal(axis, 4.0, 1e-9) {
		t.Errorf("椭圆标准形系数不符: 期望 4.0, 得到 %g", axis)
	}
}

func TestCanonicalSemiAxis_Degenerate(t *testing.T) {
	// 抛物线 y^2 - x = 0 的特征值含零
	if _, err := CanonicalSemiAxis(0, 0, 1, -1, 0, 0); !errors.Is(err, ErrDegenerateConic) {
		t.Errorf("退化圆锥曲线应返回 ErrDegenerateConic, 得到 %v", err)
	}
}
