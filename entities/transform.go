package entities

import (
	"fmt"

	"github.com/zooyer/iges/core"
)

// Transformation 变换矩阵实体（类型 124）
// 对坐标 E 的变换为 R*E + T，R 为 3x3 旋转矩阵，T 为平移向量
type Transformation struct {
	BaseEntity
	R [3][3]float64
	T core.Point
}

func init() {
	Register(124, "TRANSFORMATION MATRIX", func() Entity { return &Transformation{BaseEntity: BaseEntity{TypeNumber: 124}} })
}

func (t *Transformation) AddParameters(params []core.Value) error {
	if err := t.BaseEntity.AddParameters(params); err != nil {
		return err
	}

	if len(params) < 12 {
		return fmt.Errorf("%w: 变换矩阵需要 12 个参数，实际 %d", core.ErrParameterArity, len(params))
	}

	// 参数按行排列，每行末尾跟平移分量: r11 r12 r13 t1 ...
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			t.R[row][col] = params[row*4+col].AsFloat()
		}
	}

	t.T = core.Point{X: params[3].AsFloat(), Y: params[7].AsFloat(), Z: params[11].AsFloat()}
	return nil
}

// Transform 对坐标应用 R*E + T
func (t *Transformation) Transform(p core.Point) core.Point {
	return core.Point{
		X: t.R[0][0]*p.X + t.R[0][1]*p.Y + t.R[0][2]*p.Z + t.T.X,
		Y: t.R[1][0]*p.X + t.R[1][1]*p.Y + t.R[1][2]*p.Z + t.T.Y,
		Z: t.R[2][0]*p.X + t.R[2][1]*p.Y + t.R[2][2]*p.Z + t.T.Z,
	}
}

// ToVTK 变换矩阵自身不生成几何，仅供其他实体引用
func (t *Transformation) ToVTK(entities Registry, geometry Geometry, lcar float64) error {
	return nil
}
