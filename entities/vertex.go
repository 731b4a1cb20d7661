package entities

import (
	"fmt"

	"github.com/zooyer/iges/core"
)

// VertexList 顶点表实体（类型 502），B-Rep 拓扑的底层坐标表
type VertexList struct {
	BaseEntity
	Vertices []core.Point
}

func init() {
	Register(502, "VERTEX LIST", func() Entity { return &VertexList{BaseEntity: BaseEntity{TypeNumber: 502}} })
}

func (l *VertexList) AddParameters(params []core.Value) error {
	if err := l.BaseEntity.AddParameters(params); err != nil {
		return err
	}

	if len(params) < 1 {
		return fmt.Errorf("%w: 顶点表缺少顶点数量", core.ErrParameterArity)
	}

	count := params[0].AsInt()
	if count < 0 || len(params) < 1+3*count {
		return fmt.Errorf("%w: 顶点表声明 %d 个顶点，参数不足", core.ErrParameterArity, count)
	}

	l.Vertices = make([]core.Point, 0, count)
	for i := 1; i < 1+3*count; i += 3 {
		l.Vertices = append(l.Vertices, core.Point{
			X: params[i].AsFloat(),
			Y: params[i+1].AsFloat(),
			Z: params[i+2].AsFloat(),
		})
	}

	return nil
}

// Vertex 按 1 起始的下标取顶点
func (l *VertexList) Vertex(index int) (core.Point, error) {
	if index < 1 || index > len(l.Vertices) {
		return core.Point{}, fmt.Errorf("%w: 顶点下标 %d 超出范围 [1,%d]", core.ErrDanglingPointer, index, len(l.Vertices))
	}

	return l.Vertices[index-1], nil
}
