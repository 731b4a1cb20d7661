package utils

import (
	"testing"

	"github.com/zooyer/iges"
	"github.com/zooyer/iges/core"
	"github.com/zooyer/iges/entities"
)

// recordGeometry 记录构建调用的测试替身
type recordGeometry struct {
	nextID int
	points []core.Point
	lines  int
	arcs   int
}

func (g *recordGeometry) id() int {
	g.nextID++
	return g.nextID
}

func (g *recordGeometry) AddPoint(point core.Point, lcar float64) int {
	g.points = append(g.points, point)
	return g.id()
}

func (g *recordGeometry) AddLine(start, end int) int {
	g.lines++
	return g.id()
}

func (g *recordGeometry) AddCircleArc(start, center, end int) int {
	g.arcs++
	return g.id()
}

func (g *recordGeometry) AddEllipseArc(start, center, major, end int) int { return g.id() }
func (g *recordGeometry) AddBSpline(points []int) int                    { return g.id() }
func (g *recordGeometry) AddCurveLoop(curves []int) int                  { return g.id() }
func (g *recordGeometry) AddSurface(loop int) int                        { return g.id() }

func (g *recordGeometry) Revolve(geometry int, axisStart, axisEnd core.Point, angle float64) int {
	return g.id()
}

// nums 构造数值参数表
func nums(values ...float64) []core.Value {
	params := make([]core.Value, 0, len(values))
	for _, v := range values {
		params = append(params, core.NumberValue(v))
	}
	return params
}

// build 创建实体并填充参数，失败直接终止测试
func build(t *testing.T, typeNumber int, params []core.Value) entities.Entity {
	t.Helper()

	entity := entities.CreateEntity(typeNumber)
	if entity == nil {
		t.Fatalf("类型 %d 未注册", typeNumber)
	}
	if err := entity.AddParameters(params); err != nil {
		t.Fatalf("类型 %d 参数填充失败: %v", typeNumber, err)
	}

	return entity
}

func TestConvert(t *testing.T) {
	doc := &iges.Document{Entities: make(entities.Registry)}
	doc.Entities[0] = build(t, 110, nums(0, 0, 0, 1, 1, 0))
	doc.Entities[1] = build(t, 116, nums(2, 3, 4))
	doc.Entities[2] = build(t, 100, nums(0, 0, 0, 1, 0, 0, 1))

	var geometry recordGeometry
	Convert(doc, &geometry, 0.1)

	if geometry.lines != 1 {
		t.Errorf("线段数不符: 期望 1, 得到 %d", geometry.lines)
	}
	if geometry.arcs != 1 {
		t.Errorf("圆弧数不符: 期望 1, 得到 %d", geometry.arcs)
	}
	// 线段 2 点 + 点 1 点 + 圆弧 3 点
	if len(geometry.points) != 6 {
		t.Errorf("点数不符: 期望 6, 得到 %d", len(geometry.points))
	}
}

func TestConvert_SkipsPregenerated(t *testing.T) {
	doc := &iges.Document{Entities: make(entities.Registry)}

	line := build(t, 110, nums(0, 0, 0, 1, 1, 0))
	line.Base().GeometryID = 7 // 已被旋转面等实体提前生成
	doc.Entities[0] = line

	var geometry recordGeometry
	Convert(doc, &geometry, 0.1)

	if geometry.lines != 0 {
		t.Errorf("已生成实体不应重复写入, 得到 %d 条线段", geometry.lines)
	}
}

func TestBounds(t *testing.T) {
	doc := &iges.Document{Entities: make(entities.Registry)}
	doc.Entities[0] = build(t, 110, nums(-1, 0, 2, 3, 4, 0))
	doc.Entities[1] = build(t, 116, nums(0, -5, 1))

	box, ok := Bounds(doc)
	if !ok {
		t.Fatal("应得到包围盒")
	}

	if box.Min != (core.Point{X: -1, Y: -5, Z: 0}) {
		t.Errorf("最小点不符: %+v", box.Min)
	}
	if box.Max != (core.Point{X: 3, Y: 4, Z: 2}) {
		t.Errorf("最大点不符: %+v", box.Max)
	}
}

func TestBounds_Transformed(t *testing.T) {
	doc := &iges.Document{Entities: make(entities.Registry)}

	// 绕 Z 轴旋转 90 度再平移 (10,0,0)
	matrix := build(t, 124, nums(
		0, -1, 0, 10,
		1, 0, 0, 0,
		0, 0, 1, 0,
	))
	doc.Entities[3] = matrix

	line := build(t, 110, nums(1, 0, 0, 0, 1, 0))
	line.Base().Transformation = 7 // 目录段序号，指向注册表指针 3
	doc.Entities[0] = line

	box, ok := Bounds(doc)
	if !ok {
		t.Fatal("应得到包围盒")
	}

	// (1,0,0) -> (10,1,0), (0,1,0) -> (9,0,0)
	if box.Min != (core.Point{X: 9, Y: 0, Z: 0}) {
		t.Errorf("最小点不符: %+v", box.Min)
	}
	if box.Max != (core.Point{X: 10, Y: 1, Z: 0}) {
		t.Errorf("最大点不符: %+v", box.Max)
	}
}

func TestBounds_Empty(t *testing.T) {
	doc := &iges.Document{Entities: make(entities.Registry)}
	if _, ok := Bounds(doc); ok {
		t.Error("空文档不应得到包围盒")
	}
}
