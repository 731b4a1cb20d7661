package entities

// EntityFactory 定义了如何创建一个实体骨架
type EntityFactory func() Entity

var registry = map[int]EntityFactory{}

var typeNames = map[int]string{}

// norender 被排除在网格生成之外的实体类型
var norender = map[int]bool{}

// Register 允许以后动态扩展新的实体类型
func Register(typeNumber int, typeName string, factory EntityFactory) {
	registry[typeNumber] = factory
	typeNames[typeNumber] = typeName
}

// CreateEntity 根据类型号生产对应的结构体，不支持的类型返回 nil
func CreateEntity(typeNumber int) Entity {
	if factory, ok := registry[typeNumber]; ok {
		return factory()
	}
	return nil
}

// TypeName 返回类型号对应的名称
func TypeName(typeNumber int) string {
	if name, ok := typeNames[typeNumber]; ok {
		return name
	}
	return "UNKNOWN"
}

// SetRender 按类型开关网格生成，关闭后实体仍可被指针解析
func SetRender(typeNumber int, enabled bool) {
	norender[typeNumber] = !enabled
}

// Renderable 判断类型是否参与网格生成
func Renderable(typeNumber int) bool {
	return !norender[typeNumber]
}
