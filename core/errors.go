package core

import "errors"

// 解码过程中可能出现的错误类别
var (
	// ErrMalformedLine 物理行格式非法（长度不足或段标识不识别），整个文件终止解析
	ErrMalformedLine = errors.New("iges: malformed line")

	// ErrInvalidGlobalData 全局段数据非法（Hollerith 字符串被截断等），整个文件终止解析
	ErrInvalidGlobalData = errors.New("iges: invalid global data")

	// ErrDanglingPointer 指针在注册表中无法解析
	ErrDanglingPointer = errors.New("iges: dangling pointer")

	// ErrParameterArity 参数数量与实体类型的文法不符，仅该实体失败
	ErrParameterArity = errors.New("iges: parameter arity mismatch")

	// ErrDegenerateConic 圆锥曲线退化（特征值为零），仅该实体几何重建失败
	ErrDegenerateConic = errors.New("iges: degenerate conic")
)
