package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Value 代表 IGES 参数值，数值或 Hollerith 字符串二选一
type Value struct {
	Number float64
	Text   string
	IsText bool
}

// NumberValue 构造数值参数
func NumberValue(number float64) Value {
	return Value{Number: number}
}

// TextValue 构造字符串参数
func TextValue(text string) Value {
	return Value{Text: text, IsText: true}
}

// ParseValue 将一个参数 token 转换为 Value
// 含有 H 的按 Hollerith 字符串解析，否则按数值解析，空串为 0
func ParseValue(token string) (value Value, err error) {
	if strings.ContainsRune(token, 'H') {
		text, err := ReadHollerith(token)
		if err != nil {
			return value, err
		}
		return TextValue(text), nil
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return Value{}, nil
	}

	// 部分前置处理器使用 Fortran 风格的 D 指数
	number, err := strconv.ParseFloat(strings.Map(func(r rune) rune {
		if r == 'D' || r == 'd' {
			return 'E'
		}
		return r
	}, token), 64)
	if err != nil {
		return value, fmt.Errorf("非法数值 %q: %w", token, err)
	}

	return NumberValue(number), nil
}

// ReadHollerith 解析 Hollerith 格式字符串 <长度>H<内容>
// 前缀长度必须与内容字符数完全一致
func ReadHollerith(token string) (text string, err error) {
	i := strings.IndexByte(token, 'H')
	if i <= 0 {
		return "", fmt.Errorf("%w: 缺少 Hollerith 长度前缀: %q", ErrInvalidGlobalData, token)
	}

	length, err := strconv.Atoi(strings.TrimSpace(token[:i]))
	if err != nil {
		return "", fmt.Errorf("%w: Hollerith 长度非法: %q", ErrInvalidGlobalData, token)
	}

	if i+1+length > len(token) {
		return "", fmt.Errorf("%w: Hollerith 声明长度 %d 超出剩余内容 %d", ErrInvalidGlobalData, length, len(token)-i-1)
	}

	return token[i+1 : i+1+length], nil
}

// AsFloat 将值作为 float64 读取
func (v Value) AsFloat() float64 {
	return v.Number
}

// AsInt 将值作为 int 读取
func (v Value) AsInt() int {
	return int(v.Number)
}

// AsString 将值作为字符串读取
func (v Value) AsString() string {
	if v.IsText {
		return v.Text
	}
	return strconv.FormatFloat(v.Number, 'g', -1, 64)
}
