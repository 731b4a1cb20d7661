package iges

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zooyer/iges/core"
)

// globalReader 全局段读取器
// 全局段是数值与 Hollerith 字符串的混合流，分隔符本身就是前两个值
// Hollerith 字符串可能跨物理行，未读完的部分留在 leftOver 中续读
type globalReader struct {
	doc      *Document
	unit     []core.Value
	leftOver string
}

func (r *globalReader) readLine(line core.IgesLine) error {
	content := strings.TrimSpace(r.leftOver + line.Content)
	r.leftOver = ""

	if content == "" {
		return nil
	}

	// 行尾的终止符归一化为分隔符，保证最后一个 token 不会错位
	if terminator := r.doc.Terminator(); strings.HasSuffix(content, terminator) {
		content = content[:len(content)-len(terminator)] + r.doc.Delimiter()
	}

	delimiter := r.doc.Delimiter()[0]

	i := 0
	for i < len(content) {
		// 向前扫描，先遇到分隔符的是数值，先遇到 H 的是字符串
		length := 0
		for i+length < len(content) && content[i+length] != delimiter && content[i+length] != 'H' {
			length++
		}

		if i+length >= len(content) || content[i+length] == delimiter {
			value, err := parseGlobalNumber(content[i : i+length])
			if err != nil {
				return err
			}
			r.unit = append(r.unit, value)
			i += length + 1
			continue
		}

		// Hollerith 字符串，length 是长度前缀本身的位数
		declared, err := strconv.Atoi(strings.TrimSpace(content[i : i+length]))
		if err != nil {
			return fmt.Errorf("%w: Hollerith 长度非法 %q", core.ErrInvalidGlobalData, content[i:i+length])
		}

		end := i + length + 1 + declared
		if end > len(content) {
			// 声明长度超出本行缓冲，留待下一物理行续读
			r.leftOver = content[i:]
			break
		}

		r.unit = append(r.unit, core.TextValue(content[i+length+1:end]))
		i = end + 1 // 跳过字符串后面的分隔符
	}

	return nil
}

func parseGlobalNumber(token string) (value core.Value, err error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return value, nil
	}

	if value, err = core.ParseValue(token); err != nil {
		return value, fmt.Errorf("%w: %v", core.ErrInvalidGlobalData, err)
	}

	return value, nil
}

func (r *globalReader) unitReady() bool {
	return len(r.unit) > 0
}

func (r *globalReader) processUnit(sequence int) error {
	r.doc.GlobalData = append(r.doc.GlobalData, r.unit...)
	r.reset()
	return nil
}

func (r *globalReader) reset() {
	r.unit = nil
}

// finish 全局段结束后不允许残留未完成的 Hollerith 字符串
func (r *globalReader) finish() error {
	if r.leftOver != "" {
		return fmt.Errorf("%w: Hollerith 字符串被截断: %q", core.ErrInvalidGlobalData, r.leftOver)
	}
	return nil
}
