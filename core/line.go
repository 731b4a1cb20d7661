package core

import (
	"fmt"
	"strconv"
	"strings"
)

// IGES 物理行固定为 80 列：1-72 内容，73 段标识，74-80 右对齐序号
const (
	ContentWidth = 72
	EntryLength  = 8 // 目录段每个字段固定 8 列
)

// 段标识，位于第 73 列
const (
	SectionStart     = 'S'
	SectionGlobal    = 'G'
	SectionData      = 'D'
	SectionParameter = 'P'
	SectionTerminate = 'T'
)

// IgesLine 代表一条已拆分的物理行
type IgesLine struct {
	Content  string
	Section  byte
	Sequence int
}

// ParseLine 将一条物理行拆分为内容、段标识和序号
func ParseLine(raw string) (line IgesLine, err error) {
	if len(raw) < ContentWidth+1 {
		return line, fmt.Errorf("%w: 行长度不足 %d 列: %d", ErrMalformedLine, ContentWidth+1, len(raw))
	}

	section := raw[ContentWidth]
	switch section {
	case SectionStart, SectionGlobal, SectionData, SectionParameter, SectionTerminate:
	default:
		return line, fmt.Errorf("%w: 未知的段标识 %q", ErrMalformedLine, section)
	}

	// 序号列中的空格按数字 0 处理
	var sequence int
	if seq := strings.ReplaceAll(raw[ContentWidth+1:], " ", "0"); seq != "" {
		if sequence, err = strconv.Atoi(seq); err != nil {
			return line, fmt.Errorf("%w: 序号非法 %q", ErrMalformedLine, raw[ContentWidth+1:])
		}
	}

	return IgesLine{Content: raw[:ContentWidth], Section: section, Sequence: sequence}, nil
}

// ChunkString 将字符串按固定长度切块，目录段按 8 列切分时使用
func ChunkString(s string, length int) (chunks []string, err error) {
	if length <= 0 {
		return nil, fmt.Errorf("非法块长度: %d", length)
	}

	for i := 0; i < len(s); i += length {
		end := i + length
		if end > len(s) {
			end = len(s)
		}
		chunks = append(chunks, s[i:end])
	}

	return chunks, nil
}
