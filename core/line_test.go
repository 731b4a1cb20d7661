package core

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestParseLine_Basic(t *testing.T) {
	raw := fmt.Sprintf("%-72s%c%7d", "1H,,1H;,4HTEST", SectionGlobal, 1)

	line, err := ParseLine(raw)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}

	if line.Section != SectionGlobal {
		t.Errorf("段标识不符: 期望 %c, 得到 %c", SectionGlobal, line.Section)
	}
	if line.Sequence != 1 {
		t.Errorf("序号不符: 期望 1, 得到 %d", line.Sequence)
	}
	if !strings.HasPrefix(line.Content, "1H,,1H;,4HTEST") || len(line.Content) != ContentWidth {
		t.Errorf("内容不符: %q", line.Content)
	}
}

func TestParseLine_SequenceBlankAsZero(t *testing.T) {
	// 序号列中的空格按 0 处理
	raw := fmt.Sprintf("%-72s%c", "CONTENT", SectionStart) + "  1   2"

	line, err := ParseLine(raw)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}

	if line.Sequence != 10002 {
		t.Errorf("序号不符: 期望 10002, 得到 %d", line.Sequence)
	}
}

func TestParseLine_TooShort(t *testing.T) {
	if _, err := ParseLine("TOO SHORT"); !errors.Is(err, ErrMalformedLine) {
		t.Errorf("短行应返回 ErrMalformedLine, 得到 %v", err)
	}
}

func TestParseLine_BadSection(t *testing.T) {
	raw := fmt.Sprintf("%-72s%c%7d", "CONTENT", 'X', 1)
	if _, err := ParseLine(raw); !errors.Is(err, ErrMalformedLine) {
		t.Errorf("非法段标识应返回 ErrMalformedLine, 得到 %v", err)
	}
}

func TestChunkString(t *testing.T) {
	chunks, err := ChunkString("AABBCC", 2)
	if err != nil {
		t.Fatalf("切块失败: %v", err)
	}

	expected := []string{"AA", "BB", "CC"}
	if len(chunks) != len(expected) {
		t.Fatalf("块数不符: 期望 %d, 得到 %d", len(expected), len(chunks))
	}
	for i, exp := range expected {
		if chunks[i] != exp {
			t.Errorf("第 %d 块不符: 期望 %q, 得到 %q", i, exp, chunks[i])
		}
	}

	if _, err = ChunkString("AABB", 0); err == nil {
		t.Error("块长度为 0 应返回错误")
	}
	if _, err = ChunkString("AABB", -1); err == nil {
		t.Error("块长度为负应返回错误")
	}
}

func TestScanner_Basic(t *testing.T) {
	data := fmt.Sprintf("%-72s%c%7d", "DESCRIPTION", SectionStart, 1) + "\n" +
		fmt.Sprintf("%-72s%c%7d", "1H,,1H;", SectionGlobal, 1) + "\n"

	scanner := NewScanner(strings.NewReader(data))

	expected := []byte{SectionStart, SectionGlobal}
	for i, section := range expected {
		if !scanner.Next() {
			t.Fatalf("第 %d 步读取失败: %v", i, scanner.Err())
		}
		if scanner.LastLine.Section != section {
			t.Errorf("第 %d 步段标识不符: 期望 %c, 得到 %c", i, section, scanner.LastLine.Section)
		}
	}

	if scanner.Next() {
		t.Error("数据读完后 Next 应返回 false")
	}
	if scanner.Err() != nil {
		t.Errorf("正常结束不应有错误: %v", scanner.Err())
	}
}

func TestScanner_ManyBlankLines(t *testing.T) {
	// 大量连续空行不影响读取
	data := strings.Repeat("\n", 100000) +
		fmt.Sprintf("%-72s%c%7d", "DESCRIPTION", SectionStart, 1) + "\n"

	scanner := NewScanner(strings.NewReader(data))
	if !scanner.Next() {
		t.Fatalf("读取失败: %v", scanner.Err())
	}
	if scanner.LastLine.Section != SectionStart {
		t.Errorf("段标识不符: %c", scanner.LastLine.Section)
	}
	if scanner.Next() {
		t.Error("数据读完后 Next 应返回 false")
	}
}

func TestPointerFromSequence(t *testing.T) {
	// 目录段序号 2k+1 对应指针 k
	for k := 0; k < 10; k++ {
		if p := PointerFromSequence(2*k + 1); p != Pointer(k) {
			t.Errorf("序号 %d 指针不符: 期望 %d, 得到 %d", 2*k+1, k, p)
		}
		// 单元第二行的序号换算结果相同
		if p := PointerFromSequence(2*k + 2); p != Pointer(k) {
			t.Errorf("序号 %d 指针不符: 期望 %d, 得到 %d", 2*k+2, k, p)
		}
	}
}
