package core

import (
	"bufio"
	"io"
	"strings"
)

type Scanner struct {
	reader   *bufio.Reader
	LastLine IgesLine
	err      error
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		reader: bufio.NewReader(r),
	}
}

func (s *Scanner) Next() bool {
	for {
		raw, err := s.reader.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				s.err = err
				return false
			}
			// 最后一行允许没有换行符
			if raw == "" {
				return false
			}
		}

		raw = strings.TrimRight(raw, "\r\n")
		if raw == "" { // 跳过空行
			continue
		}

		line, err := ParseLine(raw)
		if err != nil {
			s.err = err
			return false
		}

		s.LastLine = line
		return true
	}
}

func (s *Scanner) Err() error {
	return s.err
}
