package slovoform

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// OpenOption adjusts how Open reads a dictionary file.
type OpenOption func(*openConfig)

type openConfig struct {
	decode func([]byte) ([]byte, error)
}

// WithWindows1251 decodes the dictionary bytes from Windows-1251
// before parsing. Older Russian dictionary dumps still use it.
func WithWindows1251() OpenOption {
	return func(c *openConfig) {
		c.decode = func(b []byte) ([]byte, error) {
			return charmap.Windows1251.NewDecoder().Bytes(b)
		}
	}
}

// Windows1251Reader wraps r so it yields UTF-8 decoded from
// Windows-1251, for use with NewReader.
func Windows1251Reader(r io.Reader) io.Reader {
	return transform.NewReader(r, charmap.Windows1251.NewDecoder())
}

// Open builds a Morpher from a dictionary file. The file is read
// through a read-only memory mapping, which is released once the
// dictionary is built.
func Open(path string, opts ...OpenOption) (*Morpher, error) {
	var cfg openConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat dictionary: %w", err)
	}
	if fi.Size() == 0 {
		// Zero-length files cannot be mapped.
		return New(nil)
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("map dictionary: %w", err)
	}
	defer data.Unmap()

	raw := []byte(data)
	if cfg.decode != nil {
		raw, err = cfg.decode(raw)
		if err != nil {
			return nil, fmt.Errorf("decode dictionary: %w", err)
		}
	}
	return New(splitLines(raw))
}

// NewReader builds a Morpher from dictionary lines read off r.
func NewReader(r io.Reader) (*Morpher, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}
	return New(lines)
}

// splitLines splits raw file bytes into lines, dropping trailing \r.
func splitLines(data []byte) []string {
	lines := make([]string, 0, bytes.Count(data, []byte{'\n'})+1)
	for len(data) > 0 {
		var line []byte
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line, data = data[:i], data[i+1:]
		} else {
			line, data = data, nil
		}
		if len(line) > 0 && line[len(line)-1] == '\r' {
			line = line[:len(line)-1]
		}
		lines = append(lines, string(line))
	}
	return lines
}
