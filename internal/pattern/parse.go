package pattern

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Parse reads a plaintext pattern: one row per line, '.' for dead cells and
// 'O' or '*' for live ones, with '!' starting comment lines. Ragged rows are
// allowed; missing trailing cells are dead.
func Parse(name string, r io.Reader) (Pattern, error) {
	p := Pattern{Name: name}

	scanner := bufio.NewScanner(r)
	row := 0
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if strings.HasPrefix(line, "!") {
			if p.Desc == "" {
				p.Desc = strings.TrimSpace(strings.TrimPrefix(line, "!"))
			}
			continue
		}
		for col, ch := range line {
			switch ch {
			case 'O', 'o', '*':
				p.Cells = append(p.Cells, Cell{Row: row, Col: col})
			case '.', ' ':
			default:
				return Pattern{}, errors.Errorf("[Parse] unexpected character %q at line %d", ch, row+1)
			}
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return Pattern{}, errors.Wrap(err, "[Parse] failed to read pattern")
	}
	if len(p.Cells) == 0 {
		return Pattern{}, errors.New("[Parse] pattern has no live cells")
	}
	return p, nil
}

// ParseFile loads a plaintext pattern file, naming the pattern after the
// file's base name.
func ParseFile(path string) (Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return Pattern{}, errors.Wrapf(err, "[ParseFile] failed to open file: %+v", path)
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Parse(name, f)
}

// Load resolves a pattern reference: a builtin name first, then a file path.
func Load(ref string) (Pattern, error) {
	if p, ok := Get(ref); ok {
		return p, nil
	}
	if _, err := os.Stat(ref); err != nil {
		return Pattern{}, errors.Errorf("[Load] unknown pattern %q (builtins: %s)", ref, strings.Join(Names(), ", "))
	}
	return ParseFile(ref)
}
