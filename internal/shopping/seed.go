package shopping

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"spesa/internal/core"
)

// LoadSeedFile adds the products listed in path to m and returns how many
// were added. Each line is "name;unit;planned_qty;planned_price"; blank
// lines and lines starting with # are skipped. A missing file adds nothing.
func LoadSeedFile(m *Manager, path string) (int, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	added := 0
	lineNo := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		p, err := parseSeedLine(line)
		if err != nil {
			return added, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		m.AddProduct(p.Name, p.Unit, p.PlannedQuantity, p.PlannedPrice)
		added++
	}
	if err := sc.Err(); err != nil {
		return added, fmt.Errorf("read seed file: %w", err)
	}
	return added, nil
}

func parseSeedLine(line string) (core.Product, error) {
	fields := strings.Split(line, ";")
	if len(fields) != 4 {
		return core.Product{}, fmt.Errorf("expected 4 fields, got %d", len(fields))
	}
	qty, err := core.ParseQuantity(fields[2])
	if err != nil {
		return core.Product{}, fmt.Errorf("planned quantity %q: %w", fields[2], err)
	}
	price, err := core.ParseAmount(fields[3])
	if err != nil {
		return core.Product{}, fmt.Errorf("planned price %q: %w", fields[3], err)
	}
	p := core.Product{
		Name:            strings.TrimSpace(fields[0]),
		Unit:            strings.TrimSpace(fields[1]),
		PlannedQuantity: qty,
		PlannedPrice:    price,
	}
	if err := p.Validate(); err != nil {
		return core.Product{}, err
	}
	return p, nil
}
