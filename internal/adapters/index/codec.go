package index

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"

	"go.trai.ch/p2local/internal/core/domain"
	"go.trai.ch/p2local/internal/core/ports"
)

// decode parses one GAV per line. Blank lines are skipped; malformed lines are
// reported to logger and skipped.
func decode(data []byte, path string, logger ports.Logger) *gavSet {
	set := newGAVSet()

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 4096), len(data)+1)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		gav, err := domain.ParseGAV(line)
		if err != nil {
			logger.Warn("skipping malformed index line " + strconv.Itoa(lineNo) + " in " + path + ": " + strconv.Quote(line))
			continue
		}
		set.add(gav)
	}

	return set
}

// encode renders one GAV per line with \n endings, in set order.
func encode(set *gavSet) []byte {
	var buf bytes.Buffer
	for _, gav := range set.order {
		buf.WriteString(gav.String())
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
