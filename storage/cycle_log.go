package storage

import (
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"strings"
)

// CycleLog tracks batch-completion progress for the round-robin node. Each
// distinct item list (identified by its fingerprint) gets one append-only log
// file: every execution reads the last line, computes the next state and
// appends one line. Reset truncates the file.
//
// Lines hold "index count": the 0-based item index in progress and how many
// executions that item has received so far. A missing, empty or corrupt tail
// restarts the cycle at zero. No file lock is taken; the host executes nodes
// one at a time (single-writer contract).
type CycleLog struct {
	dir string
}

// NewCycleLog returns a CycleLog writing under dir. The directory is created
// on first append.
func NewCycleLog(dir string) *CycleLog {
	return &CycleLog{dir: dir}
}

// Fingerprint derives the stable log identifier for an item list. Lists that
// differ only in surrounding whitespace share a fingerprint.
func Fingerprint(textList string) string {
	h := fnv.New64a()
	h.Write([]byte(strings.TrimSpace(textList)))
	return fmt.Sprintf("%016x", h.Sum64())
}

func (c *CycleLog) path(fingerprint string) string {
	return filepath.Join(c.dir, "cycle_"+fingerprint+".log")
}

// Next advances the cycle for the given list fingerprint and returns the
// 0-based index of the item to use plus the 1-based execution count within
// that item. After perItem executions the cycle moves to the next item,
// wrapping past numItems back to the start.
func (c *CycleLog) Next(fingerprint string, numItems, perItem int) (index, count int, err error) {
	if numItems <= 0 || perItem <= 0 {
		return 0, 0, fmt.Errorf("invalid cycle dimensions: %d items, %d per item", numItems, perItem)
	}

	idx, cnt := c.tail(fingerprint)
	if idx >= numItems || cnt >= perItem || idx < 0 || cnt < 0 {
		// Stale state from a different list shape restarts the cycle.
		idx, cnt = 0, 0
	}

	count = cnt + 1

	nextIdx, nextCnt := idx, count
	if count >= perItem {
		nextIdx = (idx + 1) % numItems
		nextCnt = 0
	}

	if err := c.append(fingerprint, nextIdx, nextCnt); err != nil {
		return 0, 0, err
	}

	return idx, count, nil
}

// Peek returns the persisted state without advancing: the item index in
// progress and the executions it has already received.
func (c *CycleLog) Peek(fingerprint string) (index, count int) {
	return c.tail(fingerprint)
}

// Reset truncates the log for the fingerprint so the next execution starts
// at the first item. A log that never existed is not an error.
func (c *CycleLog) Reset(fingerprint string) error {
	err := os.Truncate(c.path(fingerprint), 0)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// tail reads the last non-empty log line. Any read or parse failure yields
// the zero state.
func (c *CycleLog) tail(fingerprint string) (index, count int) {
	data, err := os.ReadFile(c.path(fingerprint))
	if err != nil {
		return 0, 0
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	last := strings.TrimSpace(lines[len(lines)-1])
	if last == "" {
		return 0, 0
	}

	if _, err := fmt.Sscanf(last, "%d %d", &index, &count); err != nil {
		return 0, 0
	}
	return index, count
}

func (c *CycleLog) append(fingerprint string, index, count int) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("create cycle log dir: %w", err)
	}

	f, err := os.OpenFile(c.path(fingerprint), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open cycle log: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%d %d\n", index, count); err != nil {
		return fmt.Errorf("append cycle log: %w", err)
	}
	return nil
}
