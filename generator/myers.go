package generator

import "slices"

// editOp classifies one line of an edit script.
type editOp int8

const (
	opUnchanged editOp = iota
	opAdded
	opRemoved
)

// diffLine is one step of an edit script. Line numbers are 1-based and
// zero on the side the line does not exist in.
type diffLine struct {
	oldLineNum int
	newLineNum int
	content    string
	op         editOp
}

// DiffGenerator computes line diffs with the Myers O(ND) algorithm.
// Scratch buffers are kept between calls, so a generator must not be
// shared between goroutines.
type DiffGenerator struct {
	v     []int
	trace [][]int
}

// NewDiffGenerator returns a generator with empty scratch buffers.
func NewDiffGenerator() *DiffGenerator {
	return &DiffGenerator{}
}

func computeEditScript(a, b []string) []diffLine {
	return NewDiffGenerator().editScript(a, b)
}

// editScript returns the shortest sequence of keeps, inserts and deletes
// turning a into b. Deletions are ordered before insertions at the same
// position.
func (dg *DiffGenerator) editScript(a, b []string) []diffLine {
	n, m := len(a), len(b)
	limit := n + m
	off := limit + 1 // v is indexed by diagonal k in [-limit-1, limit+1]
	size := 2*limit + 3

	dg.v = resize(dg.v, size)
	clear(dg.v)
	dg.trace = dg.trace[:0]

	v := dg.v
search:
	for d := 0; d <= limit; d++ {
		dg.snapshot(d, v)

		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && v[off+k-1] < v[off+k+1]) {
				x = v[off+k+1]
			} else {
				x = v[off+k-1] + 1
			}
			y := x - k

			for x < n && y < m && a[x] == b[y] {
				x++
				y++
			}
			v[off+k] = x

			if x >= n && y >= m {
				break search
			}
		}
	}

	script := make([]diffLine, 0, max(n, m))
	x, y := n, m
	for d := len(dg.trace) - 1; d >= 0; d-- {
		prev := dg.trace[d]
		k := x - y

		prevK := k - 1
		if k == -d || (k != d && prev[off+k-1] < prev[off+k+1]) {
			prevK = k + 1
		}
		prevX := prev[off+prevK]
		prevY := prevX - prevK

		for x > prevX && y > prevY {
			x--
			y--
			script = append(script, diffLine{oldLineNum: x + 1, newLineNum: y + 1, content: a[x], op: opUnchanged})
		}
		if d == 0 {
			break
		}

		if x == prevX {
			y--
			script = append(script, diffLine{newLineNum: y + 1, content: b[y], op: opAdded})
		} else {
			x--
			script = append(script, diffLine{oldLineNum: x + 1, content: a[x], op: opRemoved})
		}
	}

	slices.Reverse(script)
	return script
}

// snapshot records v as the state before step d, reusing an earlier
// buffer when one is available.
func (dg *DiffGenerator) snapshot(d int, v []int) {
	var buf []int
	if d < cap(dg.trace) {
		buf = dg.trace[:d+1][d]
	}
	buf = resize(buf, len(v))
	copy(buf, v)
	dg.trace = append(dg.trace[:d], buf)
}

func resize(s []int, n int) []int {
	if cap(s) < n {
		return make([]int, n)
	}
	return s[:n]
}
