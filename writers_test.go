package gridsearch

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tmpResult() EvaluationResult {
	var p ParameterSet
	p.Weights[0] = 1.
	r := NewEvaluationResult(p)
	r.TrainR2, r.TestR2, r.TrainRmse, r.TestRmse = 0.95, 0.9, 0.1, 0.2
	return r
}

func readLines(t *testing.T, fp string) []string {
	b, err := os.ReadFile(fp)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(b), "\n"), "\n")
}

func TestResultWriterRowsAndHeader(t *testing.T) {
	dir := t.TempDir() + "/"
	w := NewResultWriter(dir, 0, 1, 1<<20)
	r := tmpResult()
	require.NoError(t, w.Write(&r))
	require.NoError(t, w.Write(&r))
	w.Close()

	lns := readLines(t, dir+"results_0.csv")
	require.Len(t, lns, 3)
	assert.Equal(t, ResultHeader, lns[0])
	for _, ln := range lns[1:] {
		assert.Len(t, strings.Split(ln, ";"), NResultCols)
	}
}

func TestResultWriterRotation(t *testing.T) {
	dir := t.TempDir() + "/"
	w := NewResultWriter(dir, 2, 3, 1) // cap below any row: every write rotates
	r := tmpResult()
	for i := 0; i < 3; i++ {
		require.NoError(t, w.Write(&r))
	}
	w.Close()

	// strided numbering: worker files never collide
	for _, fp := range []string{"results_2.csv", "results_5.csv", "results_8.csv"} {
		lns := readLines(t, dir+fp)
		require.Len(t, lns, 2, fp)
		assert.Equal(t, ResultHeader, lns[0])
	}
}

func TestMerge(t *testing.T) {
	dir := t.TempDir() + "/"

	// partials written out of numeric order, one with malformed rows
	require.NoError(t, os.WriteFile(dir+"results_10.csv",
		[]byte(ResultHeader+"\n3;3\n"), 0644))
	require.NoError(t, os.WriteFile(dir+"results_2.csv",
		[]byte(ResultHeader+"\n2;junk;;2\n\n"), 0644))
	require.NoError(t, os.WriteFile(dir+"results_0.csv",
		[]byte(ResultHeader+"\n1;1\n1;1\n"), 0644))
	require.NoError(t, os.WriteFile(dir+"other.csv", []byte("ignored\n"), 0644))

	final := t.TempDir() + "/final.csv"
	n, err := Merge(dir, final)
	require.NoError(t, err)
	assert.Equal(t, 4, n) // raw row count, nothing filtered

	lns := readLines(t, final)
	require.Len(t, lns, 5)
	assert.Equal(t, ResultHeader, lns[0])

	// ascending numeric order: results_0 rows, then _2, then _10
	assert.True(t, strings.HasPrefix(lns[1], "1;1;"))
	assert.True(t, strings.HasPrefix(lns[3], "2;0;"))
	assert.True(t, strings.HasPrefix(lns[4], "3;3;"))

	for _, ln := range lns[1:] {
		f := strings.Split(ln, ";")
		require.Len(t, f, NResultCols)
		assert.Equal(t, "0.5", f[18]) // peso default applied
		assert.Equal(t, "-Inf", f[26])
		assert.Equal(t, "+Inf", f[29])
	}
}

func TestMergeIdempotent(t *testing.T) {
	dir := t.TempDir() + "/"
	w := NewResultWriter(dir, 0, 1, 1<<20)
	r := tmpResult()
	for i := 0; i < 5; i++ {
		require.NoError(t, w.Write(&r))
	}
	w.Close()

	out := t.TempDir() + "/"
	n1, err := Merge(dir, out+"a.csv")
	require.NoError(t, err)
	n2, err := Merge(dir, out+"b.csv")
	require.NoError(t, err)
	assert.Equal(t, n1, n2)

	a, err := os.ReadFile(out + "a.csv")
	require.NoError(t, err)
	b, err := os.ReadFile(out + "b.csv")
	require.NoError(t, err)
	assert.Equal(t, a, b) // byte-identical
}
