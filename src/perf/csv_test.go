package perf

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerialDataSet_Literals(t *testing.T) {
	ds := SerialDataSet()
	require.Len(t, ds, 7)
	assert.Equal(t, Record{GridSize: 129, SyncTime: 0.137159, AsyncTime: 0.098729}, ds[0])
	assert.Equal(t, Record{GridSize: 1537, SyncTime: 4677.481956, AsyncTime: 1865.537191}, ds[6])

	// Callers get their own copy.
	ds[0].GridSize = 1
	assert.Equal(t, 129, SerialDataSet()[0].GridSize)
}

func TestWriteCSV_SerialDataSet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, SerialDataSet()))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\r\n"), "\r\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "Grid Size,Synchronous Time (s),Asynchronous Time (s)", lines[0])

	want := []string{
		"129,0.137159,0.098729",
		"257,2.520113,1.59093",
		"385,11.866734,7.843416",
		"513,39.914363,25.85352",
		"729,163.869716,114.962984",
		"1025,690.590143,475.958853",
		"1537,4677.481956,1865.537191",
	}
	assert.Equal(t, want, lines[1:])
}

func TestWriteCSV_FullPrecision(t *testing.T) {
	var buf bytes.Buffer
	ds := DataSet{{GridSize: 3, SyncTime: 0.1234567890123, AsyncTime: 2}}
	require.NoError(t, WriteCSV(&buf, ds))
	assert.Contains(t, buf.String(), "3,0.1234567890123,2\r\n")
}

func TestSaveCSV(t *testing.T) {
	p := filepath.Join(t.TempDir(), SerialCSVFile)
	require.NoError(t, SaveCSV(p, SerialDataSet()))
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, 8, strings.Count(string(b), "\n"))

	err = SaveCSV(filepath.Join(t.TempDir(), "missing", "x.csv"), SerialDataSet())
	require.Error(t, err)
}
