// Package perf holds sandpile benchmark timings and turns them into CSV and
// line-chart artifacts.
package perf

// Record is one benchmark row: the side length of an NxN board and the
// seconds taken to stabilize it with each strategy.
type Record struct {
	GridSize  int
	SyncTime  float64
	AsyncTime float64
}

// DataSet is an ordered list of records; order is preserved in every output.
type DataSet []Record

// Header is the CSV header row.
var Header = []string{"Grid Size", "Synchronous Time (s)", "Asynchronous Time (s)"}

// Default artifact names of the serial performance report.
const (
	SerialCSVFile   = "sandpile_serial_performance.csv"
	SerialChartFile = "sandpile_serial_performance_plot.png"
)

var (
	serialGridSizes  = [...]int{129, 257, 385, 513, 729, 1025, 1537}
	serialSyncTimes  = [...]float64{0.137159, 2.520113, 11.866734, 39.914363, 163.869716, 690.590143, 4677.481956}
	serialAsyncTimes = [...]float64{0.098729, 1.590930, 7.843416, 25.853520, 114.962984, 475.958853, 1865.537191}
)

// SerialDataSet returns the measured serial timings (seconds) for boards
// initialized with 4 grains per cell. A fresh slice is returned on every call.
func SerialDataSet() DataSet {
	ds := make(DataSet, len(serialGridSizes))
	for i := range serialGridSizes {
		ds[i] = Record{GridSize: serialGridSizes[i], SyncTime: serialSyncTimes[i], AsyncTime: serialAsyncTimes[i]}
	}
	return ds
}

// Columns splits the dataset into the x values and the two y series.
func (ds DataSet) Columns() (sizes, sync, async []float64) {
	sizes = make([]float64, len(ds))
	sync = make([]float64, len(ds))
	async = make([]float64, len(ds))
	for i, r := range ds {
		sizes[i] = float64(r.GridSize)
		sync[i] = r.SyncTime
		async[i] = r.AsyncTime
	}
	return sizes, sync, async
}
