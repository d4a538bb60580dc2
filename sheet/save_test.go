package sheet

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/recovery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleReport(t *testing.T) *recovery.Report {
	t.Helper()
	assets := []recovery.Asset{
		{ID: "A", TotalSpent: recovery.M(1000, "BRL"), CurrentValue: recovery.M(900, "BRL"), Profit: recovery.M(-100, "BRL"), ProfitPercent: -10},
		{ID: "B", TotalSpent: recovery.M(1000, "BRL"), CurrentValue: recovery.M(700, "BRL"), Profit: recovery.M(-300, "BRL"), ProfitPercent: -30},
		{ID: "C", TotalSpent: recovery.M(100, "BRL"), CurrentValue: recovery.M(150, "BRL"), Profit: recovery.M(50, "BRL"), ProfitPercent: 50},
	}
	r, err := recovery.Calculate(assets, recovery.Options{Budget: recovery.M(400, "BRL"), ExcludeNonNegative: true})
	require.NoError(t, err)
	return r
}

func TestWriteCSV(t *testing.T) {
	var b strings.Builder
	require.NoError(t, WriteCSV(&b, sampleReport(t)))

	want := `CryptoCurrency,Current Loss (BRL),Investment,Old % Loss,New % Loss,Improvement %
B,-300.00,300.00,-30.00,-23.08,6.92
A,-100.00,100.00,-10.00,-9.09,0.91
C,50.00,0.00,50.00,50.00,0.00
TOTAL,-400.00,400.00,,,
`
	assert.Equal(t, want, b.String())
}

func TestSaveXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Output", "rcv_Results.xlsx")
	require.NoError(t, Save(path, sampleReport(t)))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ResultsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"CryptoCurrency", "Current Loss (BRL)", "Investment", "Old % Loss", "New % Loss", "Improvement %"}, rows[0])
	assert.Equal(t, "B", rows[1][0])
	assert.Equal(t, "300", rows[1][2])
	assert.Equal(t, "TOTAL", rows[4][0])
	assert.Equal(t, "400", rows[4][2])
	// percentages of the totals row are left blank.
	for i := 3; i < len(rows[4]); i++ {
		assert.Empty(t, rows[4][i])
	}
}

func TestSave_Unsupported(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "out.pdf"), sampleReport(t))
	assert.ErrorIs(t, err, recovery.ErrFormat)
}
