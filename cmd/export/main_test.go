package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alpacahq/holidaystore/frontend"
)

var sample = frontend.ListHolidaysResponse{
	Region: "IN",
	Year:   2025,
	Today:  "2025-03-01",
	Holidays: []frontend.HolidayResult{
		{Date: "2025-01-26", Name: "Republic Day", Category: "public", Weekday: "Sunday", Past: true},
		{Date: "2025-03-14", Name: "Holi", Category: "public", Weekday: "Friday"},
	},
}

func TestWrite(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, formatCSV, &sample))
	assert.Equal(t, "date,name,category,weekday,past\n"+
		"2025-01-26,Republic Day,public,Sunday,true\n"+
		"2025-03-14,Holi,public,Friday,false\n", buf.String())

	buf.Reset()
	require.NoError(t, Write(&buf, formatJSON, &sample))
	var decoded frontend.ListHolidaysResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sample, decoded)

	assert.Error(t, Write(&buf, "xml", &sample))
}

func TestWriteFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("x"), 4096), 0o600))

	require.NoError(t, WriteFile(path, formatJSON, &sample))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded frontend.ListHolidaysResponse
	require.NoError(t, json.Unmarshal(data, &decoded), "previous content is truncated")
	assert.Equal(t, sample, decoded)

	err = WriteFile(filepath.Join(t.TempDir(), "missing", "in.csv"), formatCSV, &sample)
	assert.Error(t, err)
}
