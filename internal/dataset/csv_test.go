package dataset

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []LaunchRecord
		wantErr error
	}{
		{
			name: "columns located by name",
			input: "Booster Version Category,class,Payload Mass (kg),Launch Site\n" +
				"FT,1,2490,KSC LC-39A\n" +
				"v1.1,0,500.5,VAFB SLC-4E\n",
			want: []LaunchRecord{
				{Site: "KSC LC-39A", PayloadMassKg: 2490, Class: 1, BoosterCategory: "FT"},
				{Site: "VAFB SLC-4E", PayloadMassKg: 500.5, Class: 0, BoosterCategory: "v1.1"},
			},
		},
		{
			name: "optional columns carried",
			input: ",Flight Number,Launch Site,class,Payload Mass (kg),Booster Version,Booster Version Category\n" +
				"0,1,CCAFS LC-40,0,0.0,F9 v1.0  B0003,v1.0\n",
			want: []LaunchRecord{
				{FlightNumber: 1, Site: "CCAFS LC-40", PayloadMassKg: 0, Class: 0, BoosterVersion: "F9 v1.0  B0003", BoosterCategory: "v1.0"},
			},
		},
		{
			name:    "byte order mark on first header",
			input:   "\ufeffLaunch Site,class,Payload Mass (kg),Booster Version Category\nA,1,10,FT\n",
			want:    []LaunchRecord{{Site: "A", PayloadMassKg: 10, Class: 1, BoosterCategory: "FT"}},
		},
		{
			name:    "missing required column",
			input:   "Launch Site,class,Booster Version Category\nA,1,FT\n",
			wantErr: ErrMissingColumn,
		},
		{
			name:    "header only",
			input:   "Launch Site,class,Payload Mass (kg),Booster Version Category\n",
			wantErr: ErrEmpty,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: ErrEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCSV(strings.NewReader(tt.input))
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCSV_RowErrors(t *testing.T) {
	header := "Launch Site,class,Payload Mass (kg),Booster Version Category\n"

	tests := []struct {
		name       string
		row        string
		wantColumn string
	}{
		{name: "non-numeric payload", row: "A,1,heavy,FT\n", wantColumn: ColumnPayloadMass},
		{name: "negative payload", row: "A,1,-5,FT\n", wantColumn: ColumnPayloadMass},
		{name: "NaN payload", row: "A,1,NaN,FT\n", wantColumn: ColumnPayloadMass},
		{name: "infinite payload", row: "A,1,+Inf,FT\n", wantColumn: ColumnPayloadMass},
		{name: "negative infinite payload", row: "A,0,-inf,FT\n", wantColumn: ColumnPayloadMass},
		{name: "NaN class", row: "A,NaN,100,FT\n", wantColumn: ColumnClass},
		{name: "class out of range", row: "A,2,100,FT\n", wantColumn: ColumnClass},
		{name: "non-numeric class", row: "A,yes,100,FT\n", wantColumn: ColumnClass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCSV(strings.NewReader(header + "A,1,1,FT\n" + tt.row))
			require.Error(t, err)

			var rowErr *RowError
			require.True(t, errors.As(err, &rowErr), "expected *RowError, got %T", err)
			assert.Equal(t, tt.wantColumn, rowErr.Column)
			assert.Equal(t, 3, rowErr.Line)
		})
	}
}

func TestNew(t *testing.T) {
	records := []LaunchRecord{
		{Site: "B", PayloadMassKg: 300, Class: 1},
		{Site: "A", PayloadMassKg: 100, Class: 0},
		{Site: "B", PayloadMassKg: 700, Class: 1},
	}

	ds, err := New("memory", records)
	require.NoError(t, err)

	assert.Equal(t, "memory", ds.Source())
	assert.Equal(t, 3, ds.Len())
	assert.Equal(t, 100.0, ds.MinPayload())
	assert.Equal(t, 700.0, ds.MaxPayload())
	assert.Equal(t, []string{"B", "A"}, ds.Sites())
	assert.Equal(t, 2, ds.SuccessCount())

	// Mutating the input or a returned copy must not leak into the dataset.
	records[0].Site = "Z"
	got := ds.Records()
	got[1].Site = "Y"
	assert.Equal(t, "B", ds.Records()[0].Site)
	assert.Equal(t, "A", ds.Records()[1].Site)

	_, err = New("memory", nil)
	assert.ErrorIs(t, err, ErrEmpty)
}
