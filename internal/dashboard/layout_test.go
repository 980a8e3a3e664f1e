package dashboard

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarks(t *testing.T) {
	t.Run("multiples of the interval", func(t *testing.T) {
		assert.Equal(t, []Mark{
			{Value: 200, Label: "200 kg"},
			{Value: 300, Label: "300"},
			{Value: 400, Label: "400"},
		}, marks(150, 420, 100))
	})

	t.Run("no usable interval", func(t *testing.T) {
		for _, interval := range []float64{0, -100, math.NaN(), math.Inf(1)} {
			assert.Nil(t, marks(0, 9600, interval), "%v", interval)
		}
		assert.Nil(t, marks(10, 5, 1), "inverted bounds")
	})

	for _, interval := range []float64{1e-12, 0.5, 50} {
		t.Run("dense interval is widened", func(t *testing.T) {
			got := marks(0, 9600, interval)

			require.NotEmpty(t, got)
			assert.LessOrEqual(t, len(got), MaxMarks+1)
			assert.Equal(t, "0 kg", got[0].Label)
			for i := 1; i < len(got); i++ {
				assert.Greater(t, got[i].Value, got[i-1].Value)
			}
			assert.LessOrEqual(t, got[len(got)-1].Value, 9600.0)
		})
	}
}
