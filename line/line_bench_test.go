package line

import (
	"context"
	"testing"

	"github.com/gogpu/gglab"
)

// BenchmarkStrategies compares the strategies on a shallow 500-pixel line
// drawn into a pixmap.
func BenchmarkStrategies(b *testing.B) {
	pm := gglab.NewPixmap(600, 600)
	p := gglab.NewPixmapPlotter(pm, gglab.White)

	for _, s := range []Strategy{StrategyDDA, StrategyBresenham, StrategyWu} {
		b.Run(s.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				seq, err := Draw(s, 10, 20, 510, 230)
				if err != nil {
					b.Fatal(err)
				}
				if _, err := gglab.Render(context.Background(), seq, p); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
