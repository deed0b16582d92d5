package viz

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/megjohnson1999/contig-coverage-viewer/internal/chimera"
)

const (
	labelFontSize    = 10
	maxChartContigs  = 30
	barChartHeight   = "500px"
	heatmapMinHeight = 300
	heatmapMaxHeight = 900
	heatmapPerContig = 30
	heatmapPadding   = 150
)

// heatmapColors ramps from leaderless gray through increasing leader churn.
var heatmapColors = []string{"#ebedf0", "#9be9a8", "#40c463", "#30a14e", "#216e39"}

// ScreenReport renders batch screening results as an HTML page with a
// ranked score bar chart and a contig-by-segment leader heatmap.
type ScreenReport struct {
	Title   string
	Results []chimera.ScoreResult

	// Leaders holds, per contig in Results order, the segment leader
	// sequence behind the score. Optional; the heatmap is skipped when
	// absent.
	Leaders map[string][]string
}

// Render writes the screening report page.
func (r *ScreenReport) Render(w io.Writer) error {
	page := components.NewPage()
	page.PageTitle = r.Title
	page.SetLayout(components.PageCenterLayout)

	page.AddCharts(r.buildScoreBar())

	if len(r.Leaders) > 0 {
		page.AddCharts(r.buildLeaderHeatMap())
	}

	err := page.Render(w)
	if err != nil {
		return fmt.Errorf("render screening report: %w", err)
	}

	return nil
}

// buildScoreBar creates a horizontal bar chart of the top contigs by
// chimera score, highest at the top.
func (r *ScreenReport) buildScoreBar() *charts.Bar {
	shown := min(len(r.Results), maxChartContigs)

	labels := make([]string, shown)
	values := make([]opts.BarData, shown)

	for i, result := range r.Results[:shown] {
		// Reverse so the highest score renders at the top.
		labels[shown-1-i] = result.Contig
		values[shown-1-i] = opts.BarData{Value: result.Score}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Chimera Scores",
			Subtitle: "Distinct segment leaders over total segments, per contig",
			Left:     "center",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: barChartHeight}),
		charts.WithGridOpts(opts.Grid{Left: "25%", Right: "5%", Top: "60", Bottom: "10%"}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:      "value",
			Max:       1,
			AxisLabel: &opts.AxisLabel{FontSize: labelFontSize},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "category", Data: labels,
			AxisLabel: &opts.AxisLabel{FontSize: labelFontSize},
		}),
	)

	bar.AddSeries("Score", values, charts.WithLabelOpts(opts.Label{
		Show:     opts.Bool(true),
		Position: "right",
		FontSize: labelFontSize,
	}))

	return bar
}

// buildLeaderHeatMap creates a contig-by-segment heatmap where each cell
// carries the leader's index within the contig's distinct-leader list.
// Rows with shifting colors are the chimera candidates.
func (r *ScreenReport) buildLeaderHeatMap() *charts.HeatMap {
	shown := min(len(r.Results), maxChartContigs)

	contigs := make([]string, shown)
	segments := chimera.ScreenSegments

	var data []opts.HeatMapData

	maxLeaderIdx := 0

	for row, result := range r.Results[:shown] {
		contigs[row] = result.Contig

		leaders := r.Leaders[result.Contig]
		index := leaderIndex(leaders)

		for col, leader := range leaders {
			if leader == chimera.NoLeader {
				continue
			}

			idx := index[leader]
			if idx > maxLeaderIdx {
				maxLeaderIdx = idx
			}

			data = append(data, opts.HeatMapData{Value: []any{col, row, idx + 1}})
		}
	}

	segmentLabels := make([]string, segments)
	for i := 0; i < segments; i++ {
		segmentLabels[i] = fmt.Sprintf("seg %d", i+1)
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Segment Leaders",
			Subtitle: "Color changes along a row mean leadership shifted between samples",
			Left:     "center",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "100%",
			Height: dynamicHeatmapHeight(shown),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "category", Data: segmentLabels,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "category", Data: contigs,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
			AxisLabel: &opts.AxisLabel{FontSize: labelFontSize},
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxLeaderIdx + 1),
			InRange:    &opts.VisualMapInRange{Color: heatmapColors},
			Orient:     "horizontal",
			Left:       "center",
			Bottom:     "2%",
		}),
		charts.WithGridOpts(opts.Grid{Left: "20%", Right: "5%", Top: "60", Bottom: "20%"}),
	)

	hm.AddSeries("Leader", data)

	return hm
}

// leaderIndex assigns each distinct leader its first-appearance index.
func leaderIndex(leaders []string) map[string]int {
	index := make(map[string]int)

	for _, leader := range leaders {
		if leader == chimera.NoLeader {
			continue
		}

		if _, seen := index[leader]; !seen {
			index[leader] = len(index)
		}
	}

	return index
}

func dynamicHeatmapHeight(contigCount int) string {
	h := contigCount*heatmapPerContig + heatmapPadding

	h = max(heatmapMinHeight, min(heatmapMaxHeight, h))

	return fmt.Sprintf("%dpx", h)
}
