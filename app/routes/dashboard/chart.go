package dashboard

const (
	chartWidth      = 640
	chartHeight     = 360
	chartPadLeft    = 40
	chartPadRight   = 10
	chartPadTop     = 10
	chartPadBottom  = 30
	chartTickStep   = 25
	chartBarFill    = 0.6
	chartLabelSpace = 18
)

// Bar is one rectangle of the SVG chart, in viewBox units.
type Bar struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	LabelX float64
	Label  string
	Score  int
}

// Tick is a y-axis gridline.
type Tick struct {
	Y     float64
	Value int
}

// BarChart is the laid-out weekly average chart.
type BarChart struct {
	Width     int
	Height    int
	AxisX     float64
	BaselineY float64
	LabelY    float64
	Max       int
	Bars      []Bar
	Ticks     []Tick
}

// BuildBarChart lays out points as vertical bars over a [0, Max] domain,
// where Max is the highest score rounded up to the next tick.
func BuildBarChart(points []ChartPoint) BarChart {
	plotW := float64(chartWidth - chartPadLeft - chartPadRight)
	plotH := float64(chartHeight - chartPadTop - chartPadBottom)
	baseline := float64(chartPadTop) + plotH

	highest := 0
	for _, p := range points {
		highest = max(highest, p.Score)
	}
	top := niceMax(highest)

	chart := BarChart{
		Width:     chartWidth,
		Height:    chartHeight,
		AxisX:     chartPadLeft,
		BaselineY: baseline,
		LabelY:    baseline + chartLabelSpace,
		Max:       top,
	}

	for v := 0; v <= top; v += chartTickStep {
		chart.Ticks = append(chart.Ticks, Tick{
			Y:     baseline - float64(v)/float64(top)*plotH,
			Value: v,
		})
	}

	if len(points) == 0 {
		return chart
	}

	slot := plotW / float64(len(points))
	width := slot * chartBarFill
	chart.Bars = make([]Bar, len(points))
	for i, p := range points {
		height := float64(max(p.Score, 0)) / float64(top) * plotH
		x := float64(chartPadLeft) + float64(i)*slot + (slot-width)/2
		chart.Bars[i] = Bar{
			X:      x,
			Y:      baseline - height,
			Width:  width,
			Height: height,
			LabelX: x + width/2,
			Label:  p.Week,
			Score:  p.Score,
		}
	}
	return chart
}

func niceMax(v int) int {
	if v <= 0 {
		return chartTickStep
	}
	return (v + chartTickStep - 1) / chartTickStep * chartTickStep
}
