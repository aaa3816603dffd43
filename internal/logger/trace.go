package logger

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/Faultbox/meshfold/pkg/unfold"
)

// AdjacencyTracer returns an OnAdjacency hook that logs each event as
// "<source>.<edge> -> <target>" on the "trace" logger.
func AdjacencyTracer() func(unfold.AdjacencyEvent) {
	l := Log.Named("trace")
	return func(ev unfold.AdjacencyEvent) {
		l.Info(ev.String(), zap.Int("depth", ev.Depth))
	}
}

// TriangleCount logs the "num: <n>" line for a loaded mesh.
func TriangleCount(n int) {
	Log.Named("trace").Info("num: " + strconv.Itoa(n))
}

// Header logs the "header: '<text>'" line for a loaded mesh.
func Header(text string) {
	Log.Named("trace").Info("header: '" + text + "'")
}
