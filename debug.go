package canopy

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// debugBoundsColor outlines bounding boxes in debug mode.
var debugBoundsColor = Color{0, 1, 0, 1}

// NewDevelopmentLogger returns a human-readable console logger at the given
// level, suitable for examples and debugging sessions.
func NewDevelopmentLogger(level zapcore.Level) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.DisableStacktrace = true
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// debugLogUpdate logs update timing. Only called when Scene.debug is true.
func (s *Scene) debugLogUpdate(d time.Duration, members int) {
	s.logger.Debug("scene update",
		zap.Duration("elapsed", d),
		zap.Int("members", members),
		zap.Int("registered", len(s.nodes)),
	)
}

// debugLogDraw logs draw timing. Only called when Scene.debug is true.
func (s *Scene) debugLogDraw(d time.Duration, members int) {
	s.logger.Debug("scene draw",
		zap.Duration("elapsed", d),
		zap.Int("members", members),
	)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("canopy debug: %s on disposed node %q", op, n.Name))
	}
}

// debugMaxTreeDepth is the depth above which a warning is logged.
const debugMaxTreeDepth = 32

func (s *Scene) debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		s.logger.Warn("tree depth exceeds threshold",
			zap.String("node", n.Name),
			zap.Int("depth", depth),
			zap.Int("threshold", debugMaxTreeDepth),
		)
	}
}

// debugMaxChildCount is the child count above which a warning is logged.
const debugMaxChildCount = 1000

func (s *Scene) debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		s.logger.Warn("child count exceeds threshold",
			zap.String("node", n.Name),
			zap.Int("children", len(n.children)),
			zap.Int("threshold", debugMaxChildCount),
		)
	}
}
