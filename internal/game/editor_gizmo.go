package game

import (
	"go.uber.org/zap"

	"mapeditor/internal/gizmo"
)

// applyTransform moves or turns the selected object by amount units along
// the active axis of the current mode.
func (s *Session) applyTransform(amount float32) {
	delta, mode := s.gizmo.Delta(amount)
	var applied bool
	switch mode {
	case gizmo.Translation:
		applied = s.registry.Translate(delta)
	case gizmo.Rotation:
		applied = s.registry.Rotate(delta)
	}
	if applied && s.log.Core().Enabled(zap.DebugLevel) {
		obj := s.registry.Selected()
		s.log.Debug("transform",
			zap.String("gizmo", s.gizmo.Describe()),
			zap.Float32("amount", amount),
			zap.Stringer("id", obj.ID),
		)
	}
}
