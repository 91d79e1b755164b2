package gameplay

import (
	"fmt"

	"oxygenmaze/pkg/game/maps"
	"oxygenmaze/pkg/game/scene"
)

// Setup collects everything needed to build a session
type Setup struct {
	Rows    []string
	Map     maps.Options
	Scene   scene.Options
	Session Options
}

// DefaultSetup plays the shipped station map with default controls
func DefaultSetup() Setup {
	return Setup{
		Rows:  maps.Station,
		Scene: scene.DefaultOptions(),
	}
}

// BuildSession loads the map, builds the scene and wraps it in a session
func BuildSession(setup Setup) (*Session, error) {
	m, err := maps.Load(setup.Rows, setup.Map)
	if err != nil {
		return nil, fmt.Errorf("loading map: %w", err)
	}

	if setup.Session.Logger != nil {
		if len(m.Padded) > 0 {
			setup.Session.Logger.WithField("rows", m.Padded).Warn("padded short map rows")
		}
		for _, c := range m.Stranded() {
			setup.Session.Logger.WithField("start", c.String()).Warn("player start cannot reach the oxygen tank")
		}
	}

	s, err := scene.Build(m, setup.Scene)
	if err != nil {
		return nil, fmt.Errorf("building scene: %w", err)
	}

	sess, err := NewSession(s, setup.Session)
	if err != nil {
		return nil, err
	}
	return sess, nil
}
