package spatial

import (
	"fmt"

	"github.com/auris-audio/auris/audio"
)

var (
	ErrSourceLength   = fmt.Errorf("spatial: source length must be a power of two: %w", audio.ErrInvalidArgument)
	ErrAzimuthStep    = fmt.Errorf("spatial: azimuth step must be a positive multiple of 5 in [5,180]: %w", audio.ErrInvalidArgument)
	ErrGainCount      = fmt.Errorf("spatial: gain count must match position count: %w", audio.ErrInvalidArgument)
	ErrGainRange      = fmt.Errorf("spatial: gain must not exceed 1.0: %w", audio.ErrInvalidArgument)
	ErrTargetChannels = fmt.Errorf("spatial: target channel count must be 2, 4 or 6: %w", audio.ErrInvalidArgument)
	ErrTooManyInputs  = fmt.Errorf("spatial: more positions than target channels: %w", audio.ErrInvalidArgument)
	ErrEmptySource    = fmt.Errorf("spatial: source buffer not populated: %w", audio.ErrInvalidState)
)
