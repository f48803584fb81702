package env

import (
	"fmt"
	"os"
	"strconv"

	"physics-arena/internal/engineconfig"
)

// Environment keys read by ConfigPath and Apply.
const (
	KeyConfig         = "ARENA_CONFIG"
	KeyGravityX       = "ARENA_GRAVITY_X"
	KeyGravityY       = "ARENA_GRAVITY_Y"
	KeyWidth          = "ARENA_WIDTH"
	KeyHeight         = "ARENA_HEIGHT"
	KeySeed           = "ARENA_SEED"
	KeyAmbientDamping = "ARENA_AMBIENT_DAMPING"
)

// ConfigPath returns ARENA_CONFIG, or engineconfig.ConfigPath when unset.
func ConfigPath() string {
	if p := os.Getenv(KeyConfig); p != "" {
		return p
	}
	return engineconfig.ConfigPath
}

// Apply overrides cfg with any ARENA_* variables that are set. A malformed value is an
// error naming the variable; cfg is left untouched in that case.
func Apply(cfg *engineconfig.Config) error {
	out := *cfg
	floats := []struct {
		key string
		dst *float64
	}{
		{KeyGravityX, &out.Gravity[0]},
		{KeyGravityY, &out.Gravity[1]},
		{KeyWidth, &out.Arena.Width},
		{KeyHeight, &out.Arena.Height},
	}
	for _, f := range floats {
		v, ok := os.LookupEnv(f.key)
		if !ok {
			continue
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = n
	}
	if v, ok := os.LookupEnv(KeySeed); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", KeySeed, err)
		}
		out.Seed = n
	}
	if v, ok := os.LookupEnv(KeyAmbientDamping); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", KeyAmbientDamping, err)
		}
		out.AmbientDamping = b
	}
	*cfg = out
	return nil
}
