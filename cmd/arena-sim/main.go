// Headless arena runner: builds the demo scene, feeds it a command script and steps it
// without a window.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"physics-arena/internal/commands"
	"physics-arena/internal/engineconfig"
	"physics-arena/internal/env"
	"physics-arena/internal/logger"
	"physics-arena/internal/physics"
	"physics-arena/internal/scene"

	"gopkg.in/yaml.v3"
)

// bodyDump is the YAML shape of one body in the -dump output.
type bodyDump struct {
	ID       physics.BodyID   `yaml:"id"`
	Name     string           `yaml:"name"`
	Type     string           `yaml:"type"`
	Material string           `yaml:"material"`
	Position [2]float64       `yaml:"position,flow"`
	Velocity [2]float64       `yaml:"velocity,flow"`
	Size     [2]float64       `yaml:"size,flow"`
	Collided bool             `yaml:"collided,omitempty"`
	Contacts []physics.BodyID `yaml:"contacts,flow,omitempty"`
}

func main() {
	if _, err := env.Load(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "env: %v\n", err)
	}
	configPath := flag.String("config", env.ConfigPath(), "arena config file")
	script := flag.String("script", "", `command script, "-" for stdin`)
	steps := flag.Int("steps", 600, "frames to run after the script")
	dt := flag.Duration("dt", 16*time.Millisecond, "frame time")
	dump := flag.Bool("dump", false, "print every body as YAML at the end")
	flag.Parse()

	if err := run(*configPath, *script, *steps, *dt, *dump, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, script string, steps int, dt time.Duration, dump bool, stdin io.Reader, stdout io.Writer) error {
	cfg, err := engineconfig.Load(configPath)
	if err != nil {
		return err
	}
	if err := env.Apply(&cfg); err != nil {
		return err
	}

	log := logger.New("")
	log.SetOutput(stdout)
	scn, err := scene.New(cfg, log)
	if err != nil {
		return err
	}
	reg := commands.NewRegistry()
	scene.RegisterCommands(reg, scn)

	if script != "" {
		src := stdin
		if script != "-" {
			f, err := os.Open(script)
			if err != nil {
				return err
			}
			defer f.Close()
			src = f
		}
		if err := reg.RunScript(src); err != nil {
			return fmt.Errorf("%s: %w", script, err)
		}
	}

	for i := 0; i < steps; i++ {
		scn.Update(dt)
	}
	st := scn.Stats()
	fmt.Fprintf(stdout, "frames=%d bodies=%d dynamic=%d collided=%d contacts=%d gravity=(%g, %g)\n",
		st.Frames, st.Bodies, st.Dynamic, st.Collided, st.Contacts, st.Gravity[0], st.Gravity[1])

	if !dump {
		return nil
	}
	states, err := scn.Snapshot()
	if err != nil {
		return err
	}
	out := make([]bodyDump, len(states))
	for i, s := range states {
		out[i] = bodyDump{
			ID:       s.ID,
			Name:     s.Name,
			Type:     s.Type.String(),
			Material: s.MaterialName,
			Position: s.Position,
			Velocity: s.Velocity,
			Size:     [2]float64{s.Width, s.Height},
			Collided: s.Collided,
			Contacts: s.Contacts,
		}
	}
	enc := yaml.NewEncoder(stdout)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(out)
}
