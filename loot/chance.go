package loot

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// ChanceVars are the values a chance expression can read.
type ChanceVars struct {
	Wave    int
	Level   int
	Players int
}

// Chance is a spawn probability: either a constant or a tengo expression
// such as `wave > 3 ? 0.8 : 0.3` evaluated per roll.
type Chance struct {
	constant float64
	compiled *tengo.Compiled
	src      string
}

// ConstantChance returns a fixed probability.
func ConstantChance(p float64) *Chance {
	return &Chance{constant: p}
}

// CompileChance compiles expr. The math module is available as `math`.
func CompileChance(expr string) (*Chance, error) {
	src := "math := import(\"math\")\nchance := " + expr
	script := tengo.NewScript([]byte(src))
	script.SetImports(stdlib.GetModuleMap("math"))
	_ = script.Add("wave", 0)
	_ = script.Add("level", 0)
	_ = script.Add("players", 0)

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile chance %q: %w", expr, err)
	}
	return &Chance{compiled: compiled, src: expr}, nil
}

// Eval returns the probability clamped to [0, 1].
func (c *Chance) Eval(vars ChanceVars) (float64, error) {
	if c == nil {
		return 0, nil
	}
	if c.compiled == nil {
		return clamp01(c.constant), nil
	}

	for name, v := range map[string]int{"wave": vars.Wave, "level": vars.Level, "players": vars.Players} {
		if err := c.compiled.Set(name, v); err != nil {
			return 0, fmt.Errorf("chance %q: set %s: %w", c.src, name, err)
		}
	}
	if err := c.compiled.Run(); err != nil {
		return 0, fmt.Errorf("chance %q: %w", c.src, err)
	}
	if !c.compiled.IsDefined("chance") {
		return 0, fmt.Errorf("chance %q: no result", c.src)
	}
	return clamp01(c.compiled.Get("chance").Float()), nil
}

func (c *Chance) String() string {
	if c.compiled == nil {
		return fmt.Sprintf("%.2f", c.constant)
	}
	return c.src
}

func clamp01(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
