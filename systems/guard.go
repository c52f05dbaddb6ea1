package systems

import (
	"log"
	"runtime/debug"

	"github.com/yohamta/donburi"
)

// guardAgent runs one agent's tick step. A panic is logged and swallowed
// so the remaining agents still run this tick.
func guardAgent(subsystem string, e *donburi.Entry, step func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[%s] agent %v tick failed: %v\n%s", subsystem, e.Entity(), r, debug.Stack())
		}
	}()
	step()
}
