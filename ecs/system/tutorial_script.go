package system

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/balloonbridge/ecs/component"
)

// renderTutorialText runs src with message, ability and collected bound and
// returns the value it assigns to text. An empty src returns message as is.
func renderTutorialText(src, message string, ability component.Ability, collected int) (string, error) {
	if strings.TrimSpace(src) == "" {
		return message, nil
	}

	script := tengo.NewScript([]byte(src))
	_ = script.Add("message", message)
	_ = script.Add("ability", string(ability))
	_ = script.Add("collected", collected)
	_ = script.Add("text", message)
	script.SetImports(stdlib.GetModuleMap("fmt", "text"))

	compiled, err := script.Run()
	if err != nil {
		return message, fmt.Errorf("tutorial script: %w", err)
	}
	if !compiled.IsDefined("text") {
		return message, nil
	}
	return compiled.Get("text").String(), nil
}
