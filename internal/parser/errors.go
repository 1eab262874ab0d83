package parser

import (
	"fmt"
	"sort"
	"strings"
)

var usage = map[string]string{
	"illuminate": "illuminate",
	"reflect":    "reflect",
	"endure":     "endure",
	"embrace":    "embrace",
	"surrender":  "surrender",
	"status":     "status",
	"log":        "log [count]",
	"help":       "help [command]",
}

// Usage returns the syntax of a command.
func Usage(cmd string) (string, bool) {
	u, ok := usage[strings.ToLower(cmd)]
	return u, ok
}

// Commands lists every command verb in sorted order.
func Commands() []string {
	out := make([]string, 0, len(usage))
	for k := range usage {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// MapError takes a raw input and a participle error, and returns a human-friendly guidance message.
func MapError(input string, err error) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("I wasn't able to understand your command")
	}

	cmd := strings.Fields(strings.ToLower(input))[0]
	if u, ok := usage[cmd]; ok {
		return fmt.Errorf("The command %s must be: %s", cmd, u)
	}

	return fmt.Errorf("I wasn't able to understand your command, type help to see what you can do")
}
