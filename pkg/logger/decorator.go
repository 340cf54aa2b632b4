/*
Copyright © 2020-2026 Simon de Hartog
See AUTHORS and LICENSE for the license details and contributors.
*/
package logger

import (
	"github.com/kyokomi/emoji"
	"github.com/logrusorgru/aurora"
)

// decorator applies the stream only presentation options. The syslog
// destination never sees escape sequences or emoji.
type decorator struct {
	color  bool
	emoji  bool
	aurora aurora.Aurora
}

func newDecorator(color, enableEmoji bool) *decorator {
	return &decorator{
		color:  color,
		emoji:  enableEmoji,
		aurora: aurora.NewAurora(color),
	}
}

// message renders :shortcode: emoji when enabled.
func (d *decorator) message(msg string) string {
	if !d.emoji {
		return msg
	}
	return emoji.Sprint(msg)
}

// line colors a complete output line by level when enabled.
func (d *decorator) line(out string, level Level) string {
	if !d.color {
		return out
	}

	switch level {
	case Error:
		return d.aurora.Bold(d.aurora.Red(out)).String()
	case Warning:
		return d.aurora.Bold(d.aurora.Yellow(out)).String()
	case Notice:
		return d.aurora.Cyan(out).String()
	case Info:
		return d.aurora.Bold(out).String()
	default:
		return d.aurora.White(out).String()
	}
}
