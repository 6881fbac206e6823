// pkg/interaction/decision.go

package interaction

import "strings"

// Decision is the user's answer to a proposed commit message.
type Decision int

const (
	DecisionUnknown Decision = iota
	DecisionConfirm
	DecisionEdit
	DecisionCancel
)

func (d Decision) String() string {
	switch d {
	case DecisionConfirm:
		return "confirm"
	case DecisionEdit:
		return "edit"
	case DecisionCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// ParseDecision maps raw prompt input onto a Decision. Unrecognized input
// reports DecisionUnknown so the prompt can re-ask.
func ParseDecision(input string) Decision {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return DecisionConfirm
	case "n", "no":
		return DecisionCancel
	case "e", "edit":
		return DecisionEdit
	default:
		return DecisionUnknown
	}
}
