// Package alert turns validator rejections into the title and message a
// player sees.
package alert

import (
	"fmt"

	"github.com/robalobadob/wordscramble/internal/scramble"
)

type Alert struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// For returns the alert for reason. root is quoted in the
// NotConstructible message. NoReason yields the zero Alert.
func For(reason scramble.Reason, root string) Alert {
	switch reason {
	case scramble.AlreadyUsed:
		return Alert{"Word used already", "Be more original"}
	case scramble.NotConstructible:
		return Alert{"Word not possible", fmt.Sprintf("You can't spell that word from '%s'!", root)}
	case scramble.NotRecognized:
		return Alert{"Word not recognized", "You can't just make them up, you know!"}
	case scramble.IsRootWord:
		return Alert{"Word is the start word", "Be creative"}
	case scramble.TooShort:
		return Alert{"Word is too short", fmt.Sprintf("Words need at least %d letters", scramble.MinLength)}
	}
	return Alert{}
}
